package maybesync

// Transferable is the real transfer capability: a type trait declaring that
// values may be handed to another goroutine.
//
// Implementing the marker method is a promise made by the type author, not
// something the compiler can verify. A type whose values hold
// goroutine-local state (for example anything backed by the serial-mode
// primitives of this package) must not declare it.
//
// Functions that unconditionally move a value to another goroutine must
// require this interface, never [MaybeTransferable]: the marker alias is
// vacuous in singlethread builds and grants no actual safety there.
type Transferable interface {
	// Transferable is a marker method. Implementations are empty.
	Transferable()
}

// Shareable is the real share capability: a type trait declaring that a
// value can be read by multiple goroutines concurrently without additional
// synchronization.
//
// The same obligation applies as for [Transferable]: code that actually
// shares a value across goroutines must require Shareable directly.
type Shareable interface {
	// Shareable is a marker method. Implementations are empty.
	Shareable()
}

// Concurrent combines both capabilities. It is the real counterpart of
// [MaybeConcurrent].
type Concurrent interface {
	Transferable
	Shareable
}

// CheckTransferable statically asserts that T satisfies the transfer bound
// of the active build mode. The call compiles to nothing; its only purpose
// is the constraint:
//
//	var _ = maybesync.CheckTransferable[myTaskType]
//
// In a parallel build this fails to compile unless myTaskType implements
// [Transferable]. In a singlethread build it always compiles.
func CheckTransferable[T MaybeTransferable]() {}

// CheckShareable statically asserts that T satisfies the share bound of the
// active build mode. See [CheckTransferable].
func CheckShareable[T MaybeShareable]() {}

// CheckConcurrent statically asserts that T satisfies both capability
// bounds of the active build mode. See [CheckTransferable].
func CheckConcurrent[T MaybeConcurrent]() {}
