// Package maybesync helps creating flexible libraries that work in either
// multi-goroutine or single-goroutine environments from a single source.
//
// The package is a compile-time facade: one build tag selects between two
// implementation families with identical exported names, so downstream code
// compiles unchanged when the mode flips.
//
// # Build Modes
//
// The default build is the parallel mode. Synchronization primitives are
// backed by their real counterparts from sync and sync/atomic, and the
// capability markers are real interface bounds.
//
// Building with -tags singlethread selects the serial mode. The primitives
// are backed by plain, non-synchronized cells of identical memory layout,
// and the capability markers are satisfied by every type. Programs built in
// this mode must never touch a maybesync value from more than one goroutine;
// the serial mode exists precisely because the program guarantees this
// cannot happen.
//
//	$ go build ./...                      # parallel mode
//	$ go build -tags singlethread ./...   # serial mode
//	$ go build -tags deadlock ./...       # parallel mode, deadlock detection
//
// The mode is fixed for the entire compiled artifact. There is no runtime
// switch and no runtime branch.
//
// # Capability Markers
//
// [MaybeTransferable] and [MaybeShareable] stand in for "this value may be
// handed to another goroutine" and "this value may be read from several
// goroutines concurrently". In the parallel build they alias the real
// capability interfaces [Transferable] and [Shareable]; in the serial build
// they alias any, so every type satisfies them vacuously.
//
// The markers work in both interface-embedding and constraint position:
//
//	// Only transferable readers in a parallel build, any reader otherwise.
//	type Job interface {
//		io.Reader
//		maybesync.MaybeTransferable
//	}
//
//	func Submit[T maybesync.MaybeTransferable](task T) { ... }
//
// A function that unconditionally hands a value to another goroutine must
// not be written against the markers. It must require the real
// [Transferable] or [Shareable] interface directly, because in the serial
// build the marker grants no actual safety. This caller obligation is the
// single correctness-critical invariant of the whole package; the
// maybesync-check tool in cmd/maybesync-check flags the common violations.
//
// # Mutex
//
// [Mutex] wraps a payload behind the same lock/try-lock/get-mut surface in
// both modes. The parallel build uses a real sync.Mutex (or a
// deadlock-detecting lock under -tags deadlock). The serial build uses a
// single-goroutine exclusive-borrow cell: Lock never suspends, but panics
// immediately when the cell is already borrowed. Reentrant locking is a
// deadlock in the parallel build and a double-borrow panic in the serial
// build; the two failures are deliberately not unified.
//
// # Rc
//
// [Rc] is a reference-counted owner handle. The count is atomic in the
// parallel build and plain in the serial build. Cloning shares the payload,
// releasing the last handle runs the optional drop hook. Not available
// under -tags noalloc.
//
// # Future
//
// [Future] is an owned, one-shot deferred computation. In the parallel
// build the interface additionally requires [Transferable], so futures can
// be handed to worker pools; in the serial build it does not, so futures
// may only be driven on the goroutine that created them. Not available
// under -tags noalloc.
//
// # Atomics
//
// [AtomicBool], [AtomicInt8] through [AtomicInt], their unsigned
// counterparts and [AtomicPointer] expose identical method sets in both
// modes. The parallel build uses sync/atomic (sequentially consistent
// ordering); the serial build uses plain cells of byte-identical size, so
// structures embedding the wrappers do not change layout across modes.
//
// # What This Package Is Not
//
// maybesync implements no locking algorithm, no reference-counting
// algorithm and no atomic instruction of its own. It only selects between
// two pre-existing primitive families and relaxes or tightens the bounds
// around them.
package maybesync
