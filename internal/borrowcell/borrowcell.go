// Package borrowcell implements a single-goroutine exclusive-borrow cell.
//
// Cell is the backing primitive for the singlethread-mode mutex facade. It
// tracks one exclusive borrow with a plain boolean: no atomics, no
// suspension, no other goroutine to wait on. Overlapping exclusive borrows
// are a hard failure, surfaced as a panic at the second borrow site, which
// is the serial-mode analogue of a reentrant lock deadlock.
//
// The cell performs no synchronization whatsoever. It must only ever be
// touched from a single goroutine; that discipline is established by the
// build configuration of the importing package, not checked here.
package borrowcell

// Cell owns a value and tracks one outstanding exclusive borrow.
//
// The zero Cell is valid and unborrowed, holding the zero value of T.
type Cell[T any] struct {
	borrowed bool
	value    T
}

// New returns an unborrowed cell owning value.
func New[T any](value T) Cell[T] {
	return Cell[T]{value: value}
}

// BorrowMut takes the exclusive borrow.
//
// Panics if the cell is already borrowed. There is no blocking variant: in
// a single-goroutine program nobody else can release the borrow while this
// call waits, so waiting would deadlock with extra steps.
func (c *Cell[T]) BorrowMut() {
	if c.borrowed {
		panic("borrowcell: already mutably borrowed")
	}
	c.borrowed = true
}

// TryBorrowMut takes the exclusive borrow if it is free and reports whether
// it did.
func (c *Cell[T]) TryBorrowMut() bool {
	if c.borrowed {
		return false
	}
	c.borrowed = true
	return true
}

// Release returns the exclusive borrow.
//
// Panics if the cell is not borrowed.
func (c *Cell[T]) Release() {
	if !c.borrowed {
		panic("borrowcell: release of unborrowed cell")
	}
	c.borrowed = false
}

// Borrowed reports whether an exclusive borrow is outstanding.
func (c *Cell[T]) Borrowed() bool {
	return c.borrowed
}

// Value returns the payload without checking the borrow state.
//
// Callers must hold the borrow taken by BorrowMut or TryBorrowMut.
func (c *Cell[T]) Value() *T {
	return &c.value
}

// GetMut returns the payload of a cell with no outstanding borrow.
//
// Panics if a borrow is outstanding. This is the no-overhead access path
// for callers that own the cell exclusively.
func (c *Cell[T]) GetMut() *T {
	if c.borrowed {
		panic("borrowcell: GetMut with outstanding borrow")
	}
	return &c.value
}
