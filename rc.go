//go:build !noalloc

package maybesync

import "github.com/zakarumych/maybe-sync/internal/refcount"

// Rc is a reference-counted owner handle: copy-to-share, release-to-drop.
//
// All handles obtained through [Rc.Clone] point at one shared payload. The
// payload lives until the last handle is released, at which point the drop
// hook passed to [NewRcDrop], if any, runs exactly once.
//
// The count is atomic in a parallel build, so Clone and Release may be
// called concurrently on handles to the same payload. In a singlethread
// build the count is plain and concurrent use is undefined; that build
// exists precisely because the program guarantees it cannot happen.
//
// Rc is a handle value, not the payload: copy it only through Clone, and
// treat a handle as dead after Release. Misuse of a dead handle panics.
type Rc[T any] struct {
	box *rcBox[T]
}

type rcBox[T any] struct {
	value T
	drop  func(*T)
	refs  refcount.Count
}

// NewRc returns a handle owning value with a count of one.
func NewRc[T any](value T) Rc[T] {
	return NewRcDrop[T](value, nil)
}

// NewRcDrop returns a handle owning value with a count of one. When the
// last handle is released, drop is called with the payload before it
// becomes unreachable. A nil drop is allowed.
func NewRcDrop[T any](value T, drop func(*T)) Rc[T] {
	box := &rcBox[T]{value: value, drop: drop}
	box.refs.Incr()
	return Rc[T]{box: box}
}

// Clone returns a new handle sharing the payload and increments the count.
func (r Rc[T]) Clone() Rc[T] {
	r.check()
	r.box.refs.Incr()
	return Rc[T]{box: r.box}
}

// Get returns the shared payload.
//
// The payload is shared by every outstanding handle; mutating it is only
// safe if T provides its own interior mutability (for example, if T is a
// [Mutex]).
func (r Rc[T]) Get() *T {
	r.check()
	return &r.box.value
}

// RefCount returns the number of live handles sharing the payload.
//
// In a parallel build the value is a snapshot and may be stale by the time
// it is observed.
func (r Rc[T]) RefCount() int64 {
	r.check()
	return r.box.refs.Load()
}

// Release drops this handle and invalidates it. When the count reaches
// zero, the drop hook runs and the payload is unreachable afterwards.
func (r *Rc[T]) Release() {
	r.check()
	box := r.box
	r.box = nil
	if box.refs.Decr() == 0 {
		if box.drop != nil {
			box.drop(&box.value)
		}
	}
}

func (r Rc[T]) check() {
	if r.box == nil {
		panic("maybesync: use of released Rc")
	}
}
