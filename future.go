//go:build !noalloc

package maybesync

import (
	"context"
	"errors"
)

// ErrFutureConsumed is returned by Await when the future has already been
// driven to completion. A future is one-shot; holding on to it past the
// first Await is a contract violation of the caller, surfaced as an error
// rather than a panic because executors commonly reach it from ordinary
// control flow.
var ErrFutureConsumed = errors.New("maybesync: future already driven to completion")

// NewFuture wraps an existing deferred computation as a [Future].
//
// Constructing a future in a parallel build asserts that fn and everything
// it closes over may be handed to another goroutine. The wrapper declares
// [Transferable] on the caller's behalf; it cannot verify the closure. This
// is the same obligation documented on [Transferable].
//
// The returned future runs fn on the first Await and returns
// [ErrFutureConsumed] from every subsequent Await.
func NewFuture[T any](fn func(ctx context.Context) (T, error)) Future[T] {
	return &futureFunc[T]{fn: fn}
}

// Ready returns a future that is already resolved to value.
func Ready[T any](value T) Future[T] {
	return NewFuture(func(context.Context) (T, error) {
		return value, nil
	})
}

// futureFunc adapts a function to the Future interface. The one-shot latch
// is the facade's own AtomicBool: a real atomic in a parallel build, a
// plain cell in a singlethread build.
type futureFunc[T any] struct {
	fn   func(ctx context.Context) (T, error)
	done AtomicBool
}

func (f *futureFunc[T]) Await(ctx context.Context) (T, error) {
	if f.done.Swap(true) {
		var zero T
		return zero, ErrFutureConsumed
	}
	return f.fn(ctx)
}

// Transferable declares the transfer capability asserted by [NewFuture].
func (f *futureFunc[T]) Transferable() {}
