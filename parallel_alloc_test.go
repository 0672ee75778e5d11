//go:build !singlethread && !noalloc

package maybesync_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	maybesync "github.com/zakarumych/maybe-sync"
)

// TestRcConcurrentCloneRelease tests that handles cloned and released on
// many goroutines leave exactly one drop at the end.
func TestRcConcurrentCloneRelease(t *testing.T) {
	const workers = 16

	var drops atomic.Int32
	r := maybesync.NewRcDrop(0, func(*int) { drops.Add(1) })

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		c := r.Clone()
		go func() {
			defer wg.Done()
			cc := c.Clone()
			cc.Release()
			c.Release()
		}()
	}
	wg.Wait()

	if got := drops.Load(); got != 0 {
		t.Fatalf("drop hook ran %d times with a live handle", got)
	}
	r.Release()
	if got := drops.Load(); got != 1 {
		t.Fatalf("drop hook ran %d times after last release, want 1", got)
	}
}

// TestFutureAwaitedOnAnotherGoroutine tests that a future built on one
// goroutine can be driven on another, which is what its transfer
// capability promises.
func TestFutureAwaitedOnAnotherGoroutine(t *testing.T) {
	fut := maybesync.NewFuture(func(context.Context) (int, error) {
		return 42, nil
	})

	type result struct {
		v   int
		err error
	}
	res := make(chan result)
	go func() {
		v, err := maybesync.RequireTransferable[maybesync.Future[int]](fut).Await(context.Background())
		res <- result{v, err}
	}()

	got := <-res
	if got.err != nil {
		t.Fatalf("Await error: %v", got.err)
	}
	if got.v != 42 {
		t.Fatalf("Await = %d, want 42", got.v)
	}
}
