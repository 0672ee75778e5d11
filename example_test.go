//go:build !noalloc

package maybesync_test

import (
	"context"
	"fmt"

	maybesync "github.com/zakarumych/maybe-sync"
)

// Example demonstrates guarding a payload with the mutex facade.
// The same code runs under both build modes.
func Example() {
	m := maybesync.NewMutex(41)

	g := m.Lock()
	*g.Get()++
	g.Unlock()

	fmt.Println(*m.GetMut())

	// Output:
	// 42
}

// Example_sharedHandle demonstrates reference-counted sharing with a
// drop hook that fires when the last handle goes away.
func Example_sharedHandle() {
	r := maybesync.NewRcDrop("payload", func(v *string) {
		fmt.Println("dropped", *v)
	})

	c := r.Clone()
	fmt.Println(*c.Get())

	c.Release()
	r.Release()

	// Output:
	// payload
	// dropped payload
}

// Example_future demonstrates a single-shot deferred computation.
func Example_future() {
	fut := maybesync.NewFuture(func(context.Context) (int, error) {
		return 6 * 7, nil
	})

	v, err := fut.Await(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	// Output:
	// 42
}
