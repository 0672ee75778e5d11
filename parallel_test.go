//go:build !singlethread

package maybesync_test

import (
	"strings"
	"sync"
	"testing"

	maybesync "github.com/zakarumych/maybe-sync"
)

// TestRequirePanicsOnPlainValue tests that the dynamic asserts reject
// values without the real capabilities in an enforcing build.
func TestRequirePanicsOnPlainValue(t *testing.T) {
	tests := []struct {
		name string
		call func()
		want string
	}{
		{
			name: "Transferable",
			call: func() { maybesync.RequireTransferable(42) },
			want: "Transferable",
		},
		{
			name: "Shareable",
			call: func() { maybesync.RequireShareable("s") },
			want: "Shareable",
		},
		{
			name: "Concurrent",
			call: func() { maybesync.RequireConcurrent([]int{1}) },
			want: "Transferable and Shareable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("no panic for a value without the capability")
				}
				msg, ok := r.(string)
				if !ok || !strings.Contains(msg, tt.want) {
					t.Fatalf("panic = %v, want mention of %q", r, tt.want)
				}
			}()
			tt.call()
		})
	}
}

// TestMutexContention hammers one mutex from several goroutines and
// checks that no increment is lost.
func TestMutexContention(t *testing.T) {
	const (
		workers    = 8
		iterations = 1000
	)

	m := maybesync.NewMutex(0)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for range iterations {
				g := m.Lock()
				*g.Get()++
				g.Unlock()
			}
		}()
	}
	wg.Wait()

	if got := *m.GetMut(); got != workers*iterations {
		t.Fatalf("counter = %d, want %d", got, workers*iterations)
	}
}

// TestTryLockAcrossGoroutines tests that a guard held on one goroutine
// makes TryLock fail on another.
func TestTryLockAcrossGoroutines(t *testing.T) {
	m := maybesync.NewMutex(0)
	g := m.Lock()

	res := make(chan bool)
	go func() {
		_, ok := m.TryLock()
		res <- ok
	}()
	if <-res {
		t.Fatal("TryLock succeeded on another goroutine while the guard is held")
	}
	g.Unlock()

	go func() {
		g2, ok := m.TryLock()
		if ok {
			g2.Unlock()
		}
		res <- ok
	}()
	if !<-res {
		t.Fatal("TryLock failed after the guard was released")
	}
}
