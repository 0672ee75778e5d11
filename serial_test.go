//go:build singlethread

package maybesync_test

import (
	"testing"

	maybesync "github.com/zakarumych/maybe-sync"
)

// Compile-time: in a permissive build the marker bounds accept any type.
var (
	_ maybesync.MaybeTransferable = 0
	_ maybesync.MaybeShareable    = "s"
	_ maybesync.MaybeConcurrent   = []int(nil)

	_ = maybesync.CheckTransferable[int]
	_ = maybesync.CheckShareable[map[string]int]
	_ = maybesync.CheckConcurrent[chan int]
)

// TestRequireIsVacuous tests that the dynamic asserts pass plain values
// untouched in a permissive build.
func TestRequireIsVacuous(t *testing.T) {
	if got := maybesync.RequireTransferable(42); got != 42 {
		t.Errorf("RequireTransferable returned %d, want 42", got)
	}
	if got := maybesync.RequireShareable("s"); got != "s" {
		t.Errorf("RequireShareable returned %q, want %q", got, "s")
	}
	if got := maybesync.RequireConcurrent(true); got != true {
		t.Errorf("RequireConcurrent returned %v, want true", got)
	}
}

// TestReentrantLockPanics tests that the borrow-checked mutex rejects a
// second lock on the same goroutine instead of deadlocking.
func TestReentrantLockPanics(t *testing.T) {
	m := maybesync.NewMutex(0)
	g := m.Lock()
	defer g.Unlock()

	defer func() {
		if recover() == nil {
			t.Fatal("reentrant Lock did not panic")
		}
	}()
	m.Lock()
}

// TestGetMutWhileLockedPanics tests that the no-lock access path refuses
// to alias an outstanding guard.
func TestGetMutWhileLockedPanics(t *testing.T) {
	m := maybesync.NewMutex(0)
	g := m.Lock()
	defer g.Unlock()

	defer func() {
		if recover() == nil {
			t.Fatal("GetMut with an outstanding guard did not panic")
		}
	}()
	m.GetMut()
}
