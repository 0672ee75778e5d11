package maybesync_test

import (
	"testing"

	maybesync "github.com/zakarumych/maybe-sync"
)

// TestLockGuardsPayload tests that lock yields the constructed value and
// that mutations through the guard stick.
func TestLockGuardsPayload(t *testing.T) {
	m := maybesync.NewMutex(42)

	g := m.Lock()
	if got := *g.Get(); got != 42 {
		t.Fatalf("guarded payload = %d, want 42", got)
	}
	*g.Get() = 7
	g.Unlock()

	g = m.Lock()
	if got := *g.Get(); got != 7 {
		t.Fatalf("payload after relock = %d, want 7", got)
	}
	g.Unlock()
}

// TestTryLockWhileHeld tests that try-lock reports unavailable while a
// guard is outstanding and succeeds once it is released.
func TestTryLockWhileHeld(t *testing.T) {
	m := maybesync.NewMutex("payload")

	g := m.Lock()
	if _, ok := m.TryLock(); ok {
		t.Fatal("TryLock succeeded while a guard is outstanding")
	}
	g.Unlock()

	g2, ok := m.TryLock()
	if !ok {
		t.Fatal("TryLock failed after the guard was released")
	}
	if got := *g2.Get(); got != "payload" {
		t.Fatalf("payload = %q, want %q", got, "payload")
	}
	g2.Unlock()
}

// TestLockAfterRelease tests that no residual exclusivity survives an
// unlock.
func TestLockAfterRelease(t *testing.T) {
	m := maybesync.NewMutex([]int{1, 2, 3})

	m.Lock().Unlock()
	g := m.Lock()
	if got := len(*g.Get()); got != 3 {
		t.Fatalf("payload length = %d, want 3", got)
	}
	g.Unlock()
}

// TestGetMut tests the no-lock access path for exclusively owned mutexes.
func TestGetMut(t *testing.T) {
	m := maybesync.NewMutex(1)

	*m.GetMut() = 2
	if got := *m.GetMut(); got != 2 {
		t.Fatalf("GetMut payload = %d, want 2", got)
	}

	g := m.Lock()
	if got := *g.Get(); got != 2 {
		t.Fatalf("locked payload = %d, want 2", got)
	}
	g.Unlock()
}

// TestGuardDeadAfterUnlock tests that a guard cannot be used or released
// twice.
func TestGuardDeadAfterUnlock(t *testing.T) {
	tests := []struct {
		name string
		use  func(g *maybesync.Guard[int])
	}{
		{name: "Get", use: func(g *maybesync.Guard[int]) { _ = g.Get() }},
		{name: "Unlock", use: func(g *maybesync.Guard[int]) { g.Unlock() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := maybesync.NewMutex(0)
			g := m.Lock()
			g.Unlock()

			defer func() {
				if recover() == nil {
					t.Fatalf("%s on a released guard did not panic", tt.name)
				}
			}()
			tt.use(g)
		})
	}
}
