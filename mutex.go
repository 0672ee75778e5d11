package maybesync

// Guard is the scoped handle returned by a successful [Mutex.Lock] or
// [Mutex.TryLock]. It grants exclusive access to the payload until Unlock
// is called. Release the guard on every exit path:
//
//	g := m.Lock()
//	defer g.Unlock()
//	*g.Get() += 1
//
// A Guard must stay on the goroutine that acquired it. Using a guard after
// Unlock, or unlocking twice, panics in both build modes.
type Guard[T any] struct {
	m *Mutex[T]
}

// Get returns the payload guarded by g.
//
// The returned pointer must not outlive the guard: after Unlock the payload
// belongs to the next lock holder.
func (g *Guard[T]) Get() *T {
	if g.m == nil {
		panic("maybesync: Guard.Get after Unlock")
	}
	return g.m.payload()
}

// Unlock releases the exclusivity held by g. The guard is dead afterwards.
func (g *Guard[T]) Unlock() {
	if g.m == nil {
		panic("maybesync: Guard.Unlock of released guard")
	}
	m := g.m
	g.m = nil
	m.unlock()
}
