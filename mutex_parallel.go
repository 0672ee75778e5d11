// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !singlethread && !deadlock

// Parallel-mode mutex backed by sync.Mutex.
//
// Twins of this file:
//   - mutex_deadlock.go: parallel mode with -tags deadlock, backed by
//     go-deadlock for development builds.
//   - mutex_serial.go: singlethread mode, backed by an exclusive-borrow
//     cell.

package maybesync

import "sync"

// DeadlockEnabled is true when the mutex facade is backed by the deadlock
// detector (-tags deadlock).
const DeadlockEnabled = false

// Mutex is a mutual-exclusion wrapper owning its payload. The payload is
// reachable only through [Mutex.Lock], [Mutex.TryLock] and [Mutex.GetMut].
//
// In the parallel build Lock blocks on a real lock and reentrant locking
// from the same goroutine deadlocks. In the singlethread build Lock never
// suspends and reentrant locking panics with a double-borrow failure. The
// asymmetry is deliberate: each mode surfaces the natural failure of its
// backing primitive.
type Mutex[T any] struct {
	mu    sync.Mutex
	value T
}

// NewMutex returns an unlocked mutex owning value.
func NewMutex[T any](value T) *Mutex[T] {
	return &Mutex[T]{value: value}
}

// Lock acquires the mutex, blocking the calling goroutine until it is free,
// and returns the guard over the payload.
//
// Locking a mutex already held by the calling goroutine deadlocks.
func (m *Mutex[T]) Lock() *Guard[T] {
	m.mu.Lock()
	return &Guard[T]{m: m}
}

// TryLock acquires the mutex if it is free. It returns (nil, false) when
// the mutex is currently held and never blocks.
func (m *Mutex[T]) TryLock() (*Guard[T], bool) {
	if !m.mu.TryLock() {
		return nil, false
	}
	return &Guard[T]{m: m}, true
}

// GetMut returns the payload directly, without locking.
//
// The caller must own the mutex exclusively: no other reference to it may
// exist anywhere. Exclusive ownership statically precludes concurrent
// access, so no locking overhead is paid. The parallel build cannot verify
// this; the singlethread build panics if a borrow is outstanding.
func (m *Mutex[T]) GetMut() *T {
	return &m.value
}

func (m *Mutex[T]) unlock() {
	m.mu.Unlock()
}

func (m *Mutex[T]) payload() *T {
	return &m.value
}
