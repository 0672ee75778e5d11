// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !singlethread && deadlock

// Parallel-mode mutex backed by go-deadlock, selected with -tags deadlock.
//
// The detector reports lock-order inversions and long lock waits to stderr
// during development builds. Semantics are otherwise identical to the
// sync.Mutex backend in mutex_parallel.go: reentrant locking still hangs
// (and is then reported rather than silently deadlocking forever).

package maybesync

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled is true when the mutex facade is backed by the deadlock
// detector (-tags deadlock).
const DeadlockEnabled = true

func init() {
	deadlock.Opts.DeadlockTimeout = 30 * time.Second
}

// Mutex is a mutual-exclusion wrapper owning its payload. The payload is
// reachable only through [Mutex.Lock], [Mutex.TryLock] and [Mutex.GetMut].
//
// This variant is compiled with -tags deadlock and backs the lock with the
// go-deadlock detector.
type Mutex[T any] struct {
	mu    deadlock.Mutex
	value T
}

// NewMutex returns an unlocked mutex owning value.
func NewMutex[T any](value T) *Mutex[T] {
	return &Mutex[T]{value: value}
}

// Lock acquires the mutex, blocking the calling goroutine until it is free,
// and returns the guard over the payload.
//
// Locking a mutex already held by the calling goroutine deadlocks; the
// detector reports it after the configured timeout.
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
// exist anywhere. See the sync.Mutex variant for the full contract.
func (m *Mutex[T]) GetMut() *T {
	return &m.value
}

func (m *Mutex[T]) unlock() {
	m.mu.Unlock()
}

func (m *Mutex[T]) payload() *T {
	return &m.value
}
