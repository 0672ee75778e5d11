// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build singlethread

// Singlethread-mode mutex backed by an exclusive-borrow cell.
//
// No goroutine is ever suspended here: with one goroutine there is nobody
// to wait on. Lock either succeeds immediately or panics because a guard
// from a previous lock on the same instance is still outstanding. That
// panic replaces the deadlock the parallel build would exhibit for the same
// misuse; the two failures are intentionally not unified.

package maybesync

import "github.com/zakarumych/maybe-sync/internal/borrowcell"

// DeadlockEnabled is true when the mutex facade is backed by the deadlock
// detector (-tags deadlock). Never true in a singlethread build.
const DeadlockEnabled = false

// Mutex is a mutual-exclusion wrapper owning its payload. The payload is
// reachable only through [Mutex.Lock], [Mutex.TryLock] and [Mutex.GetMut].
//
// In the singlethread build the mutex is an exclusive-borrow cell: Lock
// never suspends and reentrant locking panics with a double-borrow failure.
type Mutex[T any] struct {
	cell borrowcell.Cell[T]
}

// NewMutex returns an unlocked mutex owning value.
func NewMutex[T any](value T) *Mutex[T] {
	return &Mutex[T]{cell: borrowcell.New(value)}
}

// Lock acquires the mutex and returns the guard over the payload.
//
// Panics if a guard on this mutex is still outstanding. Use [Mutex.TryLock]
// when overlap is expected.
func (m *Mutex[T]) Lock() *Guard[T] {
	m.cell.BorrowMut()
	return &Guard[T]{m: m}
}

// TryLock acquires the mutex if it is free. It returns (nil, false) when a
// guard is outstanding and never blocks.
func (m *Mutex[T]) TryLock() (*Guard[T], bool) {
	if !m.cell.TryBorrowMut() {
		return nil, false
	}
	return &Guard[T]{m: m}, true
}

// GetMut returns the payload directly, without locking.
//
// The caller must own the mutex exclusively. Panics if a guard is
// outstanding, which in a single-goroutine program is the only way the
// exclusivity assumption can be violated.
func (m *Mutex[T]) GetMut() *T {
	return m.cell.GetMut()
}

func (m *Mutex[T]) unlock() {
	m.cell.Release()
}

func (m *Mutex[T]) payload() *T {
	return m.cell.Value()
}
