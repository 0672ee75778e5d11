// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !singlethread

// Capability declarations for the parallel-mode mutex. The singlethread
// variant is backed by a plain borrow cell and is genuinely neither
// transferable nor shareable, so it declares nothing; the vacuous markers
// cover it in that build.

package maybesync

// Transferable declares the transfer capability for the parallel-mode
// Mutex.
//
// The declaration cannot be conditioned on T the way the real guarantee is:
// moving a Mutex whose payload is itself goroutine-bound is the caller's
// misuse, exactly as documented on [Transferable].
func (m *Mutex[T]) Transferable() {}

// Shareable declares the share capability for the parallel-mode Mutex.
// Same caveat as [Mutex.Transferable]: it holds when T may cross goroutines
// along with the lock.
func (m *Mutex[T]) Shareable() {}
