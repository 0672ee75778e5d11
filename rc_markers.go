// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !singlethread && !noalloc

// Capability declarations for the parallel-mode Rc. The count is atomic in
// this build, so handles may cross goroutines and clones may race. The
// singlethread variant declares nothing: its plain count must stay on one
// goroutine, and the vacuous markers cover it in that build.

package maybesync

// Transferable declares the transfer capability for the parallel-mode Rc.
// Valid when T itself may cross goroutines; see [Transferable] for the
// caller obligation Go cannot express conditionally.
func (Rc[T]) Transferable() {}

// Shareable declares the share capability for the parallel-mode Rc. Same
// caveat as [Rc.Transferable].
func (Rc[T]) Shareable() {}
