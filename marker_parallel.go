// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !singlethread

// Enforcing marker aliases.
//
// In the parallel build the Maybe* markers are the real capability
// interfaces. A type satisfies the bound only if it declares the capability.

package maybesync

type (
	// MaybeTransferable is [Transferable] in a parallel build and any in a
	// singlethread build. Use it in bounds that need the transfer guarantee
	// only when the program is compiled for multiple goroutines.
	MaybeTransferable = Transferable

	// MaybeShareable is [Shareable] in a parallel build and any in a
	// singlethread build.
	MaybeShareable = Shareable

	// MaybeConcurrent is [Concurrent] in a parallel build and any in a
	// singlethread build.
	MaybeConcurrent = Concurrent
)
