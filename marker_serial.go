// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build singlethread

// Permissive marker aliases.
//
// In the singlethread build the Maybe* markers alias any: every type
// satisfies them vacuously, because no value is ever handed to a second
// goroutine in this mode. The set of types satisfying the real capability
// interfaces is always a subset of these, so flipping the tag can only
// tighten bounds, never loosen code that compiled under the parallel build.

package maybesync

type (
	// MaybeTransferable is [Transferable] in a parallel build and any in a
	// singlethread build. Use it in bounds that need the transfer guarantee
	// only when the program is compiled for multiple goroutines.
	MaybeTransferable = any

	// MaybeShareable is [Shareable] in a parallel build and any in a
	// singlethread build.
	MaybeShareable = any

	// MaybeConcurrent is [Concurrent] in a parallel build and any in a
	// singlethread build.
	MaybeConcurrent = any
)
