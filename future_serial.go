// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build singlethread && !noalloc

package maybesync

import "context"

// Future is an owned, dynamically typed, one-shot deferred computation
// producing a T.
//
// In the parallel build the interface additionally requires [Transferable],
// so a Future may be handed to a worker pool and driven on any goroutine.
// In the singlethread build it requires no capability and may only be
// driven on the goroutine that created it.
//
// A Future is driven to completion at most once; see [NewFuture].
type Future[T any] interface {
	// Await drives the computation to completion and returns its result.
	Await(ctx context.Context) (T, error)
}
