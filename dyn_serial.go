// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build singlethread

// Permissive capability asserts.
//
// In the singlethread build the asserts accept every value: the guarantees
// they stand for are vacuously true when only one goroutine exists.

package maybesync

// RequireTransferable returns v unchanged after asserting the transfer
// capability required by the active build mode.
//
// In a parallel build it panics unless the dynamic value implements
// [Transferable]. In a singlethread build it is a no-op.
//
//	pool.submit(maybesync.RequireTransferable(job))
func RequireTransferable[I any](v I) I { return v }

// RequireShareable returns v unchanged after asserting the share capability
// required by the active build mode. See [RequireTransferable].
func RequireShareable[I any](v I) I { return v }

// RequireConcurrent returns v unchanged after asserting both capabilities
// required by the active build mode. See [RequireTransferable].
func RequireConcurrent[I any](v I) I { return v }
