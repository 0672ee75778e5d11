// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build singlethread

// Serial (permissive) mode selection.
//
// Compiled only with -tags singlethread. Every maybesync value in this mode
// must stay on the goroutine that created it; nothing here checks that at
// run time.

package maybesync

// ThreadSafe is false when the facade is backed by plain single-goroutine
// cells and the capability markers are satisfied by every type.
const ThreadSafe = false

// ModeName identifies the active build mode ("parallel" or "singlethread").
const ModeName = "singlethread"
