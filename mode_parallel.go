// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !singlethread

// Parallel (enforcing) mode selection.
//
// This file is compiled by default. Its twin mode_serial.go is compiled
// instead when the singlethread build tag is set. Both declare the same
// exported names; exactly one of the two is ever part of a build.

package maybesync

// ThreadSafe is true when the facade is backed by real synchronization
// primitives and the capability markers are real interface bounds.
const ThreadSafe = true

// ModeName identifies the active build mode ("parallel" or "singlethread").
const ModeName = "parallel"
