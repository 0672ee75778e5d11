// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build noalloc

package maybesync

// AllocEnabled is true when the allocating facade surface (Rc, Future) is
// part of the build. Building with -tags noalloc removes it.
const AllocEnabled = false
