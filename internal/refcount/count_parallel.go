// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !singlethread

package refcount

import "sync/atomic"

// Count is a reference counter. In the parallel build updates are atomic,
// so Incr and Decr may race from any number of goroutines.
//
// The zero Count is valid and holds zero.
type Count struct {
	n atomic.Int64
}

// Incr increments the count and returns the new value.
func (c *Count) Incr() int64 {
	return c.n.Add(1)
}

// Decr decrements the count and returns the new value.
//
// The caller owning the reference being dropped is what keeps the count
// above zero until this call; Decr itself does not check for underflow.
func (c *Count) Decr() int64 {
	return c.n.Add(-1)
}

// Load returns the current count.
func (c *Count) Load() int64 {
	return c.n.Load()
}
