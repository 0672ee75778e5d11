// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build singlethread

package refcount

// Count is a reference counter. In the singlethread build updates are plain
// non-atomic read-modify-write; the count must only ever be touched from
// one goroutine.
//
// The zero Count is valid and holds zero.
type Count struct {
	n int64
}

// Incr increments the count and returns the new value.
func (c *Count) Incr() int64 {
	c.n++
	return c.n
}

// Decr decrements the count and returns the new value.
//
// The caller owning the reference being dropped is what keeps the count
// above zero until this call; Decr itself does not check for underflow.
func (c *Count) Decr() int64 {
	c.n--
	return c.n
}

// Load returns the current count.
func (c *Count) Load() int64 {
	return c.n
}
