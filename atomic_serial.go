// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build singlethread

// Singlethread-mode atomic scalar family.
//
// Every type here mirrors the exported method set and the cell width of its
// parallel twin in atomic_parallel.go, but the operations are ordinary
// non-synchronized reads and writes. A structure embedding these wrappers
// has the same size in both modes.
//
// The noCopy fields mirror the copy protection of sync/atomic: go vet's
// copylocks check flags wrappers that are copied after first use in either
// mode.

package maybesync

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// AtomicBool is a boolean cell. Atomic in a parallel build, plain in a
// singlethread build. Same in-memory representation as a uint32.
type AtomicBool struct {
	_ noCopy
	v uint32
}

func b32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Load returns the held value.
func (x *AtomicBool) Load() bool { return x.v != 0 }

// Store sets the held value.
func (x *AtomicBool) Store(val bool) { x.v = b32(val) }

// Swap stores new and returns the previous value.
func (x *AtomicBool) Swap(new bool) bool {
	old := x.v != 0
	x.v = b32(new)
	return old
}

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicBool) CompareAndSwap(old, new bool) bool {
	if x.v != b32(old) {
		return false
	}
	x.v = b32(new)
	return true
}

// AtomicInt8 is an 8-bit signed integer cell. Atomic in a parallel build,
// plain in a singlethread build.
//
// The cell is 32 bits wide in both modes (Go has no sub-word atomics); the
// held value always fits int8 and Add wraps at 8 bits.
type AtomicInt8 struct {
	_ noCopy
	v int32
}

// Load returns the held value.
func (x *AtomicInt8) Load() int8 { return int8(x.v) }

// Store sets the held value.
func (x *AtomicInt8) Store(val int8) { x.v = int32(val) }

// Swap stores new and returns the previous value.
func (x *AtomicInt8) Swap(new int8) int8 {
	old := int8(x.v)
	x.v = int32(new)
	return old
}

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicInt8) CompareAndSwap(old, new int8) bool {
	if x.v != int32(old) {
		return false
	}
	x.v = int32(new)
	return true
}

// Add adds delta and returns the new value, wrapping at 8 bits.
func (x *AtomicInt8) Add(delta int8) int8 {
	new := int8(x.v) + delta
	x.v = int32(new)
	return new
}

// AtomicInt16 is a 16-bit signed integer cell. Atomic in a parallel build,
// plain in a singlethread build.
//
// The cell is 32 bits wide in both modes; Add wraps at 16 bits.
type AtomicInt16 struct {
	_ noCopy
	v int32
}

// Load returns the held value.
func (x *AtomicInt16) Load() int16 { return int16(x.v) }

// Store sets the held value.
func (x *AtomicInt16) Store(val int16) { x.v = int32(val) }

// Swap stores new and returns the previous value.
func (x *AtomicInt16) Swap(new int16) int16 {
	old := int16(x.v)
	x.v = int32(new)
	return old
}

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicInt16) CompareAndSwap(old, new int16) bool {
	if x.v != int32(old) {
		return false
	}
	x.v = int32(new)
	return true
}

// Add adds delta and returns the new value, wrapping at 16 bits.
func (x *AtomicInt16) Add(delta int16) int16 {
	new := int16(x.v) + delta
	x.v = int32(new)
	return new
}

// AtomicInt32 is a 32-bit signed integer cell. Atomic in a parallel build,
// plain in a singlethread build.
type AtomicInt32 struct {
	_ noCopy
	v int32
}

// Load returns the held value.
func (x *AtomicInt32) Load() int32 { return x.v }

// Store sets the held value.
func (x *AtomicInt32) Store(val int32) { x.v = val }

// Swap stores new and returns the previous value.
func (x *AtomicInt32) Swap(new int32) int32 {
	old := x.v
	x.v = new
	return old
}

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicInt32) CompareAndSwap(old, new int32) bool {
	if x.v != old {
		return false
	}
	x.v = new
	return true
}

// Add adds delta and returns the new value.
func (x *AtomicInt32) Add(delta int32) int32 {
	x.v += delta
	return x.v
}

// And performs a bitwise AND with mask and returns the old value.
func (x *AtomicInt32) And(mask int32) int32 {
	old := x.v
	x.v &= mask
	return old
}

// Or performs a bitwise OR with mask and returns the old value.
func (x *AtomicInt32) Or(mask int32) int32 {
	old := x.v
	x.v |= mask
	return old
}

// AtomicInt is a 64-bit signed integer cell covering the native int range.
// Atomic in a parallel build, plain in a singlethread build.
type AtomicInt struct {
	_ noCopy
	v int64
}

// Load returns the held value.
func (x *AtomicInt) Load() int64 { return x.v }

// Store sets the held value.
func (x *AtomicInt) Store(val int64) { x.v = val }

// Swap stores new and returns the previous value.
func (x *AtomicInt) Swap(new int64) int64 {
	old := x.v
	x.v = new
	return old
}

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicInt) CompareAndSwap(old, new int64) bool {
	if x.v != old {
		return false
	}
	x.v = new
	return true
}

// Add adds delta and returns the new value.
func (x *AtomicInt) Add(delta int64) int64 {
	x.v += delta
	return x.v
}

// And performs a bitwise AND with mask and returns the old value.
func (x *AtomicInt) And(mask int64) int64 {
	old := x.v
	x.v &= mask
	return old
}

// Or performs a bitwise OR with mask and returns the old value.
func (x *AtomicInt) Or(mask int64) int64 {
	old := x.v
	x.v |= mask
	return old
}

// AtomicUint8 is an 8-bit unsigned integer cell. Atomic in a parallel
// build, plain in a singlethread build.
//
// The cell is 32 bits wide in both modes; Add wraps at 8 bits.
type AtomicUint8 struct {
	_ noCopy
	v uint32
}

// Load returns the held value.
func (x *AtomicUint8) Load() uint8 { return uint8(x.v) }

// Store sets the held value.
func (x *AtomicUint8) Store(val uint8) { x.v = uint32(val) }

// Swap stores new and returns the previous value.
func (x *AtomicUint8) Swap(new uint8) uint8 {
	old := uint8(x.v)
	x.v = uint32(new)
	return old
}

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicUint8) CompareAndSwap(old, new uint8) bool {
	if x.v != uint32(old) {
		return false
	}
	x.v = uint32(new)
	return true
}

// Add adds delta and returns the new value, wrapping at 8 bits.
func (x *AtomicUint8) Add(delta uint8) uint8 {
	new := uint8(x.v) + delta
	x.v = uint32(new)
	return new
}

// AtomicUint16 is a 16-bit unsigned integer cell. Atomic in a parallel
// build, plain in a singlethread build.
//
// The cell is 32 bits wide in both modes; Add wraps at 16 bits.
type AtomicUint16 struct {
	_ noCopy
	v uint32
}

// Load returns the held value.
func (x *AtomicUint16) Load() uint16 { return uint16(x.v) }

// Store sets the held value.
func (x *AtomicUint16) Store(val uint16) { x.v = uint32(val) }

// Swap stores new and returns the previous value.
func (x *AtomicUint16) Swap(new uint16) uint16 {
	old := uint16(x.v)
	x.v = uint32(new)
	return old
}

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicUint16) CompareAndSwap(old, new uint16) bool {
	if x.v != uint32(old) {
		return false
	}
	x.v = uint32(new)
	return true
}

// Add adds delta and returns the new value, wrapping at 16 bits.
func (x *AtomicUint16) Add(delta uint16) uint16 {
	new := uint16(x.v) + delta
	x.v = uint32(new)
	return new
}

// AtomicUint32 is a 32-bit unsigned integer cell. Atomic in a parallel
// build, plain in a singlethread build.
type AtomicUint32 struct {
	_ noCopy
	v uint32
}

// Load returns the held value.
func (x *AtomicUint32) Load() uint32 { return x.v }

// Store sets the held value.
func (x *AtomicUint32) Store(val uint32) { x.v = val }

// Swap stores new and returns the previous value.
func (x *AtomicUint32) Swap(new uint32) uint32 {
	old := x.v
	x.v = new
	return old
}

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicUint32) CompareAndSwap(old, new uint32) bool {
	if x.v != old {
		return false
	}
	x.v = new
	return true
}

// Add adds delta and returns the new value.
func (x *AtomicUint32) Add(delta uint32) uint32 {
	x.v += delta
	return x.v
}

// And performs a bitwise AND with mask and returns the old value.
func (x *AtomicUint32) And(mask uint32) uint32 {
	old := x.v
	x.v &= mask
	return old
}

// Or performs a bitwise OR with mask and returns the old value.
func (x *AtomicUint32) Or(mask uint32) uint32 {
	old := x.v
	x.v |= mask
	return old
}

// AtomicUint is a 64-bit unsigned integer cell covering the native uint
// range. Atomic in a parallel build, plain in a singlethread build.
type AtomicUint struct {
	_ noCopy
	v uint64
}

// Load returns the held value.
func (x *AtomicUint) Load() uint64 { return x.v }

// Store sets the held value.
func (x *AtomicUint) Store(val uint64) { x.v = val }

// Swap stores new and returns the previous value.
func (x *AtomicUint) Swap(new uint64) uint64 {
	old := x.v
	x.v = new
	return old
}

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicUint) CompareAndSwap(old, new uint64) bool {
	if x.v != old {
		return false
	}
	x.v = new
	return true
}

// Add adds delta and returns the new value.
func (x *AtomicUint) Add(delta uint64) uint64 {
	x.v += delta
	return x.v
}

// And performs a bitwise AND with mask and returns the old value.
func (x *AtomicUint) And(mask uint64) uint64 {
	old := x.v
	x.v &= mask
	return old
}

// Or performs a bitwise OR with mask and returns the old value.
func (x *AtomicUint) Or(mask uint64) uint64 {
	old := x.v
	x.v |= mask
	return old
}

// AtomicPointer is a typed pointer cell. Atomic in a parallel build, plain
// in a singlethread build. Same in-memory representation as a *T.
type AtomicPointer[T any] struct {
	_ noCopy
	v *T
}

// Load returns the held pointer.
func (x *AtomicPointer[T]) Load() *T { return x.v }

// Store sets the held pointer.
func (x *AtomicPointer[T]) Store(val *T) { x.v = val }

// Swap stores new and returns the previous pointer.
func (x *AtomicPointer[T]) Swap(new *T) *T {
	old := x.v
	x.v = new
	return old
}

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicPointer[T]) CompareAndSwap(old, new *T) bool {
	if x.v != old {
		return false
	}
	x.v = new
	return true
}
