// Copyright 2026 The maybe-sync Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !singlethread

// Parallel-mode atomic scalar family.
//
// Where the standard library provides a matching atomic type, the facade
// name is a direct alias: zero wrapper cost, sequentially consistent
// ordering. Go has no sub-word atomics, so the 8- and 16-bit members wrap a
// 32-bit atomic cell; their serial twins use a 32-bit plain cell, keeping
// size and alignment identical across modes (the property that matters for
// structures embedding these wrappers).
//
// Cell widths, identical in both modes:
//
//	Type                        Cell     Size
//	----                        ----     ----
//	AtomicBool                  uint32   4
//	AtomicInt8  / AtomicUint8   32-bit   4
//	AtomicInt16 / AtomicUint16  32-bit   4
//	AtomicInt32 / AtomicUint32  32-bit   4
//	AtomicInt   / AtomicUint    64-bit   8
//	AtomicPointer[T]            pointer  8

package maybesync

import "sync/atomic"

type (
	// AtomicBool is a boolean cell. Atomic in a parallel build, plain in a
	// singlethread build. Same in-memory representation as a uint32.
	AtomicBool = atomic.Bool

	// AtomicInt32 is a 32-bit signed integer cell. Atomic in a parallel
	// build, plain in a singlethread build.
	AtomicInt32 = atomic.Int32

	// AtomicUint32 is a 32-bit unsigned integer cell. Atomic in a parallel
	// build, plain in a singlethread build.
	AtomicUint32 = atomic.Uint32

	// AtomicInt is a 64-bit signed integer cell covering the native int
	// range. Atomic in a parallel build, plain in a singlethread build.
	AtomicInt = atomic.Int64

	// AtomicUint is a 64-bit unsigned integer cell covering the native uint
	// range. Atomic in a parallel build, plain in a singlethread build.
	AtomicUint = atomic.Uint64

	// AtomicPointer is a typed pointer cell. Atomic in a parallel build,
	// plain in a singlethread build. Same in-memory representation as a
	// *T.
	AtomicPointer[T any] = atomic.Pointer[T]
)

// AtomicInt8 is an 8-bit signed integer cell. Atomic in a parallel build,
// plain in a singlethread build.
//
// The cell is 32 bits wide in both modes (Go has no sub-word atomics); the
// held value always fits int8 and Add wraps at 8 bits.
type AtomicInt8 struct {
	v atomic.Int32
}

// Load returns the held value.
func (x *AtomicInt8) Load() int8 { return int8(x.v.Load()) }

// Store sets the held value.
func (x *AtomicInt8) Store(val int8) { x.v.Store(int32(val)) }

// Swap stores new and returns the previous value.
func (x *AtomicInt8) Swap(new int8) int8 { return int8(x.v.Swap(int32(new))) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicInt8) CompareAndSwap(old, new int8) bool {
	return x.v.CompareAndSwap(int32(old), int32(new))
}

// Add atomically adds delta and returns the new value, wrapping at 8 bits.
func (x *AtomicInt8) Add(delta int8) int8 {
	for {
		old := x.v.Load()
		new := int32(int8(old) + delta)
		if x.v.CompareAndSwap(old, new) {
			return int8(new)
		}
	}
}

// AtomicInt16 is a 16-bit signed integer cell. Atomic in a parallel build,
// plain in a singlethread build.
//
// The cell is 32 bits wide in both modes; Add wraps at 16 bits.
type AtomicInt16 struct {
	v atomic.Int32
}

// Load returns the held value.
func (x *AtomicInt16) Load() int16 { return int16(x.v.Load()) }

// Store sets the held value.
func (x *AtomicInt16) Store(val int16) { x.v.Store(int32(val)) }

// Swap stores new and returns the previous value.
func (x *AtomicInt16) Swap(new int16) int16 { return int16(x.v.Swap(int32(new))) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicInt16) CompareAndSwap(old, new int16) bool {
	return x.v.CompareAndSwap(int32(old), int32(new))
}

// Add atomically adds delta and returns the new value, wrapping at 16 bits.
func (x *AtomicInt16) Add(delta int16) int16 {
	for {
		old := x.v.Load()
		new := int32(int16(old) + delta)
		if x.v.CompareAndSwap(old, new) {
			return int16(new)
		}
	}
}

// AtomicUint8 is an 8-bit unsigned integer cell. Atomic in a parallel
// build, plain in a singlethread build.
//
// The cell is 32 bits wide in both modes; Add wraps at 8 bits.
type AtomicUint8 struct {
	v atomic.Uint32
}

// Load returns the held value.
func (x *AtomicUint8) Load() uint8 { return uint8(x.v.Load()) }

// Store sets the held value.
func (x *AtomicUint8) Store(val uint8) { x.v.Store(uint32(val)) }

// Swap stores new and returns the previous value.
func (x *AtomicUint8) Swap(new uint8) uint8 { return uint8(x.v.Swap(uint32(new))) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicUint8) CompareAndSwap(old, new uint8) bool {
	return x.v.CompareAndSwap(uint32(old), uint32(new))
}

// Add atomically adds delta and returns the new value, wrapping at 8 bits.
func (x *AtomicUint8) Add(delta uint8) uint8 {
	for {
		old := x.v.Load()
		new := uint32(uint8(old) + delta)
		if x.v.CompareAndSwap(old, new) {
			return uint8(new)
		}
	}
}

// AtomicUint16 is a 16-bit unsigned integer cell. Atomic in a parallel
// build, plain in a singlethread build.
//
// The cell is 32 bits wide in both modes; Add wraps at 16 bits.
type AtomicUint16 struct {
	v atomic.Uint32
}

// Load returns the held value.
func (x *AtomicUint16) Load() uint16 { return uint16(x.v.Load()) }

// Store sets the held value.
func (x *AtomicUint16) Store(val uint16) { x.v.Store(uint32(val)) }

// Swap stores new and returns the previous value.
func (x *AtomicUint16) Swap(new uint16) uint16 { return uint16(x.v.Swap(uint32(new))) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *AtomicUint16) CompareAndSwap(old, new uint16) bool {
	return x.v.CompareAndSwap(uint32(old), uint32(new))
}

// Add atomically adds delta and returns the new value, wrapping at 16 bits.
func (x *AtomicUint16) Add(delta uint16) uint16 {
	for {
		old := x.v.Load()
		new := uint32(uint16(old) + delta)
		if x.v.CompareAndSwap(old, new) {
			return uint16(new)
		}
	}
}
