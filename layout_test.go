package maybesync_test

import (
	"testing"
	"unsafe"

	maybesync "github.com/zakarumych/maybe-sync"
)

// TestAtomicLayoutParity pins the size of every atomic wrapper to a
// constant that holds in both build modes, so structures embedding the
// wrappers keep their layout when the mode flips. Run the test with and
// without -tags singlethread to cover both sides.
func TestAtomicLayoutParity(t *testing.T) {
	var cells struct {
		b   maybesync.AtomicBool
		i8  maybesync.AtomicInt8
		i16 maybesync.AtomicInt16
		i32 maybesync.AtomicInt32
		i   maybesync.AtomicInt
		u8  maybesync.AtomicUint8
		u16 maybesync.AtomicUint16
		u32 maybesync.AtomicUint32
		u   maybesync.AtomicUint
		p   maybesync.AtomicPointer[int]
	}

	tests := []struct {
		name string
		size uintptr
		want uintptr
	}{
		{"AtomicBool", unsafe.Sizeof(cells.b), 4},
		{"AtomicInt8", unsafe.Sizeof(cells.i8), 4},
		{"AtomicInt16", unsafe.Sizeof(cells.i16), 4},
		{"AtomicInt32", unsafe.Sizeof(cells.i32), 4},
		{"AtomicInt", unsafe.Sizeof(cells.i), 8},
		{"AtomicUint8", unsafe.Sizeof(cells.u8), 4},
		{"AtomicUint16", unsafe.Sizeof(cells.u16), 4},
		{"AtomicUint32", unsafe.Sizeof(cells.u32), 4},
		{"AtomicUint", unsafe.Sizeof(cells.u), 8},
		{"AtomicPointer", unsafe.Sizeof(cells.p), unsafe.Sizeof(uintptr(0))},
	}

	for _, tt := range tests {
		if tt.size != tt.want {
			t.Errorf("%s size = %d, want %d", tt.name, tt.size, tt.want)
		}
	}
}

// TestAtomicAlignmentParity pins the alignment of the 32-bit-cell wrappers.
// The 64-bit cells are excluded: sync/atomic guarantees 8-byte alignment
// even on 32-bit platforms where a plain int64 aligns to 4, and the facade
// does not paper over that difference.
func TestAtomicAlignmentParity(t *testing.T) {
	var cells struct {
		b   maybesync.AtomicBool
		i8  maybesync.AtomicInt8
		i16 maybesync.AtomicInt16
		i32 maybesync.AtomicInt32
		u8  maybesync.AtomicUint8
		u16 maybesync.AtomicUint16
		u32 maybesync.AtomicUint32
	}

	tests := []struct {
		name  string
		align uintptr
	}{
		{"AtomicBool", unsafe.Alignof(cells.b)},
		{"AtomicInt8", unsafe.Alignof(cells.i8)},
		{"AtomicInt16", unsafe.Alignof(cells.i16)},
		{"AtomicInt32", unsafe.Alignof(cells.i32)},
		{"AtomicUint8", unsafe.Alignof(cells.u8)},
		{"AtomicUint16", unsafe.Alignof(cells.u16)},
		{"AtomicUint32", unsafe.Alignof(cells.u32)},
	}

	for _, tt := range tests {
		if tt.align != 4 {
			t.Errorf("%s alignment = %d, want 4", tt.name, tt.align)
		}
	}
}
