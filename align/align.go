// Package align rounds integers and addresses to power-of-two boundaries
// using mask arithmetic. The alignment argument of every function must be a
// power of two: the masks assume alignment-1 is an all-ones low-bit pattern,
// and a non-power-of-two silently produces a wrong result. Callers can check
// with IsPowerOfTwo; builds with the assert tag check it on every call.
package align

import (
	"math/bits"
	"unsafe"

	"github.com/ospack/utility/internal/debug"
	"github.com/ospack/utility/typeutil"
)

// Down rounds x down to the nearest multiple of alignment.
func Down[T typeutil.Integer](x, alignment T) T {
	debug.Assert(IsPowerOfTwo(uint64(alignment)), "align: alignment not a power of two")
	return x &^ (alignment - 1)
}

// Up rounds x up to the nearest multiple of alignment. Overflows when
// x + alignment - 1 exceeds the range of T.
func Up[T typeutil.Integer](x, alignment T) T {
	return Down(x+alignment-1, alignment)
}

// Pointer rounds p up to the next alignment boundary. The result must still
// land within the allocation p points into; the usual pattern is rounding
// into a buffer that was over-allocated by alignment-1 bytes.
func Pointer[T any](p *T, alignment uintptr) *T {
	pad := Up(uintptr(unsafe.Pointer(p)), alignment) - uintptr(unsafe.Pointer(p))
	return (*T)(unsafe.Add(unsafe.Pointer(p), pad))
}

// IsPowerOfTwo reports whether x has exactly one set bit. False for zero.
func IsPowerOfTwo(x uint64) bool {
	return bits.OnesCount64(x) == 1
}
