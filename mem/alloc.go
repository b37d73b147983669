// Package mem provides aligned buffer allocation on top of the Go heap.
//
// Go's allocator gives no alignment control beyond a type's natural
// alignment, so an aligned buffer is carved out of a deliberately
// over-allocated slice: allocate size+alignment bytes, then shift the slice
// start forward to the first aligned address. The backing array stays alive
// through the returned slice.
package mem

import (
	"unsafe"

	"github.com/JohnCGriffin/overflow"
	"golang.org/x/sys/cpu"

	"github.com/ospack/utility/align"
	"github.com/ospack/utility/internal/debug"
)

// CacheLine is the cache-line size of the target architecture in bytes.
const CacheLine = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// Allocator hands out byte buffers whose first byte sits on the requested
// power-of-two boundary.
type Allocator interface {
	Allocate(size, alignment int) []byte
	Free(b []byte)
}

// DefaultAllocator is a default implementation of Allocator and can be used
// anywhere an Allocator is required.
//
// DefaultAllocator is safe to use from multiple goroutines.
var DefaultAllocator Allocator = NewSliceAllocator()

// SliceAllocator allocates aligned buffers from the Go heap. Free is a
// no-op; the garbage collector reclaims the backing array once the buffer
// is unreachable.
type SliceAllocator struct{}

func NewSliceAllocator() *SliceAllocator { return &SliceAllocator{} }

func (a *SliceAllocator) Allocate(size, alignment int) []byte {
	debug.Assert(align.IsPowerOfTwo(uint64(alignment)), "mem: alignment not a power of two")

	padded, ok := overflow.Add(size, alignment)
	if !ok {
		panic("mem: allocation size overflows int")
	}
	buf := make([]byte, padded) // padding to find an aligned offset
	addr := addressOf(buf)
	shift := int(align.Up(addr, uintptr(alignment)) - addr)
	return buf[shift : size+shift : size+shift]
}

func (a *SliceAllocator) Free(b []byte) {}

// AllocAligned returns a buffer of size bytes starting on an alignment
// boundary, using the DefaultAllocator.
func AllocAligned(size, alignment int) []byte {
	return DefaultAllocator.Allocate(size, alignment)
}

// AllocCacheLine returns a buffer of size bytes starting on a cache-line
// boundary.
func AllocCacheLine(size int) []byte {
	return AllocAligned(size, CacheLine)
}

// SliceOf views the n elements starting at p as a slice, without copying.
// p must point into an allocation holding at least n elements.
func SliceOf[T any](p *T, n int) []T {
	return unsafe.Slice(p, n)
}

func addressOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}
