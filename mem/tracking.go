package mem

import (
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Tracking wraps an Allocator and records every live allocation together
// with the caller that made it, so tests can assert that everything handed
// out was freed:
//
//	alloc := mem.NewTracking(mem.NewSliceAllocator())
//	defer alloc.AssertFreed(t)
type Tracking struct {
	mem Allocator
	sz  int64

	live sync.Map
}

func NewTracking(mem Allocator) *Tracking {
	return &Tracking{mem: mem}
}

// CurrentAlloc reports the number of bytes currently handed out.
func (a *Tracking) CurrentAlloc() int { return int(atomic.LoadInt64(&a.sz)) }

func (a *Tracking) Allocate(size, alignment int) []byte {
	atomic.AddInt64(&a.sz, int64(size))
	out := a.mem.Allocate(size, alignment)
	if size == 0 {
		return out
	}

	ptr := uintptr(unsafe.Pointer(&out[0]))
	if pc, _, l, ok := runtime.Caller(1); ok {
		a.live.Store(ptr, &liveAlloc{pc: pc, line: l, sz: size})
	}
	return out
}

func (a *Tracking) Free(b []byte) {
	atomic.AddInt64(&a.sz, int64(len(b)*-1))
	defer a.mem.Free(b)

	if len(b) == 0 {
		return
	}

	ptr := uintptr(unsafe.Pointer(&b[0]))
	a.live.Delete(ptr)
}

type liveAlloc struct {
	pc   uintptr
	line int
	sz   int
}

// TestingT is the subset of testing.T that AssertFreed needs.
type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// AssertFreed reports an error on t for every allocation that was never
// freed, naming the call site that made it.
func (a *Tracking) AssertFreed(t TestingT) {
	a.live.Range(func(_, value interface{}) bool {
		info := value.(*liveAlloc)
		f := runtime.FuncForPC(info.pc)
		t.Errorf("LEAK of %d bytes FROM %s line %d\n", info.sz, f.Name(), info.line)
		return true
	})

	if sz := atomic.LoadInt64(&a.sz); sz != 0 {
		t.Helper()
		t.Errorf("%d bytes still allocated", sz)
	}
}

var (
	_ Allocator = (*SliceAllocator)(nil)
	_ Allocator = (*Tracking)(nil)
)
