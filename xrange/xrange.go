// Package xrange produces lazy integer sequences over [begin, end) with a
// configurable step, imitating Python's xrange:
//
//	for it := xrange.Between(2, 8).Iter(); it.Next(); {
//	    use(it.Value())
//	}
//
// A Range is an immutable value: it allocates nothing, is safe to share
// read-only, and every Iter call starts a fresh traversal from begin.
package xrange

import (
	"github.com/ospack/utility/internal/debug"
	"github.com/ospack/utility/typeutil"
)

// Range describes the arithmetic progression begin, begin+step, ... stopping
// at or past end. The step is always a signed increment, even for unsigned
// element types: descending unsigned ranges advance by two's-complement
// addition.
type Range[T typeutil.Integer] struct {
	begin, end T
	step       int64
}

// New builds a range over [begin, end) advancing by step. A zero step never
// terminates; this is a precondition, checked only in debug builds.
func New[T typeutil.Integer](begin, end T, step int64) Range[T] {
	debug.Assert(step != 0, "xrange: zero step")
	return Range[T]{begin: begin, end: end, step: step}
}

// Between is shorthand for New(begin, end, 1).
func Between[T typeutil.Integer](begin, end T) Range[T] {
	return New(begin, end, 1)
}

// Of is shorthand for New(0, end, 1).
func Of[T typeutil.Integer](end T) Range[T] {
	var zero T
	return New(zero, end, 1)
}

// Begin returns the first value of the progression.
func (r Range[T]) Begin() T { return r.begin }

// End returns the exclusive bound.
func (r Range[T]) End() T { return r.end }

// Step returns the increment.
func (r Range[T]) Step() int64 { return r.step }

// past reports whether v is at or past the exclusive bound in the direction
// of travel. Comparing with at-or-past rather than equality makes ranges
// whose step skips over end terminate instead of running forever.
func (r Range[T]) past(v T) bool {
	if r.step < 0 {
		return v <= r.end
	}
	return v >= r.end
}

// Iter starts a fresh traversal.
func (r Range[T]) Iter() *Iterator[T] {
	return &Iterator[T]{r: r, cur: r.begin}
}

// Each calls fn for every value in order, stopping early if fn returns false.
func (r Range[T]) Each(fn func(T) bool) {
	for it := r.Iter(); it.Next(); {
		if !fn(it.Value()) {
			return
		}
	}
}

// Values materializes the sequence into a slice. Intended for small ranges
// and tests; the point of Range is to not do this.
func (r Range[T]) Values() []T {
	var out []T
	r.Each(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Iterator is a cursor over a Range. Advance with Next, read with Value:
//
//	for it := r.Iter(); it.Next(); {
//	    _ = it.Value()
//	}
//
// An Iterator is single-use; obtain a new one from Range.Iter to restart.
type Iterator[T typeutil.Integer] struct {
	r       Range[T]
	cur     T
	started bool
	done    bool
}

// Next advances to the next value, reporting false once the cursor is at or
// past the end of the range. A step that carries the cursor across the edge
// of T's domain wraps around; the wrap is treated as exhaustion, so a
// descending unsigned range whose step skips past zero still terminates.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
	} else {
		prev := it.cur
		it.cur += T(it.r.step)
		wrapped := it.cur < prev
		if it.r.step < 0 {
			wrapped = it.cur > prev
		}
		if wrapped {
			it.done = true
			return false
		}
	}
	if it.r.past(it.cur) {
		it.done = true
		return false
	}
	return true
}

// Value returns the value at the cursor. Only valid after Next reports true.
func (it *Iterator[T]) Value() T {
	return it.cur
}
