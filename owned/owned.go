// Package owned pairs a reference with the obligation to release it.
//
// A Ptr records, at construction time, whether the holder owns the
// referenced resource. Closing the Ptr invokes the resource's own release
// protocol if and only if ownership was claimed, and never more than once.
// This replaces the classic trick of stealing the low bit of an aligned
// pointer for the ownership flag: the flag is an explicit field, and the
// compiler rather than bit masking keeps the reference intact.
package owned

import "io"

// Releaser is the destruction protocol: anything that knows how to free
// itself. It matches the Release convention of reference-counted buffers.
type Releaser interface {
	Release()
}

// Ptr is a reference bundled with a single ownership flag. At most one Ptr
// should claim ownership of a given resource at a time; there is no
// reference counting behind it.
//
// A Ptr is a single-owner value and is not internally synchronized. If one
// is shared across goroutines the caller must serialize Close.
type Ptr[T Releaser] struct {
	v     T
	owned bool
	done  bool
}

// New wraps v with an explicit ownership decision. When owns is true,
// closing the returned Ptr releases v; when false, the Ptr is a plain
// borrowed reference and Close is a no-op.
func New[T Releaser](v T, owns bool) *Ptr[T] {
	return &Ptr[T]{v: v, owned: owns}
}

// Borrow wraps v without claiming ownership. Equivalent to New(v, false).
func Borrow[T Releaser](v T) *Ptr[T] {
	return New(v, false)
}

// Own wraps v and claims ownership. Equivalent to New(v, true).
func Own[T Releaser](v T) *Ptr[T] {
	return New(v, true)
}

// Get returns the wrapped reference regardless of ownership.
func (p *Ptr[T]) Get() T {
	return p.v
}

// Owned reports whether closing this Ptr will release the resource.
func (p *Ptr[T]) Owned() bool {
	return p.owned
}

// Close releases the resource if this Ptr owns it. It fires at most once;
// repeated calls are no-ops. Always reports nil.
func (p *Ptr[T]) Close() error {
	if p.owned && !p.done {
		p.done = true
		p.v.Release()
	}
	return nil
}

var _ io.Closer = (*Ptr[Releaser])(nil)

// ReleaseAndClear releases *pp if it is non-nil, then sets *pp to nil so a
// stale reference cannot be released twice or used after free.
func ReleaseAndClear[T any, PT interface {
	Releaser
	*T
}](pp *PT) {
	if *pp != nil {
		(*pp).Release()
		*pp = nil
	}
}
