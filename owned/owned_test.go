package owned_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ospack/utility/owned"
)

// resource counts how many times its destruction protocol ran.
type resource struct {
	released int
}

func (r *resource) Release() { r.released++ }

func TestPtrRoundTrip(t *testing.T) {
	r := &resource{}
	for _, owns := range []bool{false, true} {
		p := owned.New(r, owns)
		assert.Same(t, r, p.Get(), "Get must return the reference unchanged")
		assert.Equal(t, owns, p.Owned())
	}
	assert.Equal(t, 0, r.released)
}

func TestBorrowedPtrDoesNotRelease(t *testing.T) {
	r := &resource{}
	p := owned.Borrow(r)
	require.False(t, p.Owned())

	require.NoError(t, p.Close())
	assert.Equal(t, 0, r.released, "a borrowed reference must not release")
	assert.Same(t, r, p.Get(), "the reference survives Close")
}

func TestOwnedPtrReleasesExactlyOnce(t *testing.T) {
	r := &resource{}
	p := owned.Own(r)
	require.True(t, p.Owned())

	require.NoError(t, p.Close())
	assert.Equal(t, 1, r.released)

	require.NoError(t, p.Close())
	assert.Equal(t, 1, r.released, "Close must be idempotent")
}

func TestPtrWithDefer(t *testing.T) {
	r := &resource{}
	func() {
		p := owned.Own(r)
		defer p.Close()
		_ = p.Get()
	}()
	assert.Equal(t, 1, r.released)
}

func TestReleaseAndClear(t *testing.T) {
	r := &resource{}
	ref := r
	owned.ReleaseAndClear(&ref)
	assert.Equal(t, 1, r.released)
	assert.Nil(t, ref)

	// Clearing the reference makes a second call a no-op.
	owned.ReleaseAndClear(&ref)
	assert.Equal(t, 1, r.released)
}
