package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ospack/utility/scope"
)

func TestGuardFiresOnce(t *testing.T) {
	fired := 0
	g := scope.Deferred(func() { fired++ })
	assert.False(t, g.Fired())

	g.Run()
	assert.Equal(t, 1, fired)
	assert.True(t, g.Fired())

	g.Run()
	require.NoError(t, g.Close())
	assert.Equal(t, 1, fired, "guard must not fire twice")
}

func TestGuardDoesNotFireUntilRun(t *testing.T) {
	fired := 0
	g := scope.Deferred(func() { fired++ })
	assert.Equal(t, 0, fired)
	g.Run()
	assert.Equal(t, 1, fired)
}

func TestGuardOk(t *testing.T) {
	cleaned := false
	if g := scope.Deferred(func() { cleaned = true }); g.Ok() {
		defer g.Run()
		assert.False(t, cleaned)
	}
}

func TestGuardFiresOnEveryExitPath(t *testing.T) {
	fired := 0
	early := func(takeEarly bool) {
		g := scope.Deferred(func() { fired++ })
		defer g.Run()
		if takeEarly {
			return
		}
	}
	early(true)
	early(false)
	assert.Equal(t, 2, fired)

	func() {
		defer func() { _ = recover() }()
		g := scope.Deferred(func() { fired++ })
		defer g.Run()
		panic("unwind")
	}()
	assert.Equal(t, 3, fired, "guard must fire during panic unwind")
}

func TestStackReverseOrder(t *testing.T) {
	var order []int
	var s scope.Stack
	for i := 0; i < 5; i++ {
		i := i
		s.Defer(func() { order = append(order, i) })
	}
	require.Equal(t, 5, s.Len())

	s.Run()
	assert.Equal(t, []int{4, 3, 2, 1, 0}, order)

	s.Run()
	assert.Len(t, order, 5, "each guard fires exactly once")
}

func TestStackPanickingGuard(t *testing.T) {
	var order []int
	var s scope.Stack
	s.Defer(func() { order = append(order, 0) })
	s.Defer(func() { order = append(order, 1); panic("guard failure") })
	s.Defer(func() { order = append(order, 2) })

	assert.PanicsWithValue(t, "guard failure", func() { s.Run() })
	assert.Equal(t, []int{2, 1, 0}, order,
		"guards below a panicking one still fire, in order")
}

func TestStackClose(t *testing.T) {
	fired := false
	var s scope.Stack
	s.Defer(func() { fired = true })
	require.NoError(t, s.Close())
	assert.True(t, fired)
}

type fakeConn struct {
	closed int
	sent   int
}

func (c *fakeConn) Close() error {
	c.closed++
	return nil
}

func TestWith(t *testing.T) {
	c := &fakeConn{}
	scope.With(func() *fakeConn { return c }, func(conn *fakeConn) {
		conn.sent++
	})
	assert.Equal(t, 1, c.sent)
	assert.Equal(t, 1, c.closed)
}

func TestWithClosesOnPanic(t *testing.T) {
	c := &fakeConn{}
	func() {
		defer func() { _ = recover() }()
		scope.With(func() *fakeConn { return c }, func(*fakeConn) {
			panic("body failure")
		})
	}()
	assert.Equal(t, 1, c.closed)
}

func TestWithRelease(t *testing.T) {
	var events []string
	acquire := func() string {
		events = append(events, "acquire")
		return "res"
	}
	release := func(v string) { events = append(events, "release "+v) }

	scope.WithRelease(acquire, release, func(v string) {
		events = append(events, "body "+v)
	})
	assert.Equal(t, []string{"acquire", "body res", "release res"}, events)
}

func TestWithReleaseOnPanic(t *testing.T) {
	released := false
	func() {
		defer func() { _ = recover() }()
		scope.WithRelease(
			func() int { return 7 },
			func(int) { released = true },
			func(int) { panic("body failure") },
		)
	}()
	assert.True(t, released)
}
