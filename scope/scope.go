// Package scope provides deterministic scoped cleanup: actions registered
// against a scope are guaranteed to run exactly once when the scope is torn
// down, on every exit path including early return and panic.
//
// The primary entry point is [Deferred], which wraps a zero-argument action
// in a fire-once [Guard]:
//
//	f := openSomething()
//	g := scope.Deferred(func() { f.Close() })
//	defer g.Run()
//
// [With] and [WithRelease] pair an acquisition with its release in a single
// call, running a body in between:
//
//	scope.WithRelease(acquireConn, releaseConn, func(c *Conn) {
//	    c.Send(msg)
//	})
package scope

import "io"

// Guard holds a cleanup action that fires exactly once.
//
// A Guard is a single-owner value: it must not be shared across goroutines
// without external synchronization, and it must not be copied after the
// first Run or Close.
type Guard struct {
	fn   func()
	done bool
}

// Deferred returns a Guard wrapping fn. The action does not run until
// Run or Close is called; typical use is `defer g.Run()` immediately
// after acquiring the resource the action releases.
func Deferred(fn func()) *Guard {
	return &Guard{fn: fn}
}

// Run invokes the guarded action if it has not already fired.
// Subsequent calls are no-ops.
func (g *Guard) Run() {
	if g == nil || g.done || g.fn == nil {
		return
	}
	g.done = true
	g.fn()
}

// Close fires the guard and reports nil, so a Guard can stand in
// anywhere an io.Closer is expected.
func (g *Guard) Close() error {
	g.Run()
	return nil
}

// Ok reports true. It exists so a freshly created guard can participate in
// a conditional alongside its acquisition expression:
//
//	if f := open(); scope.Deferred(func() { f.Close() }).Ok() {
//	    ...
//	}
//
// Prefer defer g.Run() outside of that idiom.
func (g *Guard) Ok() bool {
	return true
}

// Fired reports whether the action has already run.
func (g *Guard) Fired() bool {
	return g.done
}

var _ io.Closer = (*Guard)(nil)

// Stack collects guards and fires them in reverse registration order,
// mirroring the behavior of stacked defers within a single function but
// transferable as a value. The zero value is ready to use.
type Stack struct {
	guards []*Guard
}

// Defer registers fn to run when the stack is closed, after every action
// registered later than it.
func (s *Stack) Defer(fn func()) *Guard {
	g := Deferred(fn)
	s.guards = append(s.guards, g)
	return g
}

// Len reports the number of registered guards, fired or not.
func (s *Stack) Len() int {
	return len(s.guards)
}

// Run fires all registered guards in reverse registration order. Each guard
// fires at most once across any number of Run calls. If a guard panics, the
// remaining guards still fire during unwind before the panic propagates.
func (s *Stack) Run() {
	// Deferred rather than called directly: a panicking action must not
	// prevent the guards below it from firing. Defers unwind in reverse,
	// so walking forward here fires the most recent registration first.
	for i := range s.guards {
		defer s.guards[i].Run()
	}
	s.guards = s.guards[:0]
}

// Close fires all guards and reports nil.
func (s *Stack) Close() error {
	s.Run()
	return nil
}

var _ io.Closer = (*Stack)(nil)

// With acquires a value, runs body with it, and closes the value when body
// returns or panics. The release is the acquired value's own Close.
func With[T io.Closer](acquire func() T, body func(T)) {
	v := acquire()
	defer v.Close()
	body(v)
}

// WithRelease acquires a value, runs body with it, and evaluates the explicit
// release action at scope exit, on every exit path.
func WithRelease[T any](acquire func() T, release func(T), body func(T)) {
	v := acquire()
	defer release(v)
	body(v)
}
