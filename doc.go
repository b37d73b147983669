// Package utility is a toolbox of small, independent primitives for
// performance-sensitive code:
//
//   - scope: scoped cleanup — actions guaranteed to run exactly once on
//     every exit path of a block.
//   - owned: references bundled with an explicit ownership flag deciding
//     who releases the underlying resource.
//   - align: power-of-two alignment arithmetic for sizes and addresses.
//   - xrange: lazy, restartable integer-range sequences.
//   - typeutil: generic constraint interfaces and type predicates.
//   - mem: aligned buffer allocation with a leak-tracking wrapper for tests.
//
// The primitives share no state and have no setup; import what you need.
// None of them are internally synchronized — single-owner values must not
// be shared across goroutines without external locking.
package utility

// Unused silences unused-value diagnostics for values that are deliberately
// ignored.
func Unused(...interface{}) {}
