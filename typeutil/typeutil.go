// Package typeutil carries the type-constraint surface of the toolbox:
// constraint interfaces used as generic bounds, and reflection predicates
// for the few places (factories, tests) that need to inspect a type at
// runtime rather than constrain it at compile time.
package typeutil

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Integer constrains to any integer type. Signed and Unsigned narrow it;
// generic code selects between signed and unsigned behavior by choosing
// the bound, which is resolved entirely at compile time.
type Integer interface{ constraints.Integer }

// Signed constrains to signed integer types.
type Signed interface{ constraints.Signed }

// Unsigned constrains to unsigned integer types.
type Unsigned interface{ constraints.Unsigned }

// IsSigned reports whether T is a signed integer type. It relies only on
// wraparound: the zero value minus one is below zero exactly for signed T.
func IsSigned[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// IsPointer reports whether T is a pointer type (including unsafe.Pointer).
func IsPointer[T any]() bool {
	k := typeOf[T]().Kind()
	return k == reflect.Pointer || k == reflect.UnsafePointer
}

// IsFunc reports whether T is a function type. Go function values already
// behave as pointers to code, so this also covers the function-pointer case.
func IsFunc[T any]() bool {
	return typeOf[T]().Kind() == reflect.Func
}

// IsSame reports whether T and U are exactly the same type. Named types are
// distinct from their underlying types.
func IsSame[T, U any]() bool {
	return typeOf[T]() == typeOf[U]()
}

// Implements reports whether T satisfies the interface type I. It is the
// closest Go analogue of a base-class test: substitutability via interface
// satisfaction rather than inheritance. I must be an interface type.
func Implements[T, I any]() bool {
	it := typeOf[I]()
	if it.Kind() != reflect.Interface {
		return false
	}
	return typeOf[T]().Implements(it)
}

// typeOf resolves T without requiring an addressable value, so it works
// for interface types too.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
