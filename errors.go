package oset

import (
	"errors"
	"reflect"
)

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("oset: invalid configuration")
	// ErrNilItem signals an attempt to store a nil item.
	ErrNilItem = errors.New("oset: nil item")
	// ErrInvariantViolated signals a structural invariant violation found by Check.
	ErrInvariantViolated = errors.New("oset: structural invariant violated")
)

// isNilItem reports whether item is a nil value of a nil-able kind.
//
// Type parameters admit pointer, interface, map, slice, func and channel
// item types, all of which have a nil value that must not enter the tree.
// Value kinds (ints, strings, structs, ...) can never be nil.
func isNilItem[T any](item T) bool {
	v := reflect.ValueOf(&item).Elem()
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
