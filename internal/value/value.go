// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package value provides utilities for working with the generic element
// type of a tree at runtime.
//
// Equality and cloning of elements are delegated to the element type when
// it implements Equaler or Cloner, otherwise reflect.DeepEqual and plain
// copies are used.
//
// Zero-sized type detection via IsZST keeps debug output short: values of
// a zero-sized type carry no information and are omitted from diagrams.
package value

import (
	"reflect"
)

// IsZST reports whether type V is a zero-sized type (ZST),
// e.g. struct{} or [0]byte.
//
// The Go runtime returns the same address for all allocations of a ZST,
// so two heap allocations of V compare equal if and only if V is a ZST.
func IsZST[V any]() bool {
	a, b := escapeToHeap[V]()
	return a == b
}

// escapeToHeap forces two allocations of type V to escape to the heap.
// Without noinline the compiler may prove a == b statically.
//
//go:noinline
func escapeToHeap[V any]() (*V, *V) {
	return new(V), new(V)
}

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// Equal compares two values of type V for equality.
// If V implements Equaler[V], that custom equality method is used.
// Otherwise, reflect.DeepEqual is used as a fallback.
func Equal[V any](v1, v2 V) bool {
	// you can't assert directly on a type parameter
	if v1, ok := any(v1).(Equaler[V]); ok {
		return v1.Equal(v2)
	}
	return reflect.DeepEqual(v1, v2)
}

// Cloner is an interface that enables deep cloning of values of type V.
// If an element implements Cloner[V], Tree.Clone uses its Clone method.
type Cloner[V any] interface {
	Clone() V
}

// CloneFunc takes a value of type V and returns the (possibly cloned) value.
type CloneFunc[V any] func(V) V

// CloneFnFactory returns CloneVal if V implements Cloner[V], otherwise nil.
// A nil CloneFunc means a plain copy is sufficient.
func CloneFnFactory[V any]() CloneFunc[V] {
	var zero V
	// you can't assert directly on a type parameter
	if _, ok := any(zero).(Cloner[V]); ok {
		return CloneVal[V]
	}
	return nil
}

// CloneVal returns a deep clone of val by calling Clone when
// val implements Cloner[V]. If val does not implement
// Cloner[V] or the Cloner receiver is nil (val is a nil pointer),
// CloneVal returns val unchanged.
func CloneVal[V any](val V) V {
	c, ok := any(val).(Cloner[V])
	if !ok || c == nil {
		return val
	}
	return c.Clone()
}
