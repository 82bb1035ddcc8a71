// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package apter

import (
	"slices"

	"github.com/gaissmai/apter/internal/value"
)

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// Equal reports whether t and o hold the same elements with the same
// parent indices in the same order.
//
// Values are compared with their own Equal method if V implements
// [Equaler], otherwise with [reflect.DeepEqual].
func (t *Tree[V]) Equal(o *Tree[V]) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t == o {
		return true
	}

	if !slices.Equal(t.parents, o.parents) {
		return false
	}

	return slices.EqualFunc(t.values, o.values, value.Equal[V])
}
