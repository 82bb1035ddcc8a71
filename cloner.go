// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package apter

import (
	"slices"

	"github.com/gaissmai/apter/internal/value"
)

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], [Tree.Clone] uses its Clone method
// to perform deep copies.
type Cloner[V any] interface {
	Clone() V
}

// Clone returns a copy of the tree.
// The payload of type V is shallow copied, but if type V implements the
// [Cloner] interface, the values are cloned.
func (t *Tree[V]) Clone() *Tree[V] {
	if t == nil {
		return nil
	}

	c := new(Tree[V])
	c.parents = slices.Clone(t.parents)

	cloneFn := value.CloneFnFactory[V]()
	if cloneFn == nil {
		c.values = slices.Clone(t.values)
		return c
	}

	c.values = make([]V, len(t.values))
	for i, val := range t.values {
		c.values[i] = cloneFn(val)
	}

	return c
}
