// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden provides a simple and slow pointer-linked tree
// as golden reference for the flat apter tree in tests.
//
// Every node points to its parent node, indices are computed from the
// position in the slice. Only well-formed trees are modelled: unknown
// parents become roots and only leaves should be deleted.
package golden

import (
	"math"
	"slices"
)

// NoParent mirrors apter.NoParent, the package can't import apter.
const NoParent = math.MaxInt

// GoldTree is a slice of nodes in insertion order.
type GoldTree[V any] []*GoldNode[V]

// GoldNode holds a value and the pointer to its parent, nil for a root.
type GoldNode[V any] struct {
	Val    V
	Parent *GoldNode[V]
}

// Insert appends val below the node at index parent and returns its index.
func (t *GoldTree[V]) Insert(val V, parent int) int {
	n := &GoldNode[V]{Val: val}
	if parent >= 0 && parent < len(*t) {
		n.Parent = (*t)[parent]
	}
	*t = append(*t, n)
	return len(*t) - 1
}

// Delete removes the node at idx, the other nodes keep their parent pointers.
func (t *GoldTree[V]) Delete(idx int) (val V, ok bool) {
	if idx < 0 || idx >= len(*t) {
		return val, false
	}
	val = (*t)[idx].Val
	*t = slices.Delete(*t, idx, idx+1)
	return val, true
}

// indexOf returns the position of n, or NoParent for nil.
func (t GoldTree[V]) indexOf(n *GoldNode[V]) int {
	if n == nil {
		return NoParent
	}
	return slices.Index(t, n)
}

// Values returns all values in insertion order.
func (t GoldTree[V]) Values() []V {
	var result []V
	for _, n := range t {
		result = append(result, n.Val)
	}
	return result
}

// Parents returns the parent index of every node, NoParent for roots.
func (t GoldTree[V]) Parents() []int {
	var result []int
	for _, n := range t {
		result = append(result, t.indexOf(n.Parent))
	}
	return result
}

// Children returns the indices of all nodes with the parent at index idx.
func (t GoldTree[V]) Children(idx int) []int {
	var result []int
	for i, n := range t {
		if t.indexOf(n.Parent) == idx {
			result = append(result, i)
		}
	}
	return result
}

// Leaves returns the indices of all nodes without children.
func (t GoldTree[V]) Leaves() []int {
	var result []int
	for i := range t {
		if len(t.Children(i)) == 0 {
			result = append(result, i)
		}
	}
	return result
}

// Ancestors returns the indices on the path from the parent of idx up to the root.
func (t GoldTree[V]) Ancestors(idx int) []int {
	var result []int
	for n := t[idx].Parent; n != nil; n = n.Parent {
		result = append(result, t.indexOf(n))
	}
	return result
}
