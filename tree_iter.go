// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package apter

import (
	"iter"

	"github.com/gaissmai/apter/internal/value"
)

// Keys returns an iterator over all indices of the tree, 0..Len()-1.
func (t *Tree[V]) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for idx := range t.Len() {
			if !yield(idx) {
				return
			}
		}
	}
}

// All may be used in a for/range loop to iterate
// through all elements in insertion order.
//
// The tree must not be modified during the iteration.
func (t *Tree[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for idx := range t.Len() {
			if !yield(idx, t.values[idx]) {
				return
			}
		}
	}
}

// Find returns the lowest index with a value equal to val.
//
// Values are compared with their own Equal method if V implements
// [Equaler], otherwise with [reflect.DeepEqual].
// This is a linear scan.
func (t *Tree[V]) Find(val V) (idx int, ok bool) {
	return t.FindFunc(func(v V) bool {
		return value.Equal(v, val)
	})
}

// FindFunc returns the lowest index whose value satisfies match.
func (t *Tree[V]) FindFunc(match func(V) bool) (idx int, ok bool) {
	for idx := range t.Len() {
		if match(t.values[idx]) {
			return idx, true
		}
	}
	return 0, false
}

// Children returns an iterator over the indices of all elements
// with the given parent, in ascending order.
//
// parent needs not be a valid index: Children(NoParent) returns the roots,
// any other unknown parent yields nothing. This is an O(n) scan.
func (t *Tree[V]) Children(parent int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for idx := range t.Len() {
			if t.parents[idx] != parent {
				continue
			}
			if !yield(idx) {
				return
			}
		}
	}
}

// Roots returns an iterator over all root indices, same as Children(NoParent).
func (t *Tree[V]) Roots() iter.Seq[int] {
	return t.Children(NoParent)
}

// IsLeaf reports whether no element has idx as parent.
// Like [Tree.Children] it never panics.
func (t *Tree[V]) IsLeaf(idx int) bool {
	for range t.Children(idx) {
		return false
	}
	return true
}

// Leaves returns an iterator over the indices of all elements
// without children, in ascending order.
//
// Every call does one pass to mark all parents and a second pass to yield
// the unmarked indices, O(n) instead of a Children scan per element.
func (t *Tree[V]) Leaves() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := t.Len()
		if n == 0 {
			return
		}

		hasKids := getMarks(n)
		defer putMarks(hasKids)

		for _, p := range t.parents {
			if p >= 0 && p < n {
				hasKids.Set(uint(p))
			}
		}

		for idx := range n {
			if hasKids.Test(uint(idx)) {
				continue
			}
			if !yield(idx) {
				return
			}
		}
	}
}

// Ancestors returns an iterator over the parent chain of idx:
// the parent, the grandparent and so on, up to the root.
//
// The walk stops at NoParent or at the first index out of range, this
// index is not yielded. It panics immediately if idx is out of range.
//
// At most Len() indices are yielded, so a cycle, created by inserts with
// unchecked parents, is not followed forever. See [Tree.Validate].
func (t *Tree[V]) Ancestors(idx int) iter.Seq[int] {
	parent := t.ParentOf(idx)

	return func(yield func(int) bool) {
		n := t.Len()
		for steps, p := 0, parent; steps < n && p >= 0 && p < n; steps++ {
			if !yield(p) {
				return
			}
			p = t.parents[p]
		}
	}
}

// Depth returns the number of ancestors of idx, zero for a root.
// It panics if idx is out of range.
func (t *Tree[V]) Depth(idx int) int {
	depth := 0
	for range t.Ancestors(idx) {
		depth++
	}
	return depth
}
