// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package apter

import (
	"math"
	"slices"
)

// NoParent is the parent index of a root element.
//
// It is the maximum value of the index type and can't collide with a real
// index as long as the tree holds fewer than math.MaxInt elements.
const NoParent = math.MaxInt

// Tree is a tree of elements with payload V, stored as two parallel slices:
// the values in insertion order and the index of each value's parent.
// The zero value is ready to use.
//
// The index of an element is its insertion position. Indices are contiguous
// and not stable across [Tree.Delete].
//
// A Tree is not safe for concurrent use, wrap it with your own
// synchronization if needed.
type Tree[V any] struct {
	values  []V
	parents []int
}

// New returns an empty tree, same as new(Tree[V]).
func New[V any]() *Tree[V] {
	return new(Tree[V])
}

// Len returns the number of elements in the tree.
func (t *Tree[V]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.parents)
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[V]) IsEmpty() bool {
	return t.Len() == 0
}

// Grow increases the tree's capacity, if necessary, to guarantee space for
// another n elements without reallocation.
func (t *Tree[V]) Grow(n int) {
	t.values = slices.Grow(t.values, n)
	t.parents = slices.Grow(t.parents, n)
}

// Insert appends val as a child of parent and returns the index of the
// new element, which is t.Len() before the append.
// Use [NoParent] as parent to insert a root.
//
// The parent index is not validated. A parent that is neither NoParent
// nor an existing index is accepted silently and only shows up later as a
// broken ancestor chain, see [Tree.InsertChecked] and [Tree.Validate].
func (t *Tree[V]) Insert(val V, parent int) (idx int) {
	idx = len(t.parents)
	t.values = append(t.values, val)
	t.parents = append(t.parents, parent)
	return idx
}

// isValid reports whether idx is the index of an element.
func (t *Tree[V]) isValid(idx int) bool {
	return idx >= 0 && idx < t.Len()
}

// ParentOf returns the parent index stored for idx, or [NoParent] for a root.
// It panics if idx is out of range.
func (t *Tree[V]) ParentOf(idx int) int {
	return t.parents[idx]
}

// Get returns the value at idx. If idx is out of range,
// the zero value and false are returned.
func (t *Tree[V]) Get(idx int) (val V, ok bool) {
	if !t.isValid(idx) {
		return val, false
	}
	return t.values[idx], true
}

// At returns the value at idx.
// It panics if idx is out of range, like indexing a slice.
func (t *Tree[V]) At(idx int) V {
	return t.values[idx]
}

// Set overwrites the value at idx and reports whether idx exists.
// The parent relation is not touched.
func (t *Tree[V]) Set(idx int, val V) bool {
	if !t.isValid(idx) {
		return false
	}
	t.values[idx] = val
	return true
}

// SetAt overwrites the value at idx.
// It panics if idx is out of range, like indexing a slice.
func (t *Tree[V]) SetAt(idx int, val V) {
	t.values[idx] = val
}

// Update calls cb with the value at idx and stores the returned value
// in its place. If idx is out of range, cb is not called and ok is false.
func (t *Tree[V]) Update(idx int, cb func(val V) V) (newVal V, ok bool) {
	if !t.isValid(idx) {
		return newVal, false
	}
	newVal = cb(t.values[idx])
	t.values[idx] = newVal
	return newVal, true
}

// Delete removes the element at idx and returns its value.
// If idx is out of range, the tree is unchanged and ok is false.
//
// This is an O(n) operation: all elements after idx move down by one and
// every stored parent index greater than idx is decremented.
//
// The element must not have children. Children of the deleted element are
// not removed, their stale parent index now names whatever element moved
// into the freed slot. Use [Tree.DeleteChecked] to reject such deletes.
func (t *Tree[V]) Delete(idx int) (val V, ok bool) {
	if !t.isValid(idx) {
		return val, false
	}

	val = t.values[idx]

	t.values = slices.Delete(t.values, idx, idx+1)
	t.parents = slices.Delete(t.parents, idx, idx+1)

	// renumber, NoParent is greater than any idx but must survive
	for i, p := range t.parents {
		if p > idx && p != NoParent {
			t.parents[i] = p - 1
		}
	}

	return val, true
}
