// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package apter

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned for an index that names no element.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrParentOutOfRange is returned for a parent index that is neither
	// NoParent nor the index of an element.
	ErrParentOutOfRange = errors.New("parent index out of range")

	// ErrHasChildren is returned when deleting an element with children.
	ErrHasChildren = errors.New("element has children")

	// ErrCycle is returned when a parent chain leads back into itself.
	ErrCycle = errors.New("cycle in parent chain")
)

// InsertChecked is like [Tree.Insert] but rejects a parent that is neither
// [NoParent] nor an existing index with [ErrParentOutOfRange].
//
// The parent always exists before its child, so a tree built only
// with InsertChecked is acyclic.
func (t *Tree[V]) InsertChecked(val V, parent int) (int, error) {
	if parent != NoParent && !t.isValid(parent) {
		return 0, fmt.Errorf("insert with parent %d, len %d: %w", parent, t.Len(), ErrParentOutOfRange)
	}
	return t.Insert(val, parent), nil
}

// DeleteChecked is like [Tree.Delete] but returns [ErrIndexOutOfRange] for a
// missing element and [ErrHasChildren] for an element that still has
// children, in both cases the tree is unchanged.
func (t *Tree[V]) DeleteChecked(idx int) (val V, err error) {
	if !t.isValid(idx) {
		return val, fmt.Errorf("delete %d, len %d: %w", idx, t.Len(), ErrIndexOutOfRange)
	}
	if !t.IsLeaf(idx) {
		return val, fmt.Errorf("delete %d: %w", idx, ErrHasChildren)
	}
	val, _ = t.Delete(idx)
	return val, nil
}

// Validate checks the structure of the tree: every parent index must be
// NoParent or a valid index, and no parent chain may contain a cycle.
//
// All violations are returned, joined with [errors.Join], each wrapping
// [ErrParentOutOfRange] or [ErrCycle]. A well-formed tree returns nil.
// Every element is visited once, O(n).
func (t *Tree[V]) Validate() error {
	n := t.Len()
	if n == 0 {
		return nil
	}

	var errs []error

	for idx, p := range t.parents {
		if p != NoParent && (p < 0 || p >= n) {
			errs = append(errs, fmt.Errorf("element %d has parent %d, len %d: %w", idx, p, n, ErrParentOutOfRange))
		}
	}

	// done: chain already walked, ends at a root, a dangling parent or a known cycle
	// onPath: on the chain currently walked
	done := getMarks(n)
	defer putMarks(done)

	onPath := getMarks(n)
	defer putMarks(onPath)

	path := make([]int, 0, 16)

	for start := range n {
		if done.Test(uint(start)) {
			continue
		}

		path = path[:0]
		for p := start; p >= 0 && p < n && !done.Test(uint(p)); p = t.parents[p] {
			if onPath.Test(uint(p)) {
				errs = append(errs, fmt.Errorf("element %d is its own ancestor: %w", p, ErrCycle))
				break
			}
			onPath.Set(uint(p))
			path = append(path, p)
		}

		for _, p := range path {
			onPath.Clear(uint(p))
			done.Set(uint(p))
		}
	}

	return errors.Join(errs...)
}
