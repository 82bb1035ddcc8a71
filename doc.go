// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package apter provides a generic tree stored as two flat, parallel
// slices, known as an Apter tree: the values in insertion order and,
// for every value, the index of its parent.
//
// An element is addressed by its index, the position at which it was
// inserted. Roots have the parent [NoParent]. Children, leaves and
// ancestors are found by scanning the parent slice, there are no
// per-node child lists:
//
//	t := new(apter.Tree[string])
//	root := t.Insert("root", apter.NoParent)
//	a := t.Insert("a", root)
//	t.Insert("b", root)
//	t.Insert("a1", a)
//
//	for idx := range t.Children(root) { ... } // 1, 2
//	for idx := range t.Leaves() { ... }       // 2, 3
//	for idx := range t.Ancestors(3) { ... }   // 1, 0
//
// Insert and Delete trust the caller: Insert does not check the parent
// index and Delete does not check that the element is a leaf. A bad call
// silently produces a broken tree. [Tree.InsertChecked],
// [Tree.DeleteChecked] and [Tree.Validate] are the checked alternatives.
//
// Delete is O(n) and renumbers all elements after the deleted one,
// indices held by the caller are invalid after a Delete.
//
// A Tree is not safe for concurrent use.
package apter
