// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package apter

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gaissmai/apter/internal/golden"
	"github.com/gaissmai/apter/internal/tests/random"
)

// this file contains helpers for other test functions

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 100
	}
	return 1_000
}

// newPRNG, deterministic but different per seed
func newPRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 42))
}

// sampleTree, the round trip tree
//
//	▼
//	└─ 0 (root)
//	   ├─ 1 (a)
//	   │  └─ 3 (a1)
//	   └─ 2 (b)
func sampleTree() *Tree[string] {
	t := new(Tree[string])
	t.Insert("root", NoParent)
	t.Insert("a", 0)
	t.Insert("b", 0)
	t.Insert("a1", 1)
	return t
}

// treeFromParents returns a tree with values 0..n-1 and the given parents.
func treeFromParents(parents []int) *Tree[int] {
	t := new(Tree[int])
	for i, p := range parents {
		t.Insert(i, p)
	}
	return t
}

// randomPair builds the same random well-formed tree twice,
// as flat tree and as golden reference.
func randomPair(prng *rand.Rand, n int) (*Tree[int], *golden.GoldTree[int]) {
	tree := new(Tree[int])
	gold := new(golden.GoldTree[int])

	for i, p := range random.Parents(prng, n) {
		tree.Insert(i, p)
		gold.Insert(i, p)
	}
	return tree, gold
}

// naiveLeaves, the O(n²) definition of Leaves.
func naiveLeaves[V any](t *Tree[V]) []int {
	var result []int
	for idx := range t.Keys() {
		if t.IsLeaf(idx) {
			result = append(result, idx)
		}
	}
	return result
}

// mustPanic fails the test if fn does not panic.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

// collect is a shortcut for slices.Collect, nil for an empty sequence.
var collect = slices.Collect[int]

// #########################################################

// tests for deep copies with Cloner interface
type MyInt int

// implement the Cloner interface
func (i *MyInt) Clone() *MyInt {
	a := *i
	return &a
}

// ci compares case-insensitive on ASCII
type ci string

func (s ci) Equal(o ci) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range len(s) {
		if s[i]|0x20 != o[i]|0x20 {
			return false
		}
	}
	return true
}
