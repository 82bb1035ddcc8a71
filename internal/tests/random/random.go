// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random generates deterministic, well-formed parent sequences
// for tests, fuzzing and profiling.
package random

import (
	"math"
	"math/rand/v2"
)

// NoParent mirrors apter.NoParent.
const NoParent = math.MaxInt

// rootChance is 1/rootChance for every element but the first to become a root.
const rootChance = 16

// Parents returns n parent indices forming a forest: the first element is
// a root, every later element is a root or a child of an earlier element.
func Parents(prng *rand.Rand, n int) []int {
	parents := make([]int, n)
	for i := range n {
		if i == 0 || prng.IntN(rootChance) == 0 {
			parents[i] = NoParent
			continue
		}
		parents[i] = prng.IntN(i)
	}
	return parents
}

// DeepParents is like Parents but prefers recent elements as parents,
// resulting in long ancestor chains.
func DeepParents(prng *rand.Rand, n int) []int {
	parents := make([]int, n)
	for i := range n {
		if i == 0 {
			parents[i] = NoParent
			continue
		}
		lo := max(0, i-4)
		parents[i] = lo + prng.IntN(i-lo)
	}
	return parents
}
