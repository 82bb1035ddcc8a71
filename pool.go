// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package apter

import (
	"sync"

	"github.com/gaissmai/apter/internal/bitset"
)

// marksPool recycles the index marks of Leaves and Validate.
//
// Both run on every call over the whole parent slice,
// reusing the marks saves an allocation of Len()/64 words per call.
var marksPool = sync.Pool{
	New: func() any {
		return new(bitset.BitSet)
	},
}

// getMarks retrieves a cleared bitset with room for n indices.
func getMarks(n int) *bitset.BitSet {
	b := marksPool.Get().(*bitset.BitSet)
	b.Reset(uint(n))
	return b
}

// putMarks returns b back to the pool for potential reuse.
func putMarks(b *bitset.BitSet) {
	marksPool.Put(b)
}
