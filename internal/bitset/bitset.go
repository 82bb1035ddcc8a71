/*
Copyright 2014 Will Fitzgerald. All rights reserved.
Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file.
*/

// Package bitset implements bitsets, a mapping
// between non-negative integers and boolean values.
//
// This is a simplified and stripped down version of:
//
//	github.com/bits-and-blooms/bitset
//
// It marks element indices of a tree during linear scans,
// e.g. "has children" or "already visited".
package bitset

import (
	"iter"
	"math/bits"
)

// the wordSize of a bit set
const wordSize = uint(64)

// log2WordSize is lg(wordSize)
const log2WordSize = uint(6)

// A BitSet is a set of bits. The zero value is an empty set.
type BitSet struct {
	set []uint64
}

// Reset clears all bits and makes room for length bits.
// The underlying memory is reused if possible.
func (b *BitSet) Reset(length uint) {
	n := wordsNeeded(length)
	if cap(b.set) < n {
		b.set = make([]uint64, n)
		return
	}
	b.set = b.set[:n]
	clear(b.set)
}

// extendSet adds additional words to incorporate new bits if needed.
func (b *BitSet) extendSet(i uint) {
	nsize := wordsNeeded(i + 1)
	if len(b.set) < nsize {
		newset := make([]uint64, nsize)
		copy(newset, b.set)
		b.set = newset
	}
}

// bitsCapacity returns the number of possible bits in the current set.
func (b BitSet) bitsCapacity() uint {
	return uint(len(b.set)) * wordSize
}

// wordsNeeded calculates the number of words needed for i bits.
func wordsNeeded(i uint) int {
	return int((i + (wordSize - 1)) >> log2WordSize)
}

// wordsIndex calculates the index of words in a `uint64`
func wordsIndex(i uint) uint {
	return i & (wordSize - 1)
}

// Test whether bit i is set.
func (b BitSet) Test(i uint) bool {
	if i >= b.bitsCapacity() {
		return false
	}
	return b.set[i>>log2WordSize]&(1<<wordsIndex(i)) != 0
}

// Set bit i to 1, the capacity of the bitset is increased accordingly.
func (b *BitSet) Set(i uint) {
	if i >= b.bitsCapacity() {
		b.extendSet(i)
	}
	b.set[i>>log2WordSize] |= 1 << wordsIndex(i)
}

// Clear bit i to 0.
func (b *BitSet) Clear(i uint) {
	if i >= b.bitsCapacity() {
		return
	}
	b.set[i>>log2WordSize] &^= 1 << wordsIndex(i)
}

// Count (number of set bits).
// Also known as "popcount" or "population count".
func (b BitSet) Count() int {
	var cnt int
	for _, x := range b.set {
		cnt += bits.OnesCount64(x)
	}
	return cnt
}

// All iterates over all the set bits in ascending order.
func (b BitSet) All() iter.Seq[uint] {
	return func(yield func(u uint) bool) {
		for idx, word := range b.set {
			for word != 0 {
				u := uint(idx)<<log2WordSize + uint(bits.TrailingZeros64(word))

				if !yield(u) {
					return
				}

				// clear the rightmost set bit
				word &= word - 1
			}
		}
	}
}
