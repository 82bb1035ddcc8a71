// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestZeroValue(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r != nil {
			t.Error("A zero value bitset must not panic")
		}
	}()

	b := BitSet{}
	b.Clear(1000)

	b = BitSet{}
	b.Count()

	b = BitSet{}
	b.Test(42)

	b = BitSet{}
	for range b.All() {
		t.Error("empty bitset must not yield")
	}

	b = BitSet{}
	b.Set(0)
}

func TestSetTestClear(t *testing.T) {
	t.Parallel()
	var b BitSet
	b.Reset(10)

	for _, i := range []uint{0, 9, 63, 64, 1000} {
		if b.Test(i) {
			t.Errorf("Test(%d) before Set, want false", i)
		}
		b.Set(i)
		if !b.Test(i) {
			t.Errorf("Test(%d) after Set, want true", i)
		}
	}

	if got := b.Count(); got != 5 {
		t.Errorf("Count, want 5, got %d", got)
	}

	b.Clear(64)
	b.Clear(5000) // beyond capacity, no-op

	if b.Test(64) {
		t.Errorf("Test(64) after Clear, want false")
	}
	if got := b.Count(); got != 4 {
		t.Errorf("Count after Clear, want 4, got %d", got)
	}
}

func TestAllBitSetIter(t *testing.T) {
	t.Parallel()
	tc := []uint{0, 1, 2, 5, 10, 20, 50, 100, 200, 500, 511}

	for _, n := range tc {
		t.Run(fmt.Sprintf("n: %3d", n), func(t *testing.T) {
			t.Parallel()
			var b BitSet
			seen := make(map[uint]bool)

			for u := range n {
				b.Set(u)
				seen[u] = true
			}

			// range over func
			for u := range b.All() {
				if !seen[u] {
					t.Errorf("bit: %d, expected true, got false", u)
				}
				delete(seen, u)
			}

			// check if all entries visited
			if len(seen) != 0 {
				t.Fatalf("traverse error, not all entries visited")
			}
		})
	}
}

func TestAllAscending(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))

	var b BitSet
	var want []uint
	seen := map[uint]bool{}

	for range 300 {
		u := uint(prng.IntN(4096))
		if !seen[u] {
			seen[u] = true
			want = append(want, u)
		}
		b.Set(u)
	}
	slices.Sort(want)

	got := slices.Collect(b.All())
	if !slices.Equal(got, want) {
		t.Errorf("All, want %v, got %v", want, got)
	}
}

func TestAllPrematureExit(t *testing.T) {
	t.Parallel()
	var b BitSet
	for u := range uint(200) {
		b.Set(u)
	}

	count := 0
	for range b.All() {
		count++
		if count == 10 {
			break
		}
	}

	if count != 10 {
		t.Errorf("premature exit, want 10, got %d", count)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()
	var b BitSet

	b.Reset(128)
	b.Set(5)
	b.Set(127)

	b.Reset(64)
	if got := b.Count(); got != 0 {
		t.Errorf("Count after Reset, want 0, got %d", got)
	}
	if b.Test(127) {
		t.Errorf("Test(127) after shrinking Reset, want false")
	}

	b.Set(3)
	b.Reset(1000)
	if b.Test(3) || b.Count() != 0 {
		t.Errorf("growing Reset must clear all bits")
	}
}
