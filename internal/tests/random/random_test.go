// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package random

import (
	"math/rand/v2"
	"testing"
)

func TestParents(t *testing.T) {
	prng := rand.New(rand.NewPCG(0, 0))

	for _, n := range []int{0, 1, 2, 10, 1_000} {
		parents := Parents(prng, n)

		if len(parents) != n {
			t.Fatalf("Parents(%d), got len %d", n, len(parents))
		}

		for i, p := range parents {
			if i == 0 && p != NoParent {
				t.Errorf("first element must be a root, got parent %d", p)
			}

			// Must point backwards or be a root
			if p != NoParent && (p < 0 || p >= i) {
				t.Errorf("element %d has forward or invalid parent %d", i, p)
			}
		}
	}
}

func TestParentsDeterministic(t *testing.T) {
	a := Parents(rand.New(rand.NewPCG(42, 42)), 100)
	b := Parents(rand.New(rand.NewPCG(42, 42)), 100)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed, different parents at %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestDeepParents(t *testing.T) {
	prng := rand.New(rand.NewPCG(0, 0))
	parents := DeepParents(prng, 1_000)

	roots := 0
	for i, p := range parents {
		if p == NoParent {
			roots++
			continue
		}
		if p >= i || p < i-4 {
			t.Errorf("element %d: parent %d not within the last 4", i, p)
		}
	}

	if roots != 1 {
		t.Errorf("DeepParents, want exactly 1 root, got %d", roots)
	}
}
