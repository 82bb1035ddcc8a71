// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package apter

import (
	"fmt"
	"io"
	"strings"

	"github.com/gaissmai/apter/internal/value"
)

// String returns a hierarchical tree diagram of the elements
// as string, just a wrapper for [Tree.Fprint].
// If Fprint returns an error, String panics.
func (t *Tree[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the elements
// with default formatted payload V to w.
//
// Roots and children are printed in index order, every line shows the
// index and the value. Values of a zero-sized type are omitted.
//
//	▼
//	├─ 0 (etc)
//	│  ├─ 1 (hosts)
//	│  └─ 2 (ssh)
//	│     └─ 4 (sshd_config)
//	└─ 3 (usr)
//
// Only elements reachable from a root are printed. Elements with a parent
// out of range, or on a cycle, are left out, see [Tree.Validate].
func (t *Tree[V]) Fprint(w io.Writer) error {
	if w == nil {
		return fmt.Errorf("nil writer")
	}
	if t.IsEmpty() {
		return nil
	}

	roots, kids := t.adjacency()
	if len(roots) == 0 {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	return t.fprintRec(w, roots, kids, "", value.IsZST[V]())
}

// adjacency collects the roots and the children of every element
// in one pass, in index order.
func (t *Tree[V]) adjacency() (roots []int, kids [][]int) {
	n := t.Len()
	kids = make([][]int, n)

	for idx, p := range t.parents {
		switch {
		case p == NoParent:
			roots = append(roots, idx)
		case p >= 0 && p < n:
			kids[p] = append(kids[p], idx)
		}
	}

	return roots, kids
}

// fprintRec prints the elements in list and rec-descends into their children.
func (t *Tree[V]) fprintRec(w io.Writer, list []int, kids [][]int, pad string, isZST bool) error {
	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	for i, idx := range list {
		// ... treat last kid special
		if i == len(list)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		var err error
		if isZST {
			_, err = fmt.Fprintf(w, "%s%d\n", pad+glyphe, idx)
		} else {
			_, err = fmt.Fprintf(w, "%s%d (%v)\n", pad+glyphe, idx, t.values[idx])
		}
		if err != nil {
			return err
		}

		if err := t.fprintRec(w, kids[idx], kids, pad+spacer, isZST); err != nil {
			return err
		}
	}

	return nil
}
