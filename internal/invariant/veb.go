// Copyright (c) 2025 The cachelayout/lookup authors.
// SPDX-License-Identifier: MIT

// Package invariant implements debug-time validators for the structural
// invariants spec.md §3 places on the vEB layout. They are exercised from
// tests, never from Find's hot path.
package invariant

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Node is the minimal view of a vEB node the validators need; it mirrors
// the unexported vebNode type in the lookup package without importing it
// (avoiding an import cycle between the package under test and its own
// internal test helper).
type Node struct {
	Key      int64
	Children [2]uint32 // 0 = absent
}

// CheckVEB validates two of the vEB invariants from spec.md §3 against a
// node slice (index 0 unused) and its declared root:
//
//   - reachability: every non-sentinel node is reachable from root.
//   - BST property: for every node, all keys in its left subtree are <= its
//     key and all keys in its right subtree are > its key.
//
// The layout property (contiguous vEB index range per recursive block) is
// not checked here. It returns the first violation found, or nil if the
// tree is valid.
func CheckVEB(nodes []Node, root uint32) error {
	if len(nodes) == 0 {
		if root != 0 {
			return fmt.Errorf("root %d set on an empty node slice", root)
		}
		return nil
	}

	reached := bitset.New(uint(len(nodes)))
	if err := checkBST(nodes, root, reached, nil, nil); err != nil {
		return err
	}

	for i := uint32(1); i < uint32(len(nodes)); i++ {
		if !reached.Test(uint(i)) {
			return fmt.Errorf("node %d is not reachable from root %d", i, root)
		}
	}
	return nil
}

func checkBST(nodes []Node, idx uint32, reached *bitset.BitSet, lo, hi *int64) error {
	if idx == 0 {
		return nil
	}
	if int(idx) >= len(nodes) {
		return fmt.Errorf("child index %d out of range (n=%d)", idx, len(nodes)-1)
	}
	if reached.Test(uint(idx)) {
		return fmt.Errorf("node %d reachable via more than one path (not a tree)", idx)
	}
	reached.Set(uint(idx))

	key := nodes[idx].Key
	if lo != nil && key <= *lo {
		return fmt.Errorf("node %d key %d violates lower bound %d", idx, key, *lo)
	}
	if hi != nil && key > *hi {
		return fmt.Errorf("node %d key %d violates upper bound %d", idx, key, *hi)
	}

	left, right := nodes[idx].Children[0], nodes[idx].Children[1]
	if err := checkBST(nodes, left, reached, lo, &key); err != nil {
		return err
	}
	return checkBST(nodes, right, reached, &key, hi)
}
