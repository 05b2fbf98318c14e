// Copyright (c) 2025 The cachelayout/lookup authors.
// SPDX-License-Identifier: MIT

// Package veborder computes the two permutations the van Emde Boas layout
// needs at build time: the recursive top/bottom block order that gives the
// layout its cache-obliviousness, and the in-order traversal that maps each
// BFS position back to its rank in the sorted key sequence.
package veborder

import "github.com/cachelayout/lookup/internal/bitidx"

// Compute returns, for a complete binary tree numbered in BFS order
// starting at 1 and restricted to indices in [1, n]:
//
//   - bfsToVeb[bfsIdx] = 1-based position of bfsIdx in vEB block order.
//   - bfsToSorted[bfsIdx] = 1-based rank of bfsIdx in an in-order
//     traversal, i.e. its position in the sorted key sequence.
//
// Both returned slices have length n+1; index 0 is unused (0 also doubles
// as the "absent child" sentinel in the vEB node layout).
//
// The vEB order is produced by recursively splitting the conceptual
// complete tree of height h = ceil(log2(n+1)) into a top subtree of height
// ceil(h/2) and 2^ceil(h/2) bottom subtrees of height floor(h/2), emitting
// the top block first and then each bottom block in left-to-right order.
// BFS indices greater than n are skipped (and, since every descendant of an
// out-of-range index is itself out of range, whole subtrees rooted past n
// are pruned rather than walked node by node).
func Compute(n int) (bfsToVeb, bfsToSorted []uint32) {
	bfsToVeb = make([]uint32, n+1)
	bfsToSorted = make([]uint32, n+1)

	h := bitidx.TreeHeight(n)

	vebPos := 0
	walkVEBOrder(1, h, n, func(bfsIdx int) {
		vebPos++
		bfsToVeb[bfsIdx] = uint32(vebPos)
	})

	sortedPos := 0
	walkInOrder(1, n, func(bfsIdx int) {
		sortedPos++
		bfsToSorted[bfsIdx] = uint32(sortedPos)
	})

	return bfsToVeb, bfsToSorted
}

func walkVEBOrder(root, height, n int, emit func(bfsIdx int)) {
	if height == 0 || root > n {
		return
	}
	if height == 1 {
		emit(root)
		return
	}

	topHeight := (height + 1) / 2 // ceil(h/2)
	botHeight := height - topHeight

	walkVEBOrder(root, topHeight, n, emit)

	bottomCount := 1 << topHeight
	for k := range bottomCount {
		childRoot := root*bottomCount + k
		walkVEBOrder(childRoot, botHeight, n, emit)
	}
}

func walkInOrder(bfsIdx, n int, emit func(bfsIdx int)) {
	if bfsIdx > n {
		return
	}
	walkInOrder(2*bfsIdx, n, emit)
	emit(bfsIdx)
	walkInOrder(2*bfsIdx+1, n, emit)
}
