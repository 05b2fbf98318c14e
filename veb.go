// Copyright (c) 2025 The cachelayout/lookup authors.
// SPDX-License-Identifier: MIT

package lookup

import (
	"math"

	"github.com/cachelayout/lookup/internal/bitidx"
	"github.com/cachelayout/lookup/internal/build"
	"github.com/cachelayout/lookup/internal/veborder"
)

// vebNode is a 16-byte node record: an 8-byte key and two 4-byte child
// indices packed as a two-element array so the branch direction in Find can
// index into it directly. children[0] is the left child (keys <= node key),
// children[1] is the right child; 0 means "absent".
type vebNode struct {
	key      int64
	children [2]uint32
}

// VEB is a van Emde Boas block layout: a recursive top/bottom decomposition
// of a complete binary search tree that clusters each block's nodes into
// contiguous memory regardless of cache-line size. Kept as a pedagogical
// counter-example to Eytzinger -- its prefetches are dependent on the load
// they are meant to hide, which is the performance problem spec.md §9
// documents.
type VEB[V any] struct {
	nodes   []vebNode // index 0 is the null sentinel
	vals    []V
	rootIdx uint32
}

// VEBBuild sorts entries by key ascending (duplicates resolved by first
// occurrence, see Build) and lays the result out as a vEB tree. It returns
// ErrCapacityExceeded if the node count would overflow the 32-bit index
// used for child links.
func VEBBuild[V any](entries []Entry[V]) (*VEB[V], error) {
	sortedKeys, sortedVals := build.Normalize(toBuildEntries(entries))
	n := len(sortedKeys)

	if uint64(n) > math.MaxUint32 {
		return nil, ErrCapacityExceeded
	}

	bfsToVeb, bfsToSorted := veborder.Compute(n)

	v := &VEB[V]{
		nodes: make([]vebNode, n+1),
		vals:  make([]V, n+1),
	}

	for bfs := 1; bfs <= n; bfs++ {
		vebIdx := bfsToVeb[bfs]
		sortedIdx := bfsToSorted[bfs] - 1

		v.nodes[vebIdx].key = sortedKeys[sortedIdx]
		v.vals[vebIdx] = sortedVals[sortedIdx]

		leftBFS, rightBFS := 2*bfs, 2*bfs+1
		if leftBFS <= n {
			v.nodes[vebIdx].children[0] = bfsToVeb[leftBFS]
		}
		if rightBFS <= n {
			v.nodes[vebIdx].children[1] = bfsToVeb[rightBFS]
		}
	}

	if n > 0 {
		v.rootIdx = bfsToVeb[1]
	}

	return v, nil
}

// Find returns the value stored for key and true, or the zero value and
// false if key is not present.
//
// candidate tracks the deepest node visited whose key is >= target, i.e.
// the lower-bound; it is updated with a branchless conditional select
// rather than an if, and curr advances via a branchless select over the
// current node's two children. The two prefetches issued each iteration
// are for tree[curr]'s children -- unlike Eytzinger's arithmetic prefetch,
// these addresses depend on the load of tree[curr] that is still in
// flight, which is the dependent-load chain spec.md §9 identifies as the
// reason this layout does not beat Eytzinger despite its better asymptotic
// cache-miss bound.
func (v *VEB[V]) Find(target int64) (V, bool) {
	var zero V

	curr, candidate := v.rootIdx, uint32(0)
	for curr != 0 {
		node := &v.nodes[curr]
		bitidx.PrefetchNode(v.nodes, node.children[0])
		bitidx.PrefetchNode(v.nodes, node.children[1])

		candidate = bitidx.CondU32(target <= node.key, curr, candidate)
		curr = node.children[bitidx.B2U64(node.key < target)]
	}

	if candidate != 0 && v.nodes[candidate].key == target {
		return v.vals[candidate], true
	}
	return zero, false
}

// Size returns the number of entries stored in the structure.
func (v *VEB[V]) Size() int {
	if len(v.nodes) == 0 {
		return 0
	}
	return len(v.nodes) - 1
}
