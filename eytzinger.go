// Copyright (c) 2025 The cachelayout/lookup authors.
// SPDX-License-Identifier: MIT

package lookup

import (
	"github.com/cachelayout/lookup/internal/bitidx"
	"github.com/cachelayout/lookup/internal/build"
)

// Eytzinger stores keys and values in an implicit binary-search tree laid
// out in breadth-first order: the children of node i live at 2i and 2i+1.
// Index 0 is unused. Find descends the tree with no data-dependent branch,
// so the address of the next level is known before the comparison at the
// current level has even retired -- this is the layout this package is
// built around; see Find below for the why.
type Eytzinger[V any] struct {
	keys []int64 // len n+1, keys[0] unused
	vals []V     // len n+1, vals[0] unused
	n    int
}

// EytzingerBuild sorts entries by key ascending (duplicates resolved by
// first occurrence, see Build) and lays the result out in Eytzinger order.
func EytzingerBuild[V any](entries []Entry[V]) *Eytzinger[V] {
	sortedKeys, sortedVals := build.Normalize(toBuildEntries(entries))
	n := len(sortedKeys)

	e := &Eytzinger[V]{
		keys: make([]int64, n+1),
		vals: make([]V, n+1),
		n:    n,
	}

	pos := 0
	var fill func(i int)
	fill = func(i int) {
		if i > n {
			return
		}
		fill(2 * i)
		e.keys[i] = sortedKeys[pos]
		e.vals[i] = sortedVals[pos]
		pos++
		fill(2*i + 1)
	}
	fill(1)

	return e
}

// Find returns the value stored for key and true, or the zero value and
// false if key is not present.
//
// The descent keeps a 1-based index i starting at 1. At each step it
// prefetches keys[2i] -- an address computable from i alone, with no
// dependency on the comparison about to happen -- then moves to 2i or 2i+1
// depending on whether keys[i] < target, written as arithmetic rather than
// an if/else so the compiler has no branch to mispredict. The loop exits
// with i one step past a leaf; the in-order invariant established by
// EytzingerBuild guarantees the deepest ancestor where the descent last
// went left is the lower-bound candidate, and that ancestor is recovered by
// shifting i right past the trailing run of right-descents recorded in its
// low bits (spec.md §4.3, §9).
func (e *Eytzinger[V]) Find(target int64) (V, bool) {
	var zero V
	if e.n == 0 {
		return zero, false
	}

	i := 1
	for i <= e.n {
		bitidx.PrefetchKeys(e.keys, 2*i)
		i = 2*i + int(bitidx.B2U64(e.keys[i] < target))
	}

	if i == 0 {
		return zero, false
	}
	i >>= bitidx.TrailingZeroRunPlusOne(uint64(i))

	if i >= 1 && i <= e.n && e.keys[i] == target {
		return e.vals[i], true
	}
	return zero, false
}

// Size returns the number of entries stored in the structure.
func (e *Eytzinger[V]) Size() int {
	return e.n
}
