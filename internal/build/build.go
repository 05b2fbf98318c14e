// Copyright (c) 2025 The cachelayout/lookup authors.
// SPDX-License-Identifier: MIT

// Package build implements the normalization step every lookup-structure
// variant runs before laying out its own in-memory index: sort by key
// ascending, then deduplicate by first occurrence.
package build

import "slices"

// Entry is an input (key, value) pair.
type Entry[V any] struct {
	Key int64
	Val V
}

// Normalize sorts entries by Key ascending and deduplicates equal keys,
// keeping the value of the first occurrence in the caller's input order.
// The input slice is never mutated; the two returned slices are freshly
// allocated and always non-nil, even for empty input.
//
// The sort is stable (slices.SortStableFunc) specifically so that "first
// occurrence" has an unambiguous, input-order meaning and two Normalize
// calls over the same input always agree -- the determinism property in
// spec.md §8 would otherwise depend on the quality-of-implementation of an
// unstable sort's tie-breaking.
func Normalize[V any](entries []Entry[V]) (keys []int64, vals []V) {
	sorted := append(make([]Entry[V], 0, len(entries)), entries...)
	slices.SortStableFunc(sorted, func(a, b Entry[V]) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		default:
			return 0
		}
	})

	keys = make([]int64, 0, len(sorted))
	vals = make([]V, 0, len(sorted))

	for i, e := range sorted {
		if i > 0 && e.Key == sorted[i-1].Key {
			continue
		}
		keys = append(keys, e.Key)
		vals = append(vals, e.Val)
	}

	return keys, vals
}
