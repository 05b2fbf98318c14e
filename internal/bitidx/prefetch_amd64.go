// Copyright (c) 2025 The cachelayout/lookup authors.
// SPDX-License-Identifier: MIT

//go:build amd64 && !purego

package bitidx

import "unsafe"

// PrefetchKeys issues a non-faulting PREFETCHT0 hint for keys[i], clamping i
// into [0, len(keys)-1] first so the hint never reads past the slice even
// when the caller passes an arithmetic address that has run off the end of
// an implicit BFS tree (spec.md §9, "prefetch discipline").
func PrefetchKeys(keys []int64, i int) {
	if len(keys) == 0 {
		return
	}
	if i < 0 {
		i = 0
	} else if i >= len(keys) {
		i = len(keys) - 1
	}
	prefetchT0(unsafe.Pointer(&keys[i]))
}

// PrefetchNode issues the same hint for a vEB node slot, used for the dual
// prefetch of both children in veb.go's descent. idx == 0 (the null
// sentinel) is skipped rather than clamped, since prefetching node 0 would
// waste a cache port on a slot Find never dereferences.
func PrefetchNode[T any](nodes []T, idx uint32) {
	if idx == 0 || int(idx) >= len(nodes) {
		return
	}
	prefetchT0(unsafe.Pointer(&nodes[idx]))
}

// prefetchT0Asm is implemented in prefetch_amd64.s.
//
//go:noescape
func prefetchT0Asm(addr unsafe.Pointer)

func prefetchT0(addr unsafe.Pointer) {
	prefetchT0Asm(addr)
}
