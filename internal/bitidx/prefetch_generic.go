// Copyright (c) 2025 The cachelayout/lookup authors.
// SPDX-License-Identifier: MIT

//go:build !amd64 || purego

package bitidx

// PrefetchKeys is a documented no-op on architectures without an assembly
// PREFETCHT0 implementation (or when built with the purego tag). Go has no
// portable software-prefetch intrinsic, so the branchless descents in
// eytzinger.go and veb.go still compute the prefetch address and call this
// function on every platform — on amd64 that call does real work (see
// prefetch_amd64.go); everywhere else it costs a cheap, easily-inlined
// function call and nothing else.
func PrefetchKeys(keys []int64, i int) {}

// PrefetchNode is the vEB-node counterpart of PrefetchKeys.
func PrefetchNode[T any](nodes []T, idx uint32) {}
