// Copyright (c) 2025 The cachelayout/lookup authors.
// SPDX-License-Identifier: MIT

// Package lookup provides static, read-only key->value lookup structures
// tuned for the regime where the key set is too large for L2 cache but
// fits comfortably in RAM: random point lookups over millions of int64
// keys.
//
// Three layouts share the same build/find contract:
//
//   - Sorted: classical lower-bound binary search. The correctness oracle
//     and latency baseline the other two are measured against.
//   - Eytzinger: an implicit-BFS layout with a branchless descent and
//     arithmetic-address software prefetch. The production choice; it wins
//     because its prefetch target never depends on the load it is
//     prefetching past.
//   - VEB: a van Emde Boas block layout with explicit child indices and
//     dual prefetch. Kept as a pedagogical counter-example: spatial
//     locality alone does not beat an address-independent prefetch chain.
//
// A structure is built once from a slice of Entry and is immutable
// afterward. Build/Find never allocate except during Build itself, take no
// locks, and have no suspension points. A built structure is safe for
// concurrent Find calls from multiple goroutines provided the structure was
// published to those goroutines with a happens-before edge after Build
// returned; concurrent Build and Find on the same variable is a data race.
//
// There is no mutation after Build, no persistence, no range queries, and
// no CLI -- this package is meant to be embedded in a larger program that
// already knows how to sequence the keys it cares about.
package lookup
