// Copyright (c) 2025 The cachelayout/lookup authors.
// SPDX-License-Identifier: MIT

package lookup

import "errors"

// ErrCapacityExceeded is returned by VEBBuild when the node count would
// overflow the 32-bit index used by the vEB variant's child links
// (N+1 > 2^32). The sorted and Eytzinger variants have no such limit below
// host memory and never return an error from Build.
var ErrCapacityExceeded = errors.New("lookup: node count exceeds 32-bit index space")
