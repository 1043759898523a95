// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b3

import (
	"math/bits"
)

// LeftSubtreeLen returns the number of bytes assigned to the left child
// of a subtree spanning totalLen bytes. The left child receives the
// largest power-of-two number of whole chunks that leaves at least one
// byte for the right child. Applied recursively this yields a single
// canonical tree shape per input length, independent of the order in
// which subtrees are hashed.
//
// Only subtrees longer than one chunk have a split point; calling with
// totalLen <= ChunkSize is a caller defect and panics.
func LeftSubtreeLen(totalLen uint64) uint64 {
	if totalLen <= ChunkSize {
		panic("b3: left subtree of single-chunk span")
	}
	fullChunks := (totalLen - 1) / ChunkSize
	return largestPow2(fullChunks) * ChunkSize
}

// largestPow2 returns the largest power of two that is <= n, for n >= 1.
func largestPow2(n uint64) uint64 {
	return uint64(1) << (63 - bits.LeadingZeros64(n))
}
