// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b3

// Sum computes the finalized root digest of data in one call. Inputs of
// at most one chunk are finalized directly as a root leaf; longer inputs
// are split at the canonical boundary, hashed recursively and merged
// with the root rule applied once at the top.
//
// Sum defines the result that any manual decomposition through
// LeftSubtreeLen, HashChunk, HashSubtree, ParentCV and RootHash must
// reproduce bit for bit.
func Sum(data []byte) []byte {
	n := subtreeNode(data, 0)
	return n.rootSum()
}
