// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b3

// HashChunk hashes a single leaf chunk into its non-root chaining value.
// data holds the bytes of the chunk at byte offset chunkIndex*ChunkSize
// of the whole input.
//
// Passing more than ChunkSize bytes, or an index inconsistent with the
// chunk's true offset, is not detected: the call still returns a value,
// but one that belongs to no canonical tree.
func HashChunk(data []byte, chunkIndex uint64) []byte {
	n := chunkNode(data, chunkIndex)
	cv := n.chainingValue()
	return cvBytes(cv)
}

// HashSubtree hashes a contiguous span covering one or more chunks into
// its non-root chaining value. inputOffset is the chunk-aligned byte
// offset of the span within the whole input.
//
// The result is a chaining value even when the span is the entire input;
// root finalization is a separate explicit step (RootHash or
// RootHashChunk).
func HashSubtree(data []byte, inputOffset uint64) []byte {
	n := subtreeNode(data, inputOffset)
	cv := n.chainingValue()
	return cvBytes(cv)
}

// RootHashChunk finalizes a single-chunk input directly as a root
// digest. This is the degenerate tree of one leaf and no merges; for
// anything longer than ChunkSize use chunk hashing plus RootHash at the
// top, or Sum.
func RootHashChunk(data []byte) []byte {
	n := chunkNode(data, 0)
	return n.rootSum()
}
