// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reference contains a trivial recursive implementation of the
// tree hash, optimized for code simplicity and meant as a reference that
// is simple to understand. It is built entirely on the public
// decomposition surface of the b3 package, so it doubles as the oracle
// for the equivalence between single-shot hashing and manual
// split/hash/merge recursion.
package reference

import (
	"github.com/ethersphere/b3tree/pkg/b3"
)

// RefHasher computes root digests by direct recursion over the
// canonical tree shape.
type RefHasher struct{}

// NewRefHasher returns a new RefHasher.
func NewRefHasher() *RefHasher {
	return &RefHasher{}
}

// Hash returns the finalized root digest of data.
func (rh *RefHasher) Hash(data []byte) []byte {
	if len(data) <= b3.ChunkSize {
		return b3.RootHashChunk(data)
	}
	l := b3.LeftSubtreeLen(uint64(len(data)))
	left := rh.subtree(data[:l], 0)
	right := rh.subtree(data[l:], l)
	return b3.RootHash(left, right)
}

// subtree returns the non-root chaining value of the span starting at
// the given byte offset of the whole input.
func (rh *RefHasher) subtree(data []byte, offset uint64) []byte {
	if len(data) <= b3.ChunkSize {
		return b3.HashChunk(data, offset/b3.ChunkSize)
	}
	l := b3.LeftSubtreeLen(uint64(len(data)))
	left := rh.subtree(data[:l], offset)
	right := rh.subtree(data[l:], offset+l)
	return b3.ParentCV(left, right)
}
