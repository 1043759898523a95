// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package b3 implements the combination logic of the BLAKE3 tree hash.
//
// Input is split into chunks of at most ChunkSize bytes. Each chunk is
// hashed independently into a 32-byte chaining value, and sibling
// chaining values are merged bottom-up into a single root digest. The
// canonical split rule (LeftSubtreeLen) fixes the shape of the tree for
// any given input length, so the same input produces the same root no
// matter how the work is distributed across workers.
//
// Chaining values are never root digests: root finalization is a
// distinct rule applied exactly once, at the top of the whole tree.
// HashChunk, HashSubtree and ParentCV produce chaining values only,
// while RootHash, RootHashChunk and Sum produce finalized roots. The
// two can never collide, which is what prevents a subtree digest from
// being passed off as the digest of a complete input.
//
// Two ways of computing a root are provided:
//
// Sum is the sequential single-shot implementation and the reference
// semantics that any manual decomposition must reproduce bit-for-bit.
//
// SumParallel hashes aligned groups of chunks on concurrent workers and
// folds the group chaining values along the canonical tree shape.
//
// All hashing functions are pure and synchronous. Scheduling is left
// entirely to the caller: chunk and subtree hashes may be computed
// concurrently, in any order, as long as merges follow the canonical
// shape.
package b3
