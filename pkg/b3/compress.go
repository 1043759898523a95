// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b3

import (
	"encoding/binary"
	"math/bits"
)

// The BLAKE3 compression function and the node finalization rules built
// on top of it. The function is treated as an opaque primitive by the
// rest of the package: everything above this file only deals in chunk
// nodes, parent nodes and their chaining values.

const blockSize = 64

const (
	flagChunkStart uint32 = 1 << 0
	flagChunkEnd   uint32 = 1 << 1
	flagParent     uint32 = 1 << 2
	flagRoot       uint32 = 1 << 3
)

var iv = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

// msgPermutation reorders the message words between rounds.
var msgPermutation = [16]int{2, 6, 3, 10, 7, 0, 4, 13, 1, 11, 12, 5, 9, 14, 15, 8}

func g(v *[16]uint32, a, b, c, d int, x, y uint32) {
	v[a] += v[b] + x
	v[d] = bits.RotateLeft32(v[d]^v[a], -16)
	v[c] += v[d]
	v[b] = bits.RotateLeft32(v[b]^v[c], -12)
	v[a] += v[b] + y
	v[d] = bits.RotateLeft32(v[d]^v[a], -8)
	v[c] += v[d]
	v[b] = bits.RotateLeft32(v[b]^v[c], -7)
}

func round(v *[16]uint32, m *[16]uint32) {
	// columns
	g(v, 0, 4, 8, 12, m[0], m[1])
	g(v, 1, 5, 9, 13, m[2], m[3])
	g(v, 2, 6, 10, 14, m[4], m[5])
	g(v, 3, 7, 11, 15, m[6], m[7])
	// diagonals
	g(v, 0, 5, 10, 15, m[8], m[9])
	g(v, 1, 6, 11, 12, m[10], m[11])
	g(v, 2, 7, 8, 13, m[12], m[13])
	g(v, 3, 4, 9, 14, m[14], m[15])
}

func permute(m *[16]uint32) {
	var p [16]uint32
	for i, s := range msgPermutation {
		p[i] = m[s]
	}
	*m = p
}

// compress runs the 7-round compression function over one 64-byte block.
func compress(cv *[8]uint32, block *[16]uint32, counter uint64, blockLen, flags uint32) [16]uint32 {
	v := [16]uint32{
		cv[0], cv[1], cv[2], cv[3],
		cv[4], cv[5], cv[6], cv[7],
		iv[0], iv[1], iv[2], iv[3],
		uint32(counter), uint32(counter >> 32), blockLen, flags,
	}
	m := *block

	round(&v, &m)
	for i := 1; i < 7; i++ {
		permute(&m)
		round(&v, &m)
	}

	for i := 0; i < 8; i++ {
		v[i] ^= v[i+8]
		v[i+8] ^= cv[i]
	}
	return v
}

// bytesToWords loads a 64-byte block as 16 little-endian words.
func bytesToWords(b []byte, w *[16]uint32) {
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
}

// node is the final, not yet compressed block of a chunk or a parent.
// Keeping the finalization pending lets the same node be compressed with
// or without the root flag, so the root rule lives in exactly one place.
type node struct {
	cv       [8]uint32
	block    [16]uint32
	counter  uint64
	blockLen uint32
	flags    uint32
}

// chainingValue compresses the node in non-root position.
func (n *node) chainingValue() (cv [8]uint32) {
	v := compress(&n.cv, &n.block, n.counter, n.blockLen, n.flags)
	copy(cv[:], v[:8])
	return cv
}

// rootSum compresses the node in root position and returns the digest.
// Root finalization always runs at counter zero.
func (n *node) rootSum() []byte {
	v := compress(&n.cv, &n.block, 0, n.blockLen, n.flags|flagRoot)
	out := make([]byte, HashSize)
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(out[4*i:], v[i])
	}
	return out
}

// chunkNode folds the blocks of a single chunk and returns its output
// node. counter is the chunk index within the whole input.
func chunkNode(data []byte, counter uint64) node {
	cv := iv
	flags := flagChunkStart
	for len(data) > blockSize {
		var block [16]uint32
		bytesToWords(data[:blockSize], &block)
		v := compress(&cv, &block, counter, blockSize, flags)
		copy(cv[:], v[:8])
		flags = 0
		data = data[blockSize:]
	}
	// the final block is zero padded, its true length is carried in blockLen
	n := node{
		cv:       cv,
		counter:  counter,
		blockLen: uint32(len(data)),
		flags:    flags | flagChunkEnd,
	}
	var buf [blockSize]byte
	copy(buf[:], data)
	bytesToWords(buf[:], &n.block)
	return n
}

// parentNode pairs two sibling chaining values into their parent's
// output node.
func parentNode(left, right [8]uint32) node {
	n := node{
		cv:       iv,
		blockLen: blockSize,
		flags:    flagParent,
	}
	copy(n.block[:8], left[:])
	copy(n.block[8:], right[:])
	return n
}

// subtreeNode recursively hashes a contiguous span starting at the given
// byte offset of the whole input and returns its output node. The offset
// must be chunk aligned.
func subtreeNode(data []byte, inputOffset uint64) node {
	if len(data) <= ChunkSize {
		return chunkNode(data, inputOffset/ChunkSize)
	}
	l := LeftSubtreeLen(uint64(len(data)))
	left := subtreeNode(data[:l], inputOffset)
	right := subtreeNode(data[l:], inputOffset+l)
	lcv := left.chainingValue()
	rcv := right.chainingValue()
	return parentNode(lcv, rcv)
}
