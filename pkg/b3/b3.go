// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b3

import (
	"encoding/binary"
)

const (
	// ChunkSize is the maximum number of bytes in a leaf chunk. It is a
	// fixed protocol constant: changing it changes every resulting
	// digest.
	ChunkSize = 1024

	// HashSize is the size of chaining values and root digests in bytes.
	HashSize = 32
)

// ChunkLen returns ChunkSize for hosts that keep their own splitting
// logic consistent across a serialization boundary.
func ChunkLen() uint32 {
	return ChunkSize
}

// cvBytes serializes a chaining value to its 32-byte wire form.
func cvBytes(cv [8]uint32) []byte {
	out := make([]byte, HashSize)
	for i, v := range cv {
		binary.LittleEndian.PutUint32(out[4*i:], v)
	}
	return out
}

// bytesToCV deserializes a 32-byte chaining value. Length is validated
// by the callers.
func bytesToCV(b []byte) (cv [8]uint32) {
	for i := range cv {
		cv[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return cv
}
