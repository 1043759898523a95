// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b3_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/ethersphere/b3tree/pkg/b3"
)

// TestMergeOrderSignificant tests that merging (A,B) differs from
// merging (B,A) for distinct children, in both positions.
func TestMergeOrderSignificant(t *testing.T) {
	a := b3.HashChunk(randomBytes(t, 10, b3.ChunkSize), 0)
	b := b3.HashChunk(randomBytes(t, 11, b3.ChunkSize), 1)

	if bytes.Equal(b3.ParentCV(a, b), b3.ParentCV(b, a)) {
		t.Fatal("ParentCV is commutative")
	}
	if bytes.Equal(b3.RootHash(a, b), b3.RootHash(b, a)) {
		t.Fatal("RootHash is commutative")
	}
}

// TestMergeDomainSeparation tests that the root rule never coincides
// with the non-root rule for the same children.
func TestMergeDomainSeparation(t *testing.T) {
	a := b3.HashChunk(randomBytes(t, 12, b3.ChunkSize), 0)
	b := b3.HashChunk(randomBytes(t, 13, b3.ChunkSize), 1)

	if bytes.Equal(b3.RootHash(a, b), b3.ParentCV(a, b)) {
		t.Fatal("root digest equals parent chaining value")
	}
}

// TestMergeLengthContract tests that merge arguments must be exactly 32
// bytes; anything else is a fatal caller defect.
func TestMergeLengthContract(t *testing.T) {
	ok := b3.HashChunk(nil, 0)
	for _, n := range []int{0, 31, 33, 64} {
		bad := make([]byte, n)
		t.Run(fmt.Sprintf("%d_byte_argument", n), func(t *testing.T) {
			expectPanic(t, func() { b3.ParentCV(bad, ok) })
			expectPanic(t, func() { b3.ParentCV(ok, bad) })
			expectPanic(t, func() { b3.RootHash(bad, ok) })
			expectPanic(t, func() { b3.RootHash(ok, bad) })
		})
	}
}

// TestMergeDeterminism tests that merges are pure functions of their
// arguments.
func TestMergeDeterminism(t *testing.T) {
	a := b3.HashChunk(randomBytes(t, 14, b3.ChunkSize), 0)
	b := b3.HashChunk(randomBytes(t, 15, b3.ChunkSize), 1)

	parent := b3.ParentCV(a, b)
	root := b3.RootHash(a, b)
	for i := 0; i < 3; i++ {
		if next := b3.ParentCV(a, b); !bytes.Equal(parent, next) {
			t.Fatalf("nondeterministic parent: %x then %x", parent, next)
		}
		if next := b3.RootHash(a, b); !bytes.Equal(root, next) {
			t.Fatalf("nondeterministic root: %x then %x", root, next)
		}
	}
}
