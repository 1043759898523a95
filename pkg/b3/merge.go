// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b3

// position selects the finalization rule of a merge. The root rule is
// cryptographically distinguished from the non-root rule so that a
// chaining value can never substitute for a root digest, or vice versa.
type position int

const (
	nonRoot position = iota
	root
)

// merge combines two sibling chaining values. All merges in the package
// funnel through here, so the domain separation between the two
// positions is decided in exactly one place.
func merge(left, right []byte, pos position) []byte {
	if len(left) != HashSize {
		panic("b3: left chaining value must be 32 bytes")
	}
	if len(right) != HashSize {
		panic("b3: right chaining value must be 32 bytes")
	}
	n := parentNode(bytesToCV(left), bytesToCV(right))
	if pos == root {
		return n.rootSum()
	}
	cv := n.chainingValue()
	return cvBytes(cv)
}

// ParentCV merges two sibling chaining values into their parent's
// non-root chaining value. The merge is order sensitive: left must be
// the left child's value. Arguments that are not exactly 32 bytes are a
// caller defect and panic.
func ParentCV(left, right []byte) []byte {
	return merge(left, right, nonRoot)
}

// RootHash merges the two top-level chaining values of a multi-chunk
// input into the finalized root digest. It must be used exactly once per
// input, at the single top-level merge of the whole tree. Arguments that
// are not exactly 32 bytes are a caller defect and panic.
func RootHash(left, right []byte) []byte {
	return merge(left, right, root)
}
