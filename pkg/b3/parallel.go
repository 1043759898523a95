// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b3

import (
	"golang.org/x/sync/errgroup"
)

const (
	// groupChunks is the grain of parallel hashing: a power of two, so
	// every aligned group is a complete subtree of the canonical tree.
	groupChunks = 8
	groupSize   = groupChunks * ChunkSize
)

// SumParallel computes the same root digest as Sum, hashing aligned
// groups of chunks on up to workers concurrent goroutines. Inputs of at
// most one group, or workers < 2, fall back to the sequential path.
func SumParallel(data []byte, workers int) []byte {
	if workers < 2 || len(data) <= groupSize {
		return Sum(data)
	}

	ngroups := (len(data) + groupSize - 1) / groupSize
	cvs := make([][8]uint32, ngroups)

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := 0; i < ngroups; i++ {
		i := i
		g.Go(func() error {
			start := i * groupSize
			end := start + groupSize
			if end > len(data) {
				end = len(data)
			}
			n := subtreeNode(data[start:end], uint64(start))
			cvs[i] = n.chainingValue()
			return nil
		})
	}
	_ = g.Wait() // group hashing cannot fail

	// The input is longer than one group, so the top-level split falls
	// on a group boundary and the group chaining values fold along the
	// canonical shape.
	total := uint64(len(data))
	l := LeftSubtreeLen(total)
	left := foldGroups(cvs[:l/groupSize], l)
	right := foldGroups(cvs[l/groupSize:], total-l)
	n := parentNode(left, right)
	return n.rootSum()
}

// foldGroups merges consecutive group chaining values covering totalLen
// bytes into the chaining value of their common subtree.
func foldGroups(cvs [][8]uint32, totalLen uint64) [8]uint32 {
	if len(cvs) == 1 {
		return cvs[0]
	}
	l := LeftSubtreeLen(totalLen)
	k := l / groupSize
	left := foldGroups(cvs[:k], l)
	right := foldGroups(cvs[k:], totalLen-l)
	n := parentNode(left, right)
	return n.chainingValue()
}
