// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package b3pool provides easy access to a shared input-buffer arena
// for zero-copy tree hashing.
package b3pool

import (
	"github.com/ethersphere/b3tree/pkg/arena"
)

// Capacity is the number of regions the shared arena allows to be
// outstanding at once.
const Capacity = 8

var instance *arena.Arena

func init() {
	instance = arena.New(Capacity)
}

// Alloc leases an input region from the shared arena.
// Regions must be surrendered with Free when hashing is done.
func Alloc(size int) *arena.Region {
	return instance.Alloc(size)
}

// Free surrenders a region back to the shared arena.
func Free(r *arena.Region, size int) {
	instance.Free(r, size)
}
