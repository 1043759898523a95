// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b3

import (
	"github.com/ethersphere/b3tree/pkg/arena"
)

// HashSubtreeRegion is the zero-copy variant of HashSubtree: it reads
// the first size bytes of a leased arena region in place, without
// copying them out. The region must remain unreleased and must not be
// mutated for the duration of the call.
func HashSubtreeRegion(r *arena.Region, size int, inputOffset uint64) []byte {
	return HashSubtree(r.Bytes()[:size], inputOffset)
}
