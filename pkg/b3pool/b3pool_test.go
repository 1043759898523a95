// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b3pool_test

import (
	"bytes"
	"testing"

	"github.com/ethersphere/b3tree/pkg/b3"
	"github.com/ethersphere/b3tree/pkg/b3pool"
	"golang.org/x/sync/errgroup"
)

// TestPoolRoundtrip tests lease and release against the shared arena.
func TestPoolRoundtrip(t *testing.T) {
	const size = 4096
	r := b3pool.Alloc(size)
	defer b3pool.Free(r, size)

	buf := r.Bytes()
	for i := range buf {
		buf[i] = byte(i)
	}
	got := b3.HashSubtreeRegion(r, size, 0)
	if expected := b3.HashSubtree(buf, 0); !bytes.Equal(got, expected) {
		t.Fatalf("expected %x, got %x", expected, got)
	}
}

// TestPoolConcurrentUse tests that the shared arena serves concurrent
// users up to its capacity without mixing regions up.
func TestPoolConcurrentUse(t *testing.T) {
	const cycles = 4 * b3pool.Capacity

	var eg errgroup.Group
	for i := 0; i < cycles; i++ {
		i := i
		eg.Go(func() error {
			size := 512 + i
			r := b3pool.Alloc(size)
			defer b3pool.Free(r, size)

			buf := r.Bytes()
			for j := range buf {
				buf[j] = byte(i)
			}
			// the region must still hold this goroutine's bytes
			for j := range buf {
				if buf[j] != byte(i) {
					t.Errorf("cycle %d: region mutated concurrently", i)
					break
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatal(err)
	}
}
