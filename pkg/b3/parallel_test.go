// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b3_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/ethersphere/b3tree/pkg/b3"
	"gitlab.com/nolash/go-mockbytes"
	"golang.org/x/sync/errgroup"
)

// TestSumParallel tests that the concurrent hasher reproduces the
// sequential digest bit for bit, across worker counts and input lengths
// around the parallel grain.
func TestSumParallel(t *testing.T) {
	lengths := []int{0, 1, 1024, 8192, 8193, 16384, 65536, 65537, 100000, 1 << 20}
	for _, workers := range []int{1, 2, 4, 8} {
		for _, n := range lengths {
			t.Run(fmt.Sprintf("workers_%d_%d_bytes", workers, n), func(t *testing.T) {
				data := randomBytes(t, n, n)
				expected := b3.Sum(data)
				if got := b3.SumParallel(data, workers); !bytes.Equal(got, expected) {
					t.Fatalf("parallel digest: expected %x, got %x", expected, got)
				}
			})
		}
	}
}

// TestSumParallelConcurrentUse tests that concurrent SumParallel calls
// over distinct inputs do not interfere.
func TestSumParallelConcurrentUse(t *testing.T) {
	const cycles = 32
	var eg errgroup.Group
	for i := 0; i < cycles; i++ {
		i := i
		eg.Go(func() error {
			g := mockbytes.New(i, mockbytes.MockTypeStandard)
			data, err := g.RandomBytes(65536 + i)
			if err != nil {
				return err
			}
			expected := b3.Sum(data)
			if got := b3.SumParallel(data, 4); !bytes.Equal(got, expected) {
				return fmt.Errorf("cycle %d: expected %x, got %x", i, expected, got)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatal(err)
	}
}
