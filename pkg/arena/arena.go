// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arena provides leased input buffers for zero-copy hashing.
//
// An Arena hands out exclusively owned, fixed-size writable regions and
// takes them back through an explicit, size-checked release. A bounded
// number of regions may be outstanding at once; further allocations
// block until a region is released. Released storage is recycled by
// size class.
//
// The lease contract is alloc, write, hash, free, in that order, per
// region. The arena itself is safe for concurrent use; an individual
// region is not, and must not be mutated while a hash call is reading
// it. Misuse that the original pointer contract leaves undefined --
// releasing twice, releasing with the wrong size, touching a region
// after release -- is detected here and treated as a programmer defect:
// it panics rather than returning an error.
package arena

import (
	"sync/atomic"

	pool "github.com/libp2p/go-buffer-pool"
)

// Arena leases fixed-size writable input regions.
type Arena struct {
	slots chan struct{}   // lease tokens, bounds outstanding regions
	p     pool.BufferPool // backing storage, bucketed by size class
}

// New creates an arena allowing up to capacity outstanding regions.
func New(capacity int) *Arena {
	if capacity < 1 {
		panic("arena: capacity must be positive")
	}
	a := &Arena{
		slots: make(chan struct{}, capacity),
	}
	for i := 0; i < capacity; i++ {
		a.slots <- struct{}{}
	}
	return a
}

// Alloc leases a region of exactly size bytes, blocking while the
// arena's full capacity is outstanding. The region's contents are
// unspecified; the caller owns it exclusively and must write before
// hashing.
func (a *Arena) Alloc(size int) *Region {
	<-a.slots
	return &Region{
		buf:  a.p.Get(size),
		size: size,
		a:    a,
	}
}

// Free surrenders a leased region back to the arena. size must equal
// the size the region was allocated with, the region must belong to
// this arena, and it must not have been released before; any other use
// panics.
func (a *Arena) Free(r *Region, size int) {
	if r.a != a {
		panic("arena: region belongs to a different arena")
	}
	if size != r.size {
		panic("arena: release size does not match allocation size")
	}
	if !atomic.CompareAndSwapInt32(&r.released, 0, 1) {
		panic("arena: region released twice")
	}
	a.p.Put(r.buf)
	r.buf = nil
	a.slots <- struct{}{}
}

// Capacity returns the maximum number of outstanding regions.
func (a *Arena) Capacity() int {
	return cap(a.slots)
}

// Region is a leased writable memory region. It is exclusively owned by
// its allocator between Alloc and Free and must not be used from more
// than one goroutine at a time.
type Region struct {
	buf      []byte
	size     int
	a        *Arena
	released int32 // atomic; 0 leased, 1 released
}

// Bytes returns the writable view of the region. It panics once the
// region has been released.
func (r *Region) Bytes() []byte {
	if atomic.LoadInt32(&r.released) != 0 {
		panic("arena: use of released region")
	}
	return r.buf
}

// Size returns the number of bytes the region was allocated with.
func (r *Region) Size() int {
	return r.size
}
