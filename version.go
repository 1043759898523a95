// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b3tree

var (
	version    = "0.1.0" // manually set semantic version number
	commitHash string    // automatically set git commit hash

	// Version is the version string reported by the library.
	Version = func() string {
		if commitHash != "" {
			return version + "-" + commitHash
		}
		return version + "-dev"
	}()
)
