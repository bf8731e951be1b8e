// Copyright 2026 The Diskfill Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package filler

import (
	"errors"
	"path/filepath"
)

// ErrUnsupported is returned by DiskUsage on platforms where free space
// cannot be queried.
var ErrUnsupported = errors.New("disk usage is not supported on this platform")

// Usage is the capacity of a filesystem, in bytes.
type Usage struct {
	Total uint64
	Used  uint64
	// Free is the space available to the current user.
	Free uint64
}

// DiskUsage returns the usage of the filesystem containing dir.
func DiskUsage(dir string) (Usage, error) {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return diskUsage(dir)
}

// blockUsage converts filesystem block counts to a Usage. avail goes negative
// when root has eaten into the reserved blocks, which leaves nothing free for
// anyone else.
func blockUsage(bsize, blocks, bfree uint64, avail int64) Usage {
	if avail < 0 {
		avail = 0
	}
	return Usage{
		Total: blocks * bsize,
		Used:  (blocks - bfree) * bsize,
		Free:  uint64(avail) * bsize,
	}
}
