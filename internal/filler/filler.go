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

// Package filler writes a junk file into a directory until the filesystem
// holding it runs out of free space.
package filler

import (
	"context"
	"errors"
	"io"
)

const (
	// DefaultName is the base filename of the junk file.
	DefaultName = "junk_file.bin"
	// DefaultBlockSize is the size of each write.
	DefaultBlockSize = 1 << 20
	// DefaultProgressBlocks is the number of blocks between progress lines.
	DefaultProgressBlocks = 64
)

// ErrInvalidBlockSize is returned when Options.BlockSize is not positive.
var ErrInvalidBlockSize = errors.New("block size must be positive")

// ErrInvalidProgressBlocks is returned when the progress interval,
// Options.BlockSize * Options.ProgressBlocks bytes, does not fit in an int64.
var ErrInvalidProgressBlocks = errors.New("progress interval overflows")

// StopReason is why the fill loop ended.
type StopReason int

const (
	// StopNone means the loop never ran, e.g. the name could not be resolved.
	StopNone StopReason = iota
	// StopFull means free space dropped below one block. This is the normal
	// outcome and not an error.
	StopFull
	// StopOpenFailed means the output file could not be opened.
	StopOpenFailed
	// StopSetupFailed means the filler block could not be generated.
	StopSetupFailed
	// StopIOError means a write or a free space query failed.
	StopIOError
	// StopUnexpected means the loop hit an error that is not an I/O error.
	StopUnexpected
	// StopInterrupted means the context was canceled.
	StopInterrupted
)

func (s StopReason) String() string {
	switch s {
	case StopNone:
		return "none"
	case StopFull:
		return "full"
	case StopOpenFailed:
		return "open failed"
	case StopSetupFailed:
		return "setup failed"
	case StopIOError:
		return "i/o error"
	case StopUnexpected:
		return "unexpected error"
	case StopInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Report receives every user visible event of a fill run.
//
// Calls are made sequentially from the goroutine running Fill.
type Report interface {
	// Started is called once the output path is known.
	Started(ctx context.Context, dir, path string)
	// Progress is called before the first write and then every
	// Options.ProgressBlocks blocks.
	Progress(ctx context.Context, written int64, u Usage)
	// Stopped is called when the loop ends. err is nil for StopFull.
	Stopped(ctx context.Context, reason StopReason, err error)
	// Finished is always called last, whatever path was taken.
	Finished(ctx context.Context, filename string, size int64, exists bool)
}

// Options is the configuration of a fill run.
type Options struct {
	// Report is required.
	Report Report
	// Dir is the directory in which the junk file is created. Required.
	Dir string
	// Name is the desired filename. Defaults to DefaultName.
	Name string
	// BlockSize is the size of each write. Defaults to DefaultBlockSize.
	BlockSize int
	// ProgressBlocks is the number of blocks between progress reports.
	// Defaults to DefaultProgressBlocks.
	ProgressBlocks int

	// Usage queries the free space of Dir. Defaults to DiskUsage.
	Usage func(dir string) (Usage, error)
	// Open opens the output file. Defaults to OpenSink.
	Open func(path string) (Sink, error)
	// Rand is the source of the filler block. Defaults to crypto/rand.
	Rand io.Reader
}

// Result summarizes a fill run.
type Result struct {
	// Filename is the resolved name of the junk file inside Dir.
	Filename string
	// Path is the full path of the junk file.
	Path string
	// Blocks is the number of blocks durably written.
	Blocks int64
	// BytesWritten is Blocks * BlockSize.
	BytesWritten int64
	// Size is the size of the file on disk after the run.
	Size int64
	// Exists is false when no file was left on disk.
	Exists bool
	// Reason is why the loop stopped.
	Reason StopReason
	// Err is the error that stopped the loop, if any.
	Err error
}
