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
	"context"
	"crypto/rand"
	"errors"
	"io"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"
	"syscall"
)

// Fill resolves a free filename in o.Dir and writes the same random block to
// it until the filesystem has less than one block free.
//
// Failures after the name is resolved are not returned as errors. They stop
// the loop, are sent to o.Report and recorded in the Result. The returned
// error is only set when the run could not start at all.
//
// o.Report.Finished is called on every path once the name is resolved,
// including cancellation of ctx.
func Fill(ctx context.Context, o *Options) (*Result, error) {
	if err := o.init(); err != nil {
		return nil, err
	}
	name, err := Resolve(o.Dir, o.Name)
	if err != nil {
		return nil, err
	}
	res := &Result{Filename: name, Path: filepath.Join(o.Dir, name)}
	o.Report.Started(ctx, o.Dir, res.Path)
	defer res.finish(ctx, o.Report)

	sink, err := o.Open(res.Path)
	if err != nil {
		res.stop(ctx, o.Report, StopOpenFailed, err)
		return res, nil
	}
	defer func() {
		if err := sink.Close(); err != nil {
			log.Printf("closing %s: %v", res.Path, err)
		}
	}()

	block := make([]byte, o.BlockSize)
	if _, err := io.ReadFull(o.Rand, block); err != nil {
		res.stop(ctx, o.Report, StopSetupFailed, err)
		return res, nil
	}
	reason, err := o.loop(ctx, sink, block, res)
	res.stop(ctx, o.Report, reason, err)
	return res, nil
}

// loop writes block until a stop condition and returns it. res.Blocks and
// res.BytesWritten only count blocks that were synced.
func (o *Options) loop(ctx context.Context, sink Sink, block []byte, res *Result) (StopReason, error) {
	bs := int64(len(block))
	interval := bs * int64(o.ProgressBlocks)
	for {
		if err := ctx.Err(); err != nil {
			return StopInterrupted, err
		}
		u, err := o.Usage(o.Dir)
		if err != nil {
			return classify(err), err
		}
		if res.BytesWritten == 0 || res.BytesWritten%interval == 0 {
			o.Report.Progress(ctx, res.BytesWritten, u)
		}
		if u.Free < uint64(bs) {
			log.Printf("%d bytes free, below the %d bytes block size", u.Free, bs)
			return StopFull, nil
		}
		if err := sink.WriteSync(block); err != nil {
			return classify(err), err
		}
		res.Blocks++
		res.BytesWritten += bs
	}
}

func (r *Result) stop(ctx context.Context, rep Report, reason StopReason, err error) {
	r.Reason = reason
	r.Err = err
	log.Printf("stopped after %d blocks: %s", r.Blocks, reason)
	rep.Stopped(ctx, reason, err)
}

// finish reads the final state of the file from disk and reports it.
func (r *Result) finish(ctx context.Context, rep Report) {
	if fi, err := os.Stat(r.Path); err == nil {
		r.Exists = true
		r.Size = fi.Size()
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("stat %s: %v", r.Path, err)
	}
	rep.Finished(ctx, r.Filename, r.Size, r.Exists)
}

// classify tells I/O failures, including a full disk, apart from anything
// else.
func classify(err error) StopReason {
	var pathErr *fs.PathError
	var errno syscall.Errno
	switch {
	case errors.As(err, &pathErr), errors.As(err, &errno), errors.Is(err, io.ErrShortWrite):
		return StopIOError
	default:
		return StopUnexpected
	}
}

func (o *Options) init() error {
	if o.Report == nil {
		return errors.New("a Report is required")
	}
	if o.Dir == "" {
		return errors.New("a directory is required")
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.BlockSize == 0 {
		o.BlockSize = DefaultBlockSize
	}
	if o.BlockSize < 0 {
		return ErrInvalidBlockSize
	}
	if o.ProgressBlocks <= 0 {
		o.ProgressBlocks = DefaultProgressBlocks
	}
	if int64(o.ProgressBlocks) > math.MaxInt64/int64(o.BlockSize) {
		return ErrInvalidProgressBlocks
	}
	if o.Usage == nil {
		o.Usage = DiskUsage
	}
	if o.Open == nil {
		o.Open = OpenSink
	}
	if o.Rand == nil {
		o.Rand = rand.Reader
	}
	return nil
}
