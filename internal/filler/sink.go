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
	"io"
	"os"
)

// Sink is the output of a fill run.
type Sink interface {
	// WriteSync writes all of p and commits it to stable storage before
	// returning.
	WriteSync(p []byte) error
	Close() error
}

type fileSink struct {
	f *os.File
}

// OpenSink creates or truncates path and returns a Sink writing to it.
func OpenSink(path string) (Sink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	return &fileSink{f: f}, nil
}

func (s *fileSink) WriteSync(p []byte) error {
	n, err := s.f.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return syncData(s.f)
}

func (s *fileSink) Close() error {
	return s.f.Close()
}
