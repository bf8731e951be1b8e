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
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenSink(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "out.bin")
	writeFile(t, p, []byte("previous content"))
	s, err := OpenSink(p)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := s.WriteSync([]byte("abcd")); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte("abcdabcdabcd"); !bytes.Equal(b, want) {
		t.Fatalf("got %q, want %q", b, want)
	}
}

func TestOpenSink_Error(t *testing.T) {
	t.Parallel()
	if _, err := OpenSink(filepath.Join(t.TempDir(), "missing", "out.bin")); err == nil {
		t.Fatal("expected error")
	}
}

func TestDiskUsage(t *testing.T) {
	t.Parallel()
	u, err := DiskUsage(t.TempDir())
	if err == ErrUnsupported {
		t.Skip(err)
	}
	if err != nil {
		t.Fatal(err)
	}
	if u.Total == 0 {
		t.Fatal("expected a non-empty filesystem")
	}
	if u.Used > u.Total || u.Free > u.Total {
		t.Fatalf("inconsistent usage %+v", u)
	}
}

func TestDiskUsage_Missing(t *testing.T) {
	t.Parallel()
	_, err := DiskUsage(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error")
	}
	if err != ErrUnsupported && classify(err) != StopIOError {
		t.Fatalf("expected an I/O error, got %v", err)
	}
}

func TestBlockUsage(t *testing.T) {
	t.Parallel()
	data := []struct {
		bfree uint64
		avail int64
		want  Usage
	}{
		{60, 50, Usage{Total: 400, Used: 160, Free: 200}},
		{60, 0, Usage{Total: 400, Used: 160, Free: 0}},
		// Reserved blocks in use.
		{5, -3, Usage{Total: 400, Used: 380, Free: 0}},
	}
	for _, line := range data {
		if got := blockUsage(4, 100, line.bfree, line.avail); got != line.want {
			t.Errorf("blockUsage(%d, %d) = %+v, want %+v", line.bfree, line.avail, got, line.want)
		}
	}
}
