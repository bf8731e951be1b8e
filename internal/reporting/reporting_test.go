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

package reporting

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-colorable"
	"go.fuchsia.dev/diskfill/internal/filler"
)

func TestGet(t *testing.T) {
	r, err := Get(context.Background(), os.Stdout)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestGet_Buffer(t *testing.T) {
	buf := bytes.Buffer{}
	r, err := Get(context.Background(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*basic); !ok {
		t.Fatalf("got %T", r)
	}
	emitAll(r)
	if !strings.HasPrefix(buf.String(), "Trying to fill the disk: /tmp\n") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestGet_DumbTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")
	r, err := Get(context.Background(), os.Stdout)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*basic); !ok {
		t.Fatalf("got %T", r)
	}
}

// emitAll drives r through a run that fills the disk.
func emitAll(r Report) {
	ctx := context.Background()
	r.Started(ctx, "/tmp", "/tmp/junk_file_1.bin")
	r.Progress(ctx, 0, filler.Usage{Free: 3 << 30})
	r.Progress(ctx, 64<<20, filler.Usage{Free: 3<<30 - 64<<20})
	r.Stopped(ctx, filler.StopFull, nil)
	r.Finished(ctx, "junk_file_1.bin", 3<<30, true)
}

func TestBasic(t *testing.T) {
	buf := bytes.Buffer{}
	r := basic{out: &buf}
	emitAll(&r)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	want := "Trying to fill the disk: /tmp\n" +
		"The junk file will be created at: /tmp/junk_file_1.bin\n" +
		"Written: 0.00 GiB | Available space: 3.00 GiB\n" +
		"Written: 0.06 GiB | Available space: 2.94 GiB\n" +
		"Not enough space for the next block. The disk is almost full.\n" +
		"Junk file generation stopped. Total file size: 3.00 GiB\n" +
		"You can delete the generated file 'junk_file_1.bin' to free up space.\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBasic_Stopped(t *testing.T) {
	t.Parallel()
	err := errors.New("bad")
	data := []struct {
		reason filler.StopReason
		want   string
	}{
		{filler.StopNone, ""},
		{filler.StopFull, "Not enough space for the next block. The disk is almost full.\n"},
		{
			filler.StopOpenFailed,
			"Failed to open file for writing: bad\n" +
				"Please check that you have write permission in the target directory.\n",
		},
		{filler.StopSetupFailed, "An error occurred before writing: bad\n"},
		{
			filler.StopIOError,
			"Error writing file or checking disk space: bad\n" +
				"The disk is probably full or an I/O error has occurred. Stopping.\n",
		},
		{filler.StopUnexpected, "An unexpected error occurred: bad\n"},
		{filler.StopInterrupted, "Interrupted. Stopping.\n"},
	}
	for _, line := range data {
		line := line
		t.Run(line.reason.String(), func(t *testing.T) {
			t.Parallel()
			buf := bytes.Buffer{}
			r := basic{out: &buf}
			r.Stopped(context.Background(), line.reason, err)
			if diff := cmp.Diff(line.want, buf.String()); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBasic_NoFile(t *testing.T) {
	buf := bytes.Buffer{}
	r := basic{out: &buf}
	r.Finished(context.Background(), "junk_file.bin", 0, false)
	want := "The junk file was not created or was deleted.\n" +
		"You can delete the generated file 'junk_file.bin' to free up space.\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestInteractive(t *testing.T) {
	buf := bytes.Buffer{}
	r := interactive{out: &buf}
	emitAll(&r)
	r.Stopped(context.Background(), filler.StopIOError, errors.New("bad"))
	r.Finished(context.Background(), "junk_file.bin", 0, false)
	want := "<R>Trying to fill the disk: <B>/tmp<R>\n" +
		"The junk file will be created at: <Hc>/tmp/junk_file_1.bin<R>\n" +
		"<R>Written: <B>0.00 GiB<R> | Available space: <B>3.00 GiB<R>\n" +
		"<R>Written: <B>0.06 GiB<R> | Available space: <B>2.94 GiB<R>\n" +
		"<R><G>Not enough space for the next block. The disk is almost full.<R>\n" +
		"<R>Junk file generation stopped. Total file size: <B>3.00 GiB<R>\n" +
		"You can delete the generated file '<Hc>junk_file_1.bin<R>' to free up space.\n" +
		"<R><Re>Error writing file or checking disk space: bad<R>\n" +
		"<F>The disk is probably full or an I/O error has occurred. Stopping.<R>\n" +
		"<R><Y>The junk file was not created or was deleted.<R>\n" +
		"You can delete the generated file '<Hc>junk_file.bin<R>' to free up space.\n"
	if diff := cmp.Diff(want, placeholders.Replace(buf.String())); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// The interactive output must read the same as the basic one once the colors
// are stripped.
func TestInteractive_Stripped(t *testing.T) {
	want := bytes.Buffer{}
	emitAll(&basic{out: &want})
	got := bytes.Buffer{}
	emitAll(&interactive{out: colorable.NewNonColorable(&got)})
	if diff := cmp.Diff(want.String(), got.String()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

var placeholders = strings.NewReplacer(
	reset.String(), "<R>",
	bold.String(), "<B>",
	faint.String(), "<F>",
	fgRed.String(), "<Re>",
	fgGreen.String(), "<G>",
	fgYellow.String(), "<Y>",
	fgHiCyan.String(), "<Hc>",
)
