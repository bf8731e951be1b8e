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

// Package reporting prints the progress of a fill run to the console.
package reporting

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"go.fuchsia.dev/diskfill/internal/filler"
)

// Report is a closable filler.Report.
type Report interface {
	io.Closer
	filler.Report
}

// Get returns the right reporting implementation for out based on the
// current environment.
func Get(ctx context.Context, out io.Writer) (Report, error) {
	if f, ok := out.(*os.File); ok && os.Getenv("TERM") != "dumb" &&
		(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		// Active terminal. Colors!
		return &interactive{out: colorable.NewColorable(f)}, nil
	}
	// Anything else, e.g. redirected output.
	return &basic{out: out}, nil
}

// basic prints plain lines.
type basic struct {
	out io.Writer
}

func (b *basic) Close() error {
	return nil
}

func (b *basic) Started(ctx context.Context, dir, path string) {
	fmt.Fprintf(b.out, "Trying to fill the disk: %s\n", dir)
	fmt.Fprintf(b.out, "The junk file will be created at: %s\n", path)
}

func (b *basic) Progress(ctx context.Context, written int64, u filler.Usage) {
	fmt.Fprintf(b.out, "Written: %.2f GiB | Available space: %.2f GiB\n", gib(written), gib(int64(u.Free)))
}

func (b *basic) Stopped(ctx context.Context, reason filler.StopReason, err error) {
	msg, hint := stopMessage(reason, err)
	if msg != "" {
		fmt.Fprintf(b.out, "%s\n", msg)
	}
	if hint != "" {
		fmt.Fprintf(b.out, "%s\n", hint)
	}
}

func (b *basic) Finished(ctx context.Context, filename string, size int64, exists bool) {
	if exists {
		fmt.Fprintf(b.out, "Junk file generation stopped. Total file size: %.2f GiB\n", gib(size))
	} else {
		fmt.Fprintf(b.out, "The junk file was not created or was deleted.\n")
	}
	fmt.Fprintf(b.out, "You can delete the generated file '%s' to free up space.\n", filename)
}

// interactive is the Report implementation for a terminal.
type interactive struct {
	out io.Writer
}

func (i *interactive) Close() error {
	return nil
}

func (i *interactive) Started(ctx context.Context, dir, path string) {
	fmt.Fprintf(i.out, "%sTrying to fill the disk: %s%s%s\n", reset, bold, dir, reset)
	fmt.Fprintf(i.out, "The junk file will be created at: %s%s%s\n", fgHiCyan, path, reset)
}

func (i *interactive) Progress(ctx context.Context, written int64, u filler.Usage) {
	fmt.Fprintf(i.out, "%sWritten: %s%.2f GiB%s | Available space: %s%.2f GiB%s\n",
		reset, bold, gib(written), reset, bold, gib(int64(u.Free)), reset)
}

func (i *interactive) Stopped(ctx context.Context, reason filler.StopReason, err error) {
	msg, hint := stopMessage(reason, err)
	if msg != "" {
		fmt.Fprintf(i.out, "%s%s%s%s\n", reset, reasonColor[reason], msg, reset)
	}
	if hint != "" {
		fmt.Fprintf(i.out, "%s%s%s\n", faint, hint, reset)
	}
}

func (i *interactive) Finished(ctx context.Context, filename string, size int64, exists bool) {
	if exists {
		fmt.Fprintf(i.out, "%sJunk file generation stopped. Total file size: %s%.2f GiB%s\n", reset, bold, gib(size), reset)
	} else {
		fmt.Fprintf(i.out, "%s%sThe junk file was not created or was deleted.%s\n", reset, fgYellow, reset)
	}
	fmt.Fprintf(i.out, "You can delete the generated file '%s%s%s' to free up space.\n", fgHiCyan, filename, reset)
}

var reasonColor = map[filler.StopReason]ansiCode{
	filler.StopNone:        reset,
	filler.StopFull:        fgGreen,
	filler.StopOpenFailed:  fgRed,
	filler.StopSetupFailed: fgRed,
	filler.StopIOError:     fgRed,
	filler.StopUnexpected:  fgRed,
	filler.StopInterrupted: fgYellow,
}

// stopMessage returns the line describing why the loop stopped and an
// optional hint line.
func stopMessage(reason filler.StopReason, err error) (string, string) {
	switch reason {
	case filler.StopFull:
		return "Not enough space for the next block. The disk is almost full.", ""
	case filler.StopOpenFailed:
		return fmt.Sprintf("Failed to open file for writing: %s", err),
			"Please check that you have write permission in the target directory."
	case filler.StopSetupFailed:
		return fmt.Sprintf("An error occurred before writing: %s", err), ""
	case filler.StopIOError:
		return fmt.Sprintf("Error writing file or checking disk space: %s", err),
			"The disk is probably full or an I/O error has occurred. Stopping."
	case filler.StopUnexpected:
		return fmt.Sprintf("An unexpected error occurred: %s", err), ""
	case filler.StopInterrupted:
		return "Interrupted. Stopping.", ""
	default:
		return "", ""
	}
}

func gib(b int64) float64 {
	return float64(b) / (1 << 30)
}
