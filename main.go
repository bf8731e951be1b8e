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

// Package diskfill is the diskfill executable. It writes a junk file until
// the disk holding it is full.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"
	"go.fuchsia.dev/diskfill/internal/cli"
)

func main() {
	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, syscall.SIGTERM, syscall.SIGINT)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-signalChannel
		// The fill loop stops at the next block and still prints the final
		// size. A second signal kills the process.
		cancel()
		signal.Stop(signalChannel)
	}()

	if err := cli.Main(ctx, os.Args); err != nil && !errors.Is(err, flag.ErrHelp) {
		// If stderr is a terminal, a context cancellation is because the user
		// Ctrl-C'd diskfill, so there's no need to print anything.
		if !isatty.IsTerminal(os.Stderr.Fd()) || !errors.Is(err, context.Canceled) {
			_, _ = fmt.Fprintf(os.Stderr, "diskfill: %s\n", err)
		}
		os.Exit(1)
	}
}
