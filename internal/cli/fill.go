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

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	flag "github.com/spf13/pflag"
	"go.fuchsia.dev/diskfill/internal/filler"
	"go.fuchsia.dev/diskfill/internal/reporting"
)

type fillCmd struct {
	commandBase
	name           string
	blockSize      byteSizeFlag
	progressBlocks int
	yes            bool
}

func (*fillCmd) Name() string {
	return "fill"
}

func (*fillCmd) Description() string {
	return "Write a junk file until the disk is full."
}

func (c *fillCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
	c.blockSize = filler.DefaultBlockSize
	f.StringVar(&c.name, "name", filler.DefaultName, "base name of the junk file")
	f.Var(&c.blockSize, "block-size", "size of each write, e.g. 4KiB or 1MiB")
	f.IntVar(&c.progressBlocks, "progress-blocks", filler.DefaultProgressBlocks, "number of blocks between progress lines")
	f.BoolVarP(&c.yes, "yes", "y", false, "do not ask for confirmation")
}

func (c *fillCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.New("unsupported arguments")
	}
	if c.progressBlocks <= 0 {
		return errors.New("--progress-blocks must be positive")
	}
	if int64(c.progressBlocks) > math.MaxInt64/int64(c.blockSize) {
		return fmt.Errorf("--progress-blocks must be at most %d with --block-size %s", math.MaxInt64/int64(c.blockSize), &c.blockSize)
	}
	dir, err := c.targetDir()
	if err != nil {
		return err
	}
	if !c.yes {
		q := fmt.Sprintf("This will fill the disk holding %s. Are you sure you want to continue? (y/n): ", dir)
		ok, err := confirm(stdin, stdout, q)
		if err != nil {
			return err
		}
		if !ok {
			_, err = fmt.Fprintln(stdout, "Canceled.")
			return err
		}
	}
	r, err := reporting.Get(ctx, stdout)
	if err != nil {
		return err
	}
	o := filler.Options{
		Report:         r,
		Dir:            dir,
		Name:           c.name,
		BlockSize:      int(c.blockSize),
		ProgressBlocks: c.progressBlocks,
	}
	_, err = filler.Fill(ctx, &o)
	if err2 := r.Close(); err == nil {
		err = err2
	}
	return err
}

// confirm prints question and reports whether the answer is "y".
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := io.WriteString(out, question); err != nil {
		return false, err
	}
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.ToLower(strings.TrimRight(answer, "\r\n")) == "y", nil
}
