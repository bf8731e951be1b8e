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
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"go.fuchsia.dev/diskfill/internal/filler"
)

type spaceCmd struct {
	commandBase
}

func (*spaceCmd) Name() string {
	return "space"
}

func (*spaceCmd) Description() string {
	return "Print the capacity of the filesystem holding the target directory."
}

func (c *spaceCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.New("unsupported arguments")
	}
	dir, err := c.targetDir()
	if err != nil {
		return err
	}
	u, err := filler.DiskUsage(dir)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\n  total: %s\n  used:  %s\n  free:  %s\n",
		dir, humanize.IBytes(u.Total), humanize.IBytes(u.Used), humanize.IBytes(u.Free))
	return err
}
