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
	"path/filepath"

	flag "github.com/spf13/pflag"
	"go.fuchsia.dev/diskfill/internal/filler"
)

type resolveCmd struct {
	commandBase
	name string
}

func (*resolveCmd) Name() string {
	return "resolve"
}

func (*resolveCmd) Description() string {
	return "Print the path fill would write to."
}

func (c *resolveCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
	f.StringVar(&c.name, "name", filler.DefaultName, "base name of the junk file")
}

func (c *resolveCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.New("unsupported arguments")
	}
	dir, err := c.targetDir()
	if err != nil {
		return err
	}
	name, err := filler.Resolve(dir, c.name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, filepath.Join(dir, name))
	return err
}
