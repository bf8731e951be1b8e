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
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
)

type commandBase struct {
	dir string
}

func (c *commandBase) SetFlags(f *flag.FlagSet) {
	f.StringVarP(&c.dir, "dir", "C", "", "directory to fill; defaults to the directory containing the executable")
}

// targetDir returns the directory passed with --dir, or the one holding the
// running executable.
func (c *commandBase) targetDir() (string, error) {
	if c.dir != "" {
		return c.dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate the executable: %w", err)
	}
	if p, err := filepath.EvalSymlinks(exe); err == nil {
		exe = p
	}
	return filepath.Dir(exe), nil
}
