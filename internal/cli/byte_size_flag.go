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
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"
)

// maxBlockSize bounds the filler block, which is held in memory.
const maxBlockSize = 1 << 30

// byteSizeFlag is a size in bytes written the way humans do, e.g. "1MiB".
type byteSizeFlag int

var _ flag.Value = (*byteSizeFlag)(nil)

func (v *byteSizeFlag) String() string {
	return humanize.IBytes(uint64(*v))
}

func (v *byteSizeFlag) Set(s string) error {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("must be positive")
	}
	if n > maxBlockSize {
		return fmt.Errorf("must be at most %s", humanize.IBytes(maxBlockSize))
	}
	*v = byteSizeFlag(n)
	return nil
}

func (v *byteSizeFlag) Type() string {
	return "size"
}
