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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Resolve returns the first name in the sequence name, stem_1.ext,
// stem_2.ext, ... that does not exist in dir.
//
// Errors other than "not exist" from the existence check are returned as is.
// Nothing prevents another process from creating the returned name before the
// caller does.
func Resolve(dir, name string) (string, error) {
	stem, ext := splitExt(name)
	candidate := name
	for i := 1; ; i++ {
		found, err := exists(filepath.Join(dir, candidate))
		if err != nil {
			return "", err
		}
		if !found {
			return candidate, nil
		}
		candidate = stem + "_" + strconv.Itoa(i) + ext
	}
}

// splitExt splits name at the last dot. Leading dots do not start an
// extension, so ".bashrc" has none.
func splitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	stem := name[:len(name)-len(ext)]
	if strings.Trim(stem, ".") == "" {
		return name, ""
	}
	return stem, ext
}

func exists(p string) (bool, error) {
	// Lstat so a dangling symlink is not mistaken for a free name.
	if _, err := os.Lstat(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
