// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"os"
	"path/filepath"
	"strings"
)

// OpenFileHandle describes the local file at path. It reports false when
// path is blank or does not name an existing regular file. The file is only
// stat'ed, never read.
func OpenFileHandle(path string) (FileHandle, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return FileHandle{}, false
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return FileHandle{}, false
	}

	return FileHandle{Name: filepath.Base(path), Size: info.Size()}, true
}
