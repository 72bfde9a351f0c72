// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/pinorobotics/msgmonster/internal/errors"
)

// Output contains generated files.
type Output struct {
	// Files maps filename to content.
	Files map[string][]byte
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{Files: make(map[string][]byte)}
}

// Add adds a file to the output.
func (o *Output) Add(name string, content []byte) {
	o.Files[name] = content
}

// Names returns the file names in sorted order.
func (o *Output) Names() []string {
	return slices.Sorted(maps.Keys(o.Files))
}

// Single returns an Output with a single file.
func Single(name string, content []byte) *Output {
	return &Output{Files: map[string][]byte{name: content}}
}

// Exists reports whether path names an existing file system entry.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// WriteOnce creates path with content. It never replaces an existing
// file: in that case the error matches errors.ErrExists.
func WriteOnce(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create output directory for %s", path)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errors.Mark(errors.Wrapf(err, "write %s", path), errors.ErrExists)
		}
		return errors.Wrapf(err, "write %s", path)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.Wrapf(err, "close %s", path)
	}
	return nil
}
