// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package subst

import (
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/pinorobotics/msgmonster/internal/errors"
)

// Ext is the file extension of template fragments.
const Ext = ".tmpl"

// Templates reads named template fragments from a file system.
// Fragment "equals" is read from "equals.tmpl".
type Templates struct {
	fsys fs.FS
	dir  string
}

// NewTemplates returns the fragments stored under dir of fsys.
func NewTemplates(fsys fs.FS, dir string) *Templates {
	if dir == "" {
		dir = "."
	}
	return &Templates{fsys: fsys, dir: dir}
}

// Read returns the text of fragment name.
func (t *Templates) Read(name string) (string, error) {
	data, err := fs.ReadFile(t.fsys, path.Join(t.dir, name+Ext))
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "read template %q", name), errors.ErrTemplate)
	}
	return string(data), nil
}

// Has reports whether fragment name exists.
func (t *Templates) Has(name string) bool {
	_, err := fs.Stat(t.fsys, path.Join(t.dir, name+Ext))
	return err == nil
}

// Names returns the fragment names in sorted order.
func (t *Templates) Names() ([]string, error) {
	entries, err := fs.ReadDir(t.fsys, t.dir)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "list templates"), errors.ErrTemplate)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), Ext) {
			names = append(names, strings.TrimSuffix(e.Name(), Ext))
		}
	}
	slices.Sort(names)
	return names, nil
}

// Overlay returns templates that read from dir first and fall back to t.
// An empty dir returns t.
func (t *Templates) Overlay(dir string) *Templates {
	if dir == "" {
		return t
	}
	return &Templates{
		fsys: overlayFS{top: os.DirFS(dir), base: t.fsys, baseDir: t.dir},
		dir:  ".",
	}
}

// overlayFS serves files from top, falling back to baseDir of base.
type overlayFS struct {
	top     fs.FS
	base    fs.FS
	baseDir string
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.top.Open(name)
	if err == nil {
		if st, serr := f.Stat(); serr == nil && !st.IsDir() {
			return f, nil
		}
		f.Close()
	}
	return o.base.Open(path.Join(o.baseDir, name))
}
