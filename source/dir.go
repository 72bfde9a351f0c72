// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package source

import (
	"bufio"
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/internal/errors"
)

// MsgExt is the file extension of message definitions.
const MsgExt = ".msg"

// Dir reads definitions from a directory tree laid out as
// <root>/<pkg>/msg/<Name>.msg or <root>/<pkg>/<Name>.msg.
type Dir struct {
	root    string
	dialect idl.Dialect
	sums    *checksummer
}

// NewDir returns a source rooted at root.
func NewDir(root string, d idl.Dialect) *Dir {
	s := &Dir{root: root, dialect: d}
	s.sums = newChecksummer(s)
	return s
}

func (s *Dir) Dialect() idl.Dialect { return s.dialect }

// Root returns the root directory.
func (s *Dir) Root() string { return s.root }

func (s *Dir) IsPackage(_ context.Context, input string) (bool, error) {
	if strings.HasSuffix(input, MsgExt) || strings.Contains(input, "/") {
		return false, nil
	}
	if _, ok := s.packageDir(input); ok {
		return true, nil
	}
	return false, errors.WithHintf(
		errors.Wrapf(errors.ErrNotFound, "package %q", input),
		"no directory %s under %s", input, s.root)
}

func (s *Dir) Ref(_ context.Context, input string) (idl.Ref, error) {
	if strings.HasSuffix(input, MsgExt) {
		return s.fileRef(input)
	}
	pkg, name, ok := splitTypeName(input)
	if !ok {
		return idl.Ref{}, errors.WithHint(
			errors.Wrapf(errors.ErrNotFound, "definition %q", input),
			"use pkg/Name, pkg/msg/Name or a path to a .msg file")
	}
	return s.find(pkg, name)
}

// fileRef resolves a .msg path. Relative paths are tried as given and
// then under the root.
func (s *Dir) fileRef(p string) (idl.Ref, error) {
	if _, err := os.Stat(p); err != nil && !filepath.IsAbs(p) {
		p = filepath.Join(s.root, p)
	}
	if _, err := os.Stat(p); err != nil {
		return idl.Ref{}, errors.Mark(errors.Wrapf(err, "definition %s", p), errors.ErrNotFound)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return idl.Ref{}, errors.Wrapf(err, "resolve %s", p)
	}
	return refForFile(abs), nil
}

// refForFile derives the package from the parent directory, skipping a
// "msg" directory.
func refForFile(path string) idl.Ref {
	dir := filepath.Dir(path)
	if filepath.Base(dir) == "msg" {
		dir = filepath.Dir(dir)
	}
	return idl.Ref{
		Package:  filepath.Base(dir),
		Name:     strings.TrimSuffix(filepath.Base(path), MsgExt),
		Location: path,
	}
}

func (s *Dir) find(pkg, name string) (idl.Ref, error) {
	for _, p := range []string{
		filepath.Join(s.root, pkg, "msg", name+MsgExt),
		filepath.Join(s.root, pkg, name+MsgExt),
	} {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return idl.Ref{Package: pkg, Name: name, Location: p}, nil
		}
	}
	return idl.Ref{}, errors.Wrapf(errors.ErrNotFound, "definition %s/%s under %s", pkg, name, s.root)
}

// packageDir returns the directory holding the definitions of pkg.
func (s *Dir) packageDir(pkg string) (string, bool) {
	for _, p := range []string{
		filepath.Join(s.root, pkg, "msg"),
		filepath.Join(s.root, pkg),
	} {
		if st, err := os.Stat(p); err == nil && st.IsDir() {
			return p, true
		}
	}
	return "", false
}

// List yields the definitions of pkg sorted by name.
func (s *Dir) List(ctx context.Context, pkg string) iter.Seq2[idl.Ref, error] {
	return func(yield func(idl.Ref, error) bool) {
		dir, ok := s.packageDir(pkg)
		if !ok {
			yield(idl.Ref{}, errors.Wrapf(errors.ErrNotFound, "package %q under %s", pkg, s.root))
			return
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			yield(idl.Ref{}, errors.Wrapf(err, "list %s", dir))
			return
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.Type().IsRegular() && strings.HasSuffix(e.Name(), MsgExt) {
				names = append(names, e.Name())
			}
		}
		slices.Sort(names)
		for _, n := range names {
			if err := ctx.Err(); err != nil {
				yield(idl.Ref{}, err)
				return
			}
			ref := idl.Ref{
				Package:  pkg,
				Name:     strings.TrimSuffix(n, MsgExt),
				Location: filepath.Join(dir, n),
			}
			if !yield(ref, nil) {
				return
			}
		}
	}
}

// Lines yields the lines of the definition file.
func (s *Dir) Lines(_ context.Context, ref idl.Ref) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(ref.Location)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				err = errors.Mark(err, errors.ErrNotFound)
			}
			yield("", errors.Wrapf(err, "open %s", ref))
			return
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if !yield(sc.Text(), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", errors.Wrapf(err, "read %s", ref))
		}
	}
}

// Checksum returns the genmsg MD5 sum for ROS1 definitions.
func (s *Dir) Checksum(ctx context.Context, ref idl.Ref) (string, bool, error) {
	if !s.dialect.HasChecksum() {
		return "", false, nil
	}
	sum, err := s.sums.sum(ctx, ref)
	if err != nil {
		return "", false, err
	}
	return sum, true, nil
}
