// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package source supplies message definitions to the generation pipeline.
//
// Two sources are provided: [Dir] reads .msg files from a directory tree
// and [Toolchain] asks the installed ROS command line tools.
package source

import (
	"context"
	"iter"
	"strings"

	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/internal/errors"
)

// Source is the collaborator that lists and reads message definitions.
type Source interface {
	// Dialect identifies the definition language of the source.
	Dialect() idl.Dialect

	// IsPackage reports whether input names a package of definitions
	// rather than a single definition.
	IsPackage(ctx context.Context, input string) (bool, error)

	// Ref resolves input to a single definition.
	Ref(ctx context.Context, input string) (idl.Ref, error)

	// List yields the definitions of package pkg.
	List(ctx context.Context, pkg string) iter.Seq2[idl.Ref, error]

	// Lines yields the raw lines of a definition.
	Lines(ctx context.Context, ref idl.Ref) iter.Seq2[string, error]

	// Checksum returns the content checksum of a definition. The boolean is
	// false for dialects without a checksum.
	Checksum(ctx context.Context, ref idl.Ref) (string, bool, error)
}

// Kind names a source implementation.
type Kind string

const (
	KindDir       Kind = "dir"
	KindToolchain Kind = "toolchain"
)

// Options configures New.
type Options struct {
	// Root is the directory of a Dir source.
	Root string
	// Commands overrides the toolchain commands. Empty fields keep the
	// dialect defaults.
	Commands Commands
	// Runner executes toolchain commands. Nil means ExecRunner.
	Runner Runner
}

// New returns the source of the given kind.
func New(kind Kind, d idl.Dialect, opts Options) (Source, error) {
	switch kind {
	case KindDir, "":
		if opts.Root == "" {
			opts.Root = "."
		}
		return NewDir(opts.Root, d), nil
	case KindToolchain:
		runner := opts.Runner
		if runner == nil {
			runner = ExecRunner{}
		}
		return NewToolchain(d, DefaultCommands(d).Merge(opts.Commands), runner), nil
	}
	return nil, errors.WithHint(
		errors.Wrapf(errors.ErrUnsupported, "source kind %q", kind),
		"supported sources are dir and toolchain")
}

// splitTypeName splits "pkg/Name" or "pkg/msg/Name".
func splitTypeName(s string) (pkg, name string, ok bool) {
	parts := strings.Split(strings.Trim(s, "/"), "/")
	switch {
	case len(parts) == 2:
		return parts[0], parts[1], parts[0] != "" && parts[1] != ""
	case len(parts) == 3 && parts[1] == "msg":
		return parts[0], parts[2], parts[0] != "" && parts[2] != ""
	}
	return "", "", false
}
