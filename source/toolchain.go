// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package source

import (
	"context"
	"iter"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/internal/errors"
	"github.com/pinorobotics/msgmonster/internal/subst"
)

// Commands are the toolchain command lines. ${pkg} and ${type} are
// replaced by the package name and the toolchain type name.
type Commands struct {
	// Packages prints one package name per line.
	Packages string `json:"packages,omitempty" yaml:"packages,omitempty" toml:"packages,omitempty"`
	// Package prints the type names of the messages of ${pkg}.
	Package string `json:"package,omitempty" yaml:"package,omitempty" toml:"package,omitempty"`
	// Show prints the definition of ${type}.
	Show string `json:"show,omitempty" yaml:"show,omitempty" toml:"show,omitempty"`
	// MD5 prints the checksum of ${type}. Empty disables checksums.
	MD5 string `json:"md5,omitempty" yaml:"md5,omitempty" toml:"md5,omitempty"`
}

// DefaultCommands returns the commands of the stock ROS tools for d.
func DefaultCommands(d idl.Dialect) Commands {
	if d == idl.ROS2 {
		return Commands{
			Packages: "ros2 interface packages",
			Package:  "ros2 interface package ${pkg}",
			Show:     "ros2 interface show ${type}",
		}
	}
	return Commands{
		Packages: "rospack list-names",
		Package:  "rosmsg package ${pkg}",
		Show:     "rosmsg show -r ${type}",
		MD5:      "rosmsg md5 ${type}",
	}
}

// Merge returns c with the non-empty fields of o applied.
func (c Commands) Merge(o Commands) Commands {
	if o.Packages != "" {
		c.Packages = o.Packages
	}
	if o.Package != "" {
		c.Package = o.Package
	}
	if o.Show != "" {
		c.Show = o.Show
	}
	if o.MD5 != "" {
		c.MD5 = o.MD5
	}
	return c
}

// Toolchain reads definitions through the ROS command line tools.
type Toolchain struct {
	dialect idl.Dialect
	cmds    Commands
	runner  Runner
}

// NewToolchain returns a toolchain source running cmds through runner.
func NewToolchain(d idl.Dialect, cmds Commands, runner Runner) *Toolchain {
	return &Toolchain{dialect: d, cmds: cmds, runner: runner}
}

func (s *Toolchain) Dialect() idl.Dialect { return s.dialect }

func (s *Toolchain) IsPackage(ctx context.Context, input string) (bool, error) {
	if strings.Contains(input, "/") {
		return false, nil
	}
	argv, err := s.command(s.cmds.Packages, nil)
	if err != nil {
		return false, err
	}
	for line, err := range s.runner.Run(ctx, argv) {
		if err != nil {
			return false, err
		}
		if strings.TrimSpace(line) == input {
			return true, nil
		}
	}
	return false, nil
}

func (s *Toolchain) Ref(_ context.Context, input string) (idl.Ref, error) {
	pkg, name, ok := splitTypeName(input)
	if !ok {
		return idl.Ref{}, errors.WithHint(
			errors.Wrapf(errors.ErrNotFound, "definition %q", input),
			"use pkg/Name or pkg/msg/Name")
	}
	return s.ref(pkg, name), nil
}

// ref builds a ref whose Location is the type name the tools expect.
func (s *Toolchain) ref(pkg, name string) idl.Ref {
	loc := pkg + "/" + name
	if s.dialect == idl.ROS2 {
		loc = pkg + "/msg/" + name
	}
	return idl.Ref{Package: pkg, Name: name, Location: loc}
}

func (s *Toolchain) List(ctx context.Context, pkg string) iter.Seq2[idl.Ref, error] {
	return func(yield func(idl.Ref, error) bool) {
		argv, err := s.command(s.cmds.Package, subst.NewVars().Set("pkg", pkg))
		if err != nil {
			yield(idl.Ref{}, err)
			return
		}
		for line, err := range s.runner.Run(ctx, argv) {
			if err != nil {
				yield(idl.Ref{}, err)
				return
			}
			line = strings.TrimSpace(line)
			// ROS2 also lists services and actions
			if line == "" || (s.dialect == idl.ROS2 && !strings.HasPrefix(line, pkg+"/msg/")) {
				continue
			}
			p, name, ok := splitTypeName(line)
			if !ok {
				continue
			}
			if !yield(s.ref(p, name), nil) {
				return
			}
		}
	}
}

func (s *Toolchain) Lines(ctx context.Context, ref idl.Ref) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		argv, err := s.command(s.cmds.Show, s.typeVars(ref))
		if err != nil {
			yield("", err)
			return
		}
		for line, err := range s.runner.Run(ctx, argv) {
			if err != nil {
				yield("", errors.Wrapf(err, "show %s", ref))
				return
			}
			// ros2 interface show expands nested definitions indented by a tab
			if s.dialect == idl.ROS2 && strings.HasPrefix(line, "\t") {
				continue
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

func (s *Toolchain) Checksum(ctx context.Context, ref idl.Ref) (string, bool, error) {
	if !s.dialect.HasChecksum() || s.cmds.MD5 == "" {
		return "", false, nil
	}
	argv, err := s.command(s.cmds.MD5, s.typeVars(ref))
	if err != nil {
		return "", false, err
	}
	var sum string
	for line, err := range s.runner.Run(ctx, argv) {
		if err != nil {
			return "", false, errors.Wrapf(err, "md5 %s", ref)
		}
		if sum == "" {
			sum = strings.TrimSpace(line)
		}
	}
	if sum == "" {
		return "", false, nil
	}
	return sum, true, nil
}

func (s *Toolchain) typeVars(ref idl.Ref) *subst.Vars {
	loc := ref.Location
	if loc == "" {
		loc = s.ref(ref.Package, ref.Name).Location
	}
	return subst.NewVars().Set("pkg", ref.Package).Set("type", loc)
}

// command expands a command template into an argument vector.
func (s *Toolchain) command(tpl string, vars *subst.Vars) ([]string, error) {
	argv, err := shellquote.Split(subst.Substitute(tpl, vars))
	if err != nil {
		return nil, errors.Wrapf(err, "parse command %q", tpl)
	}
	if len(argv) == 0 {
		return nil, errors.Newf("empty toolchain command")
	}
	return argv, nil
}
