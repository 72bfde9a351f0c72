// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "github.com/pinorobotics/msgmonster/idl"

// Option keys understood by the bundled generators.
const (
	// OptionRuntimePackage is the namespace of the message runtime classes.
	OptionRuntimePackage = "runtime-package"
	// OptionClassSuffix is appended to derived class names.
	OptionClassSuffix = "class-suffix"
	// OptionTemplates is a directory of template overrides.
	OptionTemplates = "templates"
)

// Default runtime namespaces of the jros message libraries.
const (
	DefaultRuntimeROS1 = "id.jrosmessages"
	DefaultRuntimeROS2 = "id.jros2messages"
)

// DefaultRuntime returns the runtime namespace for dialect d.
func DefaultRuntime(d idl.Dialect) string {
	if d == idl.ROS2 {
		return DefaultRuntimeROS2
	}
	return DefaultRuntimeROS1
}

// Config contains generator configuration.
type Config struct {
	// OutputDir is the output directory.
	OutputDir string

	// Package is the namespace declared by generated classes.
	Package string

	// Dialect is the definition dialect of the source.
	Dialect idl.Dialect

	// ResolveDeps also generates classes for referenced definitions.
	ResolveDeps bool

	// KeepGoing continues with the next definition after a failure.
	KeepGoing bool

	// Options contains target-specific options.
	Options map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok && v != "" {
		return v
	}
	return defaultValue
}

// RuntimePackage returns the runtime namespace generated classes import
// from: the runtime-package option, or the dialect default.
func (c Config) RuntimePackage() string {
	return c.Option(OptionRuntimePackage, DefaultRuntime(c.Dialect))
}

// WithOption returns a copy of c with key set to value.
func (c Config) WithOption(key, value string) Config {
	opts := make(map[string]string, len(c.Options)+1)
	for k, v := range c.Options {
		opts[k] = v
	}
	opts[key] = value
	c.Options = opts
	return c
}
