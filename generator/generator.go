// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for class generators and the
// pipeline that feeds them definitions.
package generator

import (
	"context"

	"github.com/pinorobotics/msgmonster/idl"
)

// Generator is the interface that all class generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// FileName returns the name of the file generated for ref. It must not
	// depend on the definition contents so that existing output can be
	// detected before the definition is read.
	FileName(ref idl.Ref, cfg Config) string

	// Generate produces output files for one parsed definition.
	Generate(ctx context.Context, in Input, cfg Config) (*Output, error)
}

// Input is one definition handed to a generator.
type Input struct {
	Definition *idl.MessageDefinition

	// Checksum is the content checksum supplied by the source, empty when
	// the dialect has none or the source could not provide it.
	Checksum string
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "java", "kotlin").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".java"]).
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}
