// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package kotlin

import (
	"context"

	"github.com/pinorobotics/msgmonster/generator"
	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/internal/names"
)

// Ext is the extension of generated files.
const Ext = ".kt"

// Generator implements [generator.Generator] for Kotlin code generation.
type Generator struct{}

// NewGenerator creates a new Kotlin generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "kotlin",
		Version:        "1.0.0",
		Description:    "Generate Kotlin data classes for jrosmessages and jros2messages",
		FileExtensions: []string{Ext},
		URL:            "https://github.com/pinorobotics/msgmonster",
	}
}

// FileName returns the class file name for ref.
func (g *Generator) FileName(ref idl.Ref, cfg generator.Config) string {
	return classSuffix(cfg).ClassName(ref.Name) + Ext
}

// Generate produces the Kotlin class of one definition.
func (g *Generator) Generate(ctx context.Context, in generator.Input, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	internalCfg := Config{
		PackageName:    cfg.Package,
		RuntimePackage: cfg.RuntimePackage(),
		Dialect:        cfg.Dialect,
		Checksum:       in.Checksum,
		ClassSuffix:    classSuffix(cfg).Suffix,
	}

	gen := New(in.Definition, internalCfg)
	return generator.Single(gen.ClassName()+Ext, gen.Generate()), nil
}

func classSuffix(cfg generator.Config) names.Formatter {
	return names.Formatter{Suffix: cfg.Option(generator.OptionClassSuffix, names.DefaultSuffix)}
}
