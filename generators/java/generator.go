// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import (
	"context"

	"github.com/pinorobotics/msgmonster/generator"
	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/internal/names"
)

// Ext is the extension of generated files.
const Ext = ".java"

// Generator implements [generator.Generator] for Java code generation.
type Generator struct{}

// NewGenerator creates a new Java generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "java",
		Version:        "1.0.0",
		Description:    "Generate Java message classes for jrosmessages and jros2messages",
		FileExtensions: []string{Ext},
		URL:            "https://github.com/pinorobotics/msgmonster",
	}
}

// FileName returns the class file name for ref.
func (g *Generator) FileName(ref idl.Ref, cfg generator.Config) string {
	return formatter(cfg).ClassName(ref.Name) + Ext
}

// Generate renders the Java class of one definition.
func (g *Generator) Generate(ctx context.Context, in generator.Input, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	gen := New(in.Definition, Config{
		Package:        cfg.Package,
		RuntimePackage: cfg.RuntimePackage(),
		Dialect:        cfg.Dialect,
		Checksum:       in.Checksum,
		ClassSuffix:    formatter(cfg).Suffix,
	}, Templates(cfg.Option(generator.OptionTemplates, "")))

	src, err := gen.Render()
	if err != nil {
		return nil, err
	}
	return generator.Single(gen.ClassName()+Ext, src), nil
}

func formatter(cfg generator.Config) names.Formatter {
	return names.Formatter{Suffix: cfg.Option(generator.OptionClassSuffix, names.DefaultSuffix)}
}
