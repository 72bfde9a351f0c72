// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package kotlin generates Kotlin message classes for the jros message
// runtime.
//
// The generated code uses idiomatic Kotlin patterns:
//   - data class with val properties and default values
//   - List properties for arrays, checked in init for fixed sizes
//   - nested enum class per group of constants numbered 0, 1, 2, ...
//   - companion object holding NAME and, when known, MD5SUM
package kotlin

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pinorobotics/msgmonster/generator"
	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/internal/names"
)

// Codegen generates the Kotlin class of one definition.
type Codegen struct {
	def    *idl.MessageDefinition
	config Config
	names  names.Formatter
}

// New creates a new Kotlin Codegen.
func New(def *idl.MessageDefinition, cfg Config) *Codegen {
	if cfg.RuntimePackage == "" {
		cfg.RuntimePackage = generator.DefaultRuntime(cfg.Dialect)
	}
	return &Codegen{
		def:    def,
		config: cfg,
		names:  names.Formatter{Suffix: cfg.ClassSuffix},
	}
}

// ClassName returns the name of the generated class.
func (g *Codegen) ClassName() string {
	return g.names.ClassName(g.def.Ref.Name)
}

func (g *Codegen) hasChecksum() bool {
	return g.config.Dialect.HasChecksum() && g.config.Checksum != ""
}

// Generate produces the Kotlin source file.
func (g *Codegen) Generate() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by msgmonster from %s. DO NOT EDIT.\n\n", g.def.Name())
	if g.config.PackageName != "" {
		fmt.Fprintf(&buf, "package %s\n\n", g.config.PackageName)
	}
	for _, imp := range g.collectImports() {
		fmt.Fprintf(&buf, "import %s\n", imp)
	}
	buf.WriteString("\n")

	doc := "Definition for " + g.def.Name()
	if g.def.Comment != "" {
		doc += "\n\n" + g.def.Comment
	}
	writeKdoc(&buf, doc)
	g.generateMetadata(&buf)
	g.generateClass(&buf)

	return buf.Bytes()
}

func (g *Codegen) collectImports() []string {
	imports := []string{
		g.config.RuntimePackage + ".Message",
		g.config.RuntimePackage + ".MessageMetadata",
	}
	for _, f := range g.def.Fields {
		if _, imp := g.elementType(f.Type); imp != "" {
			imports = append(imports, imp)
		}
	}
	slices.Sort(imports)
	return slices.Compact(imports)
}

// ── Class header ────────────────────────────────────────────────────

func (g *Codegen) generateMetadata(buf *bytes.Buffer) {
	args := []string{"name = " + g.ClassName() + ".NAME"}
	if len(g.def.Fields) > 1 {
		quoted := make([]string, len(g.def.Fields))
		for i, f := range g.def.Fields {
			quoted[i] = strconv.Quote(f.Name)
		}
		args = append(args, "fields = ["+strings.Join(quoted, ", ")+"]")
	}
	if g.hasChecksum() {
		args = append(args, "md5sum = "+g.ClassName()+".MD5SUM")
	}

	buf.WriteString("@MessageMetadata(\n")
	for _, a := range args {
		fmt.Fprintf(buf, "    %s,\n", a)
	}
	buf.WriteString(")\n")
}

func (g *Codegen) generateClass(buf *bytes.Buffer) {
	if len(g.def.Fields) == 0 {
		// Data classes need at least one property.
		fmt.Fprintf(buf, "class %s : Message {\n", g.ClassName())
	} else {
		fmt.Fprintf(buf, "data class %s(\n", g.ClassName())
		for _, f := range g.def.Fields {
			g.generateProperty(buf, f)
		}
		buf.WriteString(") : Message {\n")
	}

	members := make([][]string, len(g.def.Enums))
	for i, e := range g.def.Enums {
		members[i] = e.Names()
	}
	for i, name := range g.names.EnumNames(members) {
		g.generateEnum(buf, g.def.Enums[i], name)
		buf.WriteString("\n")
	}
	if g.generateInit(buf) {
		buf.WriteString("\n")
	}
	g.generateCompanion(buf)
	buf.WriteString("}\n")
}

// ── Properties ──────────────────────────────────────────────────────

func (g *Codegen) generateProperty(buf *bytes.Buffer, f idl.Field) {
	writeIndentedKdoc(buf, f.Comment, "    ")
	typ, zero := g.kotlinType(f.Decl)
	fmt.Fprintf(buf, "    val %s: %s = %s,\n", f.Name, typ, zero)
}

// generateInit emits the size checks of fixed arrays and reports whether
// there were any.
func (g *Codegen) generateInit(buf *bytes.Buffer) bool {
	var fixed []idl.Field
	for _, f := range g.def.Fields {
		if f.IsFixedArray() {
			fixed = append(fixed, f)
		}
	}
	if len(fixed) == 0 {
		return false
	}
	buf.WriteString("    init {\n")
	for _, f := range fixed {
		fmt.Fprintf(buf, "        require(%[1]s.size == %[2]d) { \"Field %[1]s requires %[2]d elements, got ${%[1]s.size}\" }\n",
			f.Name, f.ArraySize())
	}
	buf.WriteString("    }\n")
	return true
}

// ── Enumerations → enum class ───────────────────────────────────────

func (g *Codegen) generateEnum(buf *bytes.Buffer, e idl.EnumDefinition, name string) {
	fmt.Fprintf(buf, "    enum class %s {\n", name)
	for _, m := range e.Members {
		writeIndentedKdoc(buf, m.Comment, "        ")
		fmt.Fprintf(buf, "        %s,\n", m.Name)
	}
	buf.WriteString("    }\n")
}

func (g *Codegen) generateCompanion(buf *bytes.Buffer) {
	buf.WriteString("    companion object {\n")
	fmt.Fprintf(buf, "        const val NAME = %q\n", g.def.Name())
	if g.hasChecksum() {
		fmt.Fprintf(buf, "        const val MD5SUM = %q\n", g.config.Checksum)
	}
	buf.WriteString("    }\n")
}

// ── Helpers ─────────────────────────────────────────────────────────

func writeKdoc(buf *bytes.Buffer, doc string) {
	writeIndentedKdoc(buf, doc, "")
}

func writeIndentedKdoc(buf *bytes.Buffer, doc, indent string) {
	if doc == "" {
		return
	}
	fmt.Fprintf(buf, "%s/**\n", indent)
	for line := range strings.SplitSeq(doc, "\n") {
		if line == "" {
			fmt.Fprintf(buf, "%s *\n", indent)
			continue
		}
		fmt.Fprintf(buf, "%s * %s\n", indent, line)
	}
	fmt.Fprintf(buf, "%s */\n", indent)
}
