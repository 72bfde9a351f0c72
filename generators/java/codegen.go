// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package java generates Java message classes for the jros message runtime.
//
// The generated code follows the runtime conventions:
//   - a class implementing Message, annotated with @MessageMetadata
//   - a nested enum per group of constants numbered 0, 1, 2, ...
//   - with<Field> accessors that return a modified copy
//   - hashCode, equals and toString over all fields
package java

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pinorobotics/msgmonster/generator"
	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/internal/codewriter"
	"github.com/pinorobotics/msgmonster/internal/errors"
	"github.com/pinorobotics/msgmonster/internal/names"
	"github.com/pinorobotics/msgmonster/internal/subst"
)

// Config holds configuration for Java generation.
type Config struct {
	// Package is the Java package of generated classes.
	Package string

	// RuntimePackage is the namespace of the message runtime.
	RuntimePackage string

	// Dialect is the definition dialect.
	Dialect idl.Dialect

	// Checksum is the definition checksum, empty when unknown.
	Checksum string

	// ClassSuffix is appended to derived class names.
	ClassSuffix string
}

// state is a step of class rendering. Steps run strictly in order.
type state int

const (
	stateStart state = iota
	stateHeaderEmitted
	statePackageEmitted
	stateImportsEmitted
	stateDocEmitted
	stateMetadataEmitted
	stateBodyOpen
	stateFieldsEmitted
	stateAccessorsEmitted
	stateIdentityMethodsEmitted
	stateBodyClosed
	stateGlobalSubstituted
)

// Codegen renders the Java class of one definition.
type Codegen struct {
	def    *idl.MessageDefinition
	config Config
	tpl    *subst.Templates
	names  names.Formatter

	className string
	vars      *subst.Vars
	w         *codewriter.Writer
	state     state
	out       string
}

// New creates a Codegen for def reading fragments from tpl.
func New(def *idl.MessageDefinition, cfg Config, tpl *subst.Templates) *Codegen {
	if cfg.RuntimePackage == "" {
		cfg.RuntimePackage = generator.DefaultRuntime(cfg.Dialect)
	}
	f := names.Formatter{Suffix: cfg.ClassSuffix}
	return &Codegen{
		def:       def,
		config:    cfg,
		tpl:       tpl,
		names:     f,
		className: f.ClassName(def.Ref.Name),
		vars:      subst.NewVars(),
		w:         codewriter.New(),
	}
}

// ClassName returns the name of the generated class.
func (g *Codegen) ClassName() string {
	return g.className
}

// Render produces the class source.
func (g *Codegen) Render() ([]byte, error) {
	steps := []struct {
		to  state
		run func() error
	}{
		{stateHeaderEmitted, g.emitHeader},
		{statePackageEmitted, g.emitPackage},
		{stateImportsEmitted, g.emitImports},
		{stateDocEmitted, g.emitJavadoc},
		{stateMetadataEmitted, g.emitMetadata},
		{stateBodyOpen, g.openBody},
		{stateFieldsEmitted, g.emitFields},
		{stateAccessorsEmitted, g.emitAccessors},
		{stateIdentityMethodsEmitted, g.emitIdentityMethods},
		{stateBodyClosed, g.closeBody},
		{stateGlobalSubstituted, g.substituteGlobals},
	}
	for _, s := range steps {
		if s.to != g.state+1 {
			return nil, errors.Newf("render %s: step %d out of order", g.def.Name(), s.to)
		}
		if err := s.run(); err != nil {
			return nil, errors.Wrapf(err, "render %s", g.def.Name())
		}
		g.state = s.to
	}
	return []byte(g.out), nil
}

// template reads fragment name and applies vars to it.
func (g *Codegen) template(name string, vars *subst.Vars) (string, error) {
	text, err := g.tpl.Read(name)
	if err != nil {
		return "", err
	}
	return subst.Substitute(text, vars), nil
}

// ── Preamble ────────────────────────────────────────────────────────

func (g *Codegen) emitHeader() error {
	header, err := g.template("header", subst.NewVars().Set("msgName", g.def.Name()))
	if err != nil {
		return err
	}
	g.w.Raw(header)
	g.w.Blank()

	g.vars.Set("msgName", g.def.Name())
	g.vars.Set("package", g.config.Package)
	g.vars.Set("runtimePackage", g.config.RuntimePackage)
	if g.config.Dialect.HasChecksum() && g.config.Checksum != "" {
		g.vars.Set("md5sum", g.config.Checksum)
	}
	return nil
}

func (g *Codegen) emitPackage() error {
	if g.config.Package != "" {
		g.w.Line("package " + g.config.Package + ";")
		g.w.Blank()
	}
	return nil
}

func (g *Codegen) emitImports() error {
	base, err := g.template("imports", subst.NewVars().Set("runtimePackage", g.config.RuntimePackage))
	if err != nil {
		return err
	}
	var imports []string
	for line := range strings.SplitSeq(base, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			imports = append(imports, line)
		}
	}
	for _, f := range g.def.Fields {
		for _, imp := range g.fieldImports(f) {
			imports = append(imports, "import "+imp+";")
		}
	}
	slices.Sort(imports)
	for _, imp := range slices.Compact(imports) {
		g.w.Line(imp)
	}
	g.w.Blank()
	return nil
}

func (g *Codegen) emitJavadoc() error {
	comment := "Definition for " + g.def.Name()
	if strings.TrimSpace(g.def.Comment) != "" {
		comment += "\n\n<p>" + g.def.Comment
	}
	g.writeJavadoc(comment)
	return nil
}

func (g *Codegen) emitMetadata() error {
	var meta annotationArgs
	meta.set("name", "${className}.NAME")
	if len(g.def.Fields) > 1 {
		quoted := make([]string, len(g.def.Fields))
		for i, f := range g.def.Fields {
			quoted[i] = strconv.Quote(f.Name)
		}
		meta.set("fields", "{"+strings.Join(quoted, ", ")+"}")
	}
	if g.vars.Has("md5sum") {
		meta.set("md5sum", `"${md5sum}"`)
	}

	items := meta.items()
	text, err := g.tpl.Read("class_message_metadata")
	if err != nil {
		return err
	}
	if expanded, ok := subst.Expand(text, items, subst.Expansion{Separator: ",", Terminator: ")"}); ok {
		g.w.Block(expanded)
	}
	return nil
}

func (g *Codegen) openBody() error {
	g.vars.Set("className", g.className)
	g.w.Open("public class " + g.className + " implements Message {")
	g.w.Blank()
	header, err := g.template("class_fields_header", g.vars)
	if err != nil {
		return err
	}
	g.w.Block(header)
	g.w.Blank()
	return nil
}

// ── Fields ──────────────────────────────────────────────────────────

func (g *Codegen) emitFields() error {
	if err := g.emitEnums(); err != nil {
		return err
	}
	for _, f := range g.def.Fields {
		name := "class_field"
		switch {
		case f.IsFixedArray():
			name = "class_field_fixed_size_array"
		case f.IsArray():
			name = "class_field_array"
		case f.IsPrimitive():
			name = "class_field_primitive"
		}
		if err := g.emitField(name, f.Decl); err != nil {
			return err
		}
	}
	if len(g.def.Fields) > 0 {
		g.w.Blank()
	}
	return nil
}

func (g *Codegen) emitEnums() error {
	members := make([][]string, len(g.def.Enums))
	for i, e := range g.def.Enums {
		members[i] = e.Names()
	}
	for i, name := range g.names.EnumNames(members) {
		g.w.Open("public enum " + name + " {")
		for _, m := range g.def.Enums[i].Members {
			if err := g.emitField("enum_field", m.Decl); err != nil {
				return err
			}
		}
		g.w.Close("}")
		g.w.Blank()
	}
	return nil
}

func (g *Codegen) emitField(tplName string, d idl.Decl) error {
	typ, _ := g.javaType(d.Type)
	vars := subst.NewVars().
		Set("fieldType", typ).
		Set("fieldName", d.Name).
		Set("arraySize", strconv.Itoa(d.Type.Size))
	body, err := g.template(tplName, vars)
	if err != nil {
		return err
	}
	if d.Comment != "" {
		g.writeJavadoc(d.Comment)
	}
	g.w.Block(body)
	return nil
}

// ── Accessors ───────────────────────────────────────────────────────

// emitAccessors writes one withX method per field. Each returns a copy of
// the message with that field replaced and leaves the receiver unchanged.
func (g *Codegen) emitAccessors() error {
	if len(g.def.Fields) == 0 {
		return nil
	}
	assign := make([]string, len(g.def.Fields))
	for i, f := range g.def.Fields {
		assign[i] = fmt.Sprintf("copy.%[1]s = this.%[1]s", f.Name)
	}
	text, err := g.tpl.Read("copy_method")
	if err != nil {
		return err
	}
	if expanded, ok := subst.Expand(text, assign, subst.Expansion{Separator: ";", Terminator: ";"}); ok {
		g.w.Block(expanded)
		g.w.Blank()
	}

	for _, f := range g.def.Fields {
		typ, _ := g.javaType(f.Type)
		vars := g.vars.Clone().
			Set("fieldName", f.Name).
			Set("methodName", g.names.MethodName("with", f.Name))
		name := "with_method"
		if f.IsArray() {
			typ += "..."
			if f.IsFixedArray() {
				name = "with_method_for_fixed_size_array"
				vars.Set("arraySize", strconv.Itoa(f.ArraySize()))
			}
		}
		vars.Set("fieldType", typ)
		body, err := g.template(name, vars)
		if err != nil {
			return err
		}
		g.w.Block(body)
		g.w.Blank()
	}
	return nil
}

// ── Identity methods ────────────────────────────────────────────────

func (g *Codegen) emitIdentityMethods() error {
	if len(g.def.Fields) == 0 {
		return nil
	}
	var hash, eq, str []string
	for _, f := range g.def.Fields {
		switch {
		case f.IsArray():
			hash = append(hash, fmt.Sprintf("Arrays.hashCode(%s)", f.Name))
			eq = append(eq, fmt.Sprintf("Arrays.equals(%[1]s, other.%[1]s)", f.Name))
		case f.IsPrimitive():
			hash = append(hash, f.Name)
			eq = append(eq, fmt.Sprintf("%[1]s == other.%[1]s", f.Name))
		default:
			hash = append(hash, f.Name)
			eq = append(eq, fmt.Sprintf("Objects.equals(%[1]s, other.%[1]s)", f.Name))
		}
		str = append(str, fmt.Sprintf("%q, %s", f.Name, f.Name))
	}

	sections := []struct {
		tpl   string
		items []string
		e     subst.Expansion
	}{
		{"hash_code", hash, subst.Expansion{Separator: ",", Terminator: ");"}},
		{"equals", eq, subst.Expansion{Separator: " &&", Terminator: ");"}},
		{"to_string", str, subst.Expansion{Separator: ",", Terminator: ");"}},
	}
	for i, s := range sections {
		text, err := g.tpl.Read(s.tpl)
		if err != nil {
			return err
		}
		expanded, ok := subst.Expand(text, s.items, s.e)
		if !ok {
			continue
		}
		g.w.Block(expanded)
		if i < len(sections)-1 {
			g.w.Blank()
		}
	}
	return nil
}

func (g *Codegen) closeBody() error {
	g.w.Close("}")
	return nil
}

// substituteGlobals resolves the definition wide placeholders in the whole
// text, including fragments rendered before the values were known.
func (g *Codegen) substituteGlobals() error {
	g.out = subst.Substitute(g.w.String(), g.vars)
	return nil
}

// ── Helpers ─────────────────────────────────────────────────────────

func (g *Codegen) writeJavadoc(doc string) {
	g.w.Line("/**")
	for line := range strings.SplitSeq(doc, "\n") {
		if line == "" {
			g.w.Line(" *")
			continue
		}
		g.w.Line(" * " + line)
	}
	g.w.Line(" */")
}
