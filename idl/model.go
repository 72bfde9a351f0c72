// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package idl parses ROS message definition files into an immutable model.
//
// A definition is a line oriented list of fields ("type name"), constants
// ("type NAME=value") and "#" comments. The parser attributes comments to
// the message or to the following field, and groups runs of integer
// constants numbered 0, 1, 2, ... into enums.
package idl

// Ref identifies one message definition.
type Ref struct {
	Package string
	Name    string
	// Location is an opaque handle owned by the source that produced the ref
	// (a file path, a toolchain type name).
	Location string
}

// String returns "pkg/Name", the message name of the definition.
func (r Ref) String() string {
	if r.Package == "" {
		return r.Name
	}
	return r.Package + "/" + r.Name
}

// Decl is the shape shared by plain fields and enum members.
type Decl struct {
	Name    string
	Type    TypeRef
	Comment string
}

func (d Decl) IsArray() bool      { return d.Type.IsArray() }
func (d Decl) IsFixedArray() bool { return d.Type.IsFixedArray() }
func (d Decl) IsPrimitive() bool  { return d.Type.IsPrimitive() }
func (d Decl) IsBasic() bool      { return d.Type.IsBasic() }
func (d Decl) IsForeign() bool    { return d.Type.IsForeign() }
func (d Decl) IsStdMsg() bool     { return d.Type.IsStdMsg() }

// ArraySize returns the fixed array length, or 0 for dynamic arrays and scalars.
func (d Decl) ArraySize() int { return d.Type.Size }

// Field is a declared field. Value is set only for constants that did not
// join an enum.
type Field struct {
	Decl
	Value string
}

// EnumMember is a constant inside an enum group.
type EnumMember struct {
	Decl
	Value   string
	Ordinal int
}

// EnumDefinition is a run of constants numbered 0, 1, 2, ...
// It always has at least one member.
type EnumDefinition struct {
	Members []EnumMember
}

// Names returns the member names in declaration order.
func (e EnumDefinition) Names() []string {
	names := make([]string, len(e.Members))
	for i, m := range e.Members {
		names[i] = m.Name
	}
	return names
}

// MessageDefinition is the parsed form of one definition. It is not
// modified after Parse returns.
type MessageDefinition struct {
	Ref     Ref
	Comment string
	Fields  []Field
	Enums   []EnumDefinition
}

// Name returns the message name "pkg/Name".
func (m *MessageDefinition) Name() string {
	return m.Ref.String()
}

// FieldNames returns the names of the plain fields in declaration order.
func (m *MessageDefinition) FieldNames() []string {
	names := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		names[i] = f.Name
	}
	return names
}

// lineResult is the outcome of parsing one field line.
type lineResult interface {
	decl() Decl
}

func (f Field) decl() Decl      { return f.Decl }
func (e EnumMember) decl() Decl { return e.Decl }
