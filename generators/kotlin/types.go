// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package kotlin

import (
	"strconv"

	"github.com/pinorobotics/msgmonster/idl"
)

// kotlinPrimitive is a Kotlin primitive and the literal of its zero value.
type kotlinPrimitive struct {
	name, zero string
}

var primitiveTypes = map[string]kotlinPrimitive{
	idl.TypeBool:    {"Boolean", "false"},
	idl.TypeByte:    {"Byte", "0"},
	idl.TypeChar:    {"Byte", "0"},
	idl.TypeInt8:    {"Byte", "0"},
	idl.TypeUint8:   {"Byte", "0"},
	idl.TypeInt16:   {"Short", "0"},
	idl.TypeUint16:  {"Short", "0"},
	idl.TypeInt32:   {"Int", "0"},
	idl.TypeUint32:  {"Int", "0"},
	idl.TypeInt64:   {"Long", "0L"},
	idl.TypeUint64:  {"Long", "0L"},
	idl.TypeFloat32: {"Float", "0.0f"},
	idl.TypeFloat64: {"Double", "0.0"},
}

// basicTypes maps well-known types to a runtime class and its sub-package.
var basicTypes = map[string]struct{ class, pkg string }{
	idl.TypeString:   {"StringMessage", "std_msgs"},
	idl.TypeWString:  {"StringMessage", "std_msgs"},
	idl.TypeTime:     {"Time", "primitives"},
	idl.TypeDuration: {"Duration", "primitives"},
}

// elementType returns the Kotlin type of one element of t and the import
// it needs. The import is empty for primitives and same-package types.
func (g *Codegen) elementType(t idl.TypeRef) (name, imp string) {
	switch t.Kind {
	case idl.KindPrimitive:
		return primitiveTypes[t.Base].name, ""
	case idl.KindBasic:
		b := basicTypes[t.Base]
		return b.class, g.config.RuntimePackage + "." + b.pkg + "." + b.class
	case idl.KindForeign, idl.KindStdMsg:
		name = g.names.ClassName(t.Base)
		return name, g.config.RuntimePackage + "." + t.Package + "." + name
	default:
		return g.names.ClassName(t.Base), ""
	}
}

// elementZero returns the default value expression of one element of t.
func (g *Codegen) elementZero(t idl.TypeRef) string {
	if p, ok := primitiveTypes[t.Base]; ok && t.Kind == idl.KindPrimitive {
		return p.zero
	}
	name, _ := g.elementType(t)
	return name + "()"
}

// kotlinType returns the property type and default value of d. Arrays are
// lists so that data class equality compares their contents.
func (g *Codegen) kotlinType(d idl.Decl) (typ, zero string) {
	elem, _ := g.elementType(d.Type)
	switch {
	case d.IsFixedArray():
		return "List<" + elem + ">", "List(" + strconv.Itoa(d.ArraySize()) + ") { " + g.elementZero(d.Type) + " }"
	case d.IsArray():
		return "List<" + elem + ">", "emptyList()"
	default:
		return elem, g.elementZero(d.Type)
	}
}
