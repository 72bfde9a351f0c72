// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import (
	"github.com/pinorobotics/msgmonster/idl"
)

// ArraysImport is required by every array shaped field.
const ArraysImport = "java.util.Arrays"

// primitiveTypes maps primitive keywords to Java primitives.
var primitiveTypes = map[string]string{
	idl.TypeBool:    "boolean",
	idl.TypeByte:    "byte",
	idl.TypeChar:    "byte",
	idl.TypeInt8:    "byte",
	idl.TypeUint8:   "byte",
	idl.TypeInt16:   "short",
	idl.TypeUint16:  "short",
	idl.TypeInt32:   "int",
	idl.TypeUint32:  "int",
	idl.TypeInt64:   "long",
	idl.TypeUint64:  "long",
	idl.TypeFloat32: "float",
	idl.TypeFloat64: "double",
}

// basicTypes maps well-known types to a class and its runtime sub-package.
var basicTypes = map[string]struct{ class, pkg string }{
	idl.TypeString:   {"StringMessage", "std_msgs"},
	idl.TypeWString:  {"StringMessage", "std_msgs"},
	idl.TypeTime:     {"Time", "primitives"},
	idl.TypeDuration: {"Duration", "primitives"},
}

// javaType returns the Java element type of t and the import it needs.
// The import is empty for primitives and same-package references.
func (g *Codegen) javaType(t idl.TypeRef) (name, imp string) {
	switch t.Kind {
	case idl.KindPrimitive:
		return primitiveTypes[t.Base], ""
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

// fieldImports returns the imports required by f.
func (g *Codegen) fieldImports(f idl.Field) []string {
	var imports []string
	if f.IsArray() {
		imports = append(imports, ArraysImport)
	}
	if _, imp := g.javaType(f.Type); imp != "" {
		imports = append(imports, imp)
	}
	return imports
}
