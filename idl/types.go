// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package idl

import (
	"strconv"
	"strings"
)

// Built-in type keywords.
const (
	TypeBool     = "bool"
	TypeByte     = "byte"
	TypeChar     = "char"
	TypeInt8     = "int8"
	TypeUint8    = "uint8"
	TypeInt16    = "int16"
	TypeUint16   = "uint16"
	TypeInt32    = "int32"
	TypeUint32   = "uint32"
	TypeInt64    = "int64"
	TypeUint64   = "uint64"
	TypeFloat32  = "float32"
	TypeFloat64  = "float64"
	TypeString   = "string"
	TypeWString  = "wstring"
	TypeTime     = "time"
	TypeDuration = "duration"
)

// StdMsgsPackage is the package that bare standard message names resolve to.
const StdMsgsPackage = "std_msgs"

// Kind classifies the element type of a field.
type Kind int

const (
	// KindUnknown is a bare name that is not built in: a message of the same package.
	KindUnknown Kind = iota
	KindPrimitive
	// KindBasic is a well-known non-primitive type such as string or time.
	KindBasic
	// KindForeign is a pkg/Type reference.
	KindForeign
	// KindStdMsg is a bare standard message name such as Header.
	KindStdMsg
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindBasic:
		return "basic"
	case KindForeign:
		return "foreign"
	case KindStdMsg:
		return "stdmsg"
	default:
		return "unknown"
	}
}

var primitiveTypes = map[string]bool{
	TypeBool:    true,
	TypeByte:    true,
	TypeChar:    true,
	TypeInt8:    true,
	TypeUint8:   true,
	TypeInt16:   true,
	TypeUint16:  true,
	TypeInt32:   true,
	TypeUint32:  true,
	TypeInt64:   true,
	TypeUint64:  true,
	TypeFloat32: true,
	TypeFloat64: true,
}

var basicTypes = map[Dialect]map[string]bool{
	ROS1: {TypeString: true, TypeTime: true, TypeDuration: true},
	ROS2: {TypeString: true, TypeWString: true},
}

// stdMsgs holds the message names of the std_msgs package.
var stdMsgs = map[string]bool{
	"Bool":                true,
	"Byte":                true,
	"ByteMultiArray":      true,
	"Char":                true,
	"ColorRGBA":           true,
	"Duration":            true,
	"Empty":               true,
	"Float32":             true,
	"Float32MultiArray":   true,
	"Float64":             true,
	"Float64MultiArray":   true,
	"Header":              true,
	"Int16":               true,
	"Int16MultiArray":     true,
	"Int32":               true,
	"Int32MultiArray":     true,
	"Int64":               true,
	"Int64MultiArray":     true,
	"Int8":                true,
	"Int8MultiArray":      true,
	"MultiArrayDimension": true,
	"MultiArrayLayout":    true,
	"String":              true,
	"Time":                true,
	"UInt16":              true,
	"UInt16MultiArray":    true,
	"UInt32":              true,
	"UInt32MultiArray":    true,
	"UInt64":              true,
	"UInt64MultiArray":    true,
	"UInt8":               true,
	"UInt8MultiArray":     true,
}

// TypeRef is the classified form of a field type token.
type TypeRef struct {
	// Token is the type as written in the definition.
	Token string
	// Package is set for foreign and standard message references.
	Package string
	// Base is the element type name without package and array suffix.
	Base  string
	Kind  Kind
	Array bool
	// Size is the length of a fixed array; 0 means dynamic.
	Size int
	// Bound is the upper bound of a bounded dynamic array ("[<=N]").
	Bound int
}

func (t TypeRef) IsArray() bool      { return t.Array }
func (t TypeRef) IsFixedArray() bool { return t.Array && t.Size > 0 }
func (t TypeRef) IsPrimitive() bool  { return t.Kind == KindPrimitive }
func (t TypeRef) IsBasic() bool      { return t.Kind == KindBasic }
func (t TypeRef) IsForeign() bool    { return t.Kind == KindForeign }
func (t TypeRef) IsStdMsg() bool     { return t.Kind == KindStdMsg }

// IsMessage reports whether the element type is another message definition.
func (t TypeRef) IsMessage() bool {
	return t.Kind == KindForeign || t.Kind == KindStdMsg || t.Kind == KindUnknown
}

// FullName returns pkg/Base for package qualified types and Base otherwise.
func (t TypeRef) FullName() string {
	if t.Package == "" {
		return t.Base
	}
	return t.Package + "/" + t.Base
}

// ParseType classifies a type token of dialect d. Classification never fails:
// tokens that match no rule are KindUnknown.
func ParseType(d Dialect, token string) TypeRef {
	t := TypeRef{Token: token}
	elem := token
	if i := strings.IndexByte(token, '['); i >= 0 && strings.HasSuffix(token, "]") {
		t.Array = true
		elem = token[:i]
		switch inner := token[i+1 : len(token)-1]; {
		case inner == "":
		case strings.HasPrefix(inner, "<="):
			t.Bound, _ = strconv.Atoi(inner[2:])
		default:
			if n, err := strconv.Atoi(inner); err == nil && n > 0 {
				t.Size = n
			}
		}
	}
	// bounded strings: string<=N
	if i := strings.Index(elem, "<="); i >= 0 {
		elem = elem[:i]
	}
	t.Base = elem

	switch {
	case primitiveTypes[elem]:
		t.Kind = KindPrimitive
	case basicTypes[d][elem]:
		t.Kind = KindBasic
	case strings.Contains(elem, "/"):
		// pkg/Type or pkg/msg/Type
		parts := strings.Split(elem, "/")
		t.Package = parts[0]
		t.Base = parts[len(parts)-1]
		t.Kind = KindForeign
	case stdMsgs[elem]:
		t.Package = StdMsgsPackage
		t.Kind = KindStdMsg
	default:
		t.Kind = KindUnknown
	}
	return t
}

// Dependency returns the "pkg/Name" of the definition this type refers to
// when used by a definition of package pkg. It reports false for built-in
// types.
func (t TypeRef) Dependency(pkg string) (string, bool) {
	if !t.IsMessage() {
		return "", false
	}
	if t.Package == "" {
		return pkg + "/" + t.Base, true
	}
	return t.FullName(), true
}
