// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package names derives generated class and method identifiers from
// definition names and field names.
package names

import (
	"path"
	"strconv"
	"strings"

	"github.com/go-openapi/inflect"
)

const (
	// DefaultSuffix is appended to every derived class name.
	DefaultSuffix = "Message"

	// UnknownEnum names an enum whose members share no prefix.
	UnknownEnum = "UnknownType"
)

// Camel converts a snake_case or file style identifier into UpperCamelCase
// ("joint_state" -> "JointState"). Runs of capitals are kept as written.
func Camel(s string) string {
	if s == "" {
		return ""
	}
	return inflect.Camelize(s)
}

// Formatter derives class and method names.
type Formatter struct {
	// Suffix is appended to class names. Empty means no suffix.
	Suffix string
}

// ClassName returns the class name for a definition id. The id may be a
// message name ("geometry_msgs/Point"), a toolchain type name
// ("geometry_msgs/msg/Point") or a file path ("msg/Point.msg").
func (f Formatter) ClassName(id string) string {
	base := path.Base(strings.ReplaceAll(id, "\\", "/"))
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return Camel(base) + f.Suffix
}

// MethodName returns verb followed by the camelized field name
// ("with", "linear_velocity" -> "withLinearVelocity").
func (f Formatter) MethodName(verb, field string) string {
	return verb + Camel(field)
}

// EnumName returns the camelized common "_" separated prefix of the member
// names (STATUS_FIX, STATUS_NO_FIX -> STATUS), or "" when there is none.
func (f Formatter) EnumName(members []string) string {
	if len(members) == 0 {
		return ""
	}
	prefix := strings.Split(members[0], "_")
	for _, m := range members[1:] {
		parts := strings.Split(m, "_")
		n := 0
		for n < len(prefix) && n < len(parts) && prefix[n] == parts[n] {
			n++
		}
		prefix = prefix[:n]
	}
	// A single member is its own prefix; keep only its leading words.
	if len(members) == 1 && len(prefix) > 1 {
		prefix = prefix[:len(prefix)-1]
	} else if len(members) == 1 {
		return ""
	}
	for len(prefix) > 0 && prefix[len(prefix)-1] == "" {
		prefix = prefix[:len(prefix)-1]
	}
	if len(prefix) == 0 {
		return ""
	}
	return Camel(strings.ToLower(strings.Join(prefix, "_")))
}

// EnumNames names the enums of one class from their member names. Every
// returned name is distinct: a name that was already handed out gets the
// smallest suffix 2, 3, ... that makes it unused.
func (f Formatter) EnumNames(enums [][]string) []string {
	used := make(map[string]bool, len(enums))
	out := make([]string, len(enums))
	for i, members := range enums {
		base := f.EnumName(members)
		if base == "" {
			base = UnknownEnum
		}
		name := base
		for n := 2; used[name]; n++ {
			name = base + strconv.Itoa(n)
		}
		used[name] = true
		out[i] = name
	}
	return out
}
