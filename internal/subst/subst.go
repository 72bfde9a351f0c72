// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package subst implements "${key}" placeholder substitution over template
// fragments and the repeated-line expansion used for per-field sections.
package subst

import (
	"maps"
	"slices"
	"strings"
)

// Marker is the placeholder of the line that Expand repeats per item.
const Marker = "${...}"

// Placeholder returns the placeholder text for key.
func Placeholder(key string) string {
	return "${" + key + "}"
}

// Vars maps placeholder keys to values. Keys are bare names: the value of
// key "className" replaces "${className}".
type Vars struct {
	m map[string]string
}

// NewVars returns an empty set of variables.
func NewVars() *Vars {
	return &Vars{m: make(map[string]string)}
}

// Set assigns value to key and returns v for chaining.
func (v *Vars) Set(key, value string) *Vars {
	if v.m == nil {
		v.m = make(map[string]string)
	}
	v.m[key] = value
	return v
}

// Get returns the value of key.
func (v *Vars) Get(key string) (string, bool) {
	val, ok := v.m[key]
	return val, ok
}

// Has reports whether key is set.
func (v *Vars) Has(key string) bool {
	_, ok := v.m[key]
	return ok
}

// Clone returns an independent copy of v.
func (v *Vars) Clone() *Vars {
	return &Vars{m: maps.Clone(v.m)}
}

// Keys returns the keys in sorted order.
func (v *Vars) Keys() []string {
	return slices.Sorted(maps.Keys(v.m))
}

// Substitute replaces every occurrence of every known placeholder in text.
// Placeholders without a value are left as written.
func Substitute(text string, vars *Vars) string {
	if vars == nil || len(vars.m) == 0 {
		return text
	}
	pairs := make([]string, 0, 2*len(vars.m))
	for _, k := range vars.Keys() {
		pairs = append(pairs, Placeholder(k), vars.m[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Expansion controls how Expand joins the repeated lines.
type Expansion struct {
	// Separator is appended to every expansion but the last.
	Separator string
	// Terminator is appended to the last expansion.
	Terminator string
}

// Expand repeats the marker line of text once per item. The marker line is
// the line whose trimmed content is Marker; each item replaces it with the
// marker line's indentation. Other lines are kept unchanged.
//
// Expand returns false when items is empty, in which case the section is to
// be skipped.
func Expand(text string, items []string, e Expansion) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines)+len(items))
	for _, line := range lines {
		if strings.TrimSpace(line) != Marker {
			out = append(out, line)
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		for i, item := range items {
			end := e.Separator
			if i == len(items)-1 {
				end = e.Terminator
			}
			out = append(out, indent+item+end)
		}
	}
	return strings.Join(out, "\n"), true
}
