// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.

package java

// annotationArgs collects the named arguments of a Java annotation.
// A repeated name replaces the earlier value but keeps its position.
type annotationArgs struct {
	names  []string
	values map[string]string
}

func (a *annotationArgs) set(name, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
}

// items renders each argument as "name = value".
func (a *annotationArgs) items() []string {
	out := make([]string, 0, len(a.names))
	for _, n := range a.names {
		out = append(out, n+" = "+a.values[n])
	}
	return out
}
