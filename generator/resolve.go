// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"context"

	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/source"
)

// SkipFunc is called for a referenced definition that cannot be resolved.
type SkipFunc func(name string, err error)

// ResolveDeps returns the definitions transitively referenced by the
// fields of root, dependencies first and without root itself. References
// the source cannot supply are passed to skip and not followed.
func ResolveDeps(ctx context.Context, src source.Source, p *idl.Parser, root idl.Ref, skip SkipFunc) ([]idl.Ref, error) {
	r := &resolver{
		src:     src,
		parser:  p,
		skip:    skip,
		visited: make(map[string]bool),
	}
	if err := r.collectDeps(ctx, root); err != nil {
		return nil, err
	}
	return r.order, nil
}

type resolver struct {
	src     source.Source
	parser  *idl.Parser
	skip    SkipFunc
	visited map[string]bool
	order   []idl.Ref
}

// collectDeps recursively collects all definitions referenced by ref.
func (r *resolver) collectDeps(ctx context.Context, ref idl.Ref) error {
	if r.visited[ref.String()] {
		return nil // Already processed or cycle
	}
	r.visited[ref.String()] = true

	if err := ctx.Err(); err != nil {
		return err
	}
	def, err := r.parser.ParseSeq(ref, r.src.Lines(ctx, ref))
	if err != nil {
		return err
	}
	for _, f := range def.Fields {
		if err := r.collectTypeRef(ctx, ref.Package, f.Type); err != nil {
			return err
		}
	}
	return nil
}

// collectTypeRef follows the definition a field type refers to. A
// definition is recorded after its own dependencies.
func (r *resolver) collectTypeRef(ctx context.Context, pkg string, t idl.TypeRef) error {
	name, ok := t.Dependency(pkg)
	if !ok || r.visited[name] {
		return nil
	}
	dep, err := r.src.Ref(ctx, name)
	if err == nil {
		err = r.collectDeps(ctx, dep)
	}
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.visited[name] = true
		if r.skip != nil {
			r.skip(name, err)
		}
		return nil
	}
	r.order = append(r.order, dep)
	return nil
}
