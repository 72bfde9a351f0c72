// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"slices"
	"strings"
	"sync"

	"github.com/pinorobotics/msgmonster/internal/errors"
)

// Registry maps target language names to generators.
type Registry struct {
	mu   sync.RWMutex
	gens map[string]Generator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{gens: make(map[string]Generator)}
}

// Default is the registry the command line resolves --lang against.
var Default = NewRegistry()

// Register adds g under its metadata name. A second generator for the same
// language is rejected.
func (r *Registry) Register(g Generator) error {
	lang := g.Metadata().Name
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.gens[lang]; ok {
		return errors.Newf("generator %q already registered", lang)
	}
	r.gens[lang] = g
	return nil
}

// Lookup returns the generator for lang. The error carries a hint listing
// the languages that are available.
func (r *Registry) Lookup(lang string) (Generator, error) {
	r.mu.RLock()
	g, ok := r.gens[lang]
	r.mu.RUnlock()
	if ok {
		return g, nil
	}
	return nil, errors.WithHintf(
		errors.Wrapf(errors.ErrUnsupported, "language %q", lang),
		"available languages: %s", strings.Join(r.Languages(), ", "))
}

// Languages returns the registered language names in sorted order.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	langs := make([]string, 0, len(r.gens))
	for lang := range r.gens {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// MustRegister registers g with Default and panics on a duplicate. It is
// meant for init functions.
func MustRegister(g Generator) {
	if err := Default.Register(g); err != nil {
		panic(err)
	}
}

// Lookup resolves lang against Default.
func Lookup(lang string) (Generator, error) {
	return Default.Lookup(lang)
}
