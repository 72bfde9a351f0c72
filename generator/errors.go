// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"strings"

	"github.com/pinorobotics/msgmonster/internal/errors"
)

// Phase names the pipeline step a GenerationError happened in.
type Phase string

const (
	PhaseRead     Phase = "read"
	PhaseParse    Phase = "parse"
	PhaseChecksum Phase = "checksum"
	PhaseRender   Phase = "render"
	PhaseWrite    Phase = "write"
)

// GenerationError reports a definition whose class could not be generated.
type GenerationError struct {
	Definition string
	Phase      Phase
	Cause      error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("generate")
	if e.Definition != "" {
		b.WriteString(" ")
		b.WriteString(e.Definition)
	}
	if e.Phase != "" {
		b.WriteString(" (")
		b.WriteString(string(e.Phase))
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == errors.ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(definition string, phase Phase, cause error) *GenerationError {
	return &GenerationError{Definition: definition, Phase: phase, Cause: cause}
}
