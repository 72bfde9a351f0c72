// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package errors provides error handling for msgmonster.
//
// It re-exports github.com/cockroachdb/errors so that every package wraps
// and inspects errors the same way, and defines the sentinel errors shared
// by the parser, the definition sources and the generation pipeline.
//
//	if err := src.Checksum(ctx, ref); err != nil {
//	    return errors.Wrapf(err, "checksum %s", ref)
//	}
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // definition is not provided by the source
//	}
package errors

import (
	stderrors "errors"

	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
	Join         = stderrors.Join
)

// User-facing messages
var (
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Sentinel errors for the failure classes of a generation run.
var (
	// ErrMalformedField marks a field line that cannot be split into type and name.
	ErrMalformedField = New("malformed field line")
	// ErrNotFound marks a definition or package the source cannot supply.
	ErrNotFound = New("definition not found")
	// ErrExists marks an output artifact that is already present.
	ErrExists = New("output already exists")
	// ErrTemplate marks a template fragment that cannot be read.
	ErrTemplate = New("template unavailable")
	// ErrUnsupported marks an unknown dialect, language or source kind.
	ErrUnsupported = New("unsupported")
	// ErrGenerationFailed marks a definition whose class could not be generated.
	ErrGenerationFailed = New("generation failed")
)
