// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package idl

import (
	"fmt"

	"github.com/pinorobotics/msgmonster/internal/errors"
)

// ParseError reports a line of a definition that could not be parsed.
type ParseError struct {
	// Definition is the message name of the definition being parsed.
	Definition string
	// Line is the 1-based line number.
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %q", e.Definition, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
