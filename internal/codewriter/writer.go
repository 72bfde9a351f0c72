// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package codewriter provides an indentation aware writer for generated
// source text.
package codewriter

import "strings"

// DefaultIndent is one level of indentation.
const DefaultIndent = "    "

// Writer accumulates lines of source text. Every line is prefixed with the
// current indentation except empty lines, which stay empty.
type Writer struct {
	b      strings.Builder
	depth  int
	indent string
}

// New returns a Writer indenting with DefaultIndent.
func New() *Writer {
	return &Writer{indent: DefaultIndent}
}

// Line writes one line at the current indentation.
func (w *Writer) Line(s string) {
	if s != "" {
		for range w.depth {
			w.b.WriteString(w.indent)
		}
		w.b.WriteString(s)
	}
	w.b.WriteByte('\n')
}

// Blank writes an empty line.
func (w *Writer) Blank() {
	w.b.WriteByte('\n')
}

// Block writes every line of text at the current indentation. A single
// trailing newline does not produce an extra empty line.
func (w *Writer) Block(text string) {
	text = strings.TrimSuffix(text, "\n")
	for line := range strings.SplitSeq(text, "\n") {
		w.Line(line)
	}
}

// Open writes s and indents the following lines one level deeper.
func (w *Writer) Open(s string) {
	w.Line(s)
	w.depth++
}

// Close dedents one level and writes s.
func (w *Writer) Close(s string) {
	if w.depth > 0 {
		w.depth--
	}
	w.Line(s)
}

// Raw writes s unchanged, without indentation.
func (w *Writer) Raw(s string) {
	w.b.WriteString(s)
}

// String returns the text written so far.
func (w *Writer) String() string {
	return w.b.String()
}
