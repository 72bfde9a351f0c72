// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package idl

import (
	"iter"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/pinorobotics/msgmonster/internal/errors"
)

// Parser turns the lines of a definition into a MessageDefinition.
// The zero value parses ROS1 definitions.
type Parser struct {
	Dialect Dialect
}

// NewParser returns a parser for dialect d.
func NewParser(d Dialect) *Parser {
	return &Parser{Dialect: d}
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineField
)

func classifyLine(line string) lineKind {
	switch {
	case line == "":
		return lineBlank
	case strings.HasPrefix(line, "#"):
		return lineComment
	default:
		return lineField
	}
}

// ParseSeq parses a lazily read definition. A read error aborts parsing.
func (p *Parser) ParseSeq(ref Ref, seq iter.Seq2[string, error]) (*MessageDefinition, error) {
	var lines []string
	for line, err := range seq {
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", ref)
		}
		lines = append(lines, line)
	}
	return p.Parse(ref, lines)
}

// Parse parses the lines of the definition identified by ref.
//
// Classification runs first over every line; comments are then attributed
// to the message or to the next field line. Blank lines never terminate a
// field comment, and comment lines after the last field are discarded.
func (p *Parser) Parse(ref Ref, raw []string) (*MessageDefinition, error) {
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	offset := 0
	for offset < len(lines) && lines[offset] == "" {
		offset++
	}
	lines = lines[offset:]

	kinds := make([]lineKind, len(lines))
	var fieldLines []int
	for i, l := range lines {
		kinds[i] = classifyLine(l)
		if kinds[i] == lineField {
			fieldLines = append(fieldLines, i)
		}
	}

	def := &MessageDefinition{Ref: ref}
	if len(fieldLines) == 0 {
		return def, nil
	}

	start, header := messageComment(lines, fieldLines)
	header = slices.Clone(header)
	for i, l := range header {
		header[i] = cleanComment(l)
	}
	def.Comment = joinComment(header)

	var (
		enums   enumGrouper
		pending []string
	)
	for i := start; i < len(lines); i++ {
		switch kinds[i] {
		case lineBlank:
			continue
		case lineComment:
			pending = append(pending, cleanComment(lines[i]))
			continue
		}

		decl, value, err := p.parseField(lines[i], pending)
		if err != nil {
			return nil, &ParseError{
				Definition: ref.String(),
				Line:       offset + i + 1,
				Text:       lines[i],
				Err:        err,
			}
		}
		pending = nil

		if f, ok := enums.add(decl, value).(Field); ok {
			def.Fields = append(def.Fields, f)
		}
	}
	def.Enums = enums.done()
	return def, nil
}

// messageComment returns the index where field comment attribution starts
// and the lines of the message level comment.
func messageComment(lines []string, fieldLines []int) (int, []string) {
	first := fieldLines[0]

	start := slices.Index(lines, "")
	var header []string
	if start >= 0 && start < first {
		header = lines[:start]
	} else {
		start = 0
	}

	// With no comment lines among the fields the whole leading block
	// describes the message.
	if len(fieldLines) > 1 {
		nonBlank := 0
		for _, l := range lines[first:] {
			if l != "" {
				nonBlank++
			}
		}
		if nonBlank == len(fieldLines) {
			header, start = lines[:first], first
		}
	}
	return start, header
}

func (p *Parser) parseField(line string, comments []string) (Decl, string, error) {
	body, inline, hasInline := strings.Cut(line, "#")
	tokens := strings.FieldsFunc(body, func(r rune) bool {
		return unicode.IsSpace(r) || r == '='
	})
	if len(tokens) < 2 {
		return Decl{}, "", errors.ErrMalformedField
	}

	if hasInline {
		comments = append(comments, cleanComment(inline))
	}
	decl := Decl{
		Name:    tokens[1],
		Type:    ParseType(p.Dialect, tokens[0]),
		Comment: joinComment(comments),
	}
	var value string
	if len(tokens) > 2 {
		value = tokens[2]
	}
	return decl, value, nil
}

// cleanComment strips the comment marker and surrounding whitespace.
func cleanComment(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "#")
	return strings.TrimSpace(line)
}

// joinComment joins cleaned comment lines, dropping empty ones.
func joinComment(lines []string) string {
	var kept []string
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// enumGrouper collects constants numbered 0, 1, 2, ... into enums.
type enumGrouper struct {
	open   *EnumDefinition
	closed []EnumDefinition
}

// add records one field line and returns it as an EnumMember when it
// joined an enum or as a Field otherwise. Only a zero value opens a new
// enum; lines that do not join leave the open enum collecting.
func (g *enumGrouper) add(decl Decl, value string) lineResult {
	if id, err := strconv.Atoi(value); err == nil && id >= 0 {
		if id == 0 {
			g.close()
			g.open = &EnumDefinition{}
		}
		if g.open != nil && id == len(g.open.Members) {
			m := EnumMember{Decl: decl, Value: value, Ordinal: id}
			g.open.Members = append(g.open.Members, m)
			return m
		}
	}
	return Field{Decl: decl, Value: value}
}

func (g *enumGrouper) close() {
	if g.open != nil && len(g.open.Members) > 0 {
		g.closed = append(g.closed, *g.open)
	}
	g.open = nil
}

func (g *enumGrouper) done() []EnumDefinition {
	g.close()
	return g.closed
}
