// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package source

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/internal/errors"
)

// checksummer computes ROS1 message MD5 sums the way genmsg does:
// constants first as "type NAME=value", then fields as "type name" with
// every message type replaced by the sum of the referenced definition.
type checksummer struct {
	dir *Dir
}

func newChecksummer(d *Dir) *checksummer {
	return &checksummer{dir: d}
}

func (c *checksummer) sum(ctx context.Context, ref idl.Ref) (string, error) {
	return c.resolve(ctx, ref, map[string]string{}, map[string]bool{})
}

func (c *checksummer) resolve(ctx context.Context, ref idl.Ref, memo map[string]string, active map[string]bool) (string, error) {
	key := ref.String()
	if s, ok := memo[key]; ok {
		return s, nil
	}
	if active[key] {
		return "", errors.Newf("checksum %s: recursive definition", key)
	}
	active[key] = true
	defer delete(active, key)

	var lines []string
	for line, err := range c.dir.Lines(ctx, ref) {
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}

	text, err := md5Text(ref.Package, lines, func(names ...string) (string, error) {
		var err error
		for _, name := range names {
			pkg, base, _ := strings.Cut(name, "/")
			var dep idl.Ref
			if dep, err = c.dir.find(pkg, base); err == nil {
				return c.resolve(ctx, dep, memo, active)
			}
		}
		return "", errors.Wrapf(err, "checksum %s", key)
	})
	if err != nil {
		return "", err
	}
	h := md5.Sum([]byte(text))
	memo[key] = hex.EncodeToString(h[:])
	return memo[key], nil
}

// md5Text builds the text hashed for a definition of package pkg. sumOf
// returns the sum of the first referenced "pkg/Name" candidate that exists.
func md5Text(pkg string, lines []string, sumOf func(names ...string) (string, error)) (string, error) {
	var constants, fields []string
	for _, orig := range lines {
		line := stripComment(orig)
		if line == "" {
			continue
		}
		typ, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		if strings.Contains(line, "=") {
			var name, value string
			if typ == idl.TypeString {
				// string constants keep everything right of "=", comments included
				raw := strings.TrimSpace(orig)
				_, afterType, _ := strings.Cut(raw, " ")
				name, value, _ = strings.Cut(afterType, "=")
			} else {
				name, value, _ = strings.Cut(rest, "=")
			}
			constants = append(constants,
				typ+" "+strings.TrimSpace(name)+"="+strings.TrimSpace(value))
			continue
		}

		name := rest
		if name == "" || strings.ContainsAny(name, " \t") {
			return "", errors.Wrapf(errors.ErrMalformedField, "checksum %s: %q", pkg, orig)
		}
		t := idl.ParseType(idl.ROS1, typ)
		dep, isMsg := t.Dependency(pkg)
		if !isMsg {
			fields = append(fields, typ+" "+name)
			continue
		}
		candidates := []string{dep}
		if t.IsStdMsg() && t.Base != "Header" {
			// genmsg resolves only Header to std_msgs; other short names
			// are looked up in the own package first.
			candidates = []string{pkg + "/" + t.Base, dep}
		}
		sum, err := sumOf(candidates...)
		if err != nil {
			return "", err
		}
		fields = append(fields, sum+" "+name)
	}
	return strings.TrimSpace(strings.Join(append(constants, fields...), "\n")), nil
}

// stripComment drops a "#" comment and collapses runs of whitespace.
func stripComment(line string) string {
	line, _, _ = strings.Cut(line, "#")
	return strings.Join(strings.Fields(line), " ")
}
