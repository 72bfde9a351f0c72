// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package idl

import (
	"slices"
	"strings"

	"github.com/pinorobotics/msgmonster/internal/errors"
)

// Dialect identifies the flavour of the message definition language.
type Dialect string

const (
	// ROS1 is the dialect whose definitions carry an MD5 content checksum.
	ROS1 Dialect = "ros1"
	// ROS2 is the dialect without a content checksum.
	ROS2 Dialect = "ros2"
)

// Dialects lists the supported dialect tags.
var Dialects = []Dialect{ROS1, ROS2}

// ParseDialect returns the dialect named by s (case insensitive).
func ParseDialect(s string) (Dialect, error) {
	d := Dialect(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Dialects, d) {
		return d, nil
	}
	tags := make([]string, len(Dialects))
	for i, known := range Dialects {
		tags[i] = string(known)
	}
	return "", errors.WithHintf(
		errors.Wrapf(errors.ErrUnsupported, "dialect %q", s),
		"supported dialects: %s", strings.Join(tags, ", "))
}

// HasChecksum reports whether definitions of this dialect have a content checksum.
func (d Dialect) HasChecksum() bool {
	return d == ROS1
}

func (d Dialect) String() string {
	return string(d)
}
