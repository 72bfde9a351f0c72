// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/pinorobotics/msgmonster/generators/java"
	"github.com/pinorobotics/msgmonster/internal/errors"
	"github.com/pinorobotics/msgmonster/internal/subst"
)

// ListTemplates prints the names of the bundled template fragments. A
// directory passed with --templates may override any of them.
type ListTemplates struct {
	Show string `help:"Print the content of this fragment instead." placeholder:"NAME"`

	Out io.Writer `kong:"-"`
}

// Run is called by Kong when the list-templates command is executed.
func (l *ListTemplates) Run() error {
	out := stdout(l.Out)
	tpl := java.Templates("")
	if l.Show != "" {
		if !tpl.Has(l.Show) {
			return errors.WithHint(
				errors.Wrapf(errors.ErrTemplate, "template %q", l.Show),
				"run list-templates without --show for the fragment names")
		}
		text, err := tpl.Read(l.Show)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, text)
		return err
	}

	names, err := tpl.Names()
	if err != nil {
		return err
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(out, n+subst.Ext); err != nil {
			return err
		}
	}
	return nil
}
