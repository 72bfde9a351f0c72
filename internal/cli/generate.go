// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cli

import (
	"context"
	"io"
	"log/slog"
)

// Generate generates the classes of a package or of a single definition.
type Generate struct {
	Target `embed:""`
	Opts   Options `embed:""`

	// Out receives dry run output. Nil means stdout.
	Out io.Writer `kong:"-"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(ctx context.Context, logger *slog.Logger) error {
	p, err := pipeline(g.Target, g.Opts, logger, stdout(g.Out))
	if err != nil {
		return err
	}
	logger.Info("Starting class generation",
		"input", g.Input, "lang", g.Opts.Lang, "dialect", g.Dialect, "output", g.OutputDir)

	report, err := p.Run(ctx, g.Input)
	logReport(logger, report)
	if err != nil {
		return err
	}
	return report.Err()
}
