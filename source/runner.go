// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package source

import (
	"bufio"
	"bytes"
	"context"
	"iter"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/pinorobotics/msgmonster/internal/errors"
)

// Runner runs an external command and yields its standard output lines.
type Runner interface {
	Run(ctx context.Context, argv []string) iter.Seq2[string, error]
}

// ExecRunner runs commands with os/exec. The process is killed when ctx
// is done or the caller stops iterating.
type ExecRunner struct {
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env is appended to the process environment.
	Env []string
}

func (r ExecRunner) Run(ctx context.Context, argv []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		cmd.Dir = r.Dir
		if len(r.Env) > 0 {
			cmd.Env = append(cmd.Environ(), r.Env...)
		}
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			yield("", errors.Wrapf(err, "run %s", shellquote.Join(argv...)))
			return
		}
		if err := cmd.Start(); err != nil {
			yield("", errors.WithHintf(
				errors.Wrapf(err, "run %s", shellquote.Join(argv...)),
				"is %s installed and on PATH?", argv[0]))
			return
		}

		sc := bufio.NewScanner(stdout)
		for sc.Scan() {
			if !yield(sc.Text(), nil) {
				cancel()
				_ = cmd.Wait()
				return
			}
		}
		scanErr := sc.Err()
		if err := cmd.Wait(); err != nil {
			msg := strings.TrimSpace(stderr.String())
			yield("", errors.Wrapf(err, "run %s: %s", shellquote.Join(argv...), msg))
			return
		}
		if scanErr != nil {
			yield("", errors.Wrapf(scanErr, "read output of %s", shellquote.Join(argv...)))
		}
	}
}
