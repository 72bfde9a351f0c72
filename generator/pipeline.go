// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/internal/errors"
	"github.com/pinorobotics/msgmonster/source"
)

// Status is the outcome of processing one definition.
type Status int

const (
	StatusWritten Status = iota
	StatusSkipped
	StatusFailed
	// StatusPrinted is reported by dry runs.
	StatusPrinted
)

func (s Status) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	case StatusPrinted:
		return "printed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result describes one processed definition.
type Result struct {
	Ref    idl.Ref
	Status Status
	// Paths lists the files written, or the existing file for skips.
	Paths []string
	Err   error
}

// Report collects the results of a run in processing order.
type Report struct {
	Results []Result
}

// Count returns the number of results with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Failed returns the failed results.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			out = append(out, res)
		}
	}
	return out
}

// Err joins the errors of all failed results.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, res.Err)
	}
	return errors.Join(errs...)
}

// Pipeline reads definitions from a source and hands them to a generator,
// one definition at a time.
type Pipeline struct {
	Source    source.Source
	Generator Generator
	Config    Config
	Logger    *slog.Logger

	// DryRun prints generated files to Out instead of writing them.
	DryRun bool
	Out    io.Writer
}

// NewPipeline returns a pipeline logging to slog.Default.
func NewPipeline(src source.Source, gen Generator, cfg Config) *Pipeline {
	if cfg.Dialect == "" {
		cfg.Dialect = src.Dialect()
	}
	return &Pipeline{
		Source:    src,
		Generator: gen,
		Config:    cfg,
		Logger:    slog.Default(),
		Out:       os.Stdout,
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

func (p *Pipeline) parser() *idl.Parser {
	return idl.NewParser(p.Source.Dialect())
}

// Run processes input, a package or a single definition. Definitions are
// processed in the order the source yields them. Without KeepGoing the
// first failure ends the run and is returned; with it failures are only
// recorded in the report.
func (p *Pipeline) Run(ctx context.Context, input string) (*Report, error) {
	report := &Report{}

	isPkg, err := p.Source.IsPackage(ctx, input)
	if err != nil {
		return report, errors.Wrapf(err, "resolve %q", input)
	}
	if isPkg {
		p.logger().Info("Processing package", "package", input)
		for ref, err := range p.Source.List(ctx, input) {
			if err != nil {
				return report, errors.Wrapf(err, "list package %s", input)
			}
			if err := p.step(ctx, report, ref); err != nil {
				return report, err
			}
		}
		return report, nil
	}

	ref, err := p.Source.Ref(ctx, input)
	if err != nil {
		return report, err
	}
	refs := []idl.Ref{ref}
	if p.Config.ResolveDeps {
		deps, err := ResolveDeps(ctx, p.Source, p.parser(), ref, func(name string, err error) {
			p.logger().Warn("Dependency not available, skipping", "definition", name, "error", err)
		})
		if err != nil && ctx.Err() != nil {
			return report, ctx.Err()
		}
		// A failure of ref itself is reported when it is processed.
		refs = append(refs, deps...)
	}
	for _, r := range refs {
		if err := p.step(ctx, report, r); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (p *Pipeline) step(ctx context.Context, report *Report, ref idl.Ref) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res := p.Process(ctx, ref)
	report.Results = append(report.Results, res)
	if res.Status == StatusFailed && !p.Config.KeepGoing {
		return res.Err
	}
	return nil
}

// Process generates the class of one definition. An existing output file
// is detected before the definition is read and is never replaced.
func (p *Pipeline) Process(ctx context.Context, ref idl.Ref) Result {
	log := p.logger().With("definition", ref.String())

	name := p.Generator.FileName(ref, p.Config)
	if path := filepath.Join(p.Config.OutputDir, name); !p.DryRun && Exists(path) {
		log.Info("Output already exists, skipping", "path", path)
		return Result{Ref: ref, Status: StatusSkipped, Paths: []string{path}}
	}

	log.Info("Processing definition", "location", ref.Location)
	fail := func(phase Phase, err error) Result {
		log.Error("Generation failed", "phase", phase, "error", err)
		return Result{Ref: ref, Status: StatusFailed, Err: NewGenerationError(ref.String(), phase, err)}
	}

	def, err := p.parser().ParseSeq(ref, p.Source.Lines(ctx, ref))
	if err != nil {
		if idl.IsParseError(err) {
			return fail(PhaseParse, err)
		}
		return fail(PhaseRead, err)
	}

	in := Input{Definition: def}
	if p.Source.Dialect().HasChecksum() {
		sum, ok, err := p.Source.Checksum(ctx, ref)
		if err != nil {
			return fail(PhaseChecksum, err)
		}
		if ok {
			in.Checksum = sum
		}
	}

	out, err := p.Generator.Generate(ctx, in, p.Config)
	if err != nil {
		return fail(PhaseRender, err)
	}

	res := Result{Ref: ref, Status: StatusWritten}
	skipped := 0
	for _, n := range out.Names() {
		if p.DryRun {
			fmt.Fprintf(p.Out, "// ==> %s <==\n%s", n, out.Files[n])
			res.Status = StatusPrinted
			continue
		}
		path := filepath.Join(p.Config.OutputDir, n)
		if err := WriteOnce(path, out.Files[n]); err != nil {
			if errors.Is(err, errors.ErrExists) {
				log.Info("Output already exists, skipping", "path", path)
				skipped++
				continue
			}
			return fail(PhaseWrite, err)
		}
		res.Paths = append(res.Paths, path)
		log.Info("Wrote class", "class", strings.TrimSuffix(n, filepath.Ext(n)), "path", path)
	}
	if skipped > 0 && len(res.Paths) == 0 && !p.DryRun {
		res.Status = StatusSkipped
	}
	return res
}
