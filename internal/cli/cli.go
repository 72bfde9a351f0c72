// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package cli defines the msgmonster commands.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/pinorobotics/msgmonster/generator"
	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/source"
)

// CLI is the root command.
type CLI struct {
	Config  string           `help:"Configuration file (JSON, YAML or TOML)." type:"path" env:"MSGMONSTER_CONFIG" placeholder:"FILE"`
	Log     LogConfig        `embed:"" prefix:"log."`
	Version kong.VersionFlag `help:"Print version information."`

	Generate      Generate      `cmd:"" help:"Generate classes for a package or a single definition."`
	Watch         Watch         `cmd:"" help:"Generate classes, then keep generating new definitions of the package."`
	ConfigCmd     ConfigCommand `cmd:"" name:"config" help:"Manage configuration files."`
	ListTemplates ListTemplates `cmd:"" help:"List the bundled Java template fragments."`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `help:"Log level." enum:"trace,debug,info,warn,error" default:"info" env:"MSGMONSTER_LOG_LEVEL"`
	File  string `help:"Write logs to this file instead of stdout." type:"path" env:"MSGMONSTER_LOG_FILE"`
}

// Options are the generation flags shared by generate and watch.
type Options struct {
	Lang           string            `help:"Target language." enum:"java,kotlin" default:"java" env:"MSGMONSTER_LANG"`
	Source         string            `help:"Definition source: dir reads .msg files under --root, toolchain runs the ROS tools." enum:"dir,toolchain" default:"dir" env:"MSGMONSTER_SOURCE"`
	Root           string            `help:"Root directory of the dir source." type:"path" default:"." env:"MSGMONSTER_ROOT"`
	RuntimePackage string            `help:"Namespace of the message runtime. Defaults to id.jrosmessages or id.jros2messages." env:"MSGMONSTER_RUNTIME_PACKAGE"`
	ClassSuffix    string            `help:"Suffix of generated class names." default:"Message" env:"MSGMONSTER_CLASS_SUFFIX"`
	Templates      string            `help:"Directory of Java template overrides." type:"path" env:"MSGMONSTER_TEMPLATES"`
	ResolveDeps    bool              `help:"Also generate every definition referenced by the input definition." env:"MSGMONSTER_RESOLVE_DEPS"`
	KeepGoing      bool              `help:"Continue with the next definition after a failure." env:"MSGMONSTER_KEEP_GOING"`
	DryRun         bool              `help:"Print generated classes to stdout instead of writing them."`
	Toolchain      ToolchainCommands `embed:"" prefix:"toolchain."`
}

// ToolchainCommands override the commands run by the toolchain source.
// ${pkg} and ${type} are replaced by the package and the type name.
type ToolchainCommands struct {
	Packages string `help:"Command listing the packages." placeholder:"CMD"`
	Package  string `help:"Command listing the messages of $${pkg}." placeholder:"CMD"`
	Show     string `help:"Command printing the definition of $${type}." placeholder:"CMD"`
	MD5      string `name:"md5" help:"Command printing the checksum of $${type}." placeholder:"CMD"`
}

func (c ToolchainCommands) commands() source.Commands {
	return source.Commands{Packages: c.Packages, Package: c.Package, Show: c.Show, MD5: c.MD5}
}

// Target holds the positional arguments of the generation commands, in the
// order of the original tool.
type Target struct {
	Dialect   string `arg:"" help:"Definition dialect." enum:"ros1,ros2"`
	Package   string `arg:"" name:"java-package" help:"Package of the generated classes."`
	Input     string `arg:"" help:"Package name, pkg/Name, pkg/msg/Name or path to a .msg file."`
	OutputDir string `arg:"" name:"output-dir" type:"path" help:"Directory receiving the generated classes."`
}

// pipeline builds the generation pipeline of t and o.
func pipeline(t Target, o Options, logger *slog.Logger, out io.Writer) (*generator.Pipeline, error) {
	d, err := idl.ParseDialect(t.Dialect)
	if err != nil {
		return nil, err
	}
	gen, err := generator.Lookup(o.Lang)
	if err != nil {
		return nil, err
	}
	src, err := source.New(source.Kind(o.Source), d, source.Options{
		Root:     o.Root,
		Commands: o.Toolchain.commands(),
	})
	if err != nil {
		return nil, err
	}

	cfg := generator.Config{
		OutputDir:   t.OutputDir,
		Package:     t.Package,
		Dialect:     d,
		ResolveDeps: o.ResolveDeps,
		KeepGoing:   o.KeepGoing,
		Options: map[string]string{
			generator.OptionRuntimePackage: o.RuntimePackage,
			generator.OptionClassSuffix:    o.ClassSuffix,
			generator.OptionTemplates:      o.Templates,
		},
	}
	p := generator.NewPipeline(src, gen, cfg)
	p.Logger = logger
	p.DryRun = o.DryRun
	if out != nil {
		p.Out = out
	}
	return p, nil
}

// logReport logs the totals of a run.
func logReport(logger *slog.Logger, report *generator.Report) {
	if report == nil {
		return
	}
	logger.Info("Done",
		"written", report.Count(generator.StatusWritten),
		"skipped", report.Count(generator.StatusSkipped),
		"printed", report.Count(generator.StatusPrinted),
		"failed", report.Count(generator.StatusFailed))
}

func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
