// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command msgmonster generates Java and Kotlin message classes from ROS
// message definitions.
//
// Usage:
//
//	msgmonster generate <ros1|ros2> <java-package> <input> <output-dir> [flags]
//	msgmonster watch <ros1|ros2> <java-package> <input> <output-dir> [flags]
//	msgmonster config init [--format json|yaml|toml]
//	msgmonster list-templates
//
// The input is a package name, a definition name (pkg/Name or
// pkg/msg/Name) or a path to a .msg file. Existing classes are never
// overwritten.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/pinorobotics/msgmonster/internal/cli"
	"github.com/pinorobotics/msgmonster/internal/configpaths"
	"github.com/pinorobotics/msgmonster/internal/errors"
	"github.com/pinorobotics/msgmonster/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	candidates := configpaths.ConfigCandidatePaths(configpaths.FindUserConfig(os.Args[1:]))

	var root cli.CLI
	ctx := kong.Parse(&root,
		kong.Name("msgmonster"),
		kong.Description("Generate Java and Kotlin message classes from ROS message definitions."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("msgmonster %s (commit: %s, built: %s)", version, commit, date)},
		// Flags and env vars override configuration values.
		kong.Configuration(kong.JSON, candidates.JSON...),
		kong.Configuration(kongyaml.Loader, candidates.YAML...),
		kong.Configuration(kongtoml.Loader, candidates.TOML...),
	)

	logger, closeFiles, err := log.SetupLogger(root.Log.Level, root.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup logger: %v\n", err)
		os.Exit(2)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx.Bind(logger)
	ctx.BindTo(sigCtx, (*context.Context)(nil))

	err = ctx.Run()
	stop()
	for _, c := range closeFiles {
		_ = c.Close()
	}
	if err != nil {
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
	}
	ctx.FatalIfErrorf(err)
}
