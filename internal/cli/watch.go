// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cli

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pinorobotics/msgmonster/generator"
	"github.com/pinorobotics/msgmonster/internal/errors"
	"github.com/pinorobotics/msgmonster/source"
)

// Watch runs generate once and then generates the classes of definition
// files created afterwards under the source root. Only files of the input
// package are considered. Existing classes are never replaced.
type Watch struct {
	Target   `embed:""`
	Opts     Options       `embed:""`
	Debounce time.Duration `help:"Delay before a new file is read, letting editors finish writing it." default:"300ms" env:"MSGMONSTER_WATCH_DEBOUNCE"`

	Out io.Writer `kong:"-"`

	// ready is called once the watcher is started.
	ready func() `kong:"-"`
}

// Run is called by Kong when the watch command is executed.
func (w *Watch) Run(ctx context.Context, logger *slog.Logger) error {
	if w.Opts.Source != string(source.KindDir) {
		return errors.WithHint(
			errors.Wrapf(errors.ErrUnsupported, "watch with source %q", w.Opts.Source),
			"watch needs --source=dir")
	}
	p, err := pipeline(w.Target, w.Opts, logger, stdout(w.Out))
	if err != nil {
		return err
	}

	pkg, err := w.watchedPackage(ctx, p.Source)
	if err != nil {
		return err
	}

	report, err := p.Run(ctx, w.Input)
	logReport(logger, report)
	if err != nil {
		logger.Error("Initial generation failed", "error", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()
	if err := addTree(watcher, w.Opts.Root); err != nil {
		return err
	}
	logger.Info("Watching for new definitions", "root", w.Opts.Root, "package", pkg)
	if w.ready != nil {
		w.ready()
	}

	timer := time.NewTimer(w.Debounce)
	timer.Stop()
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						logger.Warn("Cannot watch directory", "path", event.Name, "error", err)
					}
					continue
				}
			}
			if !event.Has(fsnotify.Create) && !(event.Has(fsnotify.Write) && pending[event.Name]) {
				continue
			}
			if filepath.Ext(event.Name) != source.MsgExt {
				continue
			}
			pending[event.Name] = true
			timer.Reset(w.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "error", err)

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for path := range pending {
				paths = append(paths, path)
			}
			slices.Sort(paths)
			clear(pending)
			for _, path := range paths {
				w.process(ctx, p, pkg, path, logger)
			}
		}
	}
}

// watchedPackage returns the package whose new definitions are generated.
func (w *Watch) watchedPackage(ctx context.Context, src source.Source) (string, error) {
	isPkg, err := src.IsPackage(ctx, w.Input)
	if err != nil {
		return "", err
	}
	if isPkg {
		return w.Input, nil
	}
	ref, err := src.Ref(ctx, w.Input)
	if err != nil {
		return "", err
	}
	return ref.Package, nil
}

func (w *Watch) process(ctx context.Context, p *generator.Pipeline, pkg, path string, logger *slog.Logger) {
	ref, err := p.Source.Ref(ctx, path)
	if err != nil {
		logger.Warn("Ignoring definition", "path", path, "error", err)
		return
	}
	if ref.Package != pkg {
		logger.Debug("Ignoring definition of another package", "definition", ref.String())
		return
	}
	if res := p.Process(ctx, ref); res.Err != nil {
		logger.Error("Generation failed", "definition", ref.String(), "error", res.Err)
	}
}

// addTree watches dir and every directory below it, skipping hidden ones.
func addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return errors.Wrapf(err, "watch %s", path)
		}
		return nil
	})
}
