// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/pinorobotics/msgmonster/generator"
	"github.com/pinorobotics/msgmonster/generators/java"
	"github.com/pinorobotics/msgmonster/generators/kotlin"
	"github.com/pinorobotics/msgmonster/internal/errors"
)

func TestMain(m *testing.M) {
	generator.MustRegister(java.NewGenerator())
	generator.MustRegister(kotlin.NewGenerator())
	os.Exit(m.Run())
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeTree creates files relative to root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func pointTree(t *testing.T) string {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"geometry_msgs/msg/Point.msg": "float64 x\nfloat64 y\nfloat64 z\n",
	})
	return root
}

func options(root string) Options {
	return Options{Lang: "java", Source: "dir", Root: root, ClassSuffix: "Message"}
}

func TestGenerateWritesClass(t *testing.T) {
	root, out := pointTree(t), t.TempDir()
	g := &Generate{
		Target: Target{Dialect: "ros1", Package: "id.jrosmessages.geometry_msgs", Input: "geometry_msgs/Point", OutputDir: out},
		Opts:   options(root),
	}
	require.NoError(t, g.Run(context.Background(), discard()))

	data, err := os.ReadFile(filepath.Join(out, "PointMessage.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package id.jrosmessages.geometry_msgs;")
	assert.Contains(t, string(data), `md5sum = "4a842b65f413084dc2b10fb484ea7f17"`)
}

func TestGenerateKotlin(t *testing.T) {
	root, out := pointTree(t), t.TempDir()
	opts := options(root)
	opts.Lang = "kotlin"
	g := &Generate{
		Target: Target{Dialect: "ros2", Package: "id.jros2messages.geometry_msgs", Input: "geometry_msgs", OutputDir: out},
		Opts:   opts,
	}
	require.NoError(t, g.Run(context.Background(), discard()))
	assert.FileExists(t, filepath.Join(out, "PointMessage.kt"))
}

func TestGenerateDryRun(t *testing.T) {
	root, out := pointTree(t), t.TempDir()
	var buf bytes.Buffer
	opts := options(root)
	opts.DryRun = true
	g := &Generate{
		Target: Target{Dialect: "ros1", Package: "p", Input: "geometry_msgs/Point", OutputDir: out},
		Opts:   opts,
		Out:    &buf,
	}
	require.NoError(t, g.Run(context.Background(), discard()))

	assert.Contains(t, buf.String(), "// ==> PointMessage.java <==")
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateKeepGoing(t *testing.T) {
	root, out := t.TempDir(), t.TempDir()
	writeTree(t, root, map[string]string{
		"test_msgs/msg/Broken.msg": "int32\n",
		"test_msgs/msg/Good.msg":   "int32 value\n",
	})
	opts := options(root)
	opts.KeepGoing = true
	g := &Generate{
		Target: Target{Dialect: "ros1", Package: "p", Input: "test_msgs", OutputDir: out},
		Opts:   opts,
	}
	err := g.Run(context.Background(), discard())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrGenerationFailed)
	assert.ErrorIs(t, err, errors.ErrMalformedField)
	assert.FileExists(t, filepath.Join(out, "GoodMessage.java"))
}

func TestGenerateUnknownLanguage(t *testing.T) {
	opts := options(t.TempDir())
	opts.Lang = "cobol"
	g := &Generate{Target: Target{Dialect: "ros1", Input: "x", OutputDir: t.TempDir()}, Opts: opts}
	err := g.Run(context.Background(), discard())
	assert.True(t, errors.Is(err, errors.ErrUnsupported), "err = %v", err)
}

func TestParseGenerateFlags(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("msgmonster"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{
		"generate", "ros2", "id.jros2messages.sensor_msgs", "sensor_msgs", "out",
		"--lang=kotlin", "--source=toolchain", "--keep-going", "--toolchain.md5=echo none",
	})
	require.NoError(t, err)

	g := cli.Generate
	assert.Equal(t, "ros2", g.Dialect)
	assert.Equal(t, "id.jros2messages.sensor_msgs", g.Package)
	assert.Equal(t, "sensor_msgs", g.Input)
	assert.Equal(t, "kotlin", g.Opts.Lang)
	assert.Equal(t, "toolchain", g.Opts.Source)
	assert.True(t, g.Opts.KeepGoing)
	assert.Equal(t, "echo none", g.Opts.Toolchain.MD5)
	assert.Equal(t, "Message", g.Opts.ClassSuffix)
	assert.Equal(t, "info", cli.Log.Level)
}

func TestParseRejectsUnknownDialect(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("msgmonster"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"generate", "ros3", "p", "in", "out"})
	assert.Error(t, err)
}

func TestParseJSONConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msgmonster.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"lang": "kotlin", "log": {"level": "debug"}}`), 0o644))

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("msgmonster"), kong.Exit(func(int) {}),
		kong.Configuration(kong.JSON, path))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"generate", "ros1", "p", "in", "out"})
	require.NoError(t, err)
	assert.Equal(t, "kotlin", cli.Generate.Opts.Lang)
	assert.Equal(t, "debug", cli.Log.Level)
}

func TestConfigInit(t *testing.T) {
	tests := []struct {
		format string
		decode func([]byte, any) error
	}{
		{"yaml", yaml.Unmarshal},
		{"json", json.Unmarshal},
		{"toml", toml.Unmarshal},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "conf", "msgmonster."+tt.format)
			c := &ConfigInit{Format: tt.format, Output: dest}
			require.NoError(t, c.Run(discard()))

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			var got map[string]any
			require.NoError(t, tt.decode(data, &got))

			assert.Equal(t, "java", got["lang"])
			assert.Equal(t, "Message", got["class_suffix"])
			assert.Equal(t, false, got["resolve_deps"])
			assert.Contains(t, got, "runtime_package")
			require.IsType(t, map[string]any{}, got["toolchain"])
			assert.Contains(t, got["toolchain"], "md5")
			require.IsType(t, map[string]any{}, got["log"])
			assert.Equal(t, "info", got["log"].(map[string]any)["level"])
		})
	}
}

func TestConfigInitKeepsExisting(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "msgmonster.yaml")
	require.NoError(t, os.WriteFile(dest, []byte("lang: kotlin\n"), 0o644))

	err := (&ConfigInit{Format: "yaml", Output: dest}).Run(discard())
	assert.True(t, errors.Is(err, errors.ErrExists), "err = %v", err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "lang: kotlin\n", string(data))

	require.NoError(t, (&ConfigInit{Format: "yaml", Output: dest, Force: true}).Run(discard()))
	data, err = os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lang: java")
}

func TestListTemplates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&ListTemplates{Out: &buf}).Run())
	assert.Contains(t, buf.String(), "header.tmpl\n")
	assert.Contains(t, buf.String(), "with_method_for_fixed_size_array.tmpl\n")

	buf.Reset()
	require.NoError(t, (&ListTemplates{Show: "class_fields_header", Out: &buf}).Run())
	assert.Equal(t, "static final String NAME = \"${msgName}\";\n", buf.String())

	err := (&ListTemplates{Show: "missing", Out: &buf}).Run()
	assert.True(t, errors.Is(err, errors.ErrTemplate), "err = %v", err)
	assert.Equal(t, []string{"run list-templates without --show for the fragment names"}, errors.GetAllHints(err))
}

func TestWatchGeneratesNewDefinitions(t *testing.T) {
	root, out := t.TempDir(), t.TempDir()
	writeTree(t, root, map[string]string{
		"test_msgs/msg/First.msg": "int32 value\n",
	})

	ready := make(chan struct{})
	w := &Watch{
		Target:   Target{Dialect: "ros1", Package: "p", Input: "test_msgs", OutputDir: out},
		Opts:     options(root),
		Debounce: 20 * time.Millisecond,
		ready:    func() { close(ready) },
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, discard()) }()

	select {
	case <-ready:
	case err := <-done:
		t.Fatalf("watch ended early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not start")
	}
	assert.FileExists(t, filepath.Join(out, "FirstMessage.java"))

	writeTree(t, root, map[string]string{
		"test_msgs/msg/Second.msg": "string name\n",
	})
	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(out, "SecondMessage.java"))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchRequiresDirSource(t *testing.T) {
	opts := options(t.TempDir())
	opts.Source = "toolchain"
	w := &Watch{Target: Target{Dialect: "ros1", Input: "x", OutputDir: t.TempDir()}, Opts: opts}
	err := w.Run(context.Background(), discard())
	assert.True(t, errors.Is(err, errors.ErrUnsupported), "err = %v", err)
}
