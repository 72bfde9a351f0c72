// SPDX-License-Identifier: MIT

// Package testutil runs golden tests for class generators.
//
// Each case is a txtar archive holding one definition and the classes it
// should produce:
//
//	Free text describing the case.
//
//	Definition: geometry_msgs/Point
//	Flags: dialect=ros2, package=id.jros2messages.geometry_msgs
//	-- input.msg --
//	float64 x
//	-- want/PointMessage.java --
//	...
//
// The "dialect" flag selects the definition dialect and defaults to ros1.
// All other flags are left to the generator under test.
package testutil

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/internal/errors"
)

const (
	inputFile  = "input.msg"
	wantPrefix = "want/"
)

// Case is one golden archive.
type Case struct {
	Name    string
	Ref     idl.Ref
	Dialect idl.Dialect
	Input   []byte

	// Want maps class file names to their expected content.
	Want map[string][]byte

	flags map[string]string
	path  string
	ar    *txtar.Archive
}

// Flag returns the value of a "key=value" flag. A bare "key" flag is
// present with an empty value.
func (c *Case) Flag(key string) (string, bool) {
	v, ok := c.flags[key]
	return v, ok
}

// Definition parses the archive input in the case dialect.
func (c *Case) Definition() (*idl.MessageDefinition, error) {
	lines := strings.Split(strings.TrimSuffix(string(c.Input), "\n"), "\n")
	return idl.NewParser(c.Dialect).Parse(c.Ref, lines)
}

// GenerateFunc renders c and returns the produced files by name.
type GenerateFunc func(c *Case) (map[string][]byte, error)

// Golden runs every archive under dir as a subtest. With update set the
// want files are rewritten from the generated output instead.
func Golden(t *testing.T, dir string, update bool, generate GenerateFunc) {
	t.Helper()
	for _, c := range Load(t, dir) {
		t.Run(c.Name, func(t *testing.T) {
			got, err := generate(c)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if update {
				if err := c.rewrite(got); err != nil {
					t.Fatal(err)
				}
				return
			}
			c.compare(t, got)
		})
	}
}

// Load reads the archives under dir, sorted by name.
func Load(t *testing.T, dir string) []*Case {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("glob %q: %v", dir, err)
	}
	if len(paths) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}
	slices.Sort(paths)

	cases := make([]*Case, 0, len(paths))
	for _, path := range paths {
		ar, err := txtar.ParseFile(path)
		if err != nil {
			t.Fatalf("parse %q: %v", path, err)
		}
		c, err := newCase(path, ar)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		cases = append(cases, c)
	}
	return cases
}

func newCase(path string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:    strings.TrimSuffix(filepath.Base(path), ".txtar"),
		Dialect: idl.ROS1,
		Want:    make(map[string][]byte),
		flags:   make(map[string]string),
		path:    path,
		ar:      ar,
	}
	var definition string
	for line := range strings.SplitSeq(string(ar.Comment), "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		switch key {
		case "Definition":
			definition = strings.TrimSpace(value)
		case "Flags":
			for f := range strings.SplitSeq(value, ",") {
				k, v, _ := strings.Cut(f, "=")
				if k = strings.TrimSpace(k); k != "" {
					c.flags[k] = strings.TrimSpace(v)
				}
			}
		}
	}

	pkg, name, ok := strings.Cut(definition, "/")
	if !ok || pkg == "" || name == "" {
		return nil, errors.Newf("description needs a \"Definition: pkg/Name\" line, got %q", definition)
	}
	c.Ref = idl.Ref{Package: pkg, Name: name}
	if v, ok := c.flags["dialect"]; ok {
		d, err := idl.ParseDialect(v)
		if err != nil {
			return nil, err
		}
		c.Dialect = d
	}

	for _, f := range ar.Files {
		switch {
		case f.Name == inputFile:
			c.Input = f.Data
		case strings.HasPrefix(f.Name, wantPrefix):
			c.Want[strings.TrimPrefix(f.Name, wantPrefix)] = f.Data
		default:
			return nil, errors.Newf("unexpected file %q, want %s or %s*", f.Name, inputFile, wantPrefix)
		}
	}
	if c.Input == nil {
		return nil, errors.Newf("missing %s", inputFile)
	}
	return c, nil
}

func (c *Case) compare(t *testing.T, got map[string][]byte) {
	t.Helper()
	if diff := cmp.Diff(sortedKeys(c.Want), sortedKeys(got)); diff != "" {
		t.Errorf("generated files mismatch (-want +got):\n%s", diff)
	}
	for name, want := range c.Want {
		content, ok := got[name]
		if !ok {
			continue
		}
		if diff := cmp.Diff(normalize(want), normalize(content)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

// rewrite replaces the want files of the archive with got and saves it.
func (c *Case) rewrite(got map[string][]byte) error {
	files := []txtar.File{{Name: inputFile, Data: c.Input}}
	for _, name := range sortedKeys(got) {
		data := got[name]
		if len(data) > 0 && data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		files = append(files, txtar.File{Name: wantPrefix + name, Data: data})
	}
	ar := &txtar.Archive{Comment: c.ar.Comment, Files: files}
	return os.WriteFile(c.path, txtar.Format(ar), 0o644)
}

// normalize drops trailing whitespace on every line and at the end.
func normalize(b []byte) string {
	lines := strings.Split(string(b), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
