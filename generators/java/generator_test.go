// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/pinorobotics/msgmonster/generator"
	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/internal/errors"
	"github.com/pinorobotics/msgmonster/internal/subst"
	"github.com/pinorobotics/msgmonster/internal/testutil"
)

var update = flag.Bool("update", false, "update golden files")

// generateCase renders the definition of c. Recognized flags are
// package=, md5= and suffix=.
func generateCase(c *testutil.Case) (map[string][]byte, error) {
	def, err := c.Definition()
	if err != nil {
		return nil, err
	}

	cfg := generator.Config{Dialect: c.Dialect}
	cfg.Package, _ = c.Flag("package")
	if v, ok := c.Flag("suffix"); ok {
		cfg = cfg.WithOption(generator.OptionClassSuffix, v)
	}
	md5, _ := c.Flag("md5")

	out, err := NewGenerator().Generate(context.Background(), generator.Input{Definition: def, Checksum: md5}, cfg)
	if err != nil {
		return nil, err
	}
	return out.Files, nil
}

func TestGolden(t *testing.T) {
	testutil.Golden(t, "testdata", *update, generateCase)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		ref  idl.Ref
		opts map[string]string
		want string
	}{
		{"default suffix", idl.Ref{Package: "geometry_msgs", Name: "Point"}, nil, "PointMessage.java"},
		{"snake case", idl.Ref{Package: "test_msgs", Name: "joint_state"}, nil, "JointStateMessage.java"},
		{"custom suffix", idl.Ref{Package: "geometry_msgs", Name: "Point"}, map[string]string{generator.OptionClassSuffix: "Msg"}, "PointMsg.java"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewGenerator().FileName(tt.ref, generator.Config{Options: tt.opts})
			if got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateMatchesFileName(t *testing.T) {
	ref := idl.Ref{Package: "test_msgs", Name: "Pose"}
	def := &idl.MessageDefinition{Ref: ref}
	cfg := generator.Config{Dialect: idl.ROS1}

	g := NewGenerator()
	out, err := g.Generate(context.Background(), generator.Input{Definition: def}, cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if diff := cmp.Diff([]string{g.FileName(ref, cfg)}, out.Names()); diff != "" {
		t.Errorf("output names mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateRuntimePackage(t *testing.T) {
	tests := []struct {
		name    string
		dialect idl.Dialect
		opts    map[string]string
		want    string
	}{
		{"ros1 default", idl.ROS1, nil, "import id.jrosmessages.Message;"},
		{"ros2 default", idl.ROS2, nil, "import id.jros2messages.Message;"},
		{"override", idl.ROS1, map[string]string{generator.OptionRuntimePackage: "org.example.ros"}, "import org.example.ros.Message;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := &idl.MessageDefinition{Ref: idl.Ref{Package: "test_msgs", Name: "Empty"}}
			cfg := generator.Config{Dialect: tt.dialect, Options: tt.opts}
			out, err := NewGenerator().Generate(context.Background(), generator.Input{Definition: def}, cfg)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if src := string(out.Files["EmptyMessage.java"]); !strings.Contains(src, tt.want) {
				t.Errorf("output does not contain %q:\n%s", tt.want, src)
			}
		})
	}
}

func TestAccessorsLeaveReceiverUnchanged(t *testing.T) {
	def, err := idl.NewParser(idl.ROS1).Parse(idl.Ref{Package: "test_msgs", Name: "Pair"},
		[]string{"int32 a", "int32[2] b"})
	if err != nil {
		t.Fatal(err)
	}
	out, err := NewGenerator().Generate(context.Background(), generator.Input{Definition: def}, generator.Config{Dialect: idl.ROS1})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	src := string(out.Files["PairMessage.java"])

	for _, want := range []string{
		"    private PairMessage copy() {\n" +
			"        var copy = new PairMessage();\n" +
			"        copy.a = this.a;\n" +
			"        copy.b = this.b;\n" +
			"        return copy;\n" +
			"    }\n",
		"    public PairMessage withA(int a) {\n" +
			"        var copy = copy();\n" +
			"        copy.a = a;\n" +
			"        return copy;\n" +
			"    }\n",
		"        if (b.length != 2) {\n",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output does not contain:\n%s\ngot:\n%s", want, src)
		}
	}
	if strings.Contains(src, "return this;") || strings.Contains(src, "this.a = a;") {
		t.Errorf("accessor modifies the receiver:\n%s", src)
	}
}

func TestGenerateTemplateOverride(t *testing.T) {
	dir := t.TempDir()
	header := "// ${msgName} custom header\n"
	if err := os.WriteFile(filepath.Join(dir, "header.tmpl"), []byte(header), 0o644); err != nil {
		t.Fatal(err)
	}

	def := &idl.MessageDefinition{Ref: idl.Ref{Package: "test_msgs", Name: "Empty"}}
	cfg := generator.Config{Dialect: idl.ROS1}.WithOption(generator.OptionTemplates, dir)
	out, err := NewGenerator().Generate(context.Background(), generator.Input{Definition: def}, cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	src := string(out.Files["EmptyMessage.java"])
	if !strings.HasPrefix(src, "// test_msgs/Empty custom header\n") {
		t.Errorf("header not overridden:\n%s", src)
	}
	if !strings.Contains(src, "static final String NAME = \"test_msgs/Empty\";") {
		t.Errorf("bundled fragments not used for the rest of the class:\n%s", src)
	}
}

func TestGenerateMissingTemplate(t *testing.T) {
	def := &idl.MessageDefinition{Ref: idl.Ref{Package: "test_msgs", Name: "Empty"}}
	g := New(def, Config{Dialect: idl.ROS1}, subst.NewTemplates(fstest.MapFS{}, "templates"))
	if _, err := g.Render(); !errors.Is(err, errors.ErrTemplate) {
		t.Errorf("Render() error = %v, want ErrTemplate", err)
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	def := &idl.MessageDefinition{Ref: idl.Ref{Package: "test_msgs", Name: "Empty"}}
	if _, err := NewGenerator().Generate(ctx, generator.Input{Definition: def}, generator.Config{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
}

func TestGenerateEnumNamesAreUnique(t *testing.T) {
	def, err := idl.NewParser(idl.ROS1).Parse(idl.Ref{Package: "test_msgs", Name: "Status"}, []string{
		"uint8 STATUS_OK=0", "uint8 STATUS_ERROR=1",
		"uint8 STATUS2_OK=0", "uint8 STATUS2_ERROR=1",
		"uint8 STATUS_IDLE=0", "uint8 STATUS_BUSY=1",
	})
	if err != nil {
		t.Fatal(err)
	}
	out, err := NewGenerator().Generate(context.Background(), generator.Input{Definition: def}, generator.Config{Dialect: idl.ROS1})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	src := string(out.Files["StatusMessage.java"])
	for _, want := range []string{"public enum Status {", "public enum Status2 {", "public enum Status3 {"} {
		if strings.Count(src, want) != 1 {
			t.Errorf("want exactly one %q in:\n%s", want, src)
		}
	}
}
