// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package source

import (
	"context"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinorobotics/msgmonster/idl"
	"github.com/pinorobotics/msgmonster/internal/errors"
)

// fakeRunner answers commands from a table keyed by the joined argv.
type fakeRunner map[string]string

func (f fakeRunner) Run(_ context.Context, argv []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		out, ok := f[strings.Join(argv, " ")]
		if !ok {
			yield("", errors.Newf("unexpected command %q", argv))
			return
		}
		for line := range strings.SplitSeq(strings.TrimSuffix(out, "\n"), "\n") {
			if !yield(line, nil) {
				return
			}
		}
	}
}

func TestToolchainROS1(t *testing.T) {
	ctx := context.Background()
	runner := fakeRunner{
		"rospack list-names":                 "std_msgs\ngeometry_msgs\n",
		"rosmsg package geometry_msgs":       "geometry_msgs/Point\ngeometry_msgs/Pose\n",
		"rosmsg show -r geometry_msgs/Point": "# A point\nfloat64 x\nfloat64 y\nfloat64 z\n",
		"rosmsg md5 geometry_msgs/Point":     "4a842b65f413084dc2b10fb484ea7f17\n",
	}
	src := NewToolchain(idl.ROS1, DefaultCommands(idl.ROS1), runner)

	isPkg, err := src.IsPackage(ctx, "geometry_msgs")
	require.NoError(t, err)
	assert.True(t, isPkg)

	isPkg, err = src.IsPackage(ctx, "nav_msgs")
	require.NoError(t, err)
	assert.False(t, isPkg)

	var refs []string
	for ref, err := range src.List(ctx, "geometry_msgs") {
		require.NoError(t, err)
		refs = append(refs, ref.Location)
	}
	assert.Equal(t, []string{"geometry_msgs/Point", "geometry_msgs/Pose"}, refs)

	ref, err := src.Ref(ctx, "geometry_msgs/Point")
	require.NoError(t, err)

	var lines []string
	for line, err := range src.Lines(ctx, ref) {
		require.NoError(t, err)
		lines = append(lines, line)
	}
	assert.Equal(t, []string{"# A point", "float64 x", "float64 y", "float64 z"}, lines)

	sum, ok, err := src.Checksum(ctx, ref)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "4a842b65f413084dc2b10fb484ea7f17", sum)
}

func TestToolchainROS2(t *testing.T) {
	ctx := context.Background()
	runner := fakeRunner{
		"ros2 interface package geometry_msgs": "geometry_msgs/msg/Point\ngeometry_msgs/srv/Get\ngeometry_msgs/msg/PointStamped\n",
		"ros2 interface show geometry_msgs/msg/PointStamped": "std_msgs/Header header\n\tbuiltin_interfaces/Time stamp\n\tstring frame_id\nPoint point\n\tfloat64 x\n",
	}
	src := NewToolchain(idl.ROS2, DefaultCommands(idl.ROS2), runner)

	var refs []string
	for ref, err := range src.List(ctx, "geometry_msgs") {
		require.NoError(t, err)
		refs = append(refs, ref.String())
	}
	assert.Equal(t, []string{"geometry_msgs/Point", "geometry_msgs/PointStamped"}, refs)

	ref, err := src.Ref(ctx, "geometry_msgs/PointStamped")
	require.NoError(t, err)
	assert.Equal(t, "geometry_msgs/msg/PointStamped", ref.Location)

	var lines []string
	for line, err := range src.Lines(ctx, ref) {
		require.NoError(t, err)
		lines = append(lines, line)
	}
	assert.Equal(t, []string{"std_msgs/Header header", "Point point"}, lines)

	_, ok, err := src.Checksum(ctx, ref)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestToolchainCustomCommands(t *testing.T) {
	ctx := context.Background()
	cmds := DefaultCommands(idl.ROS1).Merge(Commands{Show: "cat '/opt/defs/${type}.msg'"})
	runner := fakeRunner{"cat /opt/defs/pkg/Name.msg": "int32 a\n"}
	src := NewToolchain(idl.ROS1, cmds, runner)

	ref, err := src.Ref(ctx, "pkg/Name")
	require.NoError(t, err)
	for line, err := range src.Lines(ctx, ref) {
		require.NoError(t, err)
		assert.Equal(t, "int32 a", line)
	}
	assert.Equal(t, "rosmsg md5 ${type}", cmds.MD5)
}

func TestToolchainCommandFailure(t *testing.T) {
	src := NewToolchain(idl.ROS1, DefaultCommands(idl.ROS1), fakeRunner{})
	_, err := src.IsPackage(context.Background(), "std_msgs")
	assert.Error(t, err)

	bad := NewToolchain(idl.ROS1, Commands{Packages: "broken 'quote"}, fakeRunner{})
	_, err = bad.IsPackage(context.Background(), "std_msgs")
	assert.Error(t, err)
}
