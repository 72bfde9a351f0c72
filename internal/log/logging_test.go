// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinorobotics/msgmonster/internal/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
}

func TestNewLoggerSplitsStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLogger(slog.LevelInfo, &out, &errOut)

	logger.Debug("hidden")
	logger.Info("Wrote class", "class", "PointMessage")
	logger.Error("Generation failed", "definition", "test_msgs/Broken")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "class=PointMessage")
	assert.NotContains(t, out.String(), "Generation failed")
	assert.Contains(t, errOut.String(), "definition=test_msgs/Broken")
	assert.NotContains(t, errOut.String(), "Wrote class")
}

func TestNewLoggerWithAttrs(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLogger(slog.LevelInfo, &out, &errOut).With("definition", "geometry_msgs/Point")

	logger.Info("Processing definition")
	assert.Contains(t, out.String(), "definition=geometry_msgs/Point")
}

func TestSetupLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msgmonster.log")
	logger, closers, err := SetupLogger("debug", path)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("Processing definition", "definition", "std_msgs/String")
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "definition=std_msgs/String")
}

func TestSetupLoggerBadLevel(t *testing.T) {
	_, _, err := SetupLogger("chatty", "")
	assert.Error(t, err)
}
