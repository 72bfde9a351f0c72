// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package configpaths locates msgmonster configuration files.
package configpaths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pinorobotics/msgmonster/internal/errors"
)

// EnvConfig names the environment variable holding a config file path.
const EnvConfig = "MSGMONSTER_CONFIG"

// BaseName is the file name, without extension, of configuration files.
const BaseName = "msgmonster"

// SystemDir holds system wide configuration on unix systems.
const SystemDir = "/etc/msgmonster"

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, "msgmonster"), nil
		}
		return "", errors.New("AppData not set")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "msgmonster"), nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "msgmonster"), nil
	}
	return "", errors.New("HOME not set")
}

// Ext returns the file extension of format: json, yaml or toml.
func Ext(format string) string {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// DefaultConfigPath returns the default config file path for format.
func DefaultConfigPath(format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, BaseName+"."+Ext(format)), nil
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// FindUserConfig returns the config file named by a --config flag in args
// or by EnvConfig, or "".
func FindUserConfig(args []string) string {
	for i, a := range args {
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv(EnvConfig)
}

// Candidates are config file paths grouped by loader, in priority order.
type Candidates struct {
	JSON, YAML, TOML []string
}

// ConfigCandidatePaths builds candidate paths for config files per format.
// A userPath is tried first and routed to the loader matching its
// extension; then come the working directory, the user configuration
// directory and, on unix, SystemDir.
func ConfigCandidatePaths(userPath string) Candidates {
	var c Candidates
	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			c.YAML = append(c.YAML, userPath)
		case ".toml":
			c.TOML = append(c.TOML, userPath)
		default:
			c.JSON = append(c.JSON, userPath)
		}
	}

	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	if runtime.GOOS != "windows" {
		dirs = append(dirs, SystemDir)
	}
	for _, dir := range dirs {
		base := filepath.Join(dir, BaseName)
		c.JSON = append(c.JSON, base+".json")
		c.YAML = append(c.YAML, base+".yaml", base+".yml")
		c.TOML = append(c.TOML, base+".toml")
	}
	return c
}
