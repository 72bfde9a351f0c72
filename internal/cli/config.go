// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/inflect"
	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/pinorobotics/msgmonster/internal/configpaths"
	"github.com/pinorobotics/msgmonster/internal/errors"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Write a configuration file holding every option with its default."`
}

// ConfigInit scaffolds a configuration file.
type ConfigInit struct {
	Format string `help:"Output format." enum:"json,yaml,toml" default:"yaml"`
	Output string `help:"Destination file path. Defaults to msgmonster.<format> in the working directory." type:"path"`
	Force  bool   `help:"Overwrite if the file already exists."`
}

// Run writes the configuration template.
func (c *ConfigInit) Run(logger *slog.Logger) error {
	root := buildMapFromStruct(reflect.TypeOf(Options{}))
	root["log"] = buildMapFromStruct(reflect.TypeOf(LogConfig{}))

	dest := c.Output
	if dest == "" {
		dest = configpaths.BaseName + "." + configpaths.Ext(c.Format)
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.WithHint(errors.Wrapf(errors.ErrExists, "config %s", dest), "use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return errors.Wrapf(err, "create directory for %s", dest)
	}

	data, err := marshalConfig(c.Format, root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", dest)
	}
	logger.Info("Wrote configuration", "path", dest, "format", c.Format)
	return nil
}

func marshalConfig(format string, root map[string]any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch configpaths.Ext(format) {
	case "yaml":
		data, err = yaml.Marshal(root)
	case "toml":
		data, err = toml.Marshal(root)
	default:
		data, err = json.MarshalIndent(root, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s config", format)
	}
	return data, nil
}

// configKey returns the configuration key of a flag field: the flag name
// with dashes replaced by underscores, as the configuration loaders expect.
func configKey(f reflect.StructField) string {
	name := f.Tag.Get("name")
	if name == "" {
		name = inflect.Underscore(f.Name)
	}
	return strings.ReplaceAll(name, "-", "_")
}

// buildMapFromStruct maps every flag of t to its default value. Embedded
// structs with a prefix become nested sections.
func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("kong") == "-" {
			continue
		}
		if _, ok := f.Tag.Lookup("embed"); ok {
			sub := buildMapFromStruct(f.Type)
			if name := strings.TrimSuffix(f.Tag.Get("prefix"), "."); name != "" {
				out[name] = sub
			} else {
				for k, v := range sub {
					out[k] = v
				}
			}
			continue
		}
		if val := defaultValueForField(f.Type, f.Tag.Get("default")); val != nil {
			out[configKey(f)] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == reflect.TypeOf(time.Duration(0)) {
		if def != "" {
			return def
		}
		return "0s"
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Struct:
		return buildMapFromStruct(t)
	default:
		return nil
	}
}
