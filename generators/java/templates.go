// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import (
	"embed"

	"github.com/pinorobotics/msgmonster/internal/subst"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates returns the bundled class fragments. When dir is not empty its
// fragments take precedence over the bundled ones.
func Templates(dir string) *subst.Templates {
	t := subst.NewTemplates(templateFS, "templates")
	if dir != "" {
		t = t.Overlay(dir)
	}
	return t
}
