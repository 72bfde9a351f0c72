// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/pinorobotics/msgmonster/generator"
	"github.com/pinorobotics/msgmonster/generators/java"
	"github.com/pinorobotics/msgmonster/generators/kotlin"
)

func init() {
	generator.MustRegister(java.NewGenerator())
	generator.MustRegister(kotlin.NewGenerator())
}
