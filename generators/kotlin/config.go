// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package kotlin

import "github.com/pinorobotics/msgmonster/idl"

// Config holds configuration for Kotlin generation.
type Config struct {
	// PackageName is the Kotlin package of generated classes.
	PackageName string

	// RuntimePackage is the namespace of the message runtime.
	RuntimePackage string

	// Dialect is the definition dialect.
	Dialect idl.Dialect

	// Checksum is the definition checksum, empty when unknown.
	Checksum string

	// ClassSuffix is appended to derived class names.
	ClassSuffix string
}
