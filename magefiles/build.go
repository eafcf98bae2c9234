//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/magefile/mage/sh"
)

const (
	binGo     = "go"
	coverDir  = "coverage"
	coverFile = "coverage/cover.out"
	coverHTML = "coverage/cover.html"
)

// Build compiles every package. The module is a library; there is no binary.
func Build() error {
	return sh.RunV(binGo, "build", "./...")
}

// Vet runs go vet on every package.
func Vet() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Clean removes coverage output and the build cache entries for this module.
func Clean() error {
	if err := os.RemoveAll(coverDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}
