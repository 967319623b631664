//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Extract builds the CLI and extracts the paper from the newest experiment run.
func Extract() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "extract", "--convert")
}
