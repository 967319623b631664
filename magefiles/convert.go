//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// papersDir holds Markdown papers converted by the Convert target.
const papersDir = "papers"

// Convert builds the CLI and converts every Markdown paper in papers/ to LaTeX.
func Convert() error {
	mg.Deps(Build)

	inputs, err := filepath.Glob(filepath.Join(papersDir, "*.md"))
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		fmt.Printf("[convert] No Markdown papers in %s/\n", papersDir)
		return nil
	}
	args := append([]string{"convert", "--batch"}, inputs...)
	return sh.RunV(binPath, args...)
}
