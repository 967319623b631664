// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePaper = `# Title
Sparse Attention at Scale

## Authors
A. Researcher

## Abstract
We study **sparse** attention.

## 1. Introduction
Plain text with 50% coverage.
`

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func writePaper(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(samplePaper), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "papertex "+version) {
		t.Errorf("output = %q, want version line", out)
	}
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := writePaper(t, dir, "paper.md")
	outPath := filepath.Join(dir, "custom.tex")

	out, err := execute(t, "convert", in, outPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out, "LaTeX saved to: "+outPath) {
		t.Errorf("output = %q, want saved path", out)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	tex := string(data)
	for _, want := range []string{
		`\title{Sparse Attention at Scale}`,
		`\author{A. Researcher}`,
		`We study \textbf{sparse} attention.`,
		`\section{Introduction}`,
		`Plain text with 50\% coverage.`,
	} {
		if !strings.Contains(tex, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestConvertCommandErrors(t *testing.T) {
	if _, err := execute(t, "convert"); err == nil {
		t.Error("expected usage error with no input")
	}

	missing := filepath.Join(t.TempDir(), "missing.md")
	if _, err := execute(t, "convert", missing); err == nil {
		t.Error("expected error for missing input")
	}
	if _, err := os.Stat(strings.TrimSuffix(missing, ".md") + ".tex"); !os.IsNotExist(err) {
		t.Error("no output should be written for a missing input")
	}
}

func TestConvertRecordsCatalog(t *testing.T) {
	dir := t.TempDir()
	catalogDir := filepath.Join(dir, "catalog")
	in := writePaper(t, dir, "sparse.md")

	if _, err := execute(t, "convert", "--catalog", "--catalog-dir", catalogDir, in); err != nil {
		t.Fatalf("convert: %v", err)
	}

	out, err := execute(t, "catalog", "list", "--catalog-dir", catalogDir)
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	if !strings.Contains(out, "Sparse Attention at Scale") {
		t.Errorf("list output = %q, want recorded title", out)
	}

	out, err = execute(t, "catalog", "search", "--catalog-dir", catalogDir, "researcher")
	if err != nil {
		t.Fatalf("catalog search: %v", err)
	}
	if !strings.Contains(out, "sparse") {
		t.Errorf("search output = %q, want paper id", out)
	}
}
