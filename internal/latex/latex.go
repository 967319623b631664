// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex converts the Markdown dialect written by the paper-writing
// workflow into a standalone LaTeX article.
//
// Conversion runs two passes over the same lines. The first pass extracts
// the front matter (title, authors, abstract); the second walks the body,
// skipping the front-matter regions, and maps headers, lists, code blocks
// and prose onto LaTeX. Input outside the supported subset degrades to
// escaped plain text; conversion never fails.
package latex

import "strings"

// preamble is the fixed package set every document starts with.
var preamble = []string{
	`\documentclass[11pt]{article}`,
	`\usepackage[utf8]{inputenc}`,
	`\usepackage[T1]{fontenc}`,
	`\usepackage{amsmath,amssymb}`,
	`\usepackage{graphicx}`,
	`\usepackage{hyperref}`,
	`\usepackage[margin=1in]{geometry}`,
}

// Convert returns the complete LaTeX document for markdown.
func Convert(markdown string) string {
	lines := strings.Split(markdown, "\n")
	fm := ExtractFrontMatter(lines)
	return Assemble(fm, TransformBody(lines, fm))
}

// Assemble wraps a transformed body with the preamble, title block and
// optional abstract.
func Assemble(fm FrontMatter, body []string) string {
	out := make([]string, 0, len(preamble)+len(body)+16)
	out = append(out, preamble...)
	out = append(out,
		"",
		`\title{`+inline(fm.Title)+`}`,
		`\author{`+inline(fm.Authors)+`}`,
		`\date{}`,
		"",
		`\begin{document}`,
		`\maketitle`,
		"",
	)

	if fm.Abstract != "" {
		out = append(out,
			`\begin{abstract}`,
			inline(fm.Abstract),
			`\end{abstract}`,
			"",
		)
	}

	out = append(out, body...)
	out = append(out, "", `\end{document}`)
	return strings.Join(out, "\n")
}

// Converter adapts Convert to the error-returning converter interface used
// by file-level conversion.
type Converter struct{}

// Convert returns the LaTeX document for markdown. It never fails.
func (Converter) Convert(markdown string) (string, error) {
	return Convert(markdown), nil
}
