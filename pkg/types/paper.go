// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the papertex pipeline.
// Covers the extraction stage (Paper, ConversionStatus), the conversion
// stage, and the typed configuration read through viper.
package types

import "time"

// ConversionStatus indicates the state of Markdown-to-LaTeX conversion for a paper.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// Paper describes one paper that went through the pipeline: where its
// Markdown came from, where the LaTeX went, and the front matter found in it.
type Paper struct {
	// ID is a slug derived from the Markdown file name (e.g. "2026-10-15_09-30_extracted_paper").
	ID string `json:"id" yaml:"id"`

	// Title is the extracted paper title, unescaped.
	Title string `json:"title" yaml:"title"`

	// Authors is the raw authors line as written in the paper.
	Authors string `json:"authors" yaml:"authors"`

	// Abstract is the abstract text joined into a single line.
	Abstract string `json:"abstract" yaml:"abstract"`

	// SourcePath is the Markdown file the paper was converted from.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// TexPath is the LaTeX file written by the conversion.
	TexPath string `json:"tex_path" yaml:"tex_path"`

	// ConvertedAt records when the LaTeX output was written.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`

	// ConversionStatus tracks the outcome of the last conversion.
	ConversionStatus ConversionStatus `json:"conversion_status" yaml:"conversion_status"`
}
