// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert writes LaTeX files from Markdown papers with a pluggable
// converter. Output is written only after the whole conversion succeeds in
// memory.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/papertex/pkg/types"
)

const texExt = ".tex"

// ErrInputNotFound is returned when the Markdown input does not exist.
var ErrInputNotFound = errors.New("file not found")

// Converter transforms Markdown text into LaTeX text.
type Converter interface {
	// Convert returns the LaTeX document for markdown.
	Convert(markdown string) (string, error)
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
	Papers    []types.Paper
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath returns input with its extension replaced by .tex.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + texExt
}

// PaperID derives a paper ID from a file name.
func PaperID(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// ConvertFile converts the Markdown file at input and writes the LaTeX to
// output, or to OutputPath(input) when output is empty. An existing output
// file is overwritten.
func ConvertFile(c Converter, input, output string, w io.Writer) (types.Paper, error) {
	if output == "" {
		output = OutputPath(input)
	}
	paper := types.Paper{
		ID:               PaperID(input),
		SourcePath:       input,
		TexPath:          output,
		ConversionStatus: types.ConversionFailed,
	}

	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return paper, fmt.Errorf("%w: %s", ErrInputNotFound, input)
		}
		return paper, fmt.Errorf("reading %s: %w", input, err)
	}

	tex, err := c.Convert(string(data))
	if err != nil {
		return paper, fmt.Errorf("converting %s: %w", input, err)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return paper, fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, []byte(tex), 0o644); err != nil {
		return paper, fmt.Errorf("writing %s: %w", output, err)
	}

	paper.ConversionStatus = types.ConversionDone
	paper.ConvertedAt = time.Now().UTC()
	fmt.Fprintf(w, "LaTeX saved to: %s\n", output)
	return paper, nil
}

// ConvertBatch converts each input to its default output path, printing
// per-file status to w and returning a summary.
func ConvertBatch(c Converter, inputs []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, in := range inputs {
		paper, err := ConvertFile(c, in, "", w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", in, err)
			result.Failed++
			continue
		}
		result.Converted++
		result.Papers = append(result.Papers, paper)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}
