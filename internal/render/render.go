// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns LaTeX documents into PDF through a containerized
// TeX toolchain.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/papertex/internal/container"
)

// DefaultImage reads a LaTeX document on stdin and writes a PDF on stdout.
const DefaultImage = "papertex-latex:latest"

const pdfExt = ".pdf"

// pdfMagic starts every PDF file.
var pdfMagic = []byte("%PDF-")

// LatexRenderer renders LaTeX files with a container image. It depends on
// a container.Runtime injected at construction time.
type LatexRenderer struct {
	runtime container.Runtime
	image   string
}

// NewLatexRenderer creates a renderer for image, or DefaultImage when image
// is empty. It verifies that the image exists locally before returning.
func NewLatexRenderer(rt container.Runtime, image string) (*LatexRenderer, error) {
	if image == "" {
		image = DefaultImage
	}
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("latex image not available in %s: %w", rt.Name(), err)
	}
	return &LatexRenderer{runtime: rt, image: image}, nil
}

// OutputPath returns texPath with its extension replaced by .pdf.
func OutputPath(texPath string) string {
	return strings.TrimSuffix(texPath, filepath.Ext(texPath)) + pdfExt
}

// Render pipes the LaTeX file at texPath through the container and writes
// the PDF to pdfPath, or to OutputPath(texPath) when pdfPath is empty.
// It returns the path written.
func (r *LatexRenderer) Render(ctx context.Context, texPath, pdfPath string, w io.Writer) (string, error) {
	if pdfPath == "" {
		pdfPath = OutputPath(texPath)
	}

	f, err := os.Open(texPath)
	if err != nil {
		return "", fmt.Errorf("opening LaTeX %s: %w", texPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := r.runtime.Run(ctx, r.image, f, &out); err != nil {
		return "", fmt.Errorf("rendering %s with %s: %w", texPath, r.image, err)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("%s produced empty output for %s", r.image, texPath)
	}
	if !bytes.HasPrefix(out.Bytes(), pdfMagic) {
		return "", fmt.Errorf("%s produced non-PDF output for %s", r.image, texPath)
	}

	if err := os.WriteFile(pdfPath, out.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", pdfPath, err)
	}

	fmt.Fprintf(w, "PDF saved to: %s\n", pdfPath)
	return pdfPath, nil
}
