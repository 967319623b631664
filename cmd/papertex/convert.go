// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/papertex/internal/catalog"
	"github.com/pdiddy/papertex/internal/convert"
	"github.com/pdiddy/papertex/internal/latex"
	"github.com/pdiddy/papertex/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.md> [output.tex]",
	Short: "Convert a Markdown paper to LaTeX",
	Long: `Convert reads a Markdown paper (title, authors, abstract, sections,
lists, code blocks) and writes a LaTeX article. The output defaults to the
input path with a .tex extension.

With --batch every argument is an input and each is written next to its
source.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Bool("batch", false, "treat every argument as an input file")
	convertCmd.Flags().Bool("catalog", false, "record converted papers in the catalog")
	convertCmd.Flags().String("catalog-dir", "", "catalog directory (default from config)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	batch, _ := cmd.Flags().GetBool("batch")
	if len(args) == 0 || (!batch && len(args) > 2) {
		return fmt.Errorf("usage: %s", cmd.UseLine())
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var (
		conv   = latex.Converter{}
		out    = cmd.OutOrStdout()
		papers []types.Paper
		failed int
	)
	if batch {
		result := convert.ConvertBatch(conv, args, out)
		papers, failed = result.Papers, result.Failed
	} else {
		output := ""
		if len(args) == 2 {
			output = args[1]
		}
		paper, err := convert.ConvertFile(conv, args[0], output, out)
		if err != nil {
			return err
		}
		papers = []types.Paper{paper}
	}

	if cfg.Conversion.Catalog {
		if err := recordPapers(cmd.Context(), cfg.Catalog, papers); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed conversion", failed)
	}
	return nil
}

// recordPapers adds the front matter of each paper's source to its record
// and stores it in the catalog.
func recordPapers(ctx context.Context, cfg types.CatalogConfig, papers []types.Paper) error {
	if len(papers) == 0 {
		return nil
	}

	store, err := catalog.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, p := range papers {
		p, err := withFrontMatter(p)
		if err != nil {
			return err
		}
		if err := store.Record(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// withFrontMatter fills Title, Authors and Abstract from the paper's
// Markdown source.
func withFrontMatter(p types.Paper) (types.Paper, error) {
	data, err := os.ReadFile(p.SourcePath)
	if err != nil {
		return p, fmt.Errorf("reading %s: %w", p.SourcePath, err)
	}
	fm := latex.ExtractFrontMatter(strings.Split(string(data), "\n"))
	p.Title = fm.Title
	p.Authors = fm.Authors
	p.Abstract = fm.Abstract
	return p, nil
}
