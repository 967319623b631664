// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/papertex/internal/catalog"
	"github.com/pdiddy/papertex/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Query the catalog of converted papers",
	Long: `Catalog lists, searches, and exports the papers recorded by
convert --catalog and extract --convert.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently converted papers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCatalog(cmd, func(store *catalog.Store, limit int) error {
			papers, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printPapers(cmd.OutOrStdout(), papers)
			return nil
		})
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <terms...>",
	Short: "Search titles, authors, and abstracts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCatalog(cmd, func(store *catalog.Store, limit int) error {
			papers, err := store.Search(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			if len(papers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching papers.")
				return nil
			}
			printPapers(cmd.OutOrStdout(), papers)
			return nil
		})
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as YAML or JSON",
	Long: `Export writes every recorded paper to export.yaml or export.json in the
catalog directory. With --stdout the export is printed instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		toStdout, _ := cmd.Flags().GetBool("stdout")

		f := catalog.ExportFormat(format)
		if f != catalog.FormatYAML && f != catalog.FormatJSON {
			return fmt.Errorf("unknown export format %q (want yaml or json)", format)
		}

		return withCatalog(cmd, func(store *catalog.Store, _ int) error {
			if toStdout {
				return store.Export(cmd.Context(), f, cmd.OutOrStdout())
			}
			path, err := store.ExportFile(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog exported to: %s\n", path)
			return nil
		})
	},
}

func init() {
	catalogCmd.PersistentFlags().String("catalog-dir", "", "catalog directory (default from config)")
	catalogCmd.PersistentFlags().Int("limit", 0, "maximum results (default from config, -1 for all)")

	catalogExportCmd.Flags().String("format", string(catalog.FormatYAML), "export format: yaml or json")
	catalogExportCmd.Flags().Bool("stdout", false, "print the export instead of writing a file")

	catalogCmd.AddCommand(catalogListCmd, catalogSearchCmd, catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}

// withCatalog opens the configured catalog, resolves the result limit, and
// closes the store after fn returns.
func withCatalog(cmd *cobra.Command, fn func(store *catalog.Store, limit int) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	limit := cfg.Catalog.MaxResults
	if cmd.Flags().Changed("limit") {
		limit, _ = cmd.Flags().GetInt("limit")
	}

	store, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(store, limit)
}

func printPapers(w io.Writer, papers []types.Paper) {
	for _, p := range papers {
		title := p.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(w, "%s  %s  %s\n", p.ConvertedAt.Format("2006-01-02 15:04"), p.ID, title)
		if p.Authors != "" {
			fmt.Fprintf(w, "    %s\n", p.Authors)
		}
		fmt.Fprintf(w, "    %s\n", p.TexPath)
	}
}
