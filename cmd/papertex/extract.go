// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/papertex/internal/convert"
	"github.com/pdiddy/papertex/internal/experiment"
	"github.com/pdiddy/papertex/internal/extract"
	"github.com/pdiddy/papertex/internal/latex"
	"github.com/pdiddy/papertex/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [run-dir]",
	Short: "Extract the final paper from an experiment run log",
	Long: `Extract reads an experiment run's orchestrator log, finds the final
paper the agents wrote into it, and saves it as a timestamped Markdown report
under the run's reports directory.

Without an argument the newest run under the active experiments directory is
used. With --all every run whose log changed since its last report is
extracted. With --convert each saved report is also converted to LaTeX.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Bool("all", false, "extract every run under the active directory")
	extractCmd.Flags().Bool("convert", false, "also convert each saved report to LaTeX")
	extractCmd.Flags().String("active-dir", "", "active experiments directory (default from config)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	if all && len(args) > 0 {
		return fmt.Errorf("--all does not take a run directory")
	}

	var (
		out       = cmd.OutOrStdout()
		extractor = extract.New(experiment.NewLayout(cfg.Experiments))
		results   []extract.Result
		failed    int
	)
	if all {
		summary, res, err := extractor.All(cfg.Experiments.ActiveDir, out)
		if err != nil {
			return err
		}
		results, failed = res, summary.Failed
	} else {
		runDir := ""
		if len(args) == 1 {
			runDir = args[0]
		} else {
			runDir, err = experiment.Latest(cfg.Experiments.ActiveDir)
			if err != nil {
				return fmt.Errorf("resolving latest experiment: %w", err)
			}
		}
		res, err := extractor.Run(runDir, out)
		if err != nil {
			return err
		}
		results = []extract.Result{res}
	}

	convertReports, _ := cmd.Flags().GetBool("convert")
	if convertReports {
		if err := convertResults(cmd, cfg, results); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d run(s) failed extraction", failed)
	}
	return nil
}

// convertResults writes a .tex next to each saved report.
func convertResults(cmd *cobra.Command, cfg types.Config, results []extract.Result) error {
	papers := make([]types.Paper, 0, len(results))
	for _, res := range results {
		paper, err := convert.ConvertFile(latex.Converter{}, res.ReportPath, "", cmd.OutOrStdout())
		if err != nil {
			return err
		}
		papers = append(papers, paper)
	}
	if !cfg.Conversion.Catalog {
		return nil
	}
	return recordPapers(cmd.Context(), cfg.Catalog, papers)
}
