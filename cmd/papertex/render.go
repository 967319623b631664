// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/papertex/internal/container"
	"github.com/pdiddy/papertex/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <input.tex> [output.pdf]",
	Short: "Compile a LaTeX file to PDF in a container",
	Long: `Render pipes a LaTeX file through a LaTeX container image using docker
or podman (whichever is found first) and writes the resulting PDF. The
output defaults to the input path with a .pdf extension.

The image reads the document on stdin and writes the PDF on stdout. It runs
without network access.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("image", "", "LaTeX container image (default from config)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rt, err := container.DetectRuntime()
	if err != nil {
		return err
	}
	renderer, err := render.NewLatexRenderer(rt, cfg.Render.Image)
	if err != nil {
		return err
	}

	output := ""
	if len(args) == 2 {
		output = args[1]
	}
	if _, err := renderer.Render(cmd.Context(), args[0], output, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
