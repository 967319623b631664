// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the papertex CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/papertex/internal/experiment"
	"github.com/pdiddy/papertex/internal/render"
	"github.com/pdiddy/papertex/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the papertex CLI.
var rootCmd = &cobra.Command{
	Use:   "papertex",
	Short: "Turn agent-written research papers into LaTeX",
	Long: `papertex takes the paper an agent workflow wrote into its orchestrator
log and turns it into a LaTeX article.

Each stage is a subcommand: extract pulls the paper out of an experiment
run, convert produces LaTeX from the Markdown, render compiles the LaTeX to
PDF in a container, and catalog keeps a searchable record of conversions.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./papertex.yaml or ~/.config/papertex/config.yaml)")
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("papertex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "papertex"))
		}
	}

	viper.SetEnvPrefix("PAPERTEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers the default value of every configuration key.
func setDefaults(v *viper.Viper) {
	activeDir, err := experiment.DefaultActiveDir()
	if err != nil {
		activeDir = filepath.Join("experiments", "active")
	}
	v.SetDefault("experiments.active_dir", activeDir)
	v.SetDefault("experiments.log_file", experiment.DefaultLogFile)
	v.SetDefault("experiments.reports_dir", experiment.DefaultReportsDir)
	v.SetDefault("conversion.catalog", false)
	v.SetDefault("render.image", render.DefaultImage)
	v.SetDefault("catalog.dir", "catalog")
	v.SetDefault("catalog.max_results", 20)
}

// loadConfig decodes the viper settings and applies flag overrides from
// cmd. Flags win only when set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("active-dir") {
		cfg.Experiments.ActiveDir, _ = flags.GetString("active-dir")
	}
	if flags.Changed("catalog") {
		cfg.Conversion.Catalog, _ = flags.GetBool("catalog")
	}
	if flags.Changed("catalog-dir") {
		cfg.Catalog.Dir, _ = flags.GetString("catalog-dir")
	}
	if flags.Changed("image") {
		cfg.Render.Image, _ = flags.GetString("image")
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
