// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExperimentConfig locates experiment runs and the files inside them.
type ExperimentConfig struct {
	// ActiveDir holds one timestamped directory per run
	// (default ~/workspace/experiments/active).
	ActiveDir string `json:"active_dir" yaml:"active_dir" mapstructure:"active_dir"`

	// LogFile is the orchestrator log path relative to a run directory.
	LogFile string `json:"log_file" yaml:"log_file" mapstructure:"log_file"`

	// ReportsDir is the report output directory relative to a run directory.
	ReportsDir string `json:"reports_dir" yaml:"reports_dir" mapstructure:"reports_dir"`
}

// ConversionConfig holds settings for the Markdown-to-LaTeX stage.
type ConversionConfig struct {
	// Catalog records every converted paper in the catalog when true.
	Catalog bool `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
}

// RenderConfig holds settings for turning LaTeX into PDF.
type RenderConfig struct {
	// Image is the container image that reads LaTeX on stdin and writes PDF
	// on stdout.
	Image string `json:"image" yaml:"image" mapstructure:"image"`
}

// CatalogConfig holds settings for the paper catalog.
type CatalogConfig struct {
	// Dir is the directory containing catalog.db and exports.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups all stage configurations.
type Config struct {
	Experiments ExperimentConfig `json:"experiments" yaml:"experiments" mapstructure:"experiments"`
	Conversion  ConversionConfig `json:"conversion" yaml:"conversion" mapstructure:"conversion"`
	Render      RenderConfig     `json:"render" yaml:"render" mapstructure:"render"`
	Catalog     CatalogConfig    `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
}
