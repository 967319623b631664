// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package experiment locates experiment run directories and the files the
// pipeline reads from and writes into them.
//
// A run directory is named by its start timestamp, so lexical order is
// chronological order. Each run holds an orchestrator log and a reports/
// directory for extracted papers.
package experiment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/papertex/pkg/types"
)

const (
	// DefaultLogFile is the orchestrator log path inside a run directory.
	DefaultLogFile = "logs/orchestrator.log"
	// DefaultReportsDir is the report directory inside a run directory.
	DefaultReportsDir = "reports"

	reportSuffix     = "_extracted_paper.md"
	reportTimeFormat = "2006-01-02_15-04"
)

// ErrNoExperiments is returned when the active directory holds no runs.
var ErrNoExperiments = errors.New("no experiment directories found")

// Layout resolves paths inside run directories. The zero value uses the
// default log and reports locations.
type Layout struct {
	LogFile    string
	ReportsDir string
}

// NewLayout builds a Layout from configuration, filling in defaults.
func NewLayout(cfg types.ExperimentConfig) Layout {
	l := Layout{LogFile: cfg.LogFile, ReportsDir: cfg.ReportsDir}
	if l.LogFile == "" {
		l.LogFile = DefaultLogFile
	}
	if l.ReportsDir == "" {
		l.ReportsDir = DefaultReportsDir
	}
	return l
}

// LogPath returns the orchestrator log path for runDir.
func (l Layout) LogPath(runDir string) string {
	return filepath.Join(runDir, filepath.FromSlash(orDefault(l.LogFile, DefaultLogFile)))
}

// ReportsPath returns the reports directory for runDir.
func (l Layout) ReportsPath(runDir string) string {
	return filepath.Join(runDir, filepath.FromSlash(orDefault(l.ReportsDir, DefaultReportsDir)))
}

// SaveReport writes paper to a timestamped Markdown file under the run's
// reports directory and returns its path.
func (l Layout) SaveReport(runDir, paper string, now time.Time) (string, error) {
	dir := l.ReportsPath(runDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}

	path := filepath.Join(dir, now.Format(reportTimeFormat)+reportSuffix)
	if err := os.WriteFile(path, []byte(paper), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// LatestReport returns the newest extracted report in runDir, or "" when
// there is none.
func (l Layout) LatestReport(runDir string) (string, error) {
	entries, err := os.ReadDir(l.ReportsPath(runDir))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading reports directory: %w", err)
	}

	var latest string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), reportSuffix) {
			continue
		}
		if e.Name() > latest {
			latest = e.Name()
		}
	}
	if latest == "" {
		return "", nil
	}
	return filepath.Join(l.ReportsPath(runDir), latest), nil
}

// Runs returns every run directory under activeDir, newest first.
func Runs(activeDir string) ([]string, error) {
	entries, err := os.ReadDir(activeDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrNoExperiments, activeDir)
		}
		return nil, fmt.Errorf("reading experiments directory %s: %w", activeDir, err)
	}

	var runs []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			runs = append(runs, filepath.Join(activeDir, e.Name()))
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(runs)))
	return runs, nil
}

// Latest returns the most recent run directory under activeDir.
func Latest(activeDir string) (string, error) {
	runs, err := Runs(activeDir)
	if err != nil {
		return "", err
	}
	if len(runs) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoExperiments, activeDir)
	}
	return runs[0], nil
}

// DefaultActiveDir returns ~/workspace/experiments/active.
func DefaultActiveDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, "workspace", "experiments", "active"), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
