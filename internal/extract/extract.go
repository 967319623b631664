// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls the final paper out of an orchestrator log and saves
// it as a Markdown report inside the experiment run.
package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pdiddy/papertex/internal/experiment"
)

// ErrLogNotFound is returned when a run has no orchestrator log.
var ErrLogNotFound = errors.New("log not found")

// Result describes one extracted paper.
type Result struct {
	RunDir     string
	LogPath    string
	ReportPath string
	Paper      string
}

// BatchSummary holds counts from an extraction run over many experiments.
type BatchSummary struct {
	Extracted int
	Skipped   int
	Failed    int
}

// Total returns the number of runs processed.
func (s BatchSummary) Total() int {
	return s.Extracted + s.Skipped + s.Failed
}

// HasFailures reports whether any run failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// Extractor scrapes papers from run logs and writes reports.
type Extractor struct {
	Layout   experiment.Layout
	Matchers []Matcher

	// Now stamps report file names. Defaults to time.Now.
	Now func() time.Time
}

// New returns an Extractor using the default matchers.
func New(layout experiment.Layout) *Extractor {
	return &Extractor{Layout: layout, Matchers: DefaultMatchers(), Now: time.Now}
}

// FromLog reads the log at path and returns the paper it contains.
func (e *Extractor) FromLog(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrLogNotFound, path)
		}
		return "", fmt.Errorf("reading log %s: %w", path, err)
	}
	return Paper(string(data), e.matchers())
}

// Run extracts the paper from runDir's log and writes it to the reports
// directory. Nothing is written unless a paper is found.
func (e *Extractor) Run(runDir string, w io.Writer) (Result, error) {
	logPath := e.Layout.LogPath(runDir)
	fmt.Fprintf(w, "Reading: %s\n", logPath)

	paper, err := e.FromLog(logPath)
	if err != nil {
		return Result{}, err
	}

	reportPath, err := e.Layout.SaveReport(runDir, paper, e.now())
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintf(w, "Paper saved to: %s\n", reportPath)
	fmt.Fprintf(w, "Paper length: %d chars\n", len(paper))

	return Result{RunDir: runDir, LogPath: logPath, ReportPath: reportPath, Paper: paper}, nil
}

// All extracts every run under activeDir. Runs whose newest report is at
// least as recent as the log are skipped.
func (e *Extractor) All(activeDir string, w io.Writer) (BatchSummary, []Result, error) {
	runs, err := experiment.Runs(activeDir)
	if err != nil {
		return BatchSummary{}, nil, err
	}

	var (
		summary BatchSummary
		results []Result
	)
	for _, run := range runs {
		changed, err := e.hasChanged(run)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", run, err)
			summary.Failed++
			continue
		}
		if !changed {
			fmt.Fprintf(w, "skipped: %s (report up to date)\n", run)
			summary.Skipped++
			continue
		}

		res, err := e.Run(run, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", run, err)
			summary.Failed++
			continue
		}
		results = append(results, res)
		summary.Extracted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d skipped, %d failed (total: %d)\n",
		summary.Extracted, summary.Skipped, summary.Failed, summary.Total())
	return summary, results, nil
}

// hasChanged reports whether runDir's log is newer than its latest report.
// Returns true if there is no report yet.
func (e *Extractor) hasChanged(runDir string) (bool, error) {
	logInfo, err := os.Stat(e.Layout.LogPath(runDir))
	if err != nil {
		if os.IsNotExist(err) {
			return false, fmt.Errorf("%w: %s", ErrLogNotFound, e.Layout.LogPath(runDir))
		}
		return false, fmt.Errorf("stat log: %w", err)
	}

	report, err := e.Layout.LatestReport(runDir)
	if err != nil {
		return false, err
	}
	if report == "" {
		return true, nil
	}

	reportInfo, err := os.Stat(report)
	if err != nil {
		return false, fmt.Errorf("stat report %s: %w", report, err)
	}
	return logInfo.ModTime().After(reportInfo.ModTime()), nil
}

func (e *Extractor) matchers() []Matcher {
	if len(e.Matchers) == 0 {
		return DefaultMatchers()
	}
	return e.Matchers
}

func (e *Extractor) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}
