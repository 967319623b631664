// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/papertex/internal/experiment"
)

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func newTestExtractor() *Extractor {
	e := New(experiment.Layout{})
	e.Now = func() time.Time { return fixedNow }
	return e
}

// writeLog creates runDir/logs/orchestrator.log with content.
func writeLog(t *testing.T, runDir, content string) string {
	t.Helper()
	path := experiment.Layout{}.LogPath(runDir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	run := t.TempDir()
	writeLog(t, run, "step 1\n# Title\nMy Paper\n[DONE]")

	var log bytes.Buffer
	res, err := newTestExtractor().Run(run, &log)
	require.NoError(t, err)

	wantPath := filepath.Join(run, "reports", "2026-10-15_09-30_extracted_paper.md")
	assert.Equal(t, wantPath, res.ReportPath)
	assert.Equal(t, "# Title\nMy Paper", res.Paper)

	data, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	assert.Equal(t, "# Title\nMy Paper", string(data))

	assert.Contains(t, log.String(), "Reading:")
	assert.Contains(t, log.String(), "Paper saved to: "+wantPath)
	assert.Contains(t, log.String(), "Paper length: 16 chars")
}

func TestRunMissingLog(t *testing.T) {
	run := t.TempDir()

	_, err := newTestExtractor().Run(run, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrLogNotFound)

	_, statErr := os.Stat(filepath.Join(run, "reports"))
	assert.True(t, os.IsNotExist(statErr), "no reports directory on failure")
}

func TestRunNoPaperWritesNothing(t *testing.T) {
	run := t.TempDir()
	writeLog(t, run, "nothing useful")

	_, err := newTestExtractor().Run(run, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrNoPaper)

	_, statErr := os.Stat(filepath.Join(run, "reports"))
	assert.True(t, os.IsNotExist(statErr), "no reports directory on failure")
}

func TestAll(t *testing.T) {
	active := t.TempDir()

	fresh := filepath.Join(active, "2026-10-14_10-00")
	writeLog(t, fresh, "# Title\nFresh\n[DONE]")

	empty := filepath.Join(active, "2026-10-13_10-00")
	writeLog(t, empty, "no paper")

	done := filepath.Join(active, "2026-10-12_10-00")
	logPath := writeLog(t, done, "# Title\nDone\n[DONE]")
	report, err := experiment.Layout{}.SaveReport(done, "# Title\nDone", fixedNow)
	require.NoError(t, err)
	old := fixedNow.Add(-time.Hour)
	require.NoError(t, os.Chtimes(logPath, old, old))
	require.NoError(t, os.Chtimes(report, fixedNow, fixedNow))

	require.NoError(t, os.MkdirAll(filepath.Join(active, "2026-10-11_10-00"), 0o755))

	var log bytes.Buffer
	summary, results, err := newTestExtractor().All(active, &log)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Extracted)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 4, summary.Total())
	assert.True(t, summary.HasFailures())

	require.Len(t, results, 1)
	assert.Equal(t, fresh, results[0].RunDir)
	assert.True(t, strings.Contains(log.String(), "Batch summary:"))
}
