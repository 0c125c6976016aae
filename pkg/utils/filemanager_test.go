package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.txt")))
	// Directories are not files.
	assert.False(t, FileExists(dir))
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent.
	assert.NoError(t, EnsureDir(path))
}

func TestModDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	stamp := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	assert.Equal(t, "2026-03-14", ModDate(path))
	assert.Equal(t, "", ModDate(filepath.Join(t.TempDir(), "missing.txt")))
}

func TestWriteSummaryLog(t *testing.T) {
	dir := t.TempDir()
	summary := RunSummary{
		RunID:     "abc-123",
		StartTime: time.Date(2026, time.August, 25, 6, 0, 0, 0, time.UTC),
		Elapsed:   42 * time.Millisecond,
		Outcomes: []ReportOutcome{
			{Report: "position_master", OutputFile: "out.csv", Rows: 10, Status: "ok"},
			{Report: "worktag_grant", Status: "skipped", Detail: "input file not found"},
			{Report: "worktag_program", Status: "failed", Detail: "disk full"},
		},
	}

	path, err := WriteSummaryLog(summary, dir)
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "abc-123")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Run ID:     abc-123")
	assert.Contains(t, content, "[OK]      position_master: 10 row(s) -> out.csv")
	assert.Contains(t, content, "[SKIPPED] worktag_grant: input file not found")
	assert.Contains(t, content, "[FAILED]  worktag_program: disk full")
	assert.Contains(t, content, "Totals: 1 ok, 1 skipped, 1 failed")
}
