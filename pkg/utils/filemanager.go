// =============================================================================
// Workday Report Flattener - File Utilities
// =============================================================================
//
// Shared filesystem helpers used by the report driver, the runner, and the
// SFTP transfer layer. The modification-date helpers feed the provenance
// column: every flattened row carries the calendar date its source file
// was last modified.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// provenanceLayout is the calendar-date format stamped into every row.
const provenanceLayout = "2006-01-02"

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
	}
	return nil
}

// GetFileModTime returns the last-modified time of a file.
func GetFileModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat file: %w", err)
	}
	return info.ModTime(), nil
}

// ModDate returns the file's last-modified date formatted YYYY-MM-DD, or
// the empty string when the timestamp cannot be retrieved. The provenance
// column is emitted empty in that case, never omitted.
func ModDate(path string) string {
	t, err := GetFileModTime(path)
	if err != nil {
		return ""
	}
	return t.Format(provenanceLayout)
}

// =============================================================================
// RUN SUMMARY LOG
// =============================================================================

// RunSummary describes one full runner invocation across all report types.
type RunSummary struct {
	// RunID is the unique identifier stamped on this invocation.
	RunID string

	// StartTime is when the run began.
	StartTime time.Time

	// Elapsed is the total wall-clock duration.
	Elapsed time.Duration

	// Outcomes holds one entry per report type, in completion order.
	Outcomes []ReportOutcome
}

// ReportOutcome is the per-report line of the summary.
type ReportOutcome struct {
	Report     string
	OutputFile string
	Rows       int
	Status     string // "ok", "skipped", or "failed"
	Detail     string // degradation reason or error text
}

// WriteSummaryLog writes a human-readable summary file into dir and
// returns its path. The file name carries the run ID so successive runs
// never overwrite each other.
func WriteSummaryLog(summary RunSummary, dir string) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== Workday Report Flattener Run Summary ===\n")
	fmt.Fprintf(&b, "Run ID:     %s\n", summary.RunID)
	fmt.Fprintf(&b, "Started:    %s\n", summary.StartTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "Elapsed:    %s\n\n", summary.Elapsed)

	var ok, skipped, failed int
	for _, o := range summary.Outcomes {
		switch o.Status {
		case "ok":
			ok++
			fmt.Fprintf(&b, "[OK]      %s: %d row(s) -> %s\n", o.Report, o.Rows, o.OutputFile)
		case "skipped":
			skipped++
			fmt.Fprintf(&b, "[SKIPPED] %s: %s (header-only output written)\n", o.Report, o.Detail)
		default:
			failed++
			fmt.Fprintf(&b, "[FAILED]  %s: %s\n", o.Report, o.Detail)
		}
	}
	fmt.Fprintf(&b, "\nTotals: %d ok, %d skipped, %d failed\n", ok, skipped, failed)

	name := fmt.Sprintf("run_summary_%s_%s.log",
		summary.StartTime.Format("20060102_150405"), summary.RunID)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write summary log: %w", err)
	}
	return path, nil
}
