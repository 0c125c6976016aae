// =============================================================================
// Workday Report Flattener - Tabular Writer Module
// =============================================================================
//
// This module serializes flattened rows against a report's canonical
// column list. The header line is written unconditionally, even for zero
// data rows: downstream loaders must always receive a well-formed file
// with a stable header, never a missing or header-less file.
//
// OUTPUT FORMATS:
//   - csv  : UTF-8, RFC 4180 quoting (fields containing the delimiter,
//            quotes, or line breaks are quoted)
//   - xlsx : one worksheet, header in row 1
//
// =============================================================================

package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Format selects the on-disk serialization of a report's output.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a configured format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (want csv or xlsx)", s)
}

// Write serializes rows to path in the given format, creating containing
// directories as needed. The destination is overwritten if it exists.
func Write(path string, format Format, columns []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	switch format {
	case FormatXLSX:
		return writeXLSX(path, columns, rows)
	default:
		return writeCSV(path, columns, rows)
	}
}

// writeCSV writes the header and data lines in strict column order.
func writeCSV(path string, columns []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(fitRow(row, len(columns))); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// fitRow pads or truncates a row to the declared column count. The
// flattener never produces short rows, but a short row degrades to empty
// cells here rather than failing the whole file.
func fitRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	fitted := make([]string, width)
	copy(fitted, row)
	return fitted
}
