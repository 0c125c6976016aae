// =============================================================================
// Workday Report Flattener - XLSX Output
// =============================================================================
//
// XLSX variant of the tabular writer, for consumers that ingest workbooks
// instead of CSV. Same contract: header row always present, strict column
// order, empty cells for absent values.
//
// =============================================================================

package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// sheetName is the single worksheet every workbook carries.
const sheetName = "Sheet1"

// writeXLSX writes the header and data rows into a fresh workbook.
func writeXLSX(path string, columns []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setRow(f, 1, columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range rows {
		if err := setRow(f, i+2, fitRow(row, len(columns))); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// setRow writes one row of string cells starting at column A.
func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheetName, cell, &cells)
}
