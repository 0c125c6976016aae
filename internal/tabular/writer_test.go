package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("parquet")
	assert.Error(t, err)
}

func TestWriteCSVHeaderOnlyForZeroRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Write(path, FormatCSV, []string{"A", "B", "C"}, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A,B,C\n", string(data))
}

func TestWriteCSVQuotingRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	columns := []string{"Name", "Note", "Amount"}
	rows := [][]string{
		{"plain", "has,comma", "1.50"},
		{`has"quote`, "has\nnewline", ""},
	}
	require.NoError(t, Write(path, FormatCSV, columns, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, columns, records[0])
	assert.Equal(t, rows[0], records[1])
	assert.Equal(t, rows[1], records[2])
}

func TestWriteCreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.csv")
	require.NoError(t, Write(path, FormatCSV, []string{"X"}, [][]string{{"1"}}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteFitsShortRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Write(path, FormatCSV, []string{"A", "B", "C"}, [][]string{{"only"}}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"only", "", ""}, records[1])
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	columns := []string{"Position_ID", "Employee_ID"}
	rows := [][]string{{"P100", "E001"}, {"P101", ""}}
	require.NoError(t, Write(path, FormatXLSX, columns, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(got), 3)
	assert.Equal(t, columns, got[0])
	assert.Equal(t, []string{"P100", "E001"}, got[1])
	assert.Equal(t, "P101", got[2][0])
}

func TestWriteXLSXHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, Write(path, FormatXLSX, []string{"A", "B"}, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"A", "B"}, got[0])
}
