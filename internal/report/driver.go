// =============================================================================
// Workday Report Flattener - Report Driver Module
// =============================================================================
//
// This module processes one report type end to end: locate the input file,
// parse it, flatten its entries, and write the tabular output. Input-side
// problems degrade rather than fail: a missing input file or a file that is
// not well-formed XML still produces a header-only output, so downstream
// loaders always find a well-formed file for every declared report type.
// Only an output write failure is fatal for the report.
//
// Workday exports arrive with a .csv extension even though their content is
// XML; the driver goes by content, never by extension.
//
// =============================================================================

package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/nshe-dis/wdreports/internal/config"
	"github.com/nshe-dis/wdreports/internal/flatten"
	"github.com/nshe-dis/wdreports/internal/schema"
	"github.com/nshe-dis/wdreports/internal/tabular"
	"github.com/nshe-dis/wdreports/pkg/utils"
)

// Result describes the outcome of processing one report type.
type Result struct {
	// Report is the report type name.
	Report string

	// InputFile and OutputFile are the resolved paths.
	InputFile  string
	OutputFile string

	// Entries is the count of report entries found in the input document.
	Entries int

	// Rows is the count of data rows written (excluding the header).
	Rows int

	// Skipped is true when the input was missing or unparseable and a
	// header-only output was written instead.
	Skipped bool

	// SkipReason explains a skip.
	SkipReason string

	// Elapsed is the processing duration for this report.
	Elapsed time.Duration

	// Err is non-nil only for fatal failures, i.e. the output could not
	// be written.
	Err error
}

// Driver processes report types against one configuration.
type Driver struct {
	cfg    *config.Config
	format tabular.Format
	logger *zap.Logger
}

// NewDriver returns a Driver writing in the given format.
func NewDriver(cfg *config.Config, format tabular.Format, logger *zap.Logger) *Driver {
	return &Driver{cfg: cfg, format: format, logger: logger}
}

// Process runs one report type and returns its Result. The returned Result
// always carries the resolved paths, even on failure.
func (d *Driver) Process(rep *schema.Report) Result {
	start := time.Now()

	inputPath, outputPath := d.cfg.ResolveReportFiles(rep.Name, rep.InputFile, rep.OutputFile)
	outputPath = withFormatExt(outputPath, d.format)

	res := Result{
		Report:     rep.Name,
		InputFile:  inputPath,
		OutputFile: outputPath,
	}
	log := d.logger.With(zap.String("report", rep.Name))

	if !utils.FileExists(inputPath) {
		log.Warn("input file not found, writing header-only output",
			zap.String("input", inputPath))
		res.Skipped = true
		res.SkipReason = fmt.Sprintf("input file not found: %s", inputPath)
		res.Err = d.writeOutput(rep, outputPath, nil)
		res.Elapsed = time.Since(start)
		return res
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(inputPath); err != nil {
		log.Warn("input file is not well-formed XML, writing header-only output",
			zap.String("input", inputPath), zap.Error(err))
		res.Skipped = true
		res.SkipReason = fmt.Sprintf("malformed XML: %v", err)
		res.Err = d.writeOutput(rep, outputPath, nil)
		res.Elapsed = time.Since(start)
		return res
	}

	// The provenance date reflects when the export was produced, which
	// the file's modification time carries through the SFTP download.
	provenance := utils.ModDate(inputPath)

	rows := flatten.New(rep).Document(doc, provenance)
	res.Rows = len(rows)
	res.Entries = countEntries(rep, doc)

	res.Err = d.writeOutput(rep, outputPath, rows)
	res.Elapsed = time.Since(start)

	if res.Err == nil {
		log.Info("report flattened",
			zap.Int("entries", res.Entries),
			zap.Int("rows", res.Rows),
			zap.String("output", outputPath),
			zap.Duration("elapsed", res.Elapsed))
	}
	return res
}

// writeOutput serializes rows (nil for header-only) and wraps any error as
// the report's fatal failure.
func (d *Driver) writeOutput(rep *schema.Report, path string, rows [][]string) error {
	if err := tabular.Write(path, d.format, rep.Columns, rows); err != nil {
		return fmt.Errorf("report %s: %w", rep.Name, err)
	}
	return nil
}

// countEntries counts the repeated entry elements under the document root.
func countEntries(rep *schema.Report, doc *etree.Document) int {
	root := doc.Root()
	if root == nil {
		return 0
	}
	n := 0
	for _, child := range root.ChildElements() {
		if child.Tag == rep.EntryElement && child.NamespaceURI() == rep.Namespace {
			n++
		}
	}
	return n
}

// withFormatExt swaps the declared output file extension to match the
// configured format. Declarations name .csv files; xlsx runs rename them.
func withFormatExt(path string, format tabular.Format) string {
	want := "." + string(format)
	if ext := filepath.Ext(path); ext != "" {
		return strings.TrimSuffix(path, ext) + want
	}
	return path + want
}
