// =============================================================================
// Workday Report Flattener - Run Command
// =============================================================================
//
// This file defines the 'run' command, which flattens the configured report
// types from the input directory into tabular output files.
//
// COMMAND USAGE:
//   wdreports run [flags]
//
// FLAGS:
//   --report  : Process only the named report type (repeatable)
//   --format  : Override the configured output format (csv or xlsx)
//
// PROCESSING PIPELINE:
//   1. Load configuration and validate the report registry
//   2. For each report type (concurrently, up to max_concurrency):
//      a. Resolve the input and output paths
//      b. Parse the XML export (missing or malformed -> header-only output)
//      c. Flatten entries into fixed-column rows
//      d. Write the output file
//   3. Write the run summary log and print the per-report outcomes
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nshe-dis/wdreports/internal/report"
	"github.com/nshe-dis/wdreports/internal/schema"
	"github.com/nshe-dis/wdreports/internal/tabular"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// runReports limits processing to the named report types.
var runReports []string

// runFormat overrides the configured output format.
var runFormat string

// =============================================================================
// RUN COMMAND DEFINITION
// =============================================================================

// runCmd represents the 'run' command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Flatten Workday XML report exports into tabular files",
	Long: `The run command reads the raw report exports from the input directory,
flattens them against their declared schemas, and writes one output file
per report type into the output directory.

Report types are processed concurrently and independently. A missing or
malformed input never stops the run: the affected report still gets a
header-only output file so downstream loaders find every expected file.
Only a failure to write an output file is fatal for a report.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runRun()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArrayVar(
		&runReports,
		"report",
		nil,
		"Process only the named report type (repeatable; default all)",
	)
	runCmd.Flags().StringVar(
		&runFormat,
		"format",
		"",
		"Override the configured output format (csv or xlsx)",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runRun wires the registry, driver, and runner together and executes one
// flattening pass.
func runRun() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	// Registry construction validates every declared schema up front, so a
	// bad declaration fails the whole run before any file is touched.
	reg, err := schema.BuiltIn()
	if err != nil {
		return fmt.Errorf("invalid report declarations: %w", err)
	}

	formatName := cfg.OutputFormat
	if runFormat != "" {
		formatName = runFormat
	}
	format, err := tabular.ParseFormat(formatName)
	if err != nil {
		return err
	}

	runner := report.NewRunner(cfg, reg, format, logger)
	summary, err := runner.Run(context.Background(), runReports)

	fmt.Println("=== Workday Report Flattener ===")
	for _, o := range summary.Outcomes {
		switch o.Status {
		case "ok":
			fmt.Printf("  ✓ %s: %d row(s) -> %s\n", o.Report, o.Rows, o.OutputFile)
		case "skipped":
			fmt.Printf("  - %s: %s (header-only output)\n", o.Report, o.Detail)
		default:
			fmt.Printf("  ✗ %s: %s\n", o.Report, o.Detail)
		}
	}
	fmt.Printf("Time elapsed: %s\n", summary.Elapsed)

	return err
}
