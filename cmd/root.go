// =============================================================================
// Workday Report Flattener - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI and the helpers the
// subcommands share: configuration loading and logger construction.
//
// COBRA CLI STRUCTURE:
//   rootCmd (wdreports)
//   ├── runCmd     (wdreports run)      - flatten report exports
//   ├── fetchCmd   (wdreports fetch)    - download exports from SFTP
//   ├── uploadCmd  (wdreports upload)   - upload outputs to SFTP
//   ├── analyzeCmd (wdreports analyze)  - inspect an XML file's structure
//   └── versionCmd (wdreports version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nshe-dis/wdreports/internal/config"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

// cfgFile holds the path to the configuration file, set via --config.
var cfgFile string

// verbose enables debug-level logging.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wdreports",
	Short: "Workday Report Flattener - Convert namespaced XML report exports to tabular files",
	Long: `Workday Report Flattener converts the nested XML report exports delivered
by Workday into flat, fixed-column tabular files for warehouse loading.

Each supported report type declares its namespace, column list, and
extraction rules; the engine flattens one row per entry (or per repeated
allocation line, for reports that expand). Output files always carry the
full header, even when the input is missing or unreadable, so downstream
loaders never see a malformed or absent file.

Example Usage:
  wdreports fetch                      # Download raw exports from the SFTP server
  wdreports run                        # Flatten every configured report type
  wdreports run --report position_master
  wdreports upload                     # Push flattened outputs to the SFTP server
  wdreports analyze exports/file.csv   # Inspect an unfamiliar export's structure`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig loads the configuration file named by --config. A missing file
// is not an error; the built-in defaults apply.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

// newLogger builds the process logger. Verbose mode switches to the
// human-oriented development encoder at debug level.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}
