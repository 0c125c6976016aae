// =============================================================================
// Workday Report Flattener - Fetch Command
// =============================================================================
//
// This file defines the 'fetch' command, which downloads the raw report
// exports from the Workday delivery SFTP server into the input directory.
//
// COMMAND USAGE:
//   wdreports fetch
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nshe-dis/wdreports/internal/transfer"
)

// fetchCmd represents the 'fetch' command.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download raw report exports from the SFTP server",
	Long: `The fetch command connects to the configured SFTP endpoint and downloads
every regular file from the remote download directory into the local input
directory. Directories and other non-regular entries are skipped.

File modification times are preserved on download; the flattener stamps
each row with its source file's modification date.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch()
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

// runFetch performs one download batch.
func runFetch() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	client, err := transfer.Connect(cfg.SFTP, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	stats, err := client.DownloadAll(cfg.SFTP.RemoteDownloadDir, cfg.InputDir)
	if err != nil {
		return err
	}

	fmt.Printf("Downloaded %d file(s) to %s (%d skipped, %d failed)\n",
		stats.Transferred, cfg.InputDir, stats.Skipped, stats.Failed)
	if stats.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to download", stats.Failed)
	}
	return nil
}
