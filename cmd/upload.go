// =============================================================================
// Workday Report Flattener - Upload Command
// =============================================================================
//
// This file defines the 'upload' command, which pushes the flattened output
// files to the remote landing directory on the SFTP server.
//
// COMMAND USAGE:
//   wdreports upload
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nshe-dis/wdreports/internal/transfer"
)

// uploadCmd represents the 'upload' command.
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload flattened output files to the SFTP server",
	Long: `The upload command connects to the configured SFTP endpoint and uploads
every regular file from the local output directory into the remote upload
directory, creating it if necessary. Run summary logs are uploaded along
with the tabular files.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpload()
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

// runUpload performs one upload batch.
func runUpload() error {
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

	stats, err := client.UploadAll(cfg.OutputDir, cfg.SFTP.RemoteUploadDir)
	if err != nil {
		return err
	}

	fmt.Printf("Uploaded %d file(s) to %s (%d skipped, %d failed)\n",
		stats.Transferred, cfg.SFTP.RemoteUploadDir, stats.Skipped, stats.Failed)
	if stats.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to upload", stats.Failed)
	}
	return nil
}
