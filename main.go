// =============================================================================
// Workday Report Flattener - Main Entry Point
// =============================================================================
//
// This is the main entry point for the wdreports CLI application. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   wdreports run          - Flatten all Workday XML report files to CSV/XLSX
//   wdreports fetch        - Download raw report files from the SFTP server
//   wdreports upload       - Upload flattened files to the SFTP server
//   wdreports analyze FILE - Print the tag structure of an XML report file
//   wdreports version      - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/nshe-dis/wdreports/cmd"
)

func main() {
	cmd.Execute()
}
