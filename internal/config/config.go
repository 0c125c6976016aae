// =============================================================================
// Workday Report Flattener - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a single YAML file.
// The configuration covers the local directories the engine reads and
// writes, the output format, runner concurrency, the SFTP endpoint used by
// the fetch/upload commands, and optional per-report file-name overrides.
//
// The loaded struct is passed explicitly into the runner and commands;
// nothing reads configuration at import time.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// InputDir is where raw report files are expected. The fetch command
	// downloads into it; the run command reads from it.
	// Default: "./workday_xml_downloads"
	InputDir string `yaml:"input_dir"`

	// OutputDir is where flattened files are written. The upload command
	// pushes its contents to the SFTP server.
	// Default: "./parsed_csvs"
	OutputDir string `yaml:"output_dir"`

	// OutputFormat is "csv" or "xlsx".
	// Default: "csv"
	OutputFormat string `yaml:"output_format"`

	// MaxConcurrency bounds how many report types run at once. Report
	// types share no state and touch disjoint files, so any value is
	// safe. Set to 1 for strictly sequential processing.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// FailFast aborts the remaining report types after the first fatal
	// report failure (an output write error). Non-fatal degradations
	// (missing input, malformed XML) never abort the run.
	// Default: false
	FailFast bool `yaml:"fail_fast"`

	// Reports overrides the built-in input/output file names per report
	// type. Keys are report type names.
	Reports map[string]ReportFiles `yaml:"reports"`

	// SFTP configures the remote endpoint for fetch and upload.
	SFTP SFTP `yaml:"sftp"`
}

// ReportFiles overrides the file names of one report type. Empty fields
// keep the schema's defaults.
type ReportFiles struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// SFTP holds the transfer endpoint settings.
type SFTP struct {
	Hostname string `yaml:"hostname"`
	// Port defaults to 22.
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// RemoteDownloadDir is the remote directory fetch pulls from.
	// Default: "/"
	RemoteDownloadDir string `yaml:"remote_download_dir"`

	// RemoteUploadDir is the remote directory upload pushes to.
	// Default: "/parsed_csv_uploads"
	RemoteUploadDir string `yaml:"remote_upload_dir"`

	// KnownHostsFile is the known_hosts file used to verify the server's
	// host key. Default: "~/.ssh/known_hosts".
	KnownHostsFile string `yaml:"known_hosts_file"`

	// InsecureSkipHostKey disables host key verification. Only for
	// isolated test environments.
	InsecureSkipHostKey bool `yaml:"insecure_skip_host_key"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads, parses, defaults, and validates the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is present on disk.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults fills unset options.
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./workday_xml_downloads"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./parsed_csvs"
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "csv"
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = 4
	}
	if cfg.SFTP.Port == 0 {
		cfg.SFTP.Port = 22
	}
	if cfg.SFTP.RemoteDownloadDir == "" {
		cfg.SFTP.RemoteDownloadDir = "/"
	}
	if cfg.SFTP.RemoteUploadDir == "" {
		cfg.SFTP.RemoteUploadDir = "/parsed_csv_uploads"
	}
	if cfg.SFTP.KnownHostsFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.SFTP.KnownHostsFile = filepath.Join(home, ".ssh", "known_hosts")
		}
	}
}

// validate checks option values and creates the working directories.
func validate(cfg *Config) error {
	switch cfg.OutputFormat {
	case "csv", "xlsx":
	default:
		return fmt.Errorf("output_format must be csv or xlsx, got %q", cfg.OutputFormat)
	}
	if cfg.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be positive, got %d", cfg.MaxConcurrency)
	}

	for _, dir := range []string{cfg.InputDir, cfg.OutputDir} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}
	return nil
}

// =============================================================================
// PATH RESOLUTION
// =============================================================================

// ResolveReportFiles returns the absolute-ish input and output paths for a
// report type, applying any configured override to the default file names.
func (c *Config) ResolveReportFiles(reportName, defaultInput, defaultOutput string) (inputPath, outputPath string) {
	in, out := defaultInput, defaultOutput
	if override, ok := c.Reports[reportName]; ok {
		if override.Input != "" {
			in = override.Input
		}
		if override.Output != "" {
			out = override.Output
		}
	}
	return filepath.Join(c.InputDir, in), filepath.Join(c.OutputDir, out)
}
