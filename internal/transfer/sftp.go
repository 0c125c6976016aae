// =============================================================================
// Workday Report Flattener - SFTP Transfer Module
// =============================================================================
//
// This module moves report files between the local working directories and
// the Workday delivery SFTP server. Fetch pulls the raw exports into the
// input directory before a run; upload pushes the flattened outputs to the
// remote landing directory afterwards.
//
// Transfers are per-file best effort: one unreadable remote file does not
// abort the batch. The returned Stats carry per-file counts so callers can
// decide whether a partial transfer is acceptable.
//
// =============================================================================

package transfer

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/sftp"
	"go.uber.org/zap"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/nshe-dis/wdreports/internal/config"
	"github.com/nshe-dis/wdreports/pkg/utils"
)

// Stats summarizes one transfer batch.
type Stats struct {
	// Transferred is the count of files copied successfully.
	Transferred int

	// Skipped is the count of directory entries passed over (directories,
	// symlinks, other non-regular files).
	Skipped int

	// Failed is the count of files that could not be copied.
	Failed int
}

// Client is a connected SFTP session.
type Client struct {
	conn   *ssh.Client
	sftp   *sftp.Client
	logger *zap.Logger
}

// Connect dials the configured SFTP endpoint. Host keys are verified
// against the configured known_hosts file unless verification is
// explicitly disabled.
func Connect(cfg config.SFTP, logger *zap.Logger) (*Client, error) {
	if cfg.Hostname == "" {
		return nil, fmt.Errorf("sftp hostname is not configured")
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("sftp username is not configured")
	}

	hostKeyCallback, err := hostKeyPolicy(cfg)
	if err != nil {
		return nil, err
	}

	sshCfg := &ssh.ClientConfig{
		User:            cfg.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Password)},
		HostKeyCallback: hostKeyCallback,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Hostname, cfg.Port)
	conn, err := ssh.Dial("tcp", addr, sshCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open sftp session: %w", err)
	}

	logger.Info("sftp session established", zap.String("host", addr))
	return &Client{conn: conn, sftp: client, logger: logger}, nil
}

// hostKeyPolicy builds the host key verification callback.
func hostKeyPolicy(cfg config.SFTP) (ssh.HostKeyCallback, error) {
	if cfg.InsecureSkipHostKey {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	cb, err := knownhosts.New(cfg.KnownHostsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load known_hosts file %s: %w", cfg.KnownHostsFile, err)
	}
	return cb, nil
}

// Close tears down the session and the underlying connection.
func (c *Client) Close() error {
	sftpErr := c.sftp.Close()
	connErr := c.conn.Close()
	if sftpErr != nil {
		return sftpErr
	}
	return connErr
}

// =============================================================================
// DOWNLOAD
// =============================================================================

// DownloadAll copies every regular file from remoteDir into localDir,
// preserving file names and modification times. The modification time is
// preserved so the flattener's provenance column reflects when Workday
// produced the export, not when it was downloaded.
func (c *Client) DownloadAll(remoteDir, localDir string) (Stats, error) {
	var stats Stats

	if err := utils.EnsureDir(localDir); err != nil {
		return stats, err
	}

	entries, err := c.sftp.ReadDir(remoteDir)
	if err != nil {
		return stats, fmt.Errorf("failed to list remote directory %s: %w", remoteDir, err)
	}

	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			stats.Skipped++
			continue
		}
		remotePath := path.Join(remoteDir, entry.Name())
		localPath := filepath.Join(localDir, entry.Name())

		if err := c.downloadFile(remotePath, localPath); err != nil {
			c.logger.Error("download failed",
				zap.String("remote", remotePath), zap.Error(err))
			stats.Failed++
			continue
		}
		if err := os.Chtimes(localPath, entry.ModTime(), entry.ModTime()); err != nil {
			c.logger.Warn("failed to preserve modification time",
				zap.String("file", localPath), zap.Error(err))
		}
		c.logger.Info("downloaded",
			zap.String("file", entry.Name()), zap.Int64("bytes", entry.Size()))
		stats.Transferred++
	}
	return stats, nil
}

// downloadFile copies one remote file to a local path.
func (c *Client) downloadFile(remotePath, localPath string) error {
	src, err := c.sftp.Open(remotePath)
	if err != nil {
		return fmt.Errorf("failed to open remote file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create local file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	return dst.Close()
}

// =============================================================================
// UPLOAD
// =============================================================================

// UploadAll copies every regular file from localDir into remoteDir,
// creating the remote directory if needed.
func (c *Client) UploadAll(localDir, remoteDir string) (Stats, error) {
	var stats Stats

	if err := c.sftp.MkdirAll(remoteDir); err != nil {
		return stats, fmt.Errorf("failed to create remote directory %s: %w", remoteDir, err)
	}

	entries, err := os.ReadDir(localDir)
	if err != nil {
		return stats, fmt.Errorf("failed to list local directory %s: %w", localDir, err)
	}

	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			stats.Skipped++
			continue
		}
		localPath := filepath.Join(localDir, entry.Name())
		remotePath := path.Join(remoteDir, entry.Name())

		if err := c.uploadFile(localPath, remotePath); err != nil {
			c.logger.Error("upload failed",
				zap.String("local", localPath), zap.Error(err))
			stats.Failed++
			continue
		}
		c.logger.Info("uploaded",
			zap.String("file", entry.Name()), zap.Int64("bytes", info.Size()))
		stats.Transferred++
	}
	return stats, nil
}

// uploadFile copies one local file to a remote path.
func (c *Client) uploadFile(localPath, remotePath string) error {
	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file: %w", err)
	}
	defer src.Close()

	dst, err := c.sftp.Create(remotePath)
	if err != nil {
		return fmt.Errorf("failed to create remote file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	return dst.Close()
}
