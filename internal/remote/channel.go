package remote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// FileInfo describes one entry of a remote directory listing.
type FileInfo struct {
	Name       string
	Size       int64
	ModifyTime time.Time
}

// Channel exposes the file primitives of the partner exchange endpoint.
// Implementations hold no open connection between calls; every operation
// is self-contained.
type Channel interface {
	List(ctx context.Context, dir string) ([]FileInfo, error)
	Exists(ctx context.Context, remotePath string) (bool, error)
	Download(ctx context.Context, remotePath, localPath string) error
	Upload(ctx context.Context, localPath, remotePath string) error
	Mkdir(ctx context.Context, remotePath string, recursive bool) error
	Rename(ctx context.Context, src, dst string) error
}

// Config carries the SFTP endpoint settings.
type Config struct {
	Address     string
	User        string
	Password    string
	DialTimeout time.Duration
}

// SFTPChannel talks to a single SFTP endpoint. Each public operation
// dials, runs, and tears the connection down again; there is no pooling
// and no cancellation of an in-flight transfer.
type SFTPChannel struct {
	cfg    Config
	logger *slog.Logger
}

// NewSFTPChannel creates a channel for the configured endpoint.
func NewSFTPChannel(cfg Config, logger *slog.Logger) (*SFTPChannel, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("sftp address must not be empty")
	}
	if cfg.User == "" {
		return nil, fmt.Errorf("sftp user must not be empty")
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 15 * time.Second
	}
	return &SFTPChannel{cfg: cfg, logger: logger}, nil
}

// connect dials the endpoint and returns a ready client plus a teardown
// closing both the sftp session and the ssh transport.
func (c *SFTPChannel) connect(ctx context.Context) (*sftp.Client, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	sshCfg := &ssh.ClientConfig{
		User:            c.cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(c.cfg.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         c.cfg.DialTimeout,
	}

	sshClient, err := ssh.Dial("tcp", c.cfg.Address, sshCfg)
	if err != nil {
		return nil, nil, err
	}

	client, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, nil, err
	}

	teardown := func() {
		if err := client.Close(); err != nil {
			c.logger.Warn("close sftp session", slog.String("error", err.Error()))
		}
		if err := sshClient.Close(); err != nil {
			c.logger.Warn("close ssh transport", slog.String("error", err.Error()))
		}
	}
	return client, teardown, nil
}

// List returns the entries of a remote directory.
func (c *SFTPChannel) List(ctx context.Context, dir string) ([]FileInfo, error) {
	client, teardown, err := c.connect(ctx)
	if err != nil {
		return nil, wrap("list", dir, err)
	}
	defer teardown()

	entries, err := client.ReadDir(dir)
	if err != nil {
		return nil, wrap("list", dir, err)
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		infos = append(infos, FileInfo{
			Name:       entry.Name(),
			Size:       entry.Size(),
			ModifyTime: entry.ModTime(),
		})
	}
	return infos, nil
}

// Exists reports whether a remote path is present.
func (c *SFTPChannel) Exists(ctx context.Context, remotePath string) (bool, error) {
	client, teardown, err := c.connect(ctx)
	if err != nil {
		return false, wrap("stat", remotePath, err)
	}
	defer teardown()

	if _, err := client.Stat(remotePath); err != nil {
		if IsNotFound(wrap("stat", remotePath, err)) {
			return false, nil
		}
		return false, wrap("stat", remotePath, err)
	}
	return true, nil
}

// Download copies a remote file to a local path.
func (c *SFTPChannel) Download(ctx context.Context, remotePath, localPath string) error {
	client, teardown, err := c.connect(ctx)
	if err != nil {
		return wrap("download", remotePath, err)
	}
	defer teardown()

	src, err := client.Open(remotePath)
	if err != nil {
		return wrap("download", remotePath, err)
	}
	defer src.Close()

	dst, err := os.Create(localPath)
	if err != nil {
		return wrap("download", remotePath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return wrap("download", remotePath, err)
	}
	return nil
}

// Upload copies a local file to a remote path, replacing it entirely.
func (c *SFTPChannel) Upload(ctx context.Context, localPath, remotePath string) error {
	client, teardown, err := c.connect(ctx)
	if err != nil {
		return wrap("upload", remotePath, err)
	}
	defer teardown()

	src, err := os.Open(localPath)
	if err != nil {
		return wrap("upload", remotePath, err)
	}
	defer src.Close()

	dst, err := client.Create(remotePath)
	if err != nil {
		return wrap("upload", remotePath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return wrap("upload", remotePath, err)
	}
	return nil
}

// Mkdir creates a remote directory. With recursive set, missing parents
// are created as well. An already existing directory is not an error.
func (c *SFTPChannel) Mkdir(ctx context.Context, remotePath string, recursive bool) error {
	client, teardown, err := c.connect(ctx)
	if err != nil {
		return wrap("mkdir", remotePath, err)
	}
	defer teardown()

	if info, err := client.Stat(remotePath); err == nil && info.IsDir() {
		return nil
	}

	if recursive {
		if err := client.MkdirAll(remotePath); err != nil {
			return wrap("mkdir", remotePath, err)
		}
		return nil
	}
	if err := client.Mkdir(remotePath); err != nil {
		return wrap("mkdir", remotePath, err)
	}
	return nil
}

// Rename moves a remote file. The destination directory must exist.
func (c *SFTPChannel) Rename(ctx context.Context, src, dst string) error {
	client, teardown, err := c.connect(ctx)
	if err != nil {
		return wrap("rename", src, err)
	}
	defer teardown()

	if err := client.Rename(src, dst); err != nil {
		return wrap("rename", src, err)
	}
	return nil
}
