package test

import (
	"context"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/grocermart/partnersync/internal/remote"
)

// ChannelFake is an in-memory remote file tree implementing remote.Channel.
// Upload and Download shuttle bytes between the fake tree and the local
// filesystem the same way the real channel does.
type ChannelFake struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool

	// FailOn, when set, makes the named operation return the error.
	FailOn map[string]error

	Renames [][2]string
}

// NewChannelFake builds an empty fake remote tree.
func NewChannelFake() *ChannelFake {
	return &ChannelFake{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// Put seeds a remote file.
func (c *ChannelFake) Put(remotePath string, content []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[remotePath] = append([]byte(nil), content...)
}

// Content returns a stored remote file and whether it exists.
func (c *ChannelFake) Content(remotePath string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.files[remotePath]
	return data, ok
}

func (c *ChannelFake) fail(op string) error {
	if c.FailOn == nil {
		return nil
	}
	return c.FailOn[op]
}

// List returns entries of the immediate directory.
func (c *ChannelFake) List(ctx context.Context, remoteDir string) ([]remote.FileInfo, error) {
	if err := c.fail("list"); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(remoteDir, "/") + "/"
	var infos []remote.FileInfo
	for p, data := range c.files {
		if path.Dir(p) == strings.TrimSuffix(remoteDir, "/") {
			infos = append(infos, remote.FileInfo{
				Name:       strings.TrimPrefix(p, prefix),
				Size:       int64(len(data)),
				ModifyTime: time.Now(),
			})
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Exists reports whether a remote file or directory is present.
func (c *ChannelFake) Exists(ctx context.Context, remotePath string) (bool, error) {
	if err := c.fail("exists"); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.files[remotePath]; ok {
		return true, nil
	}
	return c.dirs[remotePath], nil
}

// Download copies a remote file to localPath.
func (c *ChannelFake) Download(ctx context.Context, remotePath, localPath string) error {
	if err := c.fail("download"); err != nil {
		return err
	}
	c.mu.Lock()
	data, ok := c.files[remotePath]
	c.mu.Unlock()
	if !ok {
		return &remote.Error{Kind: remote.KindNotFound, Op: "download", Path: remotePath, Err: os.ErrNotExist}
	}
	return os.WriteFile(localPath, data, 0o600)
}

// Upload stores a local file under remotePath.
func (c *ChannelFake) Upload(ctx context.Context, localPath, remotePath string) error {
	if err := c.fail("upload"); err != nil {
		return err
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[remotePath] = data
	return nil
}

// Mkdir records the directory; recursive creation is implicit.
func (c *ChannelFake) Mkdir(ctx context.Context, remoteDir string, recursive bool) error {
	if err := c.fail("mkdir"); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirs[strings.TrimSuffix(remoteDir, "/")] = true
	return nil
}

// Rename moves a remote file.
func (c *ChannelFake) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := c.fail("rename"); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.files[oldPath]
	if !ok {
		return &remote.Error{Kind: remote.KindNotFound, Op: "rename", Path: oldPath, Err: os.ErrNotExist}
	}
	delete(c.files, oldPath)
	c.files[newPath] = data
	c.Renames = append(c.Renames, [2]string{oldPath, newPath})
	return nil
}
