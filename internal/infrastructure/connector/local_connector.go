package connector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"
)

type localConnector struct {
	root   string
	logger logger.Logger
}

// NewLocalConnector creates a connector storing files below root, creating the
// directory when missing.
func NewLocalConnector(root string, logger logger.Logger) (assets.Connector, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root %s: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", abs, err)
	}
	return &localConnector{root: abs, logger: logger}, nil
}

// resolve maps a slash separated key to a path below the root.
func (c *localConnector) resolve(key string) (string, error) {
	if strings.ContainsRune(key, '\\') || strings.ContainsRune(key, 0) {
		return "", fmt.Errorf("%w: %q", assets.ErrInvalidPath, key)
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: %q", assets.ErrInvalidPath, key)
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+key), "/")
	if cleaned == "" {
		return "", fmt.Errorf("%w: empty key", assets.ErrInvalidPath)
	}

	full := filepath.Join(c.root, filepath.FromSlash(cleaned))
	rel, err := filepath.Rel(c.root, full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%w: %q", assets.ErrInvalidPath, key)
	}
	return full, nil
}

func (c *localConnector) Save(ctx context.Context, key string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	full, err := c.resolve(key)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return 0, fmt.Errorf("failed to create directory for %s: %w", key, err)
	}

	// Write next to the target and rename so readers never see partial files
	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	n, err := io.Copy(tmp, r)
	if err != nil {
		_ = tmp.Close()
		return n, fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return n, fmt.Errorf("failed to close %s: %w", key, err)
	}
	if err := os.Chmod(tmp.Name(), 0o640); err != nil {
		return n, fmt.Errorf("failed to set permissions on %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return n, fmt.Errorf("failed to move %s into place: %w", key, err)
	}

	c.logger.Debug("Stored file", "key", key, "size", n)
	return n, nil
}

func (c *localConnector) Open(ctx context.Context, key string) (*assets.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := c.resolve(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full) // #nosec G304 -- path is confined to the storage root by resolve
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file %s: %w", key, content.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", key, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", key, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("file %s: %w", key, content.ErrNotFound)
	}

	return &assets.Object{
		ReadSeekCloser: f,
		Name:           info.Name(),
		Size:           info.Size(),
		ModTime:        info.ModTime(),
	}, nil
}

func (c *localConnector) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := c.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file %s: %w", key, content.ErrNotFound)
		}
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	c.logger.Debug("Deleted file", "key", key)
	return nil
}

func (c *localConnector) DeleteTree(ctx context.Context, prefix string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := c.resolve(prefix)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(full); err != nil {
		return fmt.Errorf("failed to delete %s: %w", prefix, err)
	}

	c.logger.Debug("Deleted directory", "prefix", prefix)
	return nil
}

func (c *localConnector) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	full, err := c.resolve(key)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", key, err)
	}
	return !info.IsDir(), nil
}
