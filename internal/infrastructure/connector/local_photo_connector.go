package connector

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"
)

// MediaPath is the URL path under which local objects are served
const MediaPath = "/media"

// LocalPhotoConnector keeps objects as files in a single directory
type LocalPhotoConnector struct {
	dir     string
	baseURL string
	logger  logger.Logger
}

// NewLocalPhotoConnector creates dir if needed and returns a connector whose
// object URLs live under publicBaseURL + MediaPath
func NewLocalPhotoConnector(dir, publicBaseURL string, logger logger.Logger) (*LocalPhotoConnector, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create media directory %s: %w", dir, err)
	}

	return &LocalPhotoConnector{
		dir:     dir,
		baseURL: strings.TrimSuffix(publicBaseURL, "/") + MediaPath,
		logger:  logger,
	}, nil
}

// Dir returns the directory holding the objects
func (c *LocalPhotoConnector) Dir() string {
	return c.dir
}

// Upload implements posts.PhotoConnector
func (c *LocalPhotoConnector) Upload(_ context.Context, data []byte, name, contentType string) (*posts.StoredObject, error) {
	key := newObjectKey(name, contentType)

	if err := os.WriteFile(filepath.Join(c.dir, key), data, 0o640); err != nil {
		return nil, fmt.Errorf("failed to write object %s: %w", key, err)
	}

	c.logger.Info("Stored object ", key)
	return &posts.StoredObject{
		Key: key,
		URL: c.baseURL + "/" + url.PathEscape(key),
	}, nil
}

// Download implements posts.PhotoConnector
func (c *LocalPhotoConnector) Download(_ context.Context, key string) ([]byte, error) {
	path, err := c.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", key, posts.ErrObjectNotFound)
		}
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}

// Delete implements posts.PhotoConnector
func (c *LocalPhotoConnector) Delete(_ context.Context, key string) error {
	path, err := c.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	c.logger.Info("Deleted object ", key)
	return nil
}

func (c *LocalPhotoConnector) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(c.dir, key), nil
}
