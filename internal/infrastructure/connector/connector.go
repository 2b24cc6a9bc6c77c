package connector

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/config"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/google/uuid"
)

// NewPhotoConnector builds the connector selected in the storage settings
func NewPhotoConnector(ctx context.Context, settings *config.StorageSettings, publicBaseURL string, logger logger.Logger) (posts.PhotoConnector, error) {
	switch settings.Backend {
	case config.StorageBackendLocal:
		c, err := NewLocalPhotoConnector(settings.LocalDir, publicBaseURL, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.StorageBackendAzure:
		c, err := NewAzurePhotoConnector(ctx, settings, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", settings.Backend)
	}
}

// newObjectKey derives a fresh object key keeping the extension of name or,
// failing that, the one matching contentType
func newObjectKey(name, contentType string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = posts.AllowedContentTypes[contentType]
	}
	return uuid.NewString() + ext
}
