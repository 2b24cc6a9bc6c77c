package connector

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/config"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// AzurePhotoConnector keeps objects as block blobs in one container
type AzurePhotoConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzurePhotoConnector connects with the storage connection string and
// creates the container when it does not exist yet
func NewAzurePhotoConnector(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (*AzurePhotoConnector, error) {
	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	logger.Info("Using Azure Blob container ", settings.ContainerName)
	return &AzurePhotoConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

// Upload implements posts.PhotoConnector
func (c *AzurePhotoConnector) Upload(ctx context.Context, data []byte, name, contentType string) (*posts.StoredObject, error) {
	key := newObjectKey(name, contentType)

	_, err := c.client.UploadBuffer(ctx, c.containerName, key, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload blob %s: %w", key, err)
	}

	c.logger.Info("Uploaded blob ", key)
	return &posts.StoredObject{
		Key: key,
		URL: strings.TrimSuffix(c.client.URL(), "/") + "/" + c.containerName + "/" + url.PathEscape(key),
	}, nil
}

// Download implements posts.PhotoConnector
func (c *AzurePhotoConnector) Download(ctx context.Context, key string) ([]byte, error) {
	resp, err := c.client.DownloadStream(ctx, c.containerName, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, fmt.Errorf("%s: %w", key, posts.ErrObjectNotFound)
		}
		return nil, fmt.Errorf("failed to download blob %s: %w", key, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return buf.Bytes(), nil
}

// Delete implements posts.PhotoConnector
func (c *AzurePhotoConnector) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteBlob(ctx, c.containerName, key, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}

	c.logger.Info("Deleted blob ", key)
	return nil
}
