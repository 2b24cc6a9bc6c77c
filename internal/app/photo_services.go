package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"
)

// qrCodeContentType is the type of every stored QR code
const qrCodeContentType = "image/png"

// photoUploadService implements the posts.PhotoUploadService interface
type photoUploadService struct {
	photoConnector posts.PhotoConnector
	postRepository posts.PostRepository
	qrGenerator    posts.QRCodeGenerator
	maxUploadSize  int64
	logger         logger.Logger
}

// NewPhotoUploadService creates a new instance of PhotoUploadService
func NewPhotoUploadService(
	photoConnector posts.PhotoConnector,
	postRepository posts.PostRepository,
	qrGenerator posts.QRCodeGenerator,
	maxUploadSize int64,
	logger logger.Logger,
) (posts.PhotoUploadService, error) {
	if maxUploadSize <= 0 {
		return nil, fmt.Errorf("max upload size must be positive")
	}
	return &photoUploadService{
		photoConnector: photoConnector,
		postRepository: postRepository,
		qrGenerator:    qrGenerator,
		maxUploadSize:  maxUploadSize,
		logger:         logger,
	}, nil
}

// Upload stores the image and a QR code pointing at it, then creates the post.
// Stored objects are removed again when a later step fails.
func (s *photoUploadService) Upload(ctx context.Context, ownerID uint, upload *posts.PhotoUpload) (*posts.Post, error) {
	if err := upload.Validate(s.maxUploadSize); err != nil {
		return nil, err
	}

	image, err := s.photoConnector.Upload(ctx, upload.Data, upload.FileName, upload.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}
	stored := []string{image.Key}

	qrCode, err := s.qrGenerator.Generate(image.URL)
	if err != nil {
		s.cleanup(ctx, stored)
		return nil, err
	}

	qrObject, err := s.photoConnector.Upload(ctx, qrCode, "qrcode.png", qrCodeContentType)
	if err != nil {
		s.cleanup(ctx, stored)
		return nil, fmt.Errorf("failed to store QR code: %w", err)
	}
	stored = append(stored, qrObject.Key)

	post := &posts.Post{
		ImageURL:     image.URL,
		StorageKey:   image.Key,
		QRCodeURL:    &qrObject.URL,
		QRStorageKey: &qrObject.Key,
		Description:  upload.Description,
		ContentType:  upload.ContentType,
		OwnerID:      ownerID,
	}
	for _, name := range upload.Tags {
		post.Tags = append(post.Tags, posts.Tag{Name: name})
	}

	if err := s.postRepository.Create(ctx, post); err != nil {
		s.cleanup(ctx, stored)
		return nil, fmt.Errorf("failed to save post: %w", err)
	}

	s.logger.Info("Uploaded photo ", post.ID, " for user ", ownerID)
	return post, nil
}

func (s *photoUploadService) cleanup(ctx context.Context, keys []string) {
	removeObjects(ctx, s.photoConnector, s.logger, keys)
}

// removeObjects deletes stored objects that no post references any more.
// Failures are logged and leave the object behind.
func removeObjects(ctx context.Context, photoConnector posts.PhotoConnector, log logger.Logger, keys []string) {
	for _, key := range keys {
		if err := photoConnector.Delete(ctx, key); err != nil {
			log.Warn("Failed to remove orphaned object ", key, ": ", err)
		}
	}
}

// photoMetadataService implements the posts.PhotoMetadataService interface
type photoMetadataService struct {
	postRepository posts.PostRepository
	photoConnector posts.PhotoConnector
	logger         logger.Logger
}

// NewPhotoMetadataService creates a new instance of PhotoMetadataService
func NewPhotoMetadataService(postRepository posts.PostRepository, photoConnector posts.PhotoConnector, logger logger.Logger) (posts.PhotoMetadataService, error) {
	return &photoMetadataService{
		postRepository: postRepository,
		photoConnector: photoConnector,
		logger:         logger,
	}, nil
}

func (s *photoMetadataService) List(ctx context.Context, query *posts.PostQuery) ([]*posts.Post, error) {
	return s.postRepository.List(ctx, query)
}

func (s *photoMetadataService) GetByID(ctx context.Context, postID uint) (*posts.Post, error) {
	return s.postRepository.GetByID(ctx, postID)
}

// UpdateDescription replaces the description of a post owned by ownerID
func (s *photoMetadataService) UpdateDescription(ctx context.Context, postID, ownerID uint, description *string) (*posts.Post, error) {
	post, err := s.ownedPost(ctx, postID, ownerID, false)
	if err != nil {
		return nil, err
	}

	post.Description = description
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", posts.ErrInvalidUpload, err)
	}
	if err := s.postRepository.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return s.postRepository.GetByID(ctx, postID)
}

// Delete removes the post row and then, best effort, its stored objects. The deleted post is returned.
func (s *photoMetadataService) Delete(ctx context.Context, postID, callerID uint, isAdmin bool) (*posts.Post, error) {
	post, err := s.ownedPost(ctx, postID, callerID, isAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.postRepository.DeleteByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	keys := []string{post.StorageKey}
	if post.QRStorageKey != nil {
		keys = append(keys, *post.QRStorageKey)
	}
	removeObjects(ctx, s.photoConnector, s.logger, keys)

	s.logger.Info("Deleted photo ", postID, " by user ", callerID)
	return post, nil
}

// ownedPost hides posts the caller may not change behind posts.ErrNotOwner
func (s *photoMetadataService) ownedPost(ctx context.Context, postID, callerID uint, isAdmin bool) (*posts.Post, error) {
	post, err := s.postRepository.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			return nil, posts.ErrNotOwner
		}
		return nil, err
	}
	if post.OwnerID != callerID && !isAdmin {
		return nil, posts.ErrNotOwner
	}
	return post, nil
}

// photoDownloadService implements the posts.PhotoDownloadService interface
type photoDownloadService struct {
	postRepository posts.PostRepository
	photoConnector posts.PhotoConnector
	logger         logger.Logger
}

// NewPhotoDownloadService creates a new instance of PhotoDownloadService
func NewPhotoDownloadService(postRepository posts.PostRepository, photoConnector posts.PhotoConnector, logger logger.Logger) (posts.PhotoDownloadService, error) {
	return &photoDownloadService{
		postRepository: postRepository,
		photoConnector: photoConnector,
		logger:         logger,
	}, nil
}

func (s *photoDownloadService) Download(ctx context.Context, postID uint) ([]byte, string, error) {
	post, err := s.postRepository.GetByID(ctx, postID)
	if err != nil {
		return nil, "", err
	}

	data, err := s.photoConnector.Download(ctx, post.StorageKey)
	if err != nil {
		return nil, "", err
	}
	return data, post.ContentType, nil
}

func (s *photoDownloadService) QRCode(ctx context.Context, postID uint) ([]byte, error) {
	post, err := s.postRepository.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.QRStorageKey == nil {
		return nil, fmt.Errorf("post %d has no QR code: %w", postID, posts.ErrObjectNotFound)
	}

	return s.photoConnector.Download(ctx, *post.QRStorageKey)
}
