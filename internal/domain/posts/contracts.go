package posts

import (
	"context"
)

// PhotoUploadService defines methods for publishing photos.
type PhotoUploadService interface {
	// Upload stores the image and its QR code and creates the post with its tags.
	Upload(ctx context.Context, ownerID uint, upload *PhotoUpload) (*Post, error)
}

// PhotoMetadataService defines methods for reading and changing post metadata.
type PhotoMetadataService interface {
	// List retrieves posts considering the query filter.
	List(ctx context.Context, query *PostQuery) ([]*Post, error)

	// GetByID retrieves a post by ID.
	GetByID(ctx context.Context, postID uint) (*Post, error)

	// UpdateDescription replaces the description of a post owned by ownerID.
	UpdateDescription(ctx context.Context, postID, ownerID uint, description *string) (*Post, error)

	// Delete removes the post and its stored objects. Admins may delete any post.
	Delete(ctx context.Context, postID, callerID uint, isAdmin bool) (*Post, error)
}

// PhotoDownloadService defines methods for fetching stored objects.
type PhotoDownloadService interface {
	// Download returns the image bytes and content type of a post.
	Download(ctx context.Context, postID uint) ([]byte, string, error)

	// QRCode returns the PNG bytes of the QR code pointing at the image.
	QRCode(ctx context.Context, postID uint) ([]byte, error)
}

// PostRepository defines the interface for Post-related persistence
type PostRepository interface {
	// Create adds a new Post and links its tags, creating missing tags
	Create(ctx context.Context, post *Post) error
	// List lists Posts with optional filter
	List(ctx context.Context, query *PostQuery) ([]*Post, error)
	// GetByID retrieves a Post by ID with its tags
	GetByID(ctx context.Context, postID uint) (*Post, error)
	// Update persists the mutable columns of a Post
	Update(ctx context.Context, post *Post) error
	// DeleteByID deletes a Post together with its comments and tag links
	DeleteByID(ctx context.Context, postID uint) error
}

// StoredObject describes an object written by a PhotoConnector
type StoredObject struct {
	Key string
	URL string
}

// PhotoConnector is an interface for interacting with object storage
type PhotoConnector interface {
	// Upload writes data under a fresh key derived from name and returns its location.
	Upload(ctx context.Context, data []byte, name, contentType string) (*StoredObject, error)

	// Download retrieves an object by key.
	Download(ctx context.Context, key string) ([]byte, error)

	// Delete removes an object by key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}

// QRCodeGenerator renders content as a PNG QR code
type QRCodeGenerator interface {
	Generate(content string) ([]byte, error)
}
