package posts

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Tag limits
const (
	MaxTagsPerPost = 5
	MaxTagLength   = validators.MaxTagNameLength
)

// Query defaults and bounds
const (
	DefaultLimit = 10
	MaxLimit     = 500
)

// Sortable columns and orders
const (
	SortByCreatedAt = "created_at"
	SortByID        = "id"
	SortOrderAsc    = "asc"
	SortOrderDesc   = "desc"
)

// AllowedContentTypes lists the image types accepted for upload
var AllowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Tag entity
type Tag struct {
	ID   uint   `validate:"-"`
	Name string `validate:"required,tagname"`
}

// Post represents a published photo
type Post struct {
	ID           uint      `validate:"-"`
	ImageURL     string    `validate:"required,max=255"`
	StorageKey   string    `validate:"required,max=255"`
	QRCodeURL    *string   `validate:"omitempty,max=255"`
	QRStorageKey *string   `validate:"omitempty,max=255"`
	Description  *string   `validate:"omitempty,max=2000"`
	ContentType  string    `validate:"required"`
	OwnerID      uint      `validate:"required"`
	Tags         []Tag     `validate:"max=5,dive"`
	CreatedAt    time.Time `validate:"-"`
	UpdatedAt    time.Time `validate:"-"`
}

// Validate for validating Post struct
func (p *Post) Validate() error {
	if err := validateStruct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPost, err)
	}
	return nil
}

// TagNames returns the names of the tags attached to the post
func (p *Post) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		names = append(names, tag.Name)
	}
	return names
}

// PhotoUpload is the raw input of a new post
type PhotoUpload struct {
	FileName    string
	ContentType string
	Data        []byte
	Description *string
	Tags        []string
}

// Validate checks the upload against the accepted types and the size limit
func (u *PhotoUpload) Validate(maxSize int64) error {
	if len(u.Data) == 0 {
		return fmt.Errorf("%w: file is empty", ErrInvalidUpload)
	}
	if int64(len(u.Data)) > maxSize {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidUpload, maxSize)
	}
	if _, ok := AllowedContentTypes[u.ContentType]; !ok {
		return fmt.Errorf("%w: unsupported content type %q", ErrInvalidUpload, u.ContentType)
	}
	if u.Description != nil && len(*u.Description) > 2000 {
		return fmt.Errorf("%w: description is too long", ErrInvalidUpload)
	}

	tags, err := NormalizeTags(u.Tags)
	if err != nil {
		return err
	}
	u.Tags = tags
	return nil
}

// NormalizeTags splits comma separated values, lower cases them, collapses
// inner whitespace to single spaces and de-duplicates them while keeping the
// first-seen order. Lengths are counted in characters.
func NormalizeTags(raw []string) ([]string, error) {
	seen := make(map[string]struct{})
	tags := make([]string, 0, len(raw))

	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			name := strings.Join(strings.Fields(strings.ToLower(part)), " ")
			if name == "" {
				continue
			}
			if utf8.RuneCountInString(name) > MaxTagLength {
				return nil, fmt.Errorf("%w: tag %q is longer than %d characters", ErrInvalidUpload, name, MaxTagLength)
			}
			if !validators.ValidTagName(name) {
				return nil, fmt.Errorf("%w: invalid tag %q", ErrInvalidUpload, name)
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			tags = append(tags, name)
		}
	}

	if len(tags) > MaxTagsPerPost {
		return nil, fmt.Errorf("%w: at most %d tags are allowed", ErrInvalidUpload, MaxTagsPerPost)
	}
	return tags, nil
}

// PostQuery filters and paginates post listings
type PostQuery struct {
	OwnerID   uint   `validate:"-"`
	Tag       string `validate:"omitempty,tagname"`
	Limit     int    `validate:"min=1,max=500"`
	Offset    int    `validate:"min=0"`
	SortBy    string `validate:"omitempty,oneof=created_at id"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewPostQuery returns a query with the default page size
func NewPostQuery() *PostQuery {
	return &PostQuery{
		Limit:     DefaultLimit,
		SortBy:    SortByCreatedAt,
		SortOrder: SortOrderDesc,
	}
}

// Validate for validating PostQuery struct
func (q *PostQuery) Validate() error {
	return validateStruct(q)
}

func validateStruct(s interface{}) error {
	validate := validator.New()
	if err := validate.RegisterValidation("tagname", validators.TagNameValidation); err != nil {
		return fmt.Errorf("failed to register tag name validation: %w", err)
	}

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
