package posts

import "errors"

var (
	// ErrPostNotFound is returned when no post matches the lookup
	ErrPostNotFound = errors.New("photo not found")
	// ErrNotOwner is returned when the caller may not change the post
	ErrNotOwner = errors.New("photo not found or not authorized")
	// ErrInvalidUpload is returned for rejected files, descriptions or tags
	ErrInvalidUpload = errors.New("invalid upload")
	// ErrInvalidPost is returned when a post fails validation before it is saved
	ErrInvalidPost = errors.New("invalid post")
	// ErrObjectNotFound is returned by connectors for a missing object
	ErrObjectNotFound = errors.New("object not found")
)
