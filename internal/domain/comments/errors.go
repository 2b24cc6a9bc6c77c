package comments

import "errors"

var (
	// ErrCommentNotFound is returned when no comment matches the lookup
	ErrCommentNotFound = errors.New("comment not found")
	// ErrNotAuthor is returned when someone other than the author edits a comment
	ErrNotAuthor = errors.New("not authorized to update this comment")
	// ErrInvalidPage is returned for a limit or offset out of bounds
	ErrInvalidPage = errors.New("invalid page")
)
