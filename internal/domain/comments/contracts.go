package comments

import "context"

// CommentService defines the comment use cases
type CommentService interface {
	// Create adds a comment to an existing post.
	Create(ctx context.Context, postID, userID uint, text string) (*Comment, error)

	// Update changes the text of a comment. Only its author may do so.
	Update(ctx context.Context, commentID, userID uint, text string) (*Comment, error)

	// Delete removes a comment.
	Delete(ctx context.Context, commentID uint) error

	// ListByPost returns a page of comments of an existing post, oldest first.
	ListByPost(ctx context.Context, postID uint, page Page) ([]*Comment, error)

	// ListByUser returns a page of comments written by an existing user, oldest first.
	ListByUser(ctx context.Context, userID uint, page Page) ([]*Comment, error)
}

// CommentRepository defines the interface for Comment-related persistence
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	Update(ctx context.Context, comment *Comment) error
	DeleteByID(ctx context.Context, commentID uint) error
	ListByPost(ctx context.Context, postID uint, page Page) ([]*Comment, error)
	ListByUser(ctx context.Context, userID uint, page Page) ([]*Comment, error)
}
