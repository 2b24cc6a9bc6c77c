package app

import (
	"context"
	"fmt"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/comments"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"
)

// commentService implements the comments.CommentService interface
type commentService struct {
	commentRepository comments.CommentRepository
	postRepository    posts.PostRepository
	userRepository    users.UserRepository
	logger            logger.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepository comments.CommentRepository,
	postRepository posts.PostRepository,
	userRepository users.UserRepository,
	logger logger.Logger,
) (comments.CommentService, error) {
	return &commentService{
		commentRepository: commentRepository,
		postRepository:    postRepository,
		userRepository:    userRepository,
		logger:            logger,
	}, nil
}

func (s *commentService) Create(ctx context.Context, postID, userID uint, text string) (*comments.Comment, error) {
	if _, err := s.postRepository.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &comments.Comment{
		Text:   text,
		UserID: userID,
		PostID: postID,
	}
	if err := s.commentRepository.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// Update changes the text of a comment. Only its author may do so.
func (s *commentService) Update(ctx context.Context, commentID, userID uint, text string) (*comments.Comment, error) {
	comment, err := s.commentRepository.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, comments.ErrNotAuthor
	}

	comment.Text = text
	if err := s.commentRepository.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return s.commentRepository.GetByID(ctx, commentID)
}

func (s *commentService) Delete(ctx context.Context, commentID uint) error {
	return s.commentRepository.DeleteByID(ctx, commentID)
}

func (s *commentService) ListByPost(ctx context.Context, postID uint, page comments.Page) ([]*comments.Comment, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.postRepository.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepository.ListByPost(ctx, postID, page)
}

func (s *commentService) ListByUser(ctx context.Context, userID uint, page comments.Page) ([]*comments.Comment, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.userRepository.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.commentRepository.ListByUser(ctx, userID, page)
}
