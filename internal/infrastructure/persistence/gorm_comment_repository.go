package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/comments"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/persistence/models"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormCommentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCommentRepository creates a new GORM-based CommentRepository implementation
func NewGormCommentRepository(db *gorm.DB, logger logger.Logger) (comments.CommentRepository, error) {
	return &gormCommentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCommentRepository) Create(ctx context.Context, comment *comments.Comment) error {
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CommentModel{}
	model.FromDomain(comment)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	*comment = *model.ToDomain()

	r.logger.Info("Created comment with id ", comment.ID)
	return nil
}

func (r *gormCommentRepository) GetByID(ctx context.Context, commentID uint) (*comments.Comment, error) {
	var model models.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", commentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment with ID %d: %w", commentID, comments.ErrCommentNotFound)
		}
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCommentRepository) Update(ctx context.Context, comment *comments.Comment) error {
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CommentModel{}
	model.FromDomain(comment)

	result := r.db.WithContext(ctx).
		Model(&models.CommentModel{ID: comment.ID}).
		Select("Text").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment with ID %d: %w", comment.ID, comments.ErrCommentNotFound)
	}

	r.logger.Info("Updated comment with id ", comment.ID)
	return nil
}

func (r *gormCommentRepository) DeleteByID(ctx context.Context, commentID uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&models.CommentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment with ID %d: %w", commentID, comments.ErrCommentNotFound)
	}

	r.logger.Info("Deleted comment with id ", commentID)
	return nil
}

func (r *gormCommentRepository) ListByPost(ctx context.Context, postID uint, page comments.Page) ([]*comments.Comment, error) {
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.CommentModel
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at asc").Order("id asc").
		Limit(page.Limit).Offset(page.Offset).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	return toDomainComments(modelList), nil
}

func (r *gormCommentRepository) ListByUser(ctx context.Context, userID uint, page comments.Page) ([]*comments.Comment, error) {
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.CommentModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").Order("id asc").
		Limit(page.Limit).Offset(page.Offset).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	return toDomainComments(modelList), nil
}

func toDomainComments(modelList []*models.CommentModel) []*comments.Comment {
	domainList := make([]*comments.Comment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
