package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/persistence/models"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPostRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPostRepository creates a new GORM-based PostRepository implementation
func NewGormPostRepository(db *gorm.DB, logger logger.Logger) (posts.PostRepository, error) {
	return &gormPostRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPostRepository) Create(ctx context.Context, post *posts.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PostModel{}
	model.FromDomain(post)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := firstOrCreateTags(tx, post.TagNames())
		if err != nil {
			return err
		}
		model.Tags = tags

		if err := tx.Omit("Owner", "Tags.*").Create(model).Error; err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	*post = *model.ToDomain()

	r.logger.Info("Created post with id ", post.ID)
	return nil
}

// firstOrCreateTags resolves every name to a persisted tag, inserting the missing ones
func firstOrCreateTags(tx *gorm.DB, names []string) ([]models.TagModel, error) {
	tags := make([]models.TagModel, 0, len(names))
	for _, name := range names {
		tag := models.TagModel{}
		if err := tx.Where(models.TagModel{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return nil, fmt.Errorf("failed to get or create tag %s: %w", name, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r *gormPostRepository) List(ctx context.Context, query *posts.PostQuery) ([]*posts.Post, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.PostModel
	dbQuery := r.db.WithContext(ctx).Model(&models.PostModel{}).Preload("Tags")

	if query.OwnerID != 0 {
		dbQuery = dbQuery.Where("owner_id = ?", query.OwnerID)
	}
	if query.Tag != "" {
		tagged := r.db.WithContext(ctx).Table("post_tags").
			Select("post_tags.post_id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.name = ?", query.Tag)
		dbQuery = dbQuery.Where("id IN (?)", tagged)
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = posts.SortByCreatedAt
	}
	order := query.SortOrder
	if order == "" {
		order = posts.SortOrderDesc
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", sortBy, order))
	if sortBy != posts.SortByID {
		dbQuery = dbQuery.Order(fmt.Sprintf("id %s", order))
	}

	dbQuery = dbQuery.Limit(query.Limit).Offset(query.Offset)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	domainList := make([]*posts.Post, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormPostRepository) GetByID(ctx context.Context, postID uint) (*posts.Post, error) {
	var model models.PostModel
	if err := r.db.WithContext(ctx).Preload("Tags").Where("id = ?", postID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post with ID %d: %w", postID, posts.ErrPostNotFound)
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPostRepository) Update(ctx context.Context, post *posts.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PostModel{}
	model.FromDomain(post)

	result := r.db.WithContext(ctx).
		Model(&models.PostModel{ID: post.ID}).
		Select("Description", "QRCodeURL", "QRStorageKey").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("post with ID %d: %w", post.ID, posts.ErrPostNotFound)
	}

	r.logger.Info("Updated post with id ", post.ID)
	return nil
}

func (r *gormPostRepository) DeleteByID(ctx context.Context, postID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments of post: %w", err)
		}
		if err := tx.Exec("DELETE FROM post_tags WHERE post_id = ?", postID).Error; err != nil {
			return fmt.Errorf("failed to unlink tags of post: %w", err)
		}

		result := tx.Where("id = ?", postID).Delete(&models.PostModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("post with ID %d: %w", postID, posts.ErrPostNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted post with id ", postID)
	return nil
}
