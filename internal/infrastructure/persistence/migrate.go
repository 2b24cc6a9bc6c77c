package persistence

import (
	"fmt"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the users, posts, tags, post_tags and comments tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.TagModel{},
		&models.PostModel{},
		&models.CommentModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
