//go:build integration
// +build integration

package persistence

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/comments"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/config"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	UserRepo    users.UserRepository
	PostRepo    posts.PostRepository
	CommentRepo comments.CommentRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	postRepo, err := NewGormPostRepository(db, logger)
	require.NoError(t, err, "Failed to create post repository")

	commentRepo, err := NewGormCommentRepository(db, logger)
	require.NoError(t, err, "Failed to create comment repository")

	return &TestContext{
		DB:          db,
		UserRepo:    userRepo,
		PostRepo:    postRepo,
		CommentRepo: commentRepo,
	}
}

// CreateTestUser builds a valid user with a unique email
func CreateTestUser(t *testing.T, role users.Role) *users.User {
	t.Helper()

	suffix := uuid.NewString()[:8]
	return &users.User{
		Username:       "user-" + suffix,
		Email:          fmt.Sprintf("user-%s@example.com", suffix),
		HashedPassword: "$2a$10$hash",
		FirstName:      "Test",
		LastName:       "User",
		Role:           role,
		IsActive:       true,
	}
}

// CreateTestPost builds a valid post of owner with the given tags
func CreateTestPost(t *testing.T, owner *users.User, tags ...string) *posts.Post {
	t.Helper()

	key := uuid.NewString() + ".png"
	post := &posts.Post{
		ImageURL:    "http://localhost:8000/media/" + key,
		StorageKey:  key,
		ContentType: "image/png",
		OwnerID:     owner.ID,
	}
	for _, tag := range tags {
		post.Tags = append(post.Tags, posts.Tag{Name: tag})
	}
	return post
}
