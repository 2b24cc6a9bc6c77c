//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/comments"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/health"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/connector"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/persistence"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/security"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/config"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Test constants for the local photo store
const (
	TestPublicBaseURL = "http://localhost:8000"
	TestMaxUploadSize = 1 << 20
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService  users.AuthService
	UserService  users.UserService
	Tokens       users.TokenManager
	Upload       posts.PhotoUploadService
	Metadata     posts.PhotoMetadataService
	Download     posts.PhotoDownloadService
	Comments     comments.CommentService
	Health       health.Service
	PhotoStorage *connector.LocalPhotoConnector

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	storage, err := connector.NewLocalPhotoConnector(t.TempDir(), TestPublicBaseURL, logger)
	require.NoError(t, err, "Failed to create photo connector")

	hasher, err := security.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err, "Failed to create password hasher")

	tokens, err := security.NewJWTTokenManager(&config.AuthSettings{
		SecretKey:       "integration-secret-key",
		Algorithm:       config.JWTAlgorithmHS256,
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	require.NoError(t, err, "Failed to create token manager")

	authService, err := NewAuthService(dbContext.UserRepo, hasher, tokens, logger)
	require.NoError(t, err, "Failed to create AuthService")

	userService, err := NewUserService(dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create UserService")

	uploadService, err := NewPhotoUploadService(storage, dbContext.PostRepo, connector.NewQRCodeGenerator(), TestMaxUploadSize, logger)
	require.NoError(t, err, "Failed to create PhotoUploadService")

	metadataService, err := NewPhotoMetadataService(dbContext.PostRepo, storage, logger)
	require.NoError(t, err, "Failed to create PhotoMetadataService")

	downloadService, err := NewPhotoDownloadService(dbContext.PostRepo, storage, logger)
	require.NoError(t, err, "Failed to create PhotoDownloadService")

	commentService, err := NewCommentService(dbContext.CommentRepo, dbContext.PostRepo, dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create CommentService")

	healthService, err := NewHealthService(dbContext.DB, logger)
	require.NoError(t, err, "Failed to create HealthService")

	return &TestServices{
		AuthService:  authService,
		UserService:  userService,
		Tokens:       tokens,
		Upload:       uploadService,
		Metadata:     metadataService,
		Download:     downloadService,
		Comments:     commentService,
		Health:       healthService,
		PhotoStorage: storage,
		DBContext:    dbContext,
	}
}
