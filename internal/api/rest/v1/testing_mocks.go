//go:build unit
// +build unit

package v1

import (
	"context"
	"time"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/comments"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, request *users.SignupRequest) (*users.User, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockAuthService) Signin(ctx context.Context, email, password string) (*users.TokenPair, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.TokenPair), args.Error(1)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*users.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.TokenPair), args.Error(1)
}

func (m *MockAuthService) Signout(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, accessToken string) (*users.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetByID(ctx context.Context, userID uint) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID uint, update *users.ProfileUpdate) (*users.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) ChangeRole(ctx context.Context, userID uint, role users.Role) (*users.User, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) SetBlocked(ctx context.Context, userID uint, blocked bool) (*users.User, error) {
	args := m.Called(ctx, userID, blocked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockPhotoUploadService is a mock implementation of PhotoUploadService
type MockPhotoUploadService struct {
	mock.Mock
}

func (m *MockPhotoUploadService) Upload(ctx context.Context, ownerID uint, upload *posts.PhotoUpload) (*posts.Post, error) {
	args := m.Called(ctx, ownerID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

// MockPhotoMetadataService is a mock implementation of PhotoMetadataService
type MockPhotoMetadataService struct {
	mock.Mock
}

func (m *MockPhotoMetadataService) List(ctx context.Context, query *posts.PostQuery) ([]*posts.Post, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func (m *MockPhotoMetadataService) GetByID(ctx context.Context, postID uint) (*posts.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPhotoMetadataService) UpdateDescription(ctx context.Context, postID, ownerID uint, description *string) (*posts.Post, error) {
	args := m.Called(ctx, postID, ownerID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPhotoMetadataService) Delete(ctx context.Context, postID, callerID uint, isAdmin bool) (*posts.Post, error) {
	args := m.Called(ctx, postID, callerID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

// MockPhotoDownloadService is a mock implementation of PhotoDownloadService
type MockPhotoDownloadService struct {
	mock.Mock
}

func (m *MockPhotoDownloadService) Download(ctx context.Context, postID uint) ([]byte, string, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockPhotoDownloadService) QRCode(ctx context.Context, postID uint) ([]byte, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Create(ctx context.Context, postID, userID uint, text string) (*comments.Comment, error) {
	args := m.Called(ctx, postID, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, commentID, userID uint, text string) (*comments.Comment, error) {
	args := m.Called(ctx, commentID, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, commentID uint) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentService) ListByPost(ctx context.Context, postID uint, page comments.Page) ([]*comments.Comment, error) {
	args := m.Called(ctx, postID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*comments.Comment), args.Error(1)
}

func (m *MockCommentService) ListByUser(ctx context.Context, userID uint, page comments.Page) ([]*comments.Comment, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*comments.Comment), args.Error(1)
}

// MockHealthService is a mock implementation of health.Service
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) CheckDatabase(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockLimiter is a mock implementation of ratelimit.Limiter
type MockLimiter struct {
	mock.Mock
}

func (m *MockLimiter) Allow(ctx context.Context, key string) (time.Duration, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(time.Duration), args.Error(1)
}
