//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	repo    *MockUserRepository
	hasher  *MockPasswordHasher
	tokens  *MockTokenManager
	service users.AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		repo:   new(MockUserRepository),
		hasher: new(MockPasswordHasher),
		tokens: new(MockTokenManager),
	}
	service, err := NewAuthService(f.repo, f.hasher, f.tokens, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	f.service = service
	return f
}

func signupRequest() *users.SignupRequest {
	return &users.SignupRequest{
		Email:     "jane@example.com",
		Username:  "jane",
		Password:  "secret1",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func storedUser() *users.User {
	return &users.User{
		ID:             1,
		Username:       "jane",
		Email:          "jane@example.com",
		HashedPassword: "hashed",
		FirstName:      "Jane",
		LastName:       "Doe",
		Role:           users.RoleUser,
		IsActive:       true,
	}
}

func TestAuthService_Signup_FirstUserBecomesAdmin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.repo.On("GetByEmail", ctx, "jane@example.com").Return(nil, users.ErrUserNotFound)
	f.repo.On("Count", ctx).Return(int64(0), nil)
	f.hasher.On("Hash", "secret1").Return("hashed", nil)
	f.repo.On("Create", ctx, mock.MatchedBy(func(u *users.User) bool {
		return u.Role == users.RoleAdmin && u.HashedPassword == "hashed" && u.IsActive
	})).Return(nil)

	user, err := f.service.Signup(ctx, signupRequest())
	require.NoError(t, err)
	assert.Equal(t, users.RoleAdmin, user.Role)
	f.repo.AssertExpectations(t)
}

func TestAuthService_Signup_LaterUsersAreRegular(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.repo.On("GetByEmail", ctx, "jane@example.com").Return(nil, users.ErrUserNotFound)
	f.repo.On("Count", ctx).Return(int64(3), nil)
	f.hasher.On("Hash", "secret1").Return("hashed", nil)
	f.repo.On("Create", ctx, mock.Anything).Return(nil)

	user, err := f.service.Signup(ctx, signupRequest())
	require.NoError(t, err)
	assert.Equal(t, users.RoleUser, user.Role)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.repo.On("GetByEmail", ctx, "jane@example.com").Return(storedUser(), nil)

	_, err := f.service.Signup(ctx, signupRequest())
	assert.ErrorIs(t, err, users.ErrEmailAlreadyRegistered)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Signup_ConcurrentDuplicate(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.repo.On("GetByEmail", ctx, "jane@example.com").Return(nil, users.ErrUserNotFound)
	f.repo.On("Count", ctx).Return(int64(1), nil)
	f.hasher.On("Hash", "secret1").Return("hashed", nil)
	f.repo.On("Create", ctx, mock.Anything).
		Return(fmt.Errorf("user with email jane@example.com: %w", users.ErrEmailAlreadyRegistered))

	_, err := f.service.Signup(ctx, signupRequest())
	assert.ErrorIs(t, err, users.ErrEmailAlreadyRegistered)
}

func TestAuthService_Signup_InvalidRequest(t *testing.T) {
	f := newAuthFixture(t)

	req := signupRequest()
	req.Email = "nope"
	_, err := f.service.Signup(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestAuthService_Signin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := storedUser()

	f.repo.On("GetByEmail", ctx, user.Email).Return(user, nil)
	f.hasher.On("Verify", "hashed", "secret1").Return(true)
	f.tokens.On("IssueAccessToken", user.Email).Return("access", nil)
	f.tokens.On("IssueRefreshToken", user.Email).Return("refresh", nil)
	f.repo.On("Update", ctx, mock.MatchedBy(func(u *users.User) bool {
		return u.RefreshToken != nil && *u.RefreshToken == "refresh"
	})).Return(nil)

	pair, err := f.service.Signin(ctx, user.Email, "secret1")
	require.NoError(t, err)
	assert.Equal(t, &users.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "bearer"}, pair)
	f.repo.AssertExpectations(t)
}

func TestAuthService_Signin_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.repo.On("GetByEmail", ctx, "who@example.com").Return(nil, users.ErrUserNotFound)

		_, err := f.service.Signin(ctx, "who@example.com", "x")
		assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.repo.On("GetByEmail", ctx, "jane@example.com").Return(storedUser(), nil)
		f.hasher.On("Verify", "hashed", "wrong").Return(false)

		_, err := f.service.Signin(ctx, "jane@example.com", "wrong")
		assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	})

	t.Run("blocked", func(t *testing.T) {
		f := newAuthFixture(t)
		user := storedUser()
		user.IsBlocked = true
		f.repo.On("GetByEmail", ctx, "jane@example.com").Return(user, nil)
		f.hasher.On("Verify", "hashed", "secret1").Return(true)

		_, err := f.service.Signin(ctx, "jane@example.com", "secret1")
		assert.ErrorIs(t, err, users.ErrUserBlocked)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.repo.On("GetByEmail", ctx, "jane@example.com").Return(nil, errors.New("db down"))

		_, err := f.service.Signin(ctx, "jane@example.com", "secret1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, users.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken_Rotates(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := storedUser()
	old := "old-refresh"
	user.RefreshToken = &old

	f.tokens.On("ParseRefreshToken", old).Return(user.Email, nil)
	f.repo.On("GetByEmail", ctx, user.Email).Return(user, nil)
	f.tokens.On("IssueAccessToken", user.Email).Return("access-2", nil)
	f.tokens.On("IssueRefreshToken", user.Email).Return("refresh-2", nil)
	f.repo.On("Update", ctx, mock.Anything).Return(nil)

	pair, err := f.service.RefreshToken(ctx, old)
	require.NoError(t, err)
	assert.Equal(t, "refresh-2", pair.RefreshToken)
	assert.Equal(t, "refresh-2", *user.RefreshToken)
}

func TestAuthService_RefreshToken_MismatchRevokes(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := storedUser()
	stored := "current-refresh"
	user.RefreshToken = &stored

	f.tokens.On("ParseRefreshToken", "stolen-refresh").Return(user.Email, nil)
	f.repo.On("GetByEmail", ctx, user.Email).Return(user, nil)
	f.repo.On("Update", ctx, mock.MatchedBy(func(u *users.User) bool {
		return u.RefreshToken == nil
	})).Return(nil)

	_, err := f.service.RefreshToken(ctx, "stolen-refresh")
	assert.ErrorIs(t, err, users.ErrInvalidToken)
	f.repo.AssertExpectations(t)
	f.tokens.AssertNotCalled(t, "IssueAccessToken", mock.Anything)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	f := newAuthFixture(t)

	f.tokens.On("ParseRefreshToken", "bad").Return("", users.ErrInvalidToken)

	_, err := f.service.RefreshToken(context.Background(), "bad")
	assert.ErrorIs(t, err, users.ErrInvalidToken)
}

func TestAuthService_Signout(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := storedUser()
	token := "refresh"
	user.RefreshToken = &token

	f.repo.On("Update", ctx, user).Return(nil)

	require.NoError(t, f.service.Signout(ctx, user))
	assert.Nil(t, user.RefreshToken)
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.On("ParseAccessToken", "access").Return("jane@example.com", nil)
		f.repo.On("GetByEmail", ctx, "jane@example.com").Return(storedUser(), nil)

		user, err := f.service.CurrentUser(ctx, "access")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.On("ParseAccessToken", "access").Return("gone@example.com", nil)
		f.repo.On("GetByEmail", ctx, "gone@example.com").Return(nil, users.ErrUserNotFound)

		_, err := f.service.CurrentUser(ctx, "access")
		assert.ErrorIs(t, err, users.ErrInvalidToken)
	})

	t.Run("blocked", func(t *testing.T) {
		f := newAuthFixture(t)
		user := storedUser()
		user.IsBlocked = true
		f.tokens.On("ParseAccessToken", "access").Return(user.Email, nil)
		f.repo.On("GetByEmail", ctx, user.Email).Return(user, nil)

		_, err := f.service.CurrentUser(ctx, "access")
		assert.ErrorIs(t, err, users.ErrUserBlocked)
	})

	t.Run("expired", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.On("ParseAccessToken", "old").Return("", users.ErrTokenExpired)

		_, err := f.service.CurrentUser(ctx, "old")
		assert.ErrorIs(t, err, users.ErrTokenExpired)
	})
}
