package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"
)

// authService implements the users.AuthService interface
type authService struct {
	userRepository users.UserRepository
	hasher         users.PasswordHasher
	tokens         users.TokenManager
	logger         logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepository users.UserRepository,
	hasher users.PasswordHasher,
	tokens users.TokenManager,
	logger logger.Logger,
) (users.AuthService, error) {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}, nil
}

// Signup registers a new account. The very first account becomes an admin.
func (s *authService) Signup(ctx context.Context, request *users.SignupRequest) (*users.User, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	_, err := s.userRepository.GetByEmail(ctx, request.Email)
	if err == nil {
		return nil, users.ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, users.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	count, err := s.userRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	role := users.RoleUser
	if count == 0 {
		role = users.RoleAdmin
	}

	hashed, err := s.hasher.Hash(request.Password)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		Username:       request.Username,
		Email:          request.Email,
		HashedPassword: hashed,
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		Role:           role,
		IsActive:       true,
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, users.ErrEmailAlreadyRegistered) {
			return nil, users.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Signed up user ", user.ID, " with role ", user.Role)
	return user, nil
}

// Signin checks the credentials and issues a fresh token pair
func (s *authService) Signin(ctx context.Context, email, password string) (*users.TokenPair, error) {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(user.HashedPassword, password) {
		return nil, users.ErrInvalidCredentials
	}
	if user.IsBlocked {
		return nil, users.ErrUserBlocked
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Signed in user ", user.ID)
	return pair, nil
}

// RefreshToken exchanges the stored refresh token for a new pair. A token that
// does not match the stored one revokes the stored token as well.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*users.TokenPair, error) {
	email, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidToken
		}
		return nil, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		user.RefreshToken = nil
		if err := s.userRepository.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		s.logger.Warn("Revoked refresh token of user ", user.ID, " after a mismatching refresh")
		return nil, fmt.Errorf("%w: refresh token does not match", users.ErrInvalidToken)
	}
	if user.IsBlocked {
		return nil, users.ErrUserBlocked
	}

	return s.issueTokens(ctx, user)
}

// Signout revokes the stored refresh token of the user
func (s *authService) Signout(ctx context.Context, user *users.User) error {
	user.RefreshToken = nil
	if err := s.userRepository.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}

	s.logger.Info("Signed out user ", user.ID)
	return nil
}

// CurrentUser resolves the owner of an access token
func (s *authService) CurrentUser(ctx context.Context, accessToken string) (*users.User, error) {
	email, err := s.tokens.ParseAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidToken
		}
		return nil, err
	}

	if user.IsBlocked {
		return nil, users.ErrUserBlocked
	}
	return user, nil
}

func (s *authService) issueTokens(ctx context.Context, user *users.User) (*users.TokenPair, error) {
	access, err := s.tokens.IssueAccessToken(user.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(user.Email)
	if err != nil {
		return nil, err
	}

	user.RefreshToken = &refresh
	if err := s.userRepository.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &users.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    users.TokenTypeBearer,
	}, nil
}
