package app

import (
	"context"
	"fmt"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"
)

// userService implements the users.UserService interface
type userService struct {
	userRepository users.UserRepository
	logger         logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepository users.UserRepository, logger logger.Logger) (users.UserService, error) {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}, nil
}

func (s *userService) GetByID(ctx context.Context, userID uint) (*users.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return s.userRepository.GetByEmail(ctx, email)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, update *users.ProfileUpdate) (*users.User, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	update.Apply(user)
	if err := s.userRepository.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// ChangeRole sets the role of the target user
func (s *userService) ChangeRole(ctx context.Context, userID uint, role users.Role) (*users.User, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %s", users.ErrInvalidRole, role)
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepository.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to change role: %w", err)
	}

	s.logger.Info("Changed role of user ", user.ID, " to ", role)
	return user, nil
}

// SetBlocked blocks or unblocks the target user. Admins cannot be blocked.
func (s *userService) SetBlocked(ctx context.Context, userID uint, blocked bool) (*users.User, error) {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if blocked && user.Role == users.RoleAdmin {
		return nil, users.ErrCannotBlockAdmin
	}

	user.IsBlocked = blocked
	if blocked {
		user.RefreshToken = nil
	}
	if err := s.userRepository.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to change blocked state: %w", err)
	}

	s.logger.Info("Set blocked=", blocked, " for user ", user.ID)
	return user, nil
}
