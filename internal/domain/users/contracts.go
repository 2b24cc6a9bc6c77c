package users

import "context"

// AuthService defines registration, token issuing and token based identification.
type AuthService interface {
	// Signup registers a new account. The very first account becomes an admin.
	Signup(ctx context.Context, request *SignupRequest) (*User, error)

	// Signin checks the credentials and issues a fresh token pair.
	Signin(ctx context.Context, email, password string) (*TokenPair, error)

	// RefreshToken exchanges a valid stored refresh token for a new token pair.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Signout revokes the stored refresh token of the user.
	Signout(ctx context.Context, user *User) error

	// CurrentUser resolves the owner of an access token.
	CurrentUser(ctx context.Context, accessToken string) (*User, error)
}

// UserService defines profile reads and administrative account changes.
type UserService interface {
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, update *ProfileUpdate) (*User, error)

	// ChangeRole sets the role of the target user.
	ChangeRole(ctx context.Context, userID uint, role Role) (*User, error)

	// SetBlocked blocks or unblocks the target user. Admins cannot be blocked.
	SetBlocked(ctx context.Context, userID uint, blocked bool) (*User, error)
}

// UserRepository defines the interface for User-related persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *User) error
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenManager issues and parses signed tokens carrying the user's email as subject
type TokenManager interface {
	IssueAccessToken(email string) (string, error)
	IssueRefreshToken(email string) (string, error)
	ParseAccessToken(token string) (string, error)
	ParseRefreshToken(token string) (string, error)
}
