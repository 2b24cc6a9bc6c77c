package users

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailAlreadyRegistered is returned by signup for a taken email
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials is returned when the email or password is wrong
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInvalidToken covers malformed, tampered, mis-scoped or revoked tokens
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned for tokens past their expiry
	ErrTokenExpired = errors.New("token expired")
	// ErrUserBlocked is returned when a blocked account tries to act
	ErrUserBlocked = errors.New("your account is blocked")
	// ErrInvalidRole is returned for an unknown role name
	ErrInvalidRole = errors.New("invalid role")
	// ErrCannotBlockAdmin is returned when someone tries to block an admin
	ErrCannotBlockAdmin = errors.New("admins cannot be blocked")
	// ErrForbidden is returned when the caller's role does not allow the operation
	ErrForbidden = errors.New("you do not have permission to perform this action")
)
