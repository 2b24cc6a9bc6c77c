package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Role grants a user a set of permissions
type Role string

// Roles known to the system
const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	}
	return false
}

// User entity
type User struct {
	ID             uint       `validate:"-"`
	Username       string     `validate:"required,min=1,max=50"`
	Email          string     `validate:"required,email,max=150"`
	HashedPassword string     `validate:"required,max=255"`
	Avatar         *string    `validate:"omitempty,max=255"`
	RefreshToken   *string    `validate:"-"`
	FirstName      string     `validate:"required,min=1,max=50"`
	LastName       string     `validate:"required,min=1,max=50"`
	Birthday       *time.Time `validate:"-"`
	Phone          *string    `validate:"omitempty,max=14,phone"`
	Role           Role       `validate:"required,oneof=admin moderator user"`
	IsActive       bool
	IsBlocked      bool
	About          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasRole reports whether the user holds one of the given roles
func (u *User) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validateStruct(u)
}

// SignupRequest carries the fields needed to register an account
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email,max=150"`
	Username  string `json:"username" validate:"required,min=1,max=50"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
}

// Validate for validating SignupRequest struct
func (r *SignupRequest) Validate() error {
	return validateStruct(r)
}

// ProfileUpdate holds the optional profile fields a user may change
type ProfileUpdate struct {
	FirstName *string    `validate:"omitempty,min=1,max=50"`
	LastName  *string    `validate:"omitempty,min=1,max=50"`
	About     *string    `validate:"omitempty,max=2000"`
	Birthday  *time.Time `validate:"-"`
	Phone     *string    `validate:"omitempty,max=14,phone"`
}

// Validate for validating ProfileUpdate struct
func (p *ProfileUpdate) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	if p.Birthday != nil && p.Birthday.After(time.Now()) {
		return fmt.Errorf("validation failed: birthday lies in the future")
	}
	return nil
}

// Apply copies every set field onto u
func (p *ProfileUpdate) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.About != nil {
		u.About = p.About
	}
	if p.Birthday != nil {
		u.Birthday = p.Birthday
	}
	if p.Phone != nil {
		u.Phone = p.Phone
	}
}

// TokenTypeBearer is the only token type issued
const TokenTypeBearer = "bearer"

// TokenPair is returned on signin and refresh
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

func validateStruct(s interface{}) error {
	validate := validator.New()
	if err := validate.RegisterValidation("phone", validators.PhoneValidation); err != nil {
		return fmt.Errorf("failed to register phone validation: %w", err)
	}

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
