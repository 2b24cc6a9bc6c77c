package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Signing algorithms accepted for JWTs
const (
	JWTAlgorithmHS256 = "HS256"
	JWTAlgorithmHS384 = "HS384"
	JWTAlgorithmHS512 = "HS512"
)

// AuthSettings holds the JWT signing configuration
type AuthSettings struct {
	SecretKey       string        `mapstructure:"secret_key" validate:"required,min=16"`
	Algorithm       string        `mapstructure:"algorithm" validate:"required,oneof=HS256 HS384 HS512"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl" validate:"required"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl" validate:"required"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if s.RefreshTokenTTL <= s.AccessTokenTTL {
		return fmt.Errorf("refresh token ttl must be longer than access token ttl")
	}

	return nil
}
