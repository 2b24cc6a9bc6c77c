package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token scopes
const (
	ScopeAccessToken  = "access_token"
	ScopeRefreshToken = "refresh_token"
)

// Claims are the JWT claims carried by access and refresh tokens
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// JWTTokenManager signs and parses HMAC JWTs
type JWTTokenManager struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTTokenManager creates a TokenManager from the auth settings
func NewJWTTokenManager(settings *config.AuthSettings) (*JWTTokenManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	method := jwt.GetSigningMethod(settings.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", settings.Algorithm)
	}

	return &JWTTokenManager{
		secret:     []byte(settings.SecretKey),
		method:     method,
		accessTTL:  settings.AccessTokenTTL,
		refreshTTL: settings.RefreshTokenTTL,
		now:        time.Now,
	}, nil
}

// IssueAccessToken returns a short lived token for email
func (m *JWTTokenManager) IssueAccessToken(email string) (string, error) {
	return m.issue(email, ScopeAccessToken, m.accessTTL)
}

// IssueRefreshToken returns a long lived token for email
func (m *JWTTokenManager) IssueRefreshToken(email string) (string, error) {
	return m.issue(email, ScopeRefreshToken, m.refreshTTL)
}

// ParseAccessToken returns the email of a valid access token
func (m *JWTTokenManager) ParseAccessToken(token string) (string, error) {
	return m.parse(token, ScopeAccessToken)
}

// ParseRefreshToken returns the email of a valid refresh token
func (m *JWTTokenManager) ParseRefreshToken(token string) (string, error) {
	return m.parse(token, ScopeRefreshToken)
}

func (m *JWTTokenManager) issue(email, scope string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s: %w", scope, err)
	}
	return signed, nil
}

func (m *JWTTokenManager) parse(token, scope string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", users.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", users.ErrInvalidToken, err)
	}

	if claims.Scope != scope {
		return "", fmt.Errorf("%w: invalid scope for token", users.ErrInvalidToken)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", users.ErrInvalidToken)
	}
	return claims.Subject, nil
}
