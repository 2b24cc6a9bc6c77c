package v1

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/ratelimit"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	currentUserKey = "currentUser"
	bearerPrefix   = "Bearer "
)

// bearerToken extracts the token of an "Authorization: Bearer" header
func bearerToken(ctx *gin.Context) (string, bool) {
	header := ctx.GetHeader("Authorization")
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(bearerPrefix):]), true
}

func abortUnauthenticated(ctx *gin.Context) {
	ctx.Header("WWW-Authenticate", "Bearer")
	abortWithDetail(ctx, http.StatusUnauthorized, detailCouldNotValidate)
}

// Authenticate resolves the access token into the current user
func Authenticate(authService users.AuthService, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx)
		if !ok {
			abortUnauthenticated(ctx)
			return
		}

		user, err := authService.CurrentUser(ctx, token)
		switch {
		case err == nil:
			ctx.Set(currentUserKey, user)
			ctx.Next()
		case errors.Is(err, users.ErrUserBlocked):
			abortWithDetail(ctx, http.StatusForbidden, "Your account is blocked.")
		case errors.Is(err, users.ErrInvalidToken), errors.Is(err, users.ErrTokenExpired):
			abortUnauthenticated(ctx)
		default:
			abortWithError(ctx, log, err)
		}
	}
}

// RequireRoles lets only users holding one of roles through. It must run after Authenticate.
func RequireRoles(roles ...users.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := CurrentUser(ctx)
		if user == nil {
			abortUnauthenticated(ctx)
			return
		}
		if !user.HasRole(roles...) {
			abortWithDetail(ctx, http.StatusForbidden, detailForbidden)
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the user stored by Authenticate, or nil
func CurrentUser(ctx *gin.Context) *users.User {
	value, ok := ctx.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*users.User)
	return user
}

// RateLimit rejects callers exceeding the limiter's window with 429.
// The key is made of prefix, client IP and route. Limiter failures let the request pass.
func RateLimit(limiter ratelimit.Limiter, prefix string, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := prefix + ctx.ClientIP() + ":" + ctx.FullPath()

		wait, err := limiter.Allow(ctx, key)
		if err != nil {
			log.Warn("Rate limiter unavailable, letting request through: ", err)
			ctx.Next()
			return
		}
		if wait > 0 {
			seconds := int(math.Ceil(wait.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			ctx.Header("Retry-After", strconv.Itoa(seconds))
			abortWithDetail(ctx, http.StatusTooManyRequests, "Too Many Requests")
			return
		}
		ctx.Next()
	}
}
