package v1

import (
	"errors"
	"net/http"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/comments"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/health"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Details shared by several handlers
const (
	detailCouldNotValidate = "Could not validate credentials"
	detailForbidden        = "You do not have permission to perform this action"
	detailPostNotFound     = "Post not found"
	detailInternal         = "Internal server error"
)

// errorMapping translates a domain error into a status code. An empty detail
// means the error text itself is shown to the caller.
type errorMapping struct {
	target error
	status int
	detail string
}

// errorMappings is ordered: more specific errors come first
var errorMappings = []errorMapping{
	{users.ErrEmailAlreadyRegistered, http.StatusBadRequest, "Email already registered"},
	{users.ErrInvalidCredentials, http.StatusUnauthorized, "Incorrect username or password"},
	{users.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
	{users.ErrInvalidToken, http.StatusUnauthorized, "Invalid token"},
	{users.ErrUserBlocked, http.StatusForbidden, "Your account is blocked."},
	{users.ErrCannotBlockAdmin, http.StatusForbidden, "Admins cannot be blocked"},
	{users.ErrForbidden, http.StatusForbidden, detailForbidden},
	{users.ErrInvalidRole, http.StatusUnprocessableEntity, ""},
	{users.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{posts.ErrNotOwner, http.StatusNotFound, "Photo not found or not authorized"},
	{posts.ErrPostNotFound, http.StatusNotFound, "Photo not found"},
	{posts.ErrObjectNotFound, http.StatusNotFound, "File not found"},
	{posts.ErrInvalidUpload, http.StatusBadRequest, ""},
	{posts.ErrInvalidPost, http.StatusBadRequest, ""},
	{comments.ErrCommentNotFound, http.StatusNotFound, "Comment not found"},
	{comments.ErrNotAuthor, http.StatusForbidden, "Not authorized to update this comment"},
	{comments.ErrInvalidPage, http.StatusUnprocessableEntity, ""},
	{health.ErrDatabaseMisconfigured, http.StatusInternalServerError, "Database is not configured correctly"},
	{health.ErrDatabaseUnavailable, http.StatusInternalServerError, "Error connecting to the database"},
}

// abortWithDetail stops the chain and writes an ErrorResponse
func abortWithDetail(ctx *gin.Context, status int, detail string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

// abortWithError maps err onto a response. Unknown errors are logged and become 500.
func abortWithError(ctx *gin.Context, log logger.Logger, err error) {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			detail := mapping.detail
			if detail == "" {
				detail = err.Error()
			}
			abortWithDetail(ctx, mapping.status, detail)
			return
		}
	}

	log.Error("Request ", ctx.Request.Method, " ", ctx.Request.URL.Path, " failed: ", err)
	abortWithDetail(ctx, http.StatusInternalServerError, detailInternal)
}
