package v1

import (
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/comments"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/health"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/ratelimit"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RateLimitKeyPrefix namespaces limiter keys of this API
const RateLimitKeyPrefix = "photoshare:ratelimit:"

// Services bundles everything the routes depend on
type Services struct {
	AuthService          users.AuthService
	UserService          users.UserService
	PhotoUploadService   posts.PhotoUploadService
	PhotoMetadataService posts.PhotoMetadataService
	PhotoDownloadService posts.PhotoDownloadService
	CommentService       comments.CommentService
	HealthService        health.Service
	MaxUploadSize        int64
	Limiter              ratelimit.Limiter
	Logger               logger.Logger
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services) {
	log := services.Logger
	limited := RateLimit(services.Limiter, RateLimitKeyPrefix, log)
	authenticated := Authenticate(services.AuthService, log)
	anyRole := RequireRoles(users.RoleUser, users.RoleModerator, users.RoleAdmin)
	staff := RequireRoles(users.RoleAdmin, users.RoleModerator)
	adminOnly := RequireRoles(users.RoleAdmin)

	healthHandler := NewHealthHandler(services.HealthService, log)
	r.GET("/", limited, healthHandler.Index)

	v1 := r.Group(BasePath) // lookup in version file
	v1.GET("/healthchecker", limited, healthHandler.HealthChecker)

	// Auth Routes
	authHandler := NewAuthHandler(services.AuthService, log)
	v1.POST("/auth/signup", authHandler.Signup)
	v1.POST("/auth/signin", authHandler.Signin)
	v1.GET("/auth/refresh_token", authHandler.RefreshToken)
	v1.POST("/auth/signout", authenticated, authHandler.Signout)

	// Users Routes
	userHandler := NewUserHandler(services.UserService, log)
	v1.GET("/users/me", authenticated, userHandler.GetMe)
	v1.PATCH("/users/me", authenticated, userHandler.UpdateMe)
	v1.GET("/users/:user_id", userHandler.GetByID)
	v1.PATCH("/users/:user_id/role", authenticated, adminOnly, userHandler.ChangeRole)
	v1.POST("/users/:user_id/block", authenticated, staff, userHandler.Block)
	v1.POST("/users/:user_id/unblock", authenticated, staff, userHandler.Unblock)

	// Photos Routes
	photoHandler := NewPhotoHandler(services.PhotoUploadService, services.PhotoMetadataService, services.PhotoDownloadService, services.MaxUploadSize, log)
	photos := v1.Group("/photos", authenticated)
	photos.POST("", photoHandler.Upload)
	photos.GET("", photoHandler.List)
	photos.GET("/:photo_id", photoHandler.GetByID)
	photos.PUT("/:photo_id", photoHandler.UpdateDescription)
	photos.DELETE("/:photo_id", photoHandler.DeleteByID)
	photos.GET("/:photo_id/file", photoHandler.DownloadByID)
	photos.GET("/:photo_id/qrcode", photoHandler.QRCodeByID)

	// Comments Routes
	commentHandler := NewCommentHandler(services.CommentService, log)
	v1.POST("/posts/:post_id/comments/", authenticated, anyRole, commentHandler.Create)
	v1.GET("/posts/:post_id/comments/", commentHandler.ListByPost)
	v1.PUT("/comments/:comment_id/", authenticated, anyRole, commentHandler.Update)
	v1.DELETE("/comments/:comment_id/", authenticated, staff, commentHandler.DeleteByID)
	v1.GET("/users/:user_id/comments/", commentHandler.ListByUser)
}
