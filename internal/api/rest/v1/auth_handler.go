package v1

import (
	"net/http"
	"strings"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for account and token operations
type AuthHandler interface {
	Signup(ctx *gin.Context)
	Signin(ctx *gin.Context)
	RefreshToken(ctx *gin.Context)
	Signout(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
	logger      logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, logger logger.Logger) AuthHandler {
	return &authHandler{
		authService: authService,
		logger:      logger,
	}
}

// Signup registers a new account
func (handler *authHandler) Signup(ctx *gin.Context) {
	var request users.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, err := handler.authService.Signup(ctx, &request)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewUserResponse(user))
}

// Signin accepts either a JSON body or an OAuth2 password form where the email is sent as username
func (handler *authHandler) Signin(ctx *gin.Context) {
	var request SigninRequest

	contentType := ctx.ContentType()
	if contentType == "application/x-www-form-urlencoded" || strings.HasPrefix(contentType, "multipart/form-data") {
		request.Email = ctx.PostForm("username")
		request.Password = ctx.PostForm("password")
		if request.Email == "" || request.Password == "" {
			abortWithDetail(ctx, http.StatusUnprocessableEntity, "username and password are required")
			return
		}
	} else if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "email and password are required")
		return
	}

	pair, err := handler.authService.Signin(ctx, request.Email, request.Password)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewTokenResponse(pair))
}

// RefreshToken exchanges the refresh token sent as bearer token for a new pair
func (handler *authHandler) RefreshToken(ctx *gin.Context) {
	token, ok := bearerToken(ctx)
	if !ok {
		abortUnauthenticated(ctx)
		return
	}

	pair, err := handler.authService.RefreshToken(ctx, token)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewTokenResponse(pair))
}

// Signout revokes the stored refresh token of the current user
func (handler *authHandler) Signout(ctx *gin.Context) {
	if err := handler.authService.Signout(ctx, CurrentUser(ctx)); err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Msg: "Successfully logged out"})
}
