package v1

import (
	"fmt"
	"net/http"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for profile and administration operations
type UserHandler interface {
	GetMe(ctx *gin.Context)
	UpdateMe(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	ChangeRole(ctx *gin.Context)
	Block(ctx *gin.Context)
	Unblock(ctx *gin.Context)
}

type userHandler struct {
	userService users.UserService
	logger      logger.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService, logger logger.Logger) UserHandler {
	return &userHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetMe returns the profile of the current user
func (handler *userHandler) GetMe(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, NewUserResponse(CurrentUser(ctx)))
}

// UpdateMe patches the profile of the current user
func (handler *userHandler) UpdateMe(ctx *gin.Context) {
	var request ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	update, err := request.ToDomain()
	if err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, err := handler.userService.UpdateProfile(ctx, CurrentUser(ctx).ID, update)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

// GetByID returns the public profile of a user
func (handler *userHandler) GetByID(ctx *gin.Context) {
	userID, ok := pathID(ctx, "user_id")
	if !ok {
		return
	}

	user, err := handler.userService.GetByID(ctx, userID)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

// ChangeRole sets the role of a user
func (handler *userHandler) ChangeRole(ctx *gin.Context) {
	userID, ok := pathID(ctx, "user_id")
	if !ok {
		return
	}

	var request RoleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "role is required")
		return
	}

	user, err := handler.userService.ChangeRole(ctx, userID, users.Role(request.Role))
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(user))
}

// Block prevents a user from signing in
func (handler *userHandler) Block(ctx *gin.Context) {
	handler.setBlocked(ctx, true)
}

// Unblock lifts a block
func (handler *userHandler) Unblock(ctx *gin.Context) {
	handler.setBlocked(ctx, false)
}

func (handler *userHandler) setBlocked(ctx *gin.Context, blocked bool) {
	userID, ok := pathID(ctx, "user_id")
	if !ok {
		return
	}

	user, err := handler.userService.SetBlocked(ctx, userID, blocked)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	state := "unblocked"
	if blocked {
		state = "blocked"
	}
	ctx.JSON(http.StatusOK, MessageResponse{Msg: fmt.Sprintf("User %s is %s", user.Email, state)})
}
