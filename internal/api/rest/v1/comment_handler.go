package v1

import (
	"errors"
	"net/http"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/comments"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CommentHandler defines the interface for handling comment-related operations
type CommentHandler interface {
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ListByPost(ctx *gin.Context)
	ListByUser(ctx *gin.Context)
}

type commentHandler struct {
	commentService comments.CommentService
	logger         logger.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService comments.CommentService, logger logger.Logger) CommentHandler {
	return &commentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// abort reports a missing post as "Post not found" and defers everything else
func (handler *commentHandler) abort(ctx *gin.Context, err error) {
	if errors.Is(err, posts.ErrPostNotFound) {
		abortWithDetail(ctx, http.StatusNotFound, detailPostNotFound)
		return
	}
	abortWithError(ctx, handler.logger, err)
}

// Create adds a comment by the current user to a post
func (handler *commentHandler) Create(ctx *gin.Context) {
	postID, ok := pathID(ctx, "post_id")
	if !ok {
		return
	}

	var request CommentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "text must be between 1 and 500 characters")
		return
	}

	comment, err := handler.commentService.Create(ctx, postID, CurrentUser(ctx).ID, request.Text)
	if err != nil {
		handler.abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewCommentResponse(comment))
}

// Update changes the text of a comment written by the current user
func (handler *commentHandler) Update(ctx *gin.Context) {
	commentID, ok := pathID(ctx, "comment_id")
	if !ok {
		return
	}

	var request CommentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "text must be between 1 and 500 characters")
		return
	}

	comment, err := handler.commentService.Update(ctx, commentID, CurrentUser(ctx).ID, request.Text)
	if err != nil {
		handler.abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewCommentResponse(comment))
}

// DeleteByID removes a comment
func (handler *commentHandler) DeleteByID(ctx *gin.Context) {
	commentID, ok := pathID(ctx, "comment_id")
	if !ok {
		return
	}

	if err := handler.commentService.Delete(ctx, commentID); err != nil {
		handler.abort(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListByPost pages through the comments of a post
func (handler *commentHandler) ListByPost(ctx *gin.Context) {
	postID, ok := pathID(ctx, "post_id")
	if !ok {
		return
	}

	page, ok := pageFromQuery(ctx)
	if !ok {
		return
	}

	list, err := handler.commentService.ListByPost(ctx, postID, page)
	if err != nil {
		handler.abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newCommentResponses(list))
}

// ListByUser pages through the comments written by a user
func (handler *commentHandler) ListByUser(ctx *gin.Context) {
	userID, ok := pathID(ctx, "user_id")
	if !ok {
		return
	}

	page, ok := pageFromQuery(ctx)
	if !ok {
		return
	}

	list, err := handler.commentService.ListByUser(ctx, userID, page)
	if err != nil {
		handler.abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newCommentResponses(list))
}

func pageFromQuery(ctx *gin.Context) (comments.Page, bool) {
	limit, ok := queryInt(ctx, "limit", comments.DefaultLimit)
	if !ok {
		return comments.Page{}, false
	}
	offset, ok := queryInt(ctx, "offset", 0)
	if !ok {
		return comments.Page{}, false
	}
	return comments.Page{Limit: limit, Offset: offset}, true
}

func newCommentResponses(list []*comments.Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(list))
	for _, comment := range list {
		responses = append(responses, NewCommentResponse(comment))
	}
	return responses
}
