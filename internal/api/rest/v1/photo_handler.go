package v1

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/users"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PhotoHandler defines the interface for handling photo-related operations
type PhotoHandler interface {
	Upload(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateDescription(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	QRCodeByID(ctx *gin.Context)
}

// multipartOverhead is the room left for form fields and part headers on top
// of the file size limit
const multipartOverhead = 1 << 20

type photoHandler struct {
	photoUploadService   posts.PhotoUploadService
	photoMetadataService posts.PhotoMetadataService
	photoDownloadService posts.PhotoDownloadService
	maxUploadSize        int64
	logger               logger.Logger
}

// NewPhotoHandler creates a new PhotoHandler. Request bodies of uploads are
// capped at maxUploadSize plus the multipart overhead.
func NewPhotoHandler(photoUploadService posts.PhotoUploadService, photoMetadataService posts.PhotoMetadataService, photoDownloadService posts.PhotoDownloadService, maxUploadSize int64, logger logger.Logger) PhotoHandler {
	return &photoHandler{
		photoUploadService:   photoUploadService,
		photoMetadataService: photoMetadataService,
		photoDownloadService: photoDownloadService,
		maxUploadSize:        maxUploadSize,
		logger:               logger,
	}
}

func (handler *photoHandler) abortTooLarge(ctx *gin.Context) {
	abortWithDetail(ctx, http.StatusBadRequest, fmt.Sprintf("%s: file exceeds %d bytes", posts.ErrInvalidUpload, handler.maxUploadSize))
}

// Upload stores a photo sent as multipart form with optional description and tags
func (handler *photoHandler) Upload(ctx *gin.Context) {
	bodyLimit := handler.maxUploadSize + multipartOverhead
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, bodyLimit)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || ctx.Request.ContentLength > bodyLimit {
			handler.abortTooLarge(ctx)
			return
		}
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "file is required")
		return
	}
	if fileHeader.Size > handler.maxUploadSize {
		handler.abortTooLarge(ctx)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithDetail(ctx, http.StatusBadRequest, "invalid form data")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, handler.maxUploadSize+1))
	if err != nil {
		abortWithDetail(ctx, http.StatusBadRequest, "invalid form data")
		return
	}
	if int64(len(data)) > handler.maxUploadSize {
		handler.abortTooLarge(ctx)
		return
	}

	upload := &posts.PhotoUpload{
		FileName:    fileHeader.Filename,
		ContentType: detectContentType(fileHeader.Header.Get("Content-Type"), data),
		Data:        data,
		Tags:        ctx.PostFormArray("tags"),
	}
	if description, ok := ctx.GetPostForm("description"); ok && description != "" {
		upload.Description = &description
	}

	post, err := handler.photoUploadService.Upload(ctx, CurrentUser(ctx).ID, upload)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewPostResponse(post))
}

// detectContentType trusts the declared part type unless it is missing or generic
func detectContentType(declared string, data []byte) string {
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != "application/octet-stream" {
		return mediaType
	}
	mediaType, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mediaType
}

// List fetches photos filtered by owner and tag
func (handler *photoHandler) List(ctx *gin.Context) {
	query := posts.NewPostQuery()

	if ownerID := ctx.Query("owner_id"); len(ownerID) > 0 {
		id, err := strconv.ParseUint(ownerID, 10, 64)
		if err != nil {
			abortWithDetail(ctx, http.StatusUnprocessableEntity, "invalid owner_id")
			return
		}
		query.OwnerID = uint(id)
	}

	if tag := strings.Join(strings.Fields(strings.ToLower(ctx.Query("tag"))), " "); len(tag) > 0 {
		query.Tag = tag
	}

	var ok bool
	if query.Limit, ok = queryInt(ctx, "limit", posts.DefaultLimit); !ok {
		return
	}
	if query.Offset, ok = queryInt(ctx, "offset", 0); !ok {
		return
	}

	if sortBy := ctx.Query("sort_by"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sort_order"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}

	list, err := handler.photoMetadataService.List(ctx, query)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	responses := make([]PostResponse, 0, len(list))
	for _, post := range list {
		responses = append(responses, NewPostResponse(post))
	}

	ctx.JSON(http.StatusOK, responses)
}

// GetByID fetches a photo by its id
func (handler *photoHandler) GetByID(ctx *gin.Context) {
	postID, ok := pathID(ctx, "photo_id")
	if !ok {
		return
	}

	post, err := handler.photoMetadataService.GetByID(ctx, postID)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewPostResponse(post))
}

// UpdateDescription replaces the description of a photo owned by the caller
func (handler *photoHandler) UpdateDescription(ctx *gin.Context) {
	postID, ok := pathID(ctx, "photo_id")
	if !ok {
		return
	}

	var request DescriptionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	post, err := handler.photoMetadataService.UpdateDescription(ctx, postID, CurrentUser(ctx).ID, request.Description)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewPostResponse(post))
}

// DeleteByID removes a photo owned by the caller. Admins may remove any photo.
func (handler *photoHandler) DeleteByID(ctx *gin.Context) {
	postID, ok := pathID(ctx, "photo_id")
	if !ok {
		return
	}

	caller := CurrentUser(ctx)
	post, err := handler.photoMetadataService.Delete(ctx, postID, caller.ID, caller.HasRole(users.RoleAdmin))
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewPostResponse(post))
}

// DownloadByID streams the stored image
func (handler *photoHandler) DownloadByID(ctx *gin.Context) {
	postID, ok := pathID(ctx, "photo_id")
	if !ok {
		return
	}

	data, contentType, err := handler.photoDownloadService.Download(ctx, postID)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.Data(http.StatusOK, contentType, data)
}

// QRCodeByID streams the QR code PNG pointing at the image
func (handler *photoHandler) QRCodeByID(ctx *gin.Context) {
	postID, ok := pathID(ctx, "photo_id")
	if !ok {
		return
	}

	data, err := handler.photoDownloadService.QRCode(ctx, postID)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.Data(http.StatusOK, "image/png", data)
}
