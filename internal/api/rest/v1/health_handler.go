package v1

import (
	"net/http"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/health"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// HealthHandler defines the interface for liveness endpoints
type HealthHandler interface {
	Index(ctx *gin.Context)
	HealthChecker(ctx *gin.Context)
}

type healthHandler struct {
	healthService health.Service
	logger        logger.Logger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(healthService health.Service, logger logger.Logger) HealthHandler {
	return &healthHandler{
		healthService: healthService,
		logger:        logger,
	}
}

// Index greets the caller
func (handler *healthHandler) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, MessageResponse{Msg: "Hello World"})
}

// HealthChecker checks the database
func (handler *healthHandler) HealthChecker(ctx *gin.Context) {
	if err := handler.healthService.CheckDatabase(ctx); err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, HealthResponse{Message: "Welcome to FastAPI!"})
}
