// cmd/photoshare-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/api/rest/v1"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/app"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/posts"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/connector"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/persistence"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/ratelimit"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/security"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/config"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/metrics"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	ctx := context.Background()
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db           *gorm.DB
	services     *v1.Services
	photoStorage posts.PhotoConnector
	metrics      *metrics.Metrics
}

func (d *appDependencies) close(log logger.Logger) {
	if closer, ok := d.services.Limiter.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Warn("Failed to close rate limiter: ", err)
		}
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("Failed to close database: ", err)
	}
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	postRepo, err := persistence.NewGormPostRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create post repository: %w", err)
	}

	commentRepo, err := persistence.NewGormCommentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment repository: %w", err)
	}

	// Initialize connectors
	photoStorage, err := connector.NewPhotoConnector(ctx, &cfg.Storage, cfg.PublicBaseURL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo connector: %w", err)
	}
	log.Info("Photo connector initialized with backend ", cfg.Storage.Backend)

	// Initialize security primitives
	hasher, err := security.NewBcryptHasher(0)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	tokens, err := security.NewJWTTokenManager(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	limiter, err := ratelimit.NewLimiter(ctx, &cfg.RateLimit, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	// Initialize services
	services := &v1.Services{Limiter: limiter, MaxUploadSize: cfg.Storage.MaxUploadSize, Logger: log}

	if services.AuthService, err = app.NewAuthService(userRepo, hasher, tokens, log); err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	if services.UserService, err = app.NewUserService(userRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	if services.PhotoUploadService, err = app.NewPhotoUploadService(photoStorage, postRepo, connector.NewQRCodeGenerator(), cfg.Storage.MaxUploadSize, log); err != nil {
		return nil, fmt.Errorf("failed to create photo upload service: %w", err)
	}

	if services.PhotoMetadataService, err = app.NewPhotoMetadataService(postRepo, photoStorage, log); err != nil {
		return nil, fmt.Errorf("failed to create photo metadata service: %w", err)
	}

	if services.PhotoDownloadService, err = app.NewPhotoDownloadService(postRepo, photoStorage, log); err != nil {
		return nil, fmt.Errorf("failed to create photo download service: %w", err)
	}

	if services.CommentService, err = app.NewCommentService(commentRepo, postRepo, userRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}

	if services.HealthService, err = app.NewHealthService(db, log); err != nil {
		return nil, fmt.Errorf("failed to create health service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:           db,
		services:     services,
		photoStorage: photoStorage,
		metrics:      metrics.New(log),
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()
	r.MaxMultipartMemory = cfg.Storage.MaxUploadSize
	r.Use(deps.metrics.Middleware())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services)

	// Serve stored photos when they live on the local filesystem
	if local, ok := deps.photoStorage.(*connector.LocalPhotoConnector); ok {
		r.Static(connector.MediaPath, local.Dir())
	}

	r.GET("/metrics", gin.WrapH(deps.metrics.Handler()))

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
