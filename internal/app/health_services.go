package app

import (
	"context"
	"fmt"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/domain/health"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"gorm.io/gorm"
)

// healthService implements the health.Service interface
type healthService struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewHealthService creates a new instance of the database health check
func NewHealthService(db *gorm.DB, logger logger.Logger) (health.Service, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}
	return &healthService{
		db:     db,
		logger: logger,
	}, nil
}

// CheckDatabase runs SELECT 1 and expects exactly that row back
func (s *healthService) CheckDatabase(ctx context.Context) error {
	var one int
	result := s.db.WithContext(ctx).Raw("SELECT 1").Scan(&one)
	if result.Error != nil {
		s.logger.Error("Database health check failed: ", result.Error)
		return fmt.Errorf("%w: %v", health.ErrDatabaseUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		s.logger.Error("Database health check returned no row")
		return health.ErrDatabaseMisconfigured
	}
	return nil
}
