// Package health defines the database connectivity check.
package health

import (
	"context"
	"errors"
)

var (
	// ErrDatabaseMisconfigured is returned when the health query yields no row
	ErrDatabaseMisconfigured = errors.New("database is not configured correctly")
	// ErrDatabaseUnavailable is returned when the health query fails
	ErrDatabaseUnavailable = errors.New("error connecting to the database")
)

// Service checks that the database answers queries
type Service interface {
	CheckDatabase(ctx context.Context) error
}
