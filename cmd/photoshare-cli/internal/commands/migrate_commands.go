package commands

import (
	"fmt"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/persistence"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// MigrateCommandHandler applies the database schema
type MigrateCommandHandler struct {
	openDB func() (*gorm.DB, error)
	logger logger.Logger
}

// NewMigrateCommandHandler initializes and returns a MigrateCommandHandler instance.
// The database is opened when the command runs.
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &MigrateCommandHandler{
		openDB: openDatabase,
		logger: loggerInstance,
	}, nil
}

// MigrateCmd creates or updates the tables of users, posts, tags and comments
func (commandHandler *MigrateCommandHandler) MigrateCmd(_ *cobra.Command, _ []string) error {
	db, err := commandHandler.openDB()
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("failed to close database ", err)
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	commandHandler.logger.Info("Database schema is up to date")
	return nil
}

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrateCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create migrate command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
