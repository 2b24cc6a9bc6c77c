package commands

import (
	"fmt"
	"os"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/infrastructure/persistence"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/config"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"gorm.io/gorm"
)

const defaultConfigPath = "./configs/rest-app.yaml"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadDatabaseSettings reads the shared configuration and checks only the
// database section, so maintenance commands work without auth or storage secrets
func loadDatabaseSettings() (config.DatabaseSettings, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.LoadRestConfig(path)
	if err != nil {
		return config.DatabaseSettings{}, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return config.DatabaseSettings{}, err
	}
	return cfg.Database, nil
}

// openDatabase connects to the configured database
func openDatabase() (*gorm.DB, error) {
	settings, err := loadDatabaseSettings()
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	return db, nil
}
