package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Photo storage backends
const (
	StorageBackendLocal = "local"
	StorageBackendAzure = "azure"
)

// StorageSettings selects and configures where photo and QR code objects are kept
type StorageSettings struct {
	Backend          string `mapstructure:"backend" validate:"required,oneof=local azure"`
	LocalDir         string `mapstructure:"local_dir" validate:"required_if=Backend local"`
	ConnectionString string `mapstructure:"connection_string" validate:"required_if=Backend azure"`
	ContainerName    string `mapstructure:"container_name" validate:"required_if=Backend azure"`
	MaxUploadSize    int64  `mapstructure:"max_upload_size" validate:"required,min=1"`
}

// Validate checks that all fields in StorageSettings are valid
func (s *StorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}

	return nil
}
