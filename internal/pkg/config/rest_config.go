package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the environment
const EnvPrefix = "PHOTOSHARE"

// DefaultPort is the port the REST API listens on when nothing else is configured
const DefaultPort = "8000"

// CORSSettings holds the allowed cross origin sources
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"required,min=1"`
}

// RestConfig is the full configuration of the REST API and the CLI
type RestConfig struct {
	Port          string            `mapstructure:"port" validate:"required,numeric"`
	PublicBaseURL string            `mapstructure:"public_base_url" validate:"required,url"`
	Database      DatabaseSettings  `mapstructure:"database"`
	Logger        LoggerSettings    `mapstructure:"logger"`
	Auth          AuthSettings      `mapstructure:"auth"`
	RateLimit     RateLimitSettings `mapstructure:"rate_limit"`
	Storage       StorageSettings   `mapstructure:"storage"`
	CORS          CORSSettings      `mapstructure:"cors"`
}

// Validate checks the top level fields and every settings section
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.StructExcept(c, "Database", "Logger", "Auth", "RateLimit", "Storage"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	sections := []interface{ Validate() error }{
		&c.Database,
		&c.Logger,
		&c.Auth,
		&c.RateLimit,
		&c.Storage,
	}
	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// envAliases maps configuration keys to environment variable names used by
// earlier deployments of the service. They are consulted after the prefixed name.
var envAliases = map[string][]string{
	"database.dsn":              {"DB_URL"},
	"auth.secret_key":           {"SECRET_KEY_JWT"},
	"auth.algorithm":            {"ALGORITHM"},
	"rate_limit.redis_host":     {"REDIS_DOMAIN"},
	"rate_limit.redis_port":     {"REDIS_PORT"},
	"rate_limit.redis_password": {"REDIS_PASSWORD"},
	"storage.connection_string": {"AZURE_STORAGE_CONNECTION_STRING"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("public_base_url", "http://localhost:"+DefaultPort)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "photoshare.db")
	v.SetDefault("database.name", "")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("auth.secret_key", "")
	v.SetDefault("auth.algorithm", JWTAlgorithmHS256)
	v.SetDefault("auth.access_token_ttl", 15*time.Minute)
	v.SetDefault("auth.refresh_token_ttl", 7*24*time.Hour)

	v.SetDefault("rate_limit.backend", RateLimitBackendMemory)
	v.SetDefault("rate_limit.redis_host", "localhost")
	v.SetDefault("rate_limit.redis_port", 6379)
	v.SetDefault("rate_limit.redis_password", "")
	v.SetDefault("rate_limit.redis_db", 0)
	v.SetDefault("rate_limit.times", 2)
	v.SetDefault("rate_limit.window", 5*time.Second)

	v.SetDefault("storage.backend", StorageBackendLocal)
	v.SetDefault("storage.local_dir", "./media")
	v.SetDefault("storage.connection_string", "")
	v.SetDefault("storage.container_name", "photos")
	v.SetDefault("storage.max_upload_size", 10<<20)

	v.SetDefault("cors.allow_origins", []string{"*"})
}

func bindEnv(v *viper.Viper) error {
	for _, key := range v.AllKeys() {
		names := []string{key, EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}
		names = append(names, envAliases[key]...)
		if err := v.BindEnv(names...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

// InitializeRestConfig loads and validates the configuration
func InitializeRestConfig(path string) (*RestConfig, error) {
	cfg, err := LoadRestConfig(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadRestConfig reads the configuration without validating it. The YAML file at
// path is optional; a .env file in the working directory is loaded into the environment first.
func LoadRestConfig(path string) (*RestConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}
