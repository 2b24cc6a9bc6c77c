package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Rate limiter backends
const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

// RateLimitSettings configures the fixed window limiter guarding public endpoints
type RateLimitSettings struct {
	Backend       string        `mapstructure:"backend" validate:"required,oneof=memory redis"`
	RedisHost     string        `mapstructure:"redis_host" validate:"required_if=Backend redis"`
	RedisPort     int           `mapstructure:"redis_port" validate:"required_if=Backend redis,max=65535"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db" validate:"min=0"`
	Times         int           `mapstructure:"times" validate:"required,min=1"`
	Window        time.Duration `mapstructure:"window" validate:"required"`
}

// RedisAddr returns the host:port pair of the redis server
func (s *RateLimitSettings) RedisAddr() string {
	return net.JoinHostPort(s.RedisHost, strconv.Itoa(s.RedisPort))
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}

	if s.Window < time.Millisecond {
		return fmt.Errorf("rate limit window must be at least 1ms")
	}

	return nil
}
