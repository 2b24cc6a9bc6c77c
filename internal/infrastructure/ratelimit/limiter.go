package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/config"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Limiter counts hits per key in fixed windows of `times` hits per `window`
type Limiter interface {
	// Allow registers a hit for key. It returns zero when the hit is allowed,
	// otherwise the time left until the window closes.
	Allow(ctx context.Context, key string) (time.Duration, error)
}

// NewLimiter builds the limiter selected in settings
func NewLimiter(ctx context.Context, settings *config.RateLimitSettings, logger logger.Logger) (Limiter, error) {
	switch settings.Backend {
	case config.RateLimitBackendMemory:
		return NewMemoryLimiter(settings.Times, settings.Window), nil
	case config.RateLimitBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     settings.RedisAddr(),
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", settings.RedisAddr(), err)
		}
		logger.Info("Connected rate limiter to redis at ", settings.RedisAddr())
		return NewRedisLimiter(client, settings.Times, settings.Window), nil
	default:
		return nil, fmt.Errorf("unsupported rate limit backend: %s", settings.Backend)
	}
}
