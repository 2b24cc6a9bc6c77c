package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript returns 0 when the hit is allowed, otherwise the
// remaining lifetime of the window in milliseconds.
var fixedWindowScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local expire_time = ARGV[2]

local current = tonumber(redis.call("GET", key) or "0")
if current > 0 then
  if current + 1 > limit then
    return redis.call("PTTL", key)
  else
    redis.call("INCR", key)
    return 0
  end
else
  redis.call("SET", key, 1, "PX", expire_time)
  return 0
end
`)

// RedisLimiter shares the windows between replicas through Redis
type RedisLimiter struct {
	client *redis.Client
	times  int
	period time.Duration
}

// NewRedisLimiter allows times hits per period for each key
func NewRedisLimiter(client *redis.Client, times int, period time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		times:  times,
		period: period,
	}
}

// Allow implements Limiter
func (l *RedisLimiter) Allow(ctx context.Context, key string) (time.Duration, error) {
	pttl, err := fixedWindowScript.Run(ctx, l.client, []string{key}, l.times, l.period.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate rate limit for %s: %w", key, err)
	}
	if pttl <= 0 {
		return 0, nil
	}
	return time.Duration(pttl) * time.Millisecond, nil
}

// Close releases the redis connection pool
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
