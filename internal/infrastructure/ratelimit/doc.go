// Package ratelimit implements fixed window request limiters backed by
// process memory or by Redis.
package ratelimit
