package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// IngestMarker tracks which platform message IDs were already imported so
// that re-polling a connector does not duplicate rows.
type IngestMarker interface {
	// MarkSeen records the key and reports whether it was newly seen.
	MarkSeen(ctx context.Context, key string) (bool, error)
}

// RedisIngestMarker backs IngestMarker with redis SETNX keys shared across
// service instances.
type RedisIngestMarker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisIngestMarker(client *redis.Client, ttl time.Duration) *RedisIngestMarker {
	return &RedisIngestMarker{client: client, ttl: ttl}
}

func (m *RedisIngestMarker) MarkSeen(ctx context.Context, key string) (bool, error) {
	return m.client.SetNX(ctx, key, "1", m.ttl).Result()
}
