package state

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lines"

// RedisStore persists task state in Redis so restarts during a game day do
// not replay halftime or final writes. Entries expire after the TTL; a slate
// is only interesting for a day or two.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig holds connection settings for the Redis backend.
type RedisConfig struct {
	Addr string
	DB   int
	TTL  time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("state: redis ping: %w", err)
	}
	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) SeenRow(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key("row", key)).Result()
	if err != nil {
		return false, fmt.Errorf("state: seen row: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) MarkRow(ctx context.Context, key string) error {
	if err := s.client.Set(ctx, s.key("row", key), "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("state: mark row: %w", err)
	}
	return nil
}

func (s *RedisStore) LastLive(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.key("live", key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("state: last live: %w", err)
	}
	return val, nil
}

func (s *RedisStore) SetLastLive(ctx context.Context, key, fingerprint string) error {
	if err := s.client.Set(ctx, s.key("live", key), fingerprint, s.ttl).Err(); err != nil {
		return fmt.Errorf("state: set last live: %w", err)
	}
	return nil
}

func (s *RedisStore) MarkHalftime(ctx context.Context, key string) (bool, error) {
	return s.setOnce(ctx, s.key("half", key))
}

func (s *RedisStore) MarkFinal(ctx context.Context, key string) (bool, error) {
	return s.setOnce(ctx, s.key("final", key))
}

// setOnce uses SETNX so only one process wins the first-write race.
func (s *RedisStore) setOnce(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, "1", s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("state: set once: %w", err)
	}
	return ok, nil
}

func (s *RedisStore) key(kind, key string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, kind, key)
}
