package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"agentvoice/room-api/internal/domain/credential"
)

const keyPrefix = "cred:"

// RedisStore keeps credential entries in Redis with native TTL expiry, so
// every service instance sees the same issued and revoked credentials.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Put stores an entry with a TTL matching its expiry.
func (s *RedisStore) Put(ctx context.Context, digest string, e credential.Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal credential entry: %w", err)
	}
	ttl := time.Until(e.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, keyPrefix+digest, data, ttl).Err(); err != nil {
		return fmt.Errorf("store credential entry: %w", err)
	}
	return nil
}

// Get returns the entry for a digest, or nil when absent or expired.
func (s *RedisStore) Get(ctx context.Context, digest string) (*credential.Entry, error) {
	data, err := s.client.Get(ctx, keyPrefix+digest).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load credential entry: %w", err)
	}

	var e credential.Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal credential entry: %w", err)
	}
	return &e, nil
}

// Delete removes an entry and reports whether it existed.
func (s *RedisStore) Delete(ctx context.Context, digest string) (bool, error) {
	n, err := s.client.Del(ctx, keyPrefix+digest).Result()
	if err != nil {
		return false, fmt.Errorf("delete credential entry: %w", err)
	}
	return n > 0, nil
}

// DeleteExpired is a no-op; Redis expires keys by TTL on its own.
func (s *RedisStore) DeleteExpired(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}
