// Package redis implements the registry store contract on Redis, the
// production backend shared with existing Resque deployments. Worker
// entries live in a Hash, the scheduler slot in a plain string key, and
// paused workers in a Set — the shapes external tools expect.
//
// Usage:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	s := redisstore.New(client)
//	if err := s.Ping(ctx); err != nil { ... }
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	resquestatus "github.com/TBScreen/resque-status"
)

// Compile-time interface check.
var _ resquestatus.Store = (*Store)(nil)

// Store implements resquestatus.Store backed by Redis.
type Store struct {
	client goredis.Cmdable
}

// New creates a new Redis-backed store. The caller owns the Redis client
// lifecycle.
func New(client goredis.Cmdable) *Store {
	return &Store{client: client}
}

// Client returns the underlying Redis client.
func (s *Store) Client() goredis.Cmdable { return s.client }

// Ping verifies the Redis connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// HashSet writes payload under field in the hash at key.
func (s *Store) HashSet(ctx context.Context, key, field string, payload []byte) error {
	if err := s.client.HSet(ctx, key, field, payload).Err(); err != nil {
		return fmt.Errorf("resquestatus/redis: hset %s: %w", key, err)
	}
	return nil
}

// HashGetAll returns every field of the hash at key. A missing hash
// yields an empty map.
func (s *Store) HashGetAll(ctx context.Context, key string) (map[string][]byte, error) {
	vals, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("resquestatus/redis: hgetall %s: %w", key, err)
	}
	fields := make(map[string][]byte, len(vals))
	for field, v := range vals {
		fields[field] = []byte(v)
	}
	return fields, nil
}

// HashDelete removes field from the hash at key.
func (s *Store) HashDelete(ctx context.Context, key, field string) error {
	if err := s.client.HDel(ctx, key, field).Err(); err != nil {
		return fmt.Errorf("resquestatus/redis: hdel %s: %w", key, err)
	}
	return nil
}

// Set writes a plain string value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("resquestatus/redis: set %s: %w", key, err)
	}
	return nil
}

// Get reads a plain string value; ok is false when the key is absent.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("resquestatus/redis: get %s: %w", key, err)
	}
	return value, true, nil
}

// Delete removes the given keys in a single DEL, which Redis executes
// atomically, and returns how many existed.
func (s *Store) Delete(ctx context.Context, keys ...string) (int64, error) {
	removed, err := s.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("resquestatus/redis: del: %w", err)
	}
	return removed, nil
}

// SetAdd adds member to the set at key.
func (s *Store) SetAdd(ctx context.Context, key, member string) error {
	if err := s.client.SAdd(ctx, key, member).Err(); err != nil {
		return fmt.Errorf("resquestatus/redis: sadd %s: %w", key, err)
	}
	return nil
}

// SetRemove removes member from the set at key.
func (s *Store) SetRemove(ctx context.Context, key, member string) error {
	if err := s.client.SRem(ctx, key, member).Err(); err != nil {
		return fmt.Errorf("resquestatus/redis: srem %s: %w", key, err)
	}
	return nil
}

// SetMembers returns the members of the set at key. A missing set yields
// an empty slice.
func (s *Store) SetMembers(ctx context.Context, key string) ([]string, error) {
	members, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("resquestatus/redis: smembers %s: %w", key, err)
	}
	return members, nil
}
