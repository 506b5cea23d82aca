// Package cache provides a small JSON cache on top of Redis with
// generation-based invalidation: readers embed the current generation of a
// namespace in their keys and writers bump it, which orphans every entry of
// that namespace at once and lets the TTL collect them.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configure the Redis connection and entry lifetime.
type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every key.
	Prefix string
	TTL    time.Duration
}

// Redis is a JSON cache backed by a Redis client. It is safe for concurrent use.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, opts Options) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return &Redis{client: client, prefix: opts.Prefix, ttl: opts.TTL}, nil
}

// Get decodes the entry stored under key into dst. It reports false when the
// entry does not exist.
func (r *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not get %q: %w", key, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("could not decode %q: %w", key, err)
	}

	return true, nil
}

// Set stores v as JSON under key for the configured TTL.
func (r *Redis) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", key, err)
	}
	if err := r.client.Set(ctx, r.prefix+key, b, r.ttl).Err(); err != nil {
		return fmt.Errorf("could not set %q: %w", key, err)
	}

	return nil
}

// Generation returns the current generation of namespace, 0 if it was never
// bumped.
func (r *Redis) Generation(ctx context.Context, namespace string) (int64, error) {
	s, err := r.client.Get(ctx, r.generationKey(namespace)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not get generation of %q: %w", namespace, err)
	}
	gen, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse generation of %q: %w", namespace, err)
	}

	return gen, nil
}

// Bump advances the generation of namespace and returns the new value.
func (r *Redis) Bump(ctx context.Context, namespace string) (int64, error) {
	gen, err := r.client.Incr(ctx, r.generationKey(namespace)).Result()
	if err != nil {
		return 0, fmt.Errorf("could not bump generation of %q: %w", namespace, err)
	}

	return gen, nil
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) generationKey(namespace string) string {
	return r.prefix + namespace + ":gen"
}
