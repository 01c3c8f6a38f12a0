// ABOUTME: Redis preference store using the go-redis client
// ABOUTME: Shares selected city, district and league across processes

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"newsreader-core/core/interfaces"
	"newsreader-core/pkg/config"
)

const (
	defaultPrefix      = "newsreader:"
	defaultPingTimeout = 5 * time.Second
	scanBatch          = 100
)

// Option customizes a RedisCache.
type Option func(*RedisCache)

// WithKeyPrefix namespaces every key. Processes sharing a database but not
// preferences should use distinct prefixes.
func WithKeyPrefix(prefix string) Option {
	return func(c *RedisCache) { c.prefix = prefix }
}

// WithPingTimeout bounds the connection check done by NewRedisCache.
func WithPingTimeout(d time.Duration) Option {
	return func(c *RedisCache) {
		if d > 0 {
			c.pingTimeout = d
		}
	}
}

// RedisCache stores preference values under a key prefix.
type RedisCache struct {
	client      *redis.Client
	prefix      string
	pingTimeout time.Duration
}

// NewRedisCache connects to cfg.Address and fails fast when the server does
// not answer a ping.
func NewRedisCache(cfg config.RedisConfig, opts ...Option) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	c := newWithClient(redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), opts...)

	ctx, cancel := context.WithTimeout(context.Background(), c.pingTimeout)
	defer cancel()
	if err := c.client.Ping(ctx).Err(); err != nil {
		_ = c.client.Close()
		return nil, fmt.Errorf("redis %s unreachable: %w", cfg.Address, err)
	}
	return c, nil
}

func newWithClient(client *redis.Client, opts ...Option) *RedisCache {
	c := &RedisCache{client: client, prefix: defaultPrefix, pingTimeout: defaultPingTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// key maps a preference key into the namespace.
func (c *RedisCache) key(k string) (string, error) {
	if k == "" {
		return "", errors.New("redis: key cannot be empty")
	}
	return c.prefix + k, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	k, err := c.key(key)
	if err != nil {
		return nil, err
	}
	val, err := c.client.Get(ctx, k).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, interfaces.ErrCacheMiss
	case err != nil:
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Set stores value. A non-positive ttl keeps the value until it is deleted.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	k, err := c.key(key)
	if err != nil {
		return err
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, k, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	k, err := c.key(key)
	if err != nil {
		return err
	}
	if err := c.client.Del(ctx, k).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}

// Clear removes every key under the prefix and reports how many were
// deleted. Keys outside the namespace are left alone.
func (c *RedisCache) Clear(ctx context.Context) (int, error) {
	if c.prefix == "" {
		return 0, errors.New("redis: refusing to clear without a key prefix")
	}
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", scanBatch).Result()
		if err != nil {
			return removed, fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("redis clear: %w", err)
			}
			removed += int(n)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
