// Package redis caches solved completions in Redis for serve mode. The solver
// is deterministic, so a completion cached for a cleaned trace is valid for
// every later request of the same trace (against the same model).
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/splice/internal/logging"
	"github.com/aretw0/splice/pkg/domain"
)

// Cache stores completions keyed by a digest of the cleaned trace.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

type Option func(*Cache)

// WithTTL sets the expiration for cached completions.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached completions.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// WithLogger sets the cache logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New creates a Redis-backed cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "splice:completion:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(cache)
	}
	if cache.logger == nil {
		cache.logger = logging.NewNop()
	}
	return cache
}

// Get returns the cached completion for a cleaned trace. Any failure (missing
// key, redis down, stale encoding) is a miss: the caller recomputes.
func (c *Cache) Get(ctx context.Context, trace string) (*domain.Completion, bool) {
	data, err := c.client.Get(ctx, c.key(trace)).Bytes()
	if err != nil {
		if err != backend.Nil {
			c.logger.Debug("cache get failed", "error", err)
		}
		return nil, false
	}

	var completion domain.Completion
	if err := json.Unmarshal(data, &completion); err != nil {
		c.logger.Debug("cache entry undecodable, treating as miss", "error", err)
		return nil, false
	}
	return &completion, true
}

// Put stores the completion for a cleaned trace. Failures are logged and
// swallowed; caching is best effort.
func (c *Cache) Put(ctx context.Context, trace string, completion *domain.Completion) {
	data, err := json.Marshal(completion)
	if err != nil {
		c.logger.Debug("cache put marshal failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, c.key(trace), data, c.ttl).Err(); err != nil {
		c.logger.Debug("cache put failed", "error", err)
	}
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) key(trace string) string {
	sum := sha256.Sum256([]byte(trace))
	return c.prefix + hex.EncodeToString(sum[:])
}
