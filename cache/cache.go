// Package cache provides a generic expiring cache over a durable
// key-value store.
//
// Entries carry their own TTL and are evicted lazily: an expired entry is
// removed the first time a read observes it. There is no background sweep.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/LinguaLabs/golingo"
	"github.com/LinguaLabs/golingo/store"
)

// DefaultPrefix namespaces cache entries in the shared store.
const DefaultPrefix = "cache:"

// DefaultTTL is used when no TTL is given.
const DefaultTTL = time.Hour

// envelope is the persisted shape of one cache entry.
type envelope struct {
	Data     json.RawMessage `json:"data"`
	StoredAt int64           `json:"storedAt"` // Unix ms
	TTLMs    int64           `json:"ttlMs"`
}

// Cache is an expiring key-value cache. Storage failures degrade to cache
// misses or logged no-ops; they are never fatal to the caller's operation.
type Cache struct {
	store  store.KeyValueStore
	prefix string
	ttl    time.Duration
	log    logrus.FieldLogger
	group  singleflight.Group

	now func() time.Time // Overridable in tests
}

// Option is a functional option for configuring the Cache.
type Option func(*Cache)

// WithPrefix overrides the key namespace prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// WithDefaultTTL overrides the default entry TTL.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithLogger sets the structured logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Cache) {
		c.log = log
	}
}

// New creates a cache backed by kv.
func New(kv store.KeyValueStore, opts ...Option) *Cache {
	c := &Cache{
		store:  kv,
		prefix: DefaultPrefix,
		ttl:    DefaultTTL,
		log:    discardLogger(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get retrieves a cached value. Returns the data and true on a hit. An
// absent, expired, corrupt, or unreadable entry is a miss; expired and
// corrupt entries are removed on encounter.
func (c *Cache) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	raw, err := c.store.Get(ctx, c.prefix+key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.log.WithError(err).WithField("key", key).Warn("cache read failed")
		}
		return nil, false
	}

	var e envelope
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		// Corrupt entry: evict so it cannot poison later reads.
		c.log.WithError(err).WithField("key", key).Warn("evicting corrupt cache entry")
		c.evict(ctx, key)
		return nil, false
	}

	if c.now().UnixMilli()-e.StoredAt > e.TTLMs {
		c.evict(ctx, key)
		return nil, false
	}

	return e.Data, true
}

// Put stores a value under the default TTL, overwriting any existing entry.
// Cache writes are best-effort: the error is logged and may be ignored.
func (c *Cache) Put(ctx context.Context, key string, data json.RawMessage) error {
	return c.PutTTL(ctx, key, data, c.ttl)
}

// PutTTL stores a value with an explicit TTL. A non-positive TTL falls back
// to the default.
func (c *Cache) PutTTL(ctx context.Context, key string, data json.RawMessage, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}

	raw, err := json.Marshal(envelope{
		Data:     data,
		StoredAt: c.now().UnixMilli(),
		TTLMs:    ttl.Milliseconds(),
	})
	if err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cache write failed")
		return err
	}

	if err := c.store.Set(ctx, c.prefix+key, string(raw)); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cache write failed")
		return err
	}
	return nil
}

// Invalidate removes one entry. Removing a missing entry is not an error.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	if err := c.store.Delete(ctx, c.prefix+key); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cache invalidate failed")
		return err
	}
	return nil
}

// InvalidateAll removes every entry under the cache prefix, leaving
// unrelated keys in the shared store untouched.
func (c *Cache) InvalidateAll(ctx context.Context) error {
	keys, err := c.store.ListKeys(ctx)
	if err != nil {
		c.log.WithError(err).Warn("cache invalidate-all failed")
		return err
	}

	var mine []string
	for _, key := range keys {
		if len(key) >= len(c.prefix) && key[:len(c.prefix)] == c.prefix {
			mine = append(mine, key)
		}
	}

	if err := c.store.DeleteMany(ctx, mine); err != nil {
		c.log.WithError(err).Warn("cache invalidate-all failed")
		return err
	}
	return nil
}

// FetchFunc loads a value on cache miss.
type FetchFunc func(ctx context.Context) (json.RawMessage, error)

// fetchOptions collects per-call FetchWithCache settings.
type fetchOptions struct {
	key string
	ttl time.Duration
}

// FetchOption is a per-call option for FetchWithCache.
type FetchOption func(*fetchOptions)

// WithKey caches the result under an explicit key instead of the resource name.
func WithKey(key string) FetchOption {
	return func(o *fetchOptions) {
		o.key = key
	}
}

// WithTTL sets the TTL for the fetched entry.
func WithTTL(ttl time.Duration) FetchOption {
	return func(o *fetchOptions) {
		o.ttl = ttl
	}
}

// FetchWithCache returns the cached value for resource if present, and
// otherwise invokes fetch, caching its result before returning it. A fetch
// failure propagates uncached. Concurrent misses on the same key share a
// single fetch.
func (c *Cache) FetchWithCache(ctx context.Context, resource string, fetch FetchFunc, opts ...FetchOption) (json.RawMessage, error) {
	o := fetchOptions{key: resource, ttl: c.ttl}
	for _, opt := range opts {
		opt(&o)
	}

	if data, ok := c.Get(ctx, o.key); ok {
		return data, nil
	}

	v, err, _ := c.group.Do(o.key, func() (interface{}, error) {
		// Re-check: another goroutine may have filled the entry while
		// this one waited on the flight group.
		if data, ok := c.Get(ctx, o.key); ok {
			return data, nil
		}

		data, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		_ = c.PutTTL(ctx, o.key, data, o.ttl) // Cache writes are best-effort
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// evict deletes a key, logging failures. Used on expired/corrupt entries.
func (c *Cache) evict(ctx context.Context, key string) {
	if err := c.store.Delete(ctx, c.prefix+key); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cache eviction failed")
	}
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Verify Cache implements the Router's cache interface
var _ golingo.TranslationCache = (*Cache)(nil)
