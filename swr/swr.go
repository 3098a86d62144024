// Package swr is a keyed, caching data layer: reads are served from a cache
// while fresh and concurrent reads of the same key share a single fetch.
package swr

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNoFetcher      = errors.New("swr: no fetcher configured")
	ErrUnexpectedType = errors.New("swr: unexpected value type")
)

// Fetcher resolves the value for a key.
type Fetcher func(ctx context.Context, key string) (any, error)

// Config is handed to New and scopes everything a client uses. Building a
// fresh Config per render tree keeps trees from seeing each other's data.
type Config struct {
	// Provider supplies the cache. Defaults to DefaultProvider.
	Provider Provider
	Fetcher  Fetcher
	// DedupingInterval is how long a cached value is served without
	// refetching. Zero means every read that isn't joining an in-flight
	// fetch hits the fetcher.
	DedupingInterval time.Duration
	Logger           zerolog.Logger
}

type Client struct {
	cache    Cache
	fetcher  Fetcher
	interval time.Duration
	log      zerolog.Logger
	group    singleflight.Group
	now      func() time.Time

	// generations counts Mutate and Invalidate calls per key. A fetch only
	// stores its result if the generation didn't move while it ran.
	mu          sync.Mutex
	generations map[string]uint64
}

func New(cfg Config) *Client {
	provider := cfg.Provider
	if provider == nil {
		provider = DefaultProvider
	}

	return &Client{
		cache:    provider(),
		fetcher:  cfg.Fetcher,
		interval: cfg.DedupingInterval,
		log:      cfg.Logger,
		now:      time.Now,

		generations: make(map[string]uint64),
	}
}

// Cache returns the cache instance the client was created with.
func (c *Client) Cache() Cache {
	return c.cache
}

// Read returns the value for key. Fresh cached values are returned directly,
// otherwise the fetcher is called, sharing the call with any concurrent
// readers of the same key. Cancelling ctx only abandons this caller's wait.
func (c *Client) Read(ctx context.Context, key string) (any, error) {
	if entry, ok := c.cache.Get(key); ok && c.now().Sub(entry.UpdatedAt) < c.interval {
		c.log.Debug().Str("key", key).Msg("cache hit")
		return entry.Value, nil
	}
	if c.fetcher == nil {
		return nil, ErrNoFetcher
	}

	result := c.group.DoChan(key, func() (any, error) {
		generation := c.generation(key)
		// Detached so one caller giving up doesn't fail the others.
		value, err := c.fetcher(context.WithoutCancel(ctx), key)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.generations[key] != generation {
			c.log.Debug().Str("key", key).Msg("dropping fetch overtaken by mutation")
			return value, nil
		}
		c.cache.Set(key, Entry{Value: value, UpdatedAt: c.now()})
		return value, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-result:
		if res.Err != nil {
			c.log.Warn().Err(res.Err).Str("key", key).Msg("fetch failed")
			return nil, fmt.Errorf("fetch %s: %w", key, res.Err)
		}
		c.log.Debug().Str("key", key).Bool("shared", res.Shared).Msg("fetched")
		return res.Val, nil
	}
}

func (c *Client) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[key]
}

// Mutate replaces the cached value for key, e.g. after a sign in. Fetches
// already in flight for key no longer update the cache, and later reads
// don't join them.
func (c *Client) Mutate(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[key]++
	c.group.Forget(key)
	c.cache.Set(key, Entry{Value: value, UpdatedAt: c.now()})
}

// Invalidate drops the cached value so the next read fetches, discarding
// the result of any fetch already in flight.
func (c *Client) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[key]++
	c.group.Forget(key)
	c.cache.Delete(key)
}

// Get is Read with the value asserted to T.
func Get[T any](ctx context.Context, c *Client, key string) (T, error) {
	var zero T
	value, err := c.Read(ctx, key)
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T", ErrUnexpectedType, key, value)
	}
	return typed, nil
}
