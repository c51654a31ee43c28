// Package cache keeps recently fetched remote documents (version index, runtime index,
// maven metadata) in memory.
package cache

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/pkg/errors"
)

const (
	// DefaultTTL is how long a response is considered fresh
	DefaultTTL = time.Hour
	// DefaultSize is the number of urls that are remembered
	DefaultSize = 64
)

type entry struct {
	body    []byte
	fetched time.Time
}

// ResponseCache caches response bodies by url. A fresh entry is always used,
// a stale or missing one is fetched again.
type ResponseCache struct {
	client *http.Client
	store  *lru.Cache[string, entry]
	// mu serializes fetches so concurrent callers do not request the same url twice
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
}

// Option configures a ResponseCache
type Option func(*ResponseCache)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(c *ResponseCache) { c.now = now }
}

// WithTTL sets how long entries stay fresh
func WithTTL(ttl time.Duration) Option {
	return func(c *ResponseCache) { c.ttl = ttl }
}

// New returns a cache that uses client for requests
func New(client *http.Client, opts ...Option) *ResponseCache {
	if client == nil {
		client = http.DefaultClient
	}
	// only fails for a size <= 0
	store, _ := lru.New[string, entry](DefaultSize)

	c := &ResponseCache{
		client: client,
		store:  store,
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the body of url, from the cache if it is fresh
func (c *ResponseCache) Get(ctx context.Context, url string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.store.Get(url); ok && c.now().Sub(cached.fetched) <= c.ttl {
		return cached.body, nil
	}

	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	c.store.Add(url, entry{body: body, fetched: c.now()})
	return body, nil
}

// GetString is Get for text documents
func (c *ResponseCache) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	return string(body), err
}

// Purge forgets every entry
func (c *ResponseCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Purge()
}

// Len returns the number of cached urls
func (c *ResponseCache) Len() int {
	return c.store.Len()
}

func (c *ResponseCache) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(merrors.ErrTransport, "fetching %s: %s", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, errors.Wrapf(merrors.ErrNotFound, "%s", url)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, errors.Wrapf(merrors.ErrTransport, "invalid status code: %s from %s", res.Status, url)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(merrors.ErrTransport, "reading %s: %s", url, err)
	}
	return body, nil
}
