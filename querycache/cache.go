// Package querycache caches tenant-scoped query results in process.
//
// Entries are keyed by organization, scope (one per entity) and operation.
// Concurrent identical loads share one call to the loader, and mutations
// invalidate a whole scope at once.
package querycache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Key identifies one cached query
type Key struct {
	OrgID  int
	Scope  string
	Op     string
	Params any
}

// NewKey builds a key; params is encoded as JSON so pointer fields compare by value
func NewKey(orgID int, scope, op string, params any) Key {
	return Key{OrgID: orgID, Scope: scope, Op: op, Params: params}
}

func scopePrefix(orgID int, scope string) string {
	return fmt.Sprintf("org/%d/%s/", orgID, scope)
}

// String renders the key as org/<id>/<scope>/<op>?<params>
func (k Key) String() string {
	s := scopePrefix(k.OrgID, k.Scope) + k.Op
	if k.Params == nil {
		return s
	}
	encoded, err := json.Marshal(k.Params)
	if err != nil {
		return s + "?" + fmt.Sprintf("%+v", k.Params)
	}
	return s + "?" + string(encoded)
}

// Cache is safe for concurrent use. A nil *Cache loads straight through.
type Cache struct {
	entries *expirable.LRU[string, any]
	group   singleflight.Group
	metrics *Metrics

	mu          sync.Mutex
	generations map[string]uint64
}

// New creates a cache holding at most size entries for ttl each
func New(size int, ttl time.Duration, metrics *Metrics) *Cache {
	return &Cache{
		entries:     expirable.NewLRU[string, any](size, nil, ttl),
		metrics:     metrics,
		generations: make(map[string]uint64),
	}
}

func (c *Cache) generation(prefix string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[prefix]
}

// Get returns the cached value for key or calls load to produce it.
//
// Callers asking for the same key while a load is in flight wait for that
// load instead of starting their own. The load keeps the first caller's
// context values but not its cancellation, so one caller giving up does not
// fail the others; a caller whose ctx is done gets ctx.Err() right away.
// Errors are never cached.
func Get[T any](ctx context.Context, c *Cache, key Key, load func(context.Context) (T, error)) (T, error) {
	var zero T
	if c == nil {
		return load(ctx)
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	k := key.String()
	if v, ok := c.entries.Get(k); ok {
		if typed, ok := v.(T); ok {
			c.metrics.hit(key.Scope)
			return typed, nil
		}
		c.entries.Remove(k)
	}
	c.metrics.miss(key.Scope)

	prefix := scopePrefix(key.OrgID, key.Scope)
	gen := c.generation(prefix)
	// An invalidation moves later callers onto a fresh flight
	flightKey := fmt.Sprintf("%s#%d", k, gen)

	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(flightKey, func() (interface{}, error) {
		v, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.generations[prefix] == gen {
			c.entries.Add(k, v)
		}
		c.mu.Unlock()
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Shared {
			c.metrics.share(key.Scope)
		}
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// Invalidate drops every cached query of scope for the organization.
// Loads already in flight for the scope finish but are not stored.
func (c *Cache) Invalidate(orgID int, scope string) {
	if c == nil {
		return
	}
	prefix := scopePrefix(orgID, scope)

	c.mu.Lock()
	c.generations[prefix]++
	for _, k := range c.entries.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.entries.Remove(k)
		}
	}
	c.mu.Unlock()

	c.metrics.invalidate(scope)
}

// Len returns the number of live entries
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

// Purge empties the cache
func (c *Cache) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for prefix := range c.generations {
		c.generations[prefix]++
	}
	c.entries.Purge()
}
