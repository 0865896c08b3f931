// SPDX-License-Identifier: MIT
// Package: hypercubes/builder
//
// cache.go - memo of built subtrees keyed by (geometry, rule suffix).

package builder

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes subtrees by the value key of their geometry and remaining
// rules. It is safe for concurrent use. Failed builds are not stored.
type Cache struct {
	mu     sync.RWMutex
	nodes  map[string]*Node
	flight singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{nodes: make(map[string]*Node)}
}

// Len returns the number of stored subtrees.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.nodes)
}

// Stats returns the current counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.Len(),
	}
}

func (c *Cache) lookup(key string) (*Node, bool) {
	c.mu.RLock()
	n, ok := c.nodes[key]
	c.mu.RUnlock()

	return n, ok
}

// getOrBuild returns the node stored under key, running build at most once
// per key among concurrent callers. build may call getOrBuild for other keys.
func (c *Cache) getOrBuild(key string, build func() (*Node, error)) (*Node, error) {
	if n, ok := c.lookup(key); ok {
		c.hits.Add(1)
		return n, nil
	}

	ran := false
	v, err, _ := c.flight.Do(key, func() (any, error) {
		// Another flight may have stored the key between lookup and Do.
		if n, ok := c.lookup(key); ok {
			return n, nil
		}
		ran = true
		c.misses.Add(1)
		n, err := build()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.nodes[key] = n
		c.mu.Unlock()

		return n, nil
	})
	if err != nil {
		return nil, err
	}
	if !ran {
		c.hits.Add(1)
	}

	return v.(*Node), nil
}
