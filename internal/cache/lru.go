// Package cache provides caching utilities for the generator.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Classification is a memoized classifier outcome for one path.
type Classification struct {
	Category string
	Matched  bool
}

// ClassificationCache is a bounded LRU of path -> classification.
type ClassificationCache struct {
	cache *lru.Cache[string, Classification]
}

// NewClassificationCache creates a new LRU cache with the specified maximum number of items.
func NewClassificationCache(maxItems int) (*ClassificationCache, error) {
	c, err := lru.New[string, Classification](maxItems)
	if err != nil {
		return nil, err
	}
	return &ClassificationCache{cache: c}, nil
}

// Get retrieves a classification by path.
func (c *ClassificationCache) Get(path string) (Classification, bool) {
	return c.cache.Get(path)
}

// Put adds or updates a classification.
func (c *ClassificationCache) Put(path string, cl Classification) {
	c.cache.Add(path, cl)
}

// Len returns the current number of items in the cache.
func (c *ClassificationCache) Len() int {
	return c.cache.Len()
}
