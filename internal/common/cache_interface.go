package common

import "time"

// CacheInterface is the cache contract the tracking layer depends on. The
// in-memory CacheService backs single-instance deployments; RedisCacheService
// lets several towerboard instances share one pool of upstream snapshots.
type CacheInterface interface {
	// Set stores a value under key for the given TTL. Expired entries are
	// treated as absent by Get.
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the cached value and true, or nil and false when the key
	// is missing or expired.
	Get(key string) (interface{}, bool)

	// Delete drops the key if present.
	Delete(key string)

	// GetOrSet returns the cached value, or runs loader and caches its
	// result for the given TTL. A loader error is returned without caching.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any backing connections. The in-memory cache has none.
	Close() error
}
