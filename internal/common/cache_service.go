package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheService keeps aircraft-area snapshots in process memory with per-entry
// TTLs. Upstream polls are cheap enough that losing the cache on restart does
// not matter; deployments that run more than one instance should enable Redis
// instead so every instance serves the same snapshot.
type CacheService struct {
	cache *cache.Cache
}

var _ CacheInterface = (*CacheService)(nil)

// NewCacheService builds an in-memory cache. defaultExpirationSeconds applies
// when Set is called with a zero duration; cleanUpIntervalSeconds controls how
// often expired snapshots are swept out.
func NewCacheService(defaultExpirationSeconds, cleanUpIntervalSeconds int) *CacheService {
	defaultExpiration := time.Duration(defaultExpirationSeconds) * time.Second
	cleanUpInterval := time.Duration(cleanUpIntervalSeconds) * time.Second
	c := cache.New(defaultExpiration, cleanUpInterval)
	return &CacheService{cache: c}
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}

func (cs *CacheService) Get(key string) (interface{}, bool) {
	return cs.cache.Get(key)
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

func (cs *CacheService) GetOrSet(
	key string,
	duration time.Duration,
	loader func() (any, error)) (interface{}, error) {
	if val, found := cs.Get(key); found {
		return val, nil
	}

	val, err := loader()
	if err != nil {
		return nil, err
	}

	cs.Set(key, val, duration)
	return val, nil
}

// Close is a no-op; there is no connection behind the in-memory cache.
func (cs *CacheService) Close() error {
	return nil
}
