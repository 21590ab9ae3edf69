package myvault

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

type memoryVault[T any] struct {
	cache *ttlcache.Cache[string, T]
}

func NewMemoryVault[T any]() (*memoryVault[T], func(), error) {
	cache := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[string, T](),
	)

	go cache.Start()

	return &memoryVault[T]{
			cache: cache,
		}, func() {
			cache.Stop()
		}, nil
}

func (v *memoryVault[T]) Put(c context.Context, uid string, value T, ttl time.Duration) error {
	v.cache.Set(uid, value, ttl)
	return nil
}

func (v *memoryVault[T]) Get(c context.Context, uid string) (T, bool, error) {
	item := v.cache.Get(uid)
	if item == nil || item.IsExpired() {
		var empty T
		return empty, false, nil
	}
	return item.Value(), true, nil
}

func (v *memoryVault[T]) Delete(c context.Context, uid string) error {
	v.cache.Delete(uid)
	return nil
}
