package myvault

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

type VaultReader[T any] interface {
	Get(c context.Context, uid string) (T, bool, error)
}

// VaultReadWriter holds values that disappear by themselves once their ttl has passed.
type VaultReadWriter[T any] interface {
	VaultReader[T]
	Put(c context.Context, uid string, value T, ttl time.Duration) error
	Delete(c context.Context, uid string) error
}

// New selects the backend from the environment: redis when REDIS_ADDR is set,
// datastore on Google Cloud, and an in-process cache otherwise.
func New[T any](c context.Context, name string) (VaultReadWriter[T], func(), error) {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		return NewRedisVault[T](client, name), func() {
			client.Close()
		}, nil
	}

	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		return newGcloudVault[T](c)
	}

	return NewMemoryVault[T]()
}
