package myvault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisVault[T any] struct {
	client *redis.Client
	prefix string
}

func NewRedisVault[T any](client *redis.Client, prefix string) *redisVault[T] {
	return &redisVault[T]{
		client: client,
		prefix: prefix,
	}
}

func (v *redisVault[T]) key(uid string) string {
	return fmt.Sprintf("%s:vault:%s", v.prefix, uid)
}

func (v *redisVault[T]) Put(c context.Context, uid string, value T, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling vault entry %s: %s", uid, err)
	}

	err = v.client.Set(c, v.key(uid), payload, ttl).Err()
	if err != nil {
		return fmt.Errorf("error storing vault entry %s in redis: %s", uid, err)
	}
	return nil
}

func (v *redisVault[T]) Get(c context.Context, uid string) (T, bool, error) {
	var value T

	payload, err := v.client.Get(c, v.key(uid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return value, false, nil
		}
		return value, false, fmt.Errorf("error fetching vault entry %s from redis: %s", uid, err)
	}

	err = json.Unmarshal(payload, &value)
	if err != nil {
		return value, false, fmt.Errorf("error unmarshalling vault entry %s: %s", uid, err)
	}
	return value, true, nil
}

func (v *redisVault[T]) Delete(c context.Context, uid string) error {
	err := v.client.Del(c, v.key(uid)).Err()
	if err != nil {
		return fmt.Errorf("error deleting vault entry %s from redis: %s", uid, err)
	}
	return nil
}
