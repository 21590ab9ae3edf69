package myvault

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MarcGrol/ndaonboarding/lib/mystore"
	"github.com/MarcGrol/ndaonboarding/lib/mytime"
)

// entry is what gets persisted: datastore has no native expiry, so it is checked on read.
type entry struct {
	UID       string
	Payload   string `datastore:",noindex"`
	ExpiresAt time.Time
}

type storeVault[T any] struct {
	store mystore.Store[entry]
	nower mytime.Nower
}

func newGcloudVault[T any](c context.Context) (*storeVault[T], func(), error) {
	store, cleanup, err := mystore.New[entry](c)
	if err != nil {
		return nil, nil, err
	}
	return newStoreVault[T](store, mytime.RealNower{}), cleanup, nil
}

func newStoreVault[T any](store mystore.Store[entry], nower mytime.Nower) *storeVault[T] {
	return &storeVault[T]{
		store: store,
		nower: nower,
	}
}

func (v *storeVault[T]) Put(c context.Context, uid string, value T, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling vault entry %s: %s", uid, err)
	}

	return v.store.Put(c, uid, entry{
		UID:       uid,
		Payload:   string(payload),
		ExpiresAt: v.nower.Now().Add(ttl),
	})
}

func (v *storeVault[T]) Get(c context.Context, uid string) (T, bool, error) {
	var value T

	e, found, err := v.store.Get(c, uid)
	if err != nil {
		return value, false, err
	}
	if !found || !v.nower.Now().Before(e.ExpiresAt) {
		return value, false, nil
	}

	err = json.Unmarshal([]byte(e.Payload), &value)
	if err != nil {
		return value, false, fmt.Errorf("error unmarshalling vault entry %s: %s", uid, err)
	}
	return value, true, nil
}

func (v *storeVault[T]) Delete(c context.Context, uid string) error {
	return v.store.Delete(c, uid)
}
