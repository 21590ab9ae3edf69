package mystore

import (
	"context"
	"sync"
)

type InMemoryStore[T any] struct {
	sync.Mutex
	Items map[string]T
}

func NewInMemoryStore[T any](c context.Context) (*InMemoryStore[T], func(), error) {
	return &InMemoryStore[T]{
		Items: make(map[string]T),
	}, func() {}, nil
}

func (s *InMemoryStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	s.Lock()
	defer s.Unlock()

	return f(context.WithValue(c, ctxTransactionKey{}, true))
}

func (s *InMemoryStore[T]) locked(c context.Context, f func()) {
	if c.Value(ctxTransactionKey{}) == nil {
		s.Lock()
		defer s.Unlock()
	}
	f()
}

func (s *InMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	s.locked(c, func() {
		s.Items[uid] = value
	})
	return nil
}

func (s *InMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	var (
		result T
		exists bool
	)
	s.locked(c, func() {
		result, exists = s.Items[uid]
	})
	return result, exists, nil
}

func (s *InMemoryStore[T]) Delete(c context.Context, uid string) error {
	s.locked(c, func() {
		delete(s.Items, uid)
	})
	return nil
}

func (s *InMemoryStore[T]) List(c context.Context) ([]T, error) {
	var result []T
	s.locked(c, func() {
		result = make([]T, 0, len(s.Items))
		for _, v := range s.Items {
			result = append(result, v)
		}
	})
	return result, nil
}
