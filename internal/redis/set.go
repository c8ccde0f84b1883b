package redis

import (
	"sync"
)

// Set is a concurrent string-keyed store.
type Set[T any] struct {
	data *sync.Map
}

func NewBLSet[T any]() *Set[T] {
	return &Set[T]{
		data: &sync.Map{},
	}
}

// Put stores data at key, replacing any previous value.
func (s *Set[T]) Put(key string, data *T) {
	s.data.Store(key, data)
}

func (s *Set[T]) Get(key string) (*T, bool) {
	data, found := s.data.Load(key)
	if !found {
		return nil, false
	}

	return data.(*T), true
}

// Remove deletes key and reports whether it was present.
func (s *Set[T]) Remove(key string) bool {
	_, found := s.data.LoadAndDelete(key)
	return found
}

// Getsert return the value at the key key, if the key is not exists,
// then value will be used.
// The second value indicate if key is upserted or not.
func (s *Set[T]) Getsert(key string, value *T) (*T, bool) {
	data, loaded := s.data.LoadOrStore(key, value)
	return data.(*T), !loaded
}

// ForEach calls handler for every entry until it returns false.
func (s *Set[T]) ForEach(handler func(string, *T) bool) {
	s.data.Range(func(key, value any) bool {
		keyStr, ok := key.(string)
		if !ok {
			return false
		}
		valT, ok := value.(*T)
		if !ok {
			return false
		}
		return handler(keyStr, valT)
	})
}

func (s *Set[T]) Len() int {
	n := 0
	s.data.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Evict deletes key only if it still holds old.
func (s *Set[T]) Evict(key string, old *T) bool {
	return s.data.CompareAndDelete(key, old)
}
