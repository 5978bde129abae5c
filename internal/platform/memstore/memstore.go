// Package memstore provides a keyed in-memory collection that remembers insertion order.
package memstore

import (
	"slices"
	"sync"

	apperrors "github.com/abgdnv/storefront/internal/errors"
)

// Store holds records of type V keyed by an integer identifier.
// All methods are safe for concurrent use; values go in and come out by copy.
type Store[V any] struct {
	mu     sync.RWMutex
	entity string
	items  map[int]V
	order  []int
}

// New creates an empty Store. entity names the record kind in returned errors.
func New[V any](entity string) *Store[V] {
	return &Store[V]{
		entity: entity,
		items:  make(map[int]V),
	}
}

// Insert adds v under id.
// Returns a DuplicateKeyError if id is already present.
func (s *Store[V]) Insert(id int, v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return &apperrors.DuplicateKeyError{Entity: s.entity, ID: id}
	}
	s.items[id] = v
	s.order = append(s.order, id)
	return nil
}

// Get returns the record stored under id.
// Returns a NotFoundError if no record exists with the given id.
func (s *Store[V]) Get(id int) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[id]
	if !ok {
		var zero V
		return zero, &apperrors.NotFoundError{Entity: s.entity, ID: id}
	}
	return v, nil
}

// Update applies mutate to a copy of the record stored under id and stores the copy
// only if mutate returns nil. The lookup happens first, so a missing id is reported
// as NotFoundError before mutate runs.
func (s *Store[V]) Update(id int, mutate func(*V) error) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	current, ok := s.items[id]
	if !ok {
		return zero, &apperrors.NotFoundError{Entity: s.entity, ID: id}
	}
	if err := mutate(&current); err != nil {
		return zero, err
	}
	s.items[id] = current
	return current, nil
}

// Delete removes the record stored under id.
// Returns a NotFoundError if no record exists with the given id.
func (s *Store[V]) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return &apperrors.NotFoundError{Entity: s.entity, ID: id}
	}
	delete(s.items, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return nil
}

// All returns every record in insertion order.
func (s *Store[V]) All() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]V, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.items[id])
	}
	return list
}

// Len returns the number of records.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
