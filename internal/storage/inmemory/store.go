// Package inmemory provides a generic map-backed store satisfying the
// storage.Repository contract. It backs driverless deployments and tests.
package inmemory

import (
	"context"
	"sync"

	"workout-core/internal/storage"
	"workout-core/pkg/apperror"
)

// MatchFunc reports whether an entity passes a filter. Implementations
// only need to check set fields; the store short-circuits empty filters.
type MatchFunc[T storage.Entity, F storage.Filter] func(T, F) bool

// WithIDFunc returns a copy of the entity with the given identity.
type WithIDFunc[T storage.Entity] func(T, int) T

// Store is a concurrency-safe in-memory storage.Repository.
type Store[T storage.Entity, F storage.Filter] struct {
	mu     sync.RWMutex
	items  map[int]T
	nextID int

	match  MatchFunc[T, F]
	withID WithIDFunc[T]
}

// New builds a Store. A nil match func means the entity type opts out of
// filtering: GetAllFiltered always returns an empty slice.
func New[T storage.Entity, F storage.Filter](withID WithIDFunc[T], match MatchFunc[T, F]) *Store[T, F] {
	if withID == nil {
		panic("inmemory: withID is required")
	}
	return &Store[T, F]{
		items:  make(map[int]T),
		nextID: 1,
		match:  match,
		withID: withID,
	}
}

var _ storage.Repository[fakeEntity, fakeFilter] = (*Store[fakeEntity, fakeFilter])(nil)

// GetAll returns every stored entity.
func (s *Store[T, F]) GetAll(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, nil
}

// GetByID returns the entity and whether it exists.
func (s *Store[T, F]) GetByID(ctx context.Context, id int) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok, nil
}

// Create assigns the next id and stores the entity. An entity arriving
// with a non-zero id keeps it (seed data), bumping the sequence past it.
func (s *Store[T, F]) Create(ctx context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.EntityID()
	if id == 0 {
		id = s.nextID
		entity = s.withID(entity, id)
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}
	s.items[id] = entity
	return entity, nil
}

// Update replaces the stored entity matched by id.
func (s *Store[T, F]) Update(ctx context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.EntityID()
	if _, ok := s.items[id]; !ok {
		var zero T
		return zero, apperror.NotFound("entity %d not found", id)
	}
	s.items[id] = entity
	return entity, nil
}

// Delete removes the entity and reports whether it was present.
func (s *Store[T, F]) Delete(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// GetAllFiltered applies the filter. Stores built without a matcher have
// opted out of filtering and always return an empty slice; everywhere
// else an empty filter is equivalent to GetAll.
func (s *Store[T, F]) GetAllFiltered(ctx context.Context, filter F) ([]T, error) {
	if s.match == nil {
		return []T{}, nil
	}
	if filter.Empty() {
		return s.GetAll(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []T{}
	for _, item := range s.items {
		if s.match(item, filter) {
			out = append(out, item)
		}
	}
	return out, nil
}

// fakeEntity/fakeFilter exist only for the compile-time contract assertion.
type fakeEntity struct{ id int }

func (e fakeEntity) EntityID() int { return e.id }

type fakeFilter struct{}

func (fakeFilter) Empty() bool { return true }
