// Package storage defines the uniform CRUD contract every entity store
// implements. Concrete repositories compose a backing store (postgres or
// the generic in-memory store) instead of extending a base type, so no
// entity is forced into a shared hierarchy.
package storage

import (
	"context"

	"workout-core/pkg/apperror"
)

// Entity is any domain record with an integer identity.
type Entity interface {
	EntityID() int
}

// Filter is the marker for optional-criteria filter values. An empty
// filter must behave exactly like no filtering: GetAllFiltered(empty)
// returns the same set as GetAll.
type Filter interface {
	Empty() bool
}

// Repository is the uniform CRUD surface over an entity type T filtered
// by F. The filter type is part of the contract, so passing the wrong
// variant to a store is a compile error rather than a runtime check.
type Repository[T Entity, F Filter] interface {
	// GetAll returns every entity in the store. Empty store is an empty
	// slice, never an error.
	GetAll(ctx context.Context) ([]T, error)

	// GetByID returns the entity and whether it was found. Absence is
	// reported through the flag, not an error.
	GetByID(ctx context.Context, id int) (T, bool, error)

	// Create persists a new entity and returns it with its assigned id.
	Create(ctx context.Context, entity T) (T, error)

	// Update fully replaces the entity matched by id. Fails with a
	// NotFound error when no such entity exists.
	Update(ctx context.Context, entity T) (T, error)

	// Delete removes the entity if present and reports whether a removal
	// occurred. Deleting an absent id returns false, not an error.
	Delete(ctx context.Context, id int) (bool, error)

	// GetAllFiltered returns entities matching every set field of the
	// filter (logical AND). Entity types that opt out of filtering
	// return an empty slice.
	GetAllFiltered(ctx context.Context, filter F) ([]T, error)
}

// As narrows a late-bound Filter back to its concrete variant. Used only
// at the JSON search boundary where the variant is decided at runtime;
// a mismatch is a TypeMismatch error.
func As[F Filter](f Filter) (F, error) {
	if typed, ok := f.(F); ok {
		return typed, nil
	}
	var zero F
	return zero, apperror.TypeMismatch("filter variant %T not valid for this store", f)
}
