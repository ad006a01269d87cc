// Package repository defines the contracts a persistence provider implements
// for an entity type: lifecycle operations keyed by the entity identifier,
// and query operations driven by restrictions, sort criteria, limits and
// page requests.
//
// The package holds interfaces and option types only. A provider supplies
// the implementations; applications depend on the interfaces and build the
// query inputs with the restrict, metamodel and page packages.
package repository

import (
	"context"
	"iter"

	"github.com/godatakit/godata"
	"github.com/godatakit/godata/page"
	"github.com/godatakit/godata/restrict"
)

// BasicRepository is the core contract for an entity type T keyed by K.
//
// Lookup operations report a missing entity with an error wrapping
// [godata.ErrNotFound]. Streaming results use iter.Seq2, yielding each entity
// or the error that ended the stream; callers stop at the first non-nil
// error.
type BasicRepository[T any, K comparable] interface {
	// Save writes the entity, inserting or updating as the provider sees
	// fit, and returns the saved state.
	Save(ctx context.Context, entity T) (T, error)
	// SaveAll saves every entity, returning the saved states in order.
	SaveAll(ctx context.Context, entities []T) ([]T, error)

	// FindByID returns the entity with the given identifier. The error
	// wraps [godata.ErrNotFound] when no such entity exists.
	FindByID(ctx context.Context, id K) (T, error)
	// ExistsByID reports whether an entity with the given identifier
	// exists.
	ExistsByID(ctx context.Context, id K) (bool, error)
	// FindAll streams the entities selected by the options. Without
	// options it streams every entity in provider order.
	FindAll(ctx context.Context, opts ...FindOption[T]) iter.Seq2[T, error]
	// Find streams the entities the restriction matches.
	Find(ctx context.Context, r restrict.Restriction[T], opts ...FindOption[T]) iter.Seq2[T, error]
	// FindPage returns one page of the entities the restriction matches,
	// ordered by the given criteria.
	FindPage(ctx context.Context, r restrict.Restriction[T], req page.PageRequest, order godata.Order[T]) (page.Page[T], error)

	// Count returns the total number of entities.
	Count(ctx context.Context) (int64, error)
	// CountWhere returns the number of entities the restriction matches.
	CountWhere(ctx context.Context, r restrict.Restriction[T]) (int64, error)

	// DeleteByID removes the entity with the given identifier. The error
	// wraps [godata.ErrNotFound] when no such entity exists.
	DeleteByID(ctx context.Context, id K) error
	// Delete removes the given entity. The error wraps
	// [godata.ErrNotFound] when it is absent, or
	// [godata.ErrOptimisticLock] when its version is stale.
	Delete(ctx context.Context, entity T) error
	// DeleteAll removes every entity and returns the number removed.
	DeleteAll(ctx context.Context) (int64, error)
	// DeleteWhere removes the entities the restriction matches and
	// returns the number removed.
	DeleteWhere(ctx context.Context, r restrict.Restriction[T]) (int64, error)
}

// CrudRepository adds explicit insert and update semantics on top of
// [BasicRepository], for callers that need to distinguish creating an entity
// from modifying one.
type CrudRepository[T any, K comparable] interface {
	BasicRepository[T, K]

	// Insert writes a new entity. The error wraps [godata.ErrEntityExists]
	// when an entity with the same identifier already exists.
	Insert(ctx context.Context, entity T) (T, error)
	// InsertAll inserts every entity, returning the inserted states in
	// order.
	InsertAll(ctx context.Context, entities []T) ([]T, error)
	// Update modifies an existing entity. The error wraps
	// [godata.ErrNotFound] when it is absent, or
	// [godata.ErrOptimisticLock] when its version is stale.
	Update(ctx context.Context, entity T) (T, error)
	// UpdateAll updates every entity, returning the updated states in
	// order.
	UpdateAll(ctx context.Context, entities []T) ([]T, error)
}
