package repository

import (
	"github.com/godatakit/godata"
	"github.com/godatakit/godata/page"
	"github.com/godatakit/godata/restrict"
)

// WithRestriction filters a find to the entities the restriction matches.
func WithRestriction[T any](r restrict.Restriction[T]) FindOption[T] {
	return func(fo *FindOptions[T]) {
		fo.Restriction = r
	}
}

// WithOrder sorts find results by the given criteria.
func WithOrder[T any](o godata.Order[T]) FindOption[T] {
	return func(fo *FindOptions[T]) {
		fo.Order = o
	}
}

// WithLimit caps the number of results, optionally starting past an offset.
func WithLimit[T any](l godata.Limit) FindOption[T] {
	return func(fo *FindOptions[T]) {
		fo.Limit = &l
	}
}

// WithPageRequest asks for a single page of results.
func WithPageRequest[T any](p page.PageRequest) FindOption[T] {
	return func(fo *FindOptions[T]) {
		fo.Page = &p
	}
}

// FindOption configures query behavior through the functional options pattern.
type FindOption[T any] func(*FindOptions[T])

// FindOptions contains parameters for customizing query execution.
type FindOptions[T any] struct {
	// Restriction filters the entities to return. Defaults to
	// [restrict.Unrestricted].
	Restriction restrict.Restriction[T]
	// Order specifies the sort criteria for results.
	Order godata.Order[T]
	// Limit caps the portion of results to return, when set.
	Limit *godata.Limit
	// Page requests a single page of results, when set.
	Page *page.PageRequest
}

// ApplyFindOptions folds the options into a [FindOptions] value, defaulting
// the restriction to [restrict.Unrestricted].
func ApplyFindOptions[T any](opts ...FindOption[T]) FindOptions[T] {
	fo := FindOptions[T]{Restriction: restrict.Unrestricted[T]{}}
	for _, opt := range opts {
		opt(&fo)
	}
	return fo
}
