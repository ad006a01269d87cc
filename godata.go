// Package godata defines a declarative repository programming model for Go.
//
// Applications represent data as plain structs (entities) and express
// operations on data through interface contracts that a persistence provider
// implements. This module contains no query engine and no persistence
// runtime: it is the contract between applications and providers, plus a
// small immutable value-object DSL for building type-safe query predicates.
//
// The packages split by concern:
//
//   - [github.com/godatakit/godata/constraint]: leaf predicates on a single
//     value domain (equality, comparison, range, pattern, null check, set
//     membership) and the operator enumeration with its negation algebra.
//
//   - [github.com/godatakit/godata/restrict]: restriction trees composing
//     constraints with ALL/ANY semantics, negation and the
//     unrestricted/unmatchable sentinels.
//
//   - [github.com/godatakit/godata/metamodel]: typed attribute handles that
//     bind constraints to entity attributes, and reflection-derived entity
//     models.
//
//   - [github.com/godatakit/godata/methodname]: the Query by Method Name
//     parser, turning names such as findByNameLikeAndPriceLessThan into
//     structured queries.
//
//   - [github.com/godatakit/godata/page]: pagination value types and page
//     contracts.
//
//   - [github.com/godatakit/godata/repository]: the repository contracts a
//     provider implements.
//
// This package holds the value types shared by all of them: [Sort], [Order]
// and [Limit], along with the error values providers report.
//
// Every type in the module is an immutable value object. Construction and
// composition are pure and safe to call from any number of goroutines
// without synchronization.
package godata

import "errors"

// Errors reported by repository implementations. Providers wrap these with
// operation detail; callers test for them with [errors.Is].
var (
	// ErrNotFound is returned when an entity with the requested identity
	// does not exist in the data store.
	ErrNotFound = errors.New("godata: entity not found")

	// ErrNonUniqueResult is returned when a query expected to produce at
	// most one result produces more.
	ErrNonUniqueResult = errors.New("godata: query returned more than one result")

	// ErrEntityExists is returned by insert operations when an entity
	// with the same identity is already present.
	ErrEntityExists = errors.New("godata: entity already exists")

	// ErrOptimisticLock is returned when an update or delete does not
	// match the entity's current version in the data store.
	ErrOptimisticLock = errors.New("godata: optimistic locking failure")

	// ErrUnsupported is reserved for providers rejecting an operation the
	// underlying data store cannot express, such as ordering on a
	// key-value store. This module never returns it.
	ErrUnsupported = errors.New("godata: unsupported operation")
)
