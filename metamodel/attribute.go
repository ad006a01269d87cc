// Package metamodel provides typed handles to entity attributes. A handle
// pairs an attribute name with the Go type of its values, so that
// restrictions built through it are checked at compile time:
//
//	var (
//		name      = metamodel.NewText[Employee]("name")
//		yearHired = metamodel.NewComparable[Employee, int]("yearHired")
//	)
//
//	r := restrict.All(
//		name.StartsWith("Duke"),
//		yearHired.GreaterThan(2010),
//	)
//
// [Of] derives an untyped attribute model from an entity struct by
// reflection; the methodname package uses it to validate parsed attribute
// names against the entity.
package metamodel

import (
	"github.com/godatakit/godata/constraint"
	"github.com/godatakit/godata/restrict"
)

// Basic is a handle to an entity attribute whose values may be of any type.
type Basic[T, V any] struct {
	name string
}

// NewBasic returns a handle to the named attribute of entity T with values
// of type V. It panics when the name is empty.
func NewBasic[T, V any](name string) Basic[T, V] {
	if name == "" {
		panic("metamodel: attribute name must not be empty")
	}
	return Basic[T, V]{name: name}
}

// Name returns the attribute name.
func (a Basic[T, V]) Name() string { return a.name }

// EqualTo restricts the attribute to values equal to value.
func (a Basic[T, V]) EqualTo(value V) restrict.Basic[T] {
	return restrict.NewBasic[T](a.name, constraint.EqualTo(value))
}

// NotEqualTo restricts the attribute to values different from value.
func (a Basic[T, V]) NotEqualTo(value V) restrict.Basic[T] {
	return restrict.NewBasic[T](a.name, constraint.NotEqualTo(value))
}

// In restricts the attribute to members of the value set. It panics when no
// values are supplied.
func (a Basic[T, V]) In(values ...V) restrict.Basic[T] {
	return restrict.NewBasic[T](a.name, constraint.Values(anySlice(values)...))
}

// NotIn restricts the attribute to values outside the value set. It panics
// when no values are supplied.
func (a Basic[T, V]) NotIn(values ...V) restrict.Basic[T] {
	return restrict.NewBasic[T](a.name, constraint.NotValues(anySlice(values)...))
}

// IsNull restricts the attribute to null values.
func (a Basic[T, V]) IsNull() restrict.Basic[T] {
	return restrict.NewBasic[T](a.name, constraint.IsNull())
}

// NotNull restricts the attribute to non-null values.
func (a Basic[T, V]) NotNull() restrict.Basic[T] {
	return restrict.NewBasic[T](a.name, constraint.IsNotNull())
}

// Restrict binds an arbitrary constraint to the attribute.
func (a Basic[T, V]) Restrict(c constraint.Constraint) restrict.Basic[T] {
	return restrict.NewBasic[T](a.name, c)
}

func anySlice[V any](values []V) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
