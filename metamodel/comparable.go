package metamodel

import (
	"cmp"

	"github.com/godatakit/godata"
	"github.com/godatakit/godata/constraint"
	"github.com/godatakit/godata/restrict"
)

// Comparable is a handle to an entity attribute with an ordered value type.
// It adds comparison and range restrictions and sort criteria to the basic
// operations.
type Comparable[T any, V cmp.Ordered] struct {
	Basic[T, V]
}

// NewComparable returns a handle to the named ordered attribute of entity T.
// It panics when the name is empty.
func NewComparable[T any, V cmp.Ordered](name string) Comparable[T, V] {
	return Comparable[T, V]{Basic: NewBasic[T, V](name)}
}

// GreaterThan restricts the attribute to values strictly above value.
func (a Comparable[T, V]) GreaterThan(value V) restrict.Basic[T] {
	return restrict.NewBasic[T](a.Name(), constraint.GreaterThan(value))
}

// GreaterThanEqual restricts the attribute to values at or above value.
func (a Comparable[T, V]) GreaterThanEqual(value V) restrict.Basic[T] {
	return restrict.NewBasic[T](a.Name(), constraint.GreaterThanEqual(value))
}

// LessThan restricts the attribute to values strictly below value.
func (a Comparable[T, V]) LessThan(value V) restrict.Basic[T] {
	return restrict.NewBasic[T](a.Name(), constraint.LessThan(value))
}

// LessThanEqual restricts the attribute to values at or below value.
func (a Comparable[T, V]) LessThanEqual(value V) restrict.Basic[T] {
	return restrict.NewBasic[T](a.Name(), constraint.LessThanEqual(value))
}

// Between restricts the attribute to values within the range, inclusive.
func (a Comparable[T, V]) Between(min, max V) restrict.Basic[T] {
	return restrict.NewBasic[T](a.Name(), constraint.Bounds(min, max))
}

// NotBetween restricts the attribute to values outside the range.
func (a Comparable[T, V]) NotBetween(min, max V) restrict.Basic[T] {
	return restrict.NewBasic[T](a.Name(), constraint.NotBounds(min, max))
}

// Asc returns an ascending sort criterion on the attribute.
func (a Comparable[T, V]) Asc() godata.Sort[T] {
	return godata.Asc[T](a.Name())
}

// Desc returns a descending sort criterion on the attribute.
func (a Comparable[T, V]) Desc() godata.Sort[T] {
	return godata.Desc[T](a.Name())
}
