package godata

import "strings"

// Sort requests ordering of query results on one entity attribute. The type
// parameter ties the sort criterion to its entity so that repository methods
// only accept criteria built for their entity.
type Sort[T any] struct {
	property   string
	ascending  bool
	ignoreCase bool
}

// Asc returns an ascending sort on the named attribute. It panics when the
// property is empty.
func Asc[T any](property string) Sort[T] {
	return newSort[T](property, true, false)
}

// Desc returns a descending sort on the named attribute. It panics when the
// property is empty.
func Desc[T any](property string) Sort[T] {
	return newSort[T](property, false, false)
}

// AscIgnoreCase returns a case-insensitive ascending sort on the named
// attribute. It panics when the property is empty.
func AscIgnoreCase[T any](property string) Sort[T] {
	return newSort[T](property, true, true)
}

// DescIgnoreCase returns a case-insensitive descending sort on the named
// attribute. It panics when the property is empty.
func DescIgnoreCase[T any](property string) Sort[T] {
	return newSort[T](property, false, true)
}

func newSort[T any](property string, ascending, ignoreCase bool) Sort[T] {
	if property == "" {
		panic("godata: sort property must not be empty")
	}
	return Sort[T]{property: property, ascending: ascending, ignoreCase: ignoreCase}
}

// Property returns the attribute the results are sorted on.
func (s Sort[T]) Property() string { return s.property }

// IsAscending reports whether the sort direction is ascending.
func (s Sort[T]) IsAscending() bool { return s.ascending }

// IgnoresCase reports whether ordering compares case-insensitively.
func (s Sort[T]) IgnoresCase() bool { return s.ignoreCase }

// Reverse returns the same criterion with the direction flipped.
func (s Sort[T]) Reverse() Sort[T] {
	s.ascending = !s.ascending
	return s
}

// String renders the criterion for debugging, for example
// "lastName ASC IGNORE CASE".
func (s Sort[T]) String() string {
	var b strings.Builder
	b.WriteString(s.property)
	if s.ascending {
		b.WriteString(" ASC")
	} else {
		b.WriteString(" DESC")
	}
	if s.ignoreCase {
		b.WriteString(" IGNORE CASE")
	}
	return b.String()
}

// Order combines sort criteria, applied in sequence: later criteria break
// ties left by earlier ones.
type Order[T any] struct {
	sorts []Sort[T]
}

// OrderBy combines the given criteria in order of precedence.
func OrderBy[T any](sorts ...Sort[T]) Order[T] {
	return Order[T]{sorts: append([]Sort[T](nil), sorts...)}
}

// Sorts returns the criteria in order of precedence.
func (o Order[T]) Sorts() []Sort[T] {
	return append([]Sort[T](nil), o.sorts...)
}

// IsEmpty reports whether no criteria were given.
func (o Order[T]) IsEmpty() bool { return len(o.sorts) == 0 }

// ThenAsc appends an ascending tiebreaker on the named attribute.
func (o Order[T]) ThenAsc(property string) Order[T] {
	return o.then(Asc[T](property))
}

// ThenDesc appends a descending tiebreaker on the named attribute.
func (o Order[T]) ThenDesc(property string) Order[T] {
	return o.then(Desc[T](property))
}

// Then appends a tiebreaker criterion.
func (o Order[T]) Then(sort Sort[T]) Order[T] {
	return o.then(sort)
}

func (o Order[T]) then(sort Sort[T]) Order[T] {
	sorts := make([]Sort[T], 0, len(o.sorts)+1)
	sorts = append(sorts, o.sorts...)
	sorts = append(sorts, sort)
	return Order[T]{sorts: sorts}
}

// String renders the criteria for debugging, comma separated.
func (o Order[T]) String() string {
	parts := make([]string, len(o.sorts))
	for i, s := range o.sorts {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
