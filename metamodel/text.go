package metamodel

import (
	"github.com/godatakit/godata"
	"github.com/godatakit/godata/constraint"
	"github.com/godatakit/godata/restrict"
)

// Text is a handle to a string-valued entity attribute. Its restrictions are
// [restrict.Text] values, case sensitive until IgnoreCase is requested.
type Text[T any] struct {
	name string
}

// NewText returns a handle to the named text attribute of entity T. It
// panics when the name is empty.
func NewText[T any](name string) Text[T] {
	if name == "" {
		panic("metamodel: attribute name must not be empty")
	}
	return Text[T]{name: name}
}

// Name returns the attribute name.
func (a Text[T]) Name() string { return a.name }

// EqualTo restricts the attribute to values equal to value.
func (a Text[T]) EqualTo(value string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.EqualTo(value), false)
}

// NotEqualTo restricts the attribute to values different from value.
func (a Text[T]) NotEqualTo(value string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.NotEqualTo(value), false)
}

// Contains restricts the attribute to values containing the substring.
// Wildcard characters in the substring match literally.
func (a Text[T]) Contains(substring string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.LikeSubstring(substring), true)
}

// NotContains restricts the attribute to values not containing the
// substring.
func (a Text[T]) NotContains(substring string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.NotLikeSubstring(substring), true)
}

// StartsWith restricts the attribute to values beginning with the prefix.
// Wildcard characters in the prefix match literally.
func (a Text[T]) StartsWith(prefix string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.LikePrefix(prefix), true)
}

// NotStartsWith restricts the attribute to values not beginning with the
// prefix.
func (a Text[T]) NotStartsWith(prefix string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.NotLikePrefix(prefix), true)
}

// EndsWith restricts the attribute to values ending with the suffix.
// Wildcard characters in the suffix match literally.
func (a Text[T]) EndsWith(suffix string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.LikeSuffix(suffix), true)
}

// NotEndsWith restricts the attribute to values not ending with the suffix.
func (a Text[T]) NotEndsWith(suffix string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.NotLikeSuffix(suffix), true)
}

// Like restricts the attribute to values matching the pattern, taken
// verbatim in the standard wildcard language: '%' matches any sequence of
// characters and '_' matches one character.
func (a Text[T]) Like(pattern string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.LikePattern(pattern), false)
}

// NotLike restricts the attribute to values not matching the verbatim
// pattern.
func (a Text[T]) NotLike(pattern string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.NotLikePattern(pattern), false)
}

// LikeWildcards restricts the attribute to values matching a pattern written
// with caller-chosen wildcard characters, which are translated to the
// standard wildcard language. It panics when both wildcards are the same
// character.
func (a Text[T]) LikeWildcards(pattern string, charWildcard, stringWildcard rune) restrict.Text[T] {
	c := constraint.LikeTranslated(pattern, charWildcard, stringWildcard)
	return restrict.NewText[T](a.name, c, true)
}

// NotLikeWildcards is the negation of [Text.LikeWildcards].
func (a Text[T]) NotLikeWildcards(pattern string, charWildcard, stringWildcard rune) restrict.Text[T] {
	c := constraint.NotLikeTranslated(pattern, charWildcard, stringWildcard)
	return restrict.NewText[T](a.name, c, true)
}

// GreaterThan restricts the attribute to values lexically above value.
func (a Text[T]) GreaterThan(value string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.GreaterThan(value), false)
}

// GreaterThanEqual restricts the attribute to values lexically at or above
// value.
func (a Text[T]) GreaterThanEqual(value string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.GreaterThanEqual(value), false)
}

// LessThan restricts the attribute to values lexically below value.
func (a Text[T]) LessThan(value string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.LessThan(value), false)
}

// LessThanEqual restricts the attribute to values lexically at or below
// value.
func (a Text[T]) LessThanEqual(value string) restrict.Text[T] {
	return restrict.NewText[T](a.name, constraint.LessThanEqual(value), false)
}

// In restricts the attribute to members of the value set. It panics when no
// values are supplied.
func (a Text[T]) In(values ...string) restrict.Basic[T] {
	return restrict.NewBasic[T](a.name, constraint.Values(anySlice(values)...))
}

// NotIn restricts the attribute to values outside the value set. It panics
// when no values are supplied.
func (a Text[T]) NotIn(values ...string) restrict.Basic[T] {
	return restrict.NewBasic[T](a.name, constraint.NotValues(anySlice(values)...))
}

// IsNull restricts the attribute to null values.
func (a Text[T]) IsNull() restrict.Basic[T] {
	return restrict.NewBasic[T](a.name, constraint.IsNull())
}

// NotNull restricts the attribute to non-null values.
func (a Text[T]) NotNull() restrict.Basic[T] {
	return restrict.NewBasic[T](a.name, constraint.IsNotNull())
}

// Asc returns an ascending sort criterion on the attribute.
func (a Text[T]) Asc() godata.Sort[T] { return godata.Asc[T](a.name) }

// Desc returns a descending sort criterion on the attribute.
func (a Text[T]) Desc() godata.Sort[T] { return godata.Desc[T](a.name) }

// AscIgnoreCase returns a case-insensitive ascending sort criterion.
func (a Text[T]) AscIgnoreCase() godata.Sort[T] {
	return godata.AscIgnoreCase[T](a.name)
}

// DescIgnoreCase returns a case-insensitive descending sort criterion.
func (a Text[T]) DescIgnoreCase() godata.Sort[T] {
	return godata.DescIgnoreCase[T](a.name)
}
