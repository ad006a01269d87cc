// Package constraint defines the leaf predicates of a restriction tree: a
// closed set of immutable value objects, one per [Operator], pairing a
// comparison kind with its comparison values.
//
// Constraints are created through factory functions such as [EqualTo] and
// [Values], or indirectly through the attribute handles of the metamodel
// package. They are never mutated after construction and can be shared
// freely between goroutines.
//
// The variant set is closed. A provider translating a tree can type switch
// over [Equal], [NotEqual], [Greater], [GreaterOrEqual], [Less],
// [LessOrEqual], [Between], [NotBetween], [In], [NotIn], [Null], [NotNull],
// [Like] and [NotLike] exhaustively.
package constraint

import (
	"fmt"
	"slices"
	"strings"
)

// Constraint is a predicate on a single value domain. Comparison values are
// held as any; compile-time type safety is provided by the attribute handles
// that construct constraints.
type Constraint interface {
	// Operator returns the comparison kind of this constraint.
	Operator() Operator
	// Negate returns the dual variant carrying the same comparison values.
	Negate() Constraint
	fmt.Stringer

	// body renders the value portion that follows the operator token, or
	// "" for the null checks.
	body() string
}

// Range marks the ordered-value subset of [Constraint], used by comparable
// attributes: the greater/less variants and the between pair.
type Range interface {
	Constraint
	rangeConstraint()
}

// literal renders a comparison value for debugging output. Strings are
// single-quoted, everything else uses its default format.
func literal(v any) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	return fmt.Sprintf("%v", v)
}

func render(c Constraint) string {
	b := c.body()
	if b == "" {
		return c.Operator().String()
	}
	return c.Operator().String() + " " + b
}

func requireValue(v any) {
	if v == nil {
		panic("constraint: value is required; use IsNull or IsNotNull for null checks")
	}
}

func requireBounds(min, max any) {
	if min == nil || max == nil {
		panic("constraint: both bounds are required")
	}
}

func requireValues(values []any) {
	if len(values) == 0 {
		panic("values are required")
	}
}

// Equal matches values equal to its comparison value.
type Equal struct{ value any }

// EqualTo returns an equality constraint on value. It panics when value is
// nil: null checks must use [IsNull] instead.
func EqualTo(value any) Equal {
	requireValue(value)
	return Equal{value: value}
}

// Value returns the comparison value.
func (c Equal) Value() any { return c.value }

// Operator implements [Constraint].
func (c Equal) Operator() Operator { return OpEqual }

// Negate implements [Constraint].
func (c Equal) Negate() Constraint { return NotEqual(c) }

func (c Equal) String() string { return render(c) }
func (c Equal) body() string   { return literal(c.value) }

// NotEqual matches values different from its comparison value.
type NotEqual Equal

// NotEqualTo returns an inequality constraint on value. It panics when value
// is nil: null checks must use [IsNotNull] instead.
func NotEqualTo(value any) NotEqual {
	requireValue(value)
	return NotEqual{value: value}
}

// Value returns the comparison value.
func (c NotEqual) Value() any { return c.value }

// Operator implements [Constraint].
func (c NotEqual) Operator() Operator { return OpNotEqual }

// Negate implements [Constraint].
func (c NotEqual) Negate() Constraint { return Equal(c) }

func (c NotEqual) String() string { return render(c) }
func (c NotEqual) body() string   { return literal(c.value) }

// Greater matches values strictly above its bound.
type Greater struct{ bound any }

// GreaterThan returns a strict lower-bound constraint.
func GreaterThan(bound any) Greater {
	requireValue(bound)
	return Greater{bound: bound}
}

// Bound returns the exclusive lower bound.
func (c Greater) Bound() any { return c.bound }

// Operator implements [Constraint].
func (c Greater) Operator() Operator { return OpGreaterThan }

// Negate implements [Constraint].
func (c Greater) Negate() Constraint { return LessOrEqual{bound: c.bound} }

func (c Greater) String() string   { return render(c) }
func (c Greater) body() string     { return literal(c.bound) }
func (c Greater) rangeConstraint() {}

// GreaterOrEqual matches values at or above its bound.
type GreaterOrEqual struct{ bound any }

// GreaterThanEqual returns an inclusive lower-bound constraint.
func GreaterThanEqual(bound any) GreaterOrEqual {
	requireValue(bound)
	return GreaterOrEqual{bound: bound}
}

// Bound returns the inclusive lower bound.
func (c GreaterOrEqual) Bound() any { return c.bound }

// Operator implements [Constraint].
func (c GreaterOrEqual) Operator() Operator { return OpGreaterThanEqual }

// Negate implements [Constraint].
func (c GreaterOrEqual) Negate() Constraint { return Less{bound: c.bound} }

func (c GreaterOrEqual) String() string   { return render(c) }
func (c GreaterOrEqual) body() string     { return literal(c.bound) }
func (c GreaterOrEqual) rangeConstraint() {}

// Less matches values strictly below its bound.
type Less struct{ bound any }

// LessThan returns a strict upper-bound constraint.
func LessThan(bound any) Less {
	requireValue(bound)
	return Less{bound: bound}
}

// Bound returns the exclusive upper bound.
func (c Less) Bound() any { return c.bound }

// Operator implements [Constraint].
func (c Less) Operator() Operator { return OpLessThan }

// Negate implements [Constraint].
func (c Less) Negate() Constraint { return GreaterOrEqual{bound: c.bound} }

func (c Less) String() string   { return render(c) }
func (c Less) body() string     { return literal(c.bound) }
func (c Less) rangeConstraint() {}

// LessOrEqual matches values at or below its bound.
type LessOrEqual struct{ bound any }

// LessThanEqual returns an inclusive upper-bound constraint.
func LessThanEqual(bound any) LessOrEqual {
	requireValue(bound)
	return LessOrEqual{bound: bound}
}

// Bound returns the inclusive upper bound.
func (c LessOrEqual) Bound() any { return c.bound }

// Operator implements [Constraint].
func (c LessOrEqual) Operator() Operator { return OpLessThanEqual }

// Negate implements [Constraint].
func (c LessOrEqual) Negate() Constraint { return Greater{bound: c.bound} }

func (c LessOrEqual) String() string   { return render(c) }
func (c LessOrEqual) body() string     { return literal(c.bound) }
func (c LessOrEqual) rangeConstraint() {}

// Between matches values within its bounds, inclusive on both ends.
type Between struct{ lower, upper any }

// Bounds returns an inclusive range constraint. Both bounds are required.
func Bounds(min, max any) Between {
	requireBounds(min, max)
	return Between{lower: min, upper: max}
}

// LowerBound returns the inclusive minimum.
func (c Between) LowerBound() any { return c.lower }

// UpperBound returns the inclusive maximum.
func (c Between) UpperBound() any { return c.upper }

// Operator implements [Constraint].
func (c Between) Operator() Operator { return OpBetween }

// Negate implements [Constraint].
func (c Between) Negate() Constraint { return NotBetween(c) }

func (c Between) String() string   { return render(c) }
func (c Between) body() string     { return literal(c.lower) + " AND " + literal(c.upper) }
func (c Between) rangeConstraint() {}

// NotBetween matches values outside its bounds.
type NotBetween Between

// NotBounds returns an exclusive-range constraint, the dual of [Bounds].
func NotBounds(min, max any) NotBetween {
	requireBounds(min, max)
	return NotBetween{lower: min, upper: max}
}

// LowerBound returns the inclusive minimum of the excluded range.
func (c NotBetween) LowerBound() any { return c.lower }

// UpperBound returns the inclusive maximum of the excluded range.
func (c NotBetween) UpperBound() any { return c.upper }

// Operator implements [Constraint].
func (c NotBetween) Operator() Operator { return OpNotBetween }

// Negate implements [Constraint].
func (c NotBetween) Negate() Constraint { return Between(c) }

func (c NotBetween) String() string   { return render(c) }
func (c NotBetween) body() string     { return literal(c.lower) + " AND " + literal(c.upper) }
func (c NotBetween) rangeConstraint() {}

// In matches values that are members of its value set.
type In struct{ values []any }

// Values returns a set-membership constraint. It panics when no values are
// supplied: values are required.
func Values(values ...any) In {
	requireValues(values)
	return In{values: slices.Clone(values)}
}

// Values returns a copy of the value set, in insertion order.
func (c In) Values() []any { return slices.Clone(c.values) }

// Operator implements [Constraint].
func (c In) Operator() Operator { return OpIn }

// Negate implements [Constraint].
func (c In) Negate() Constraint { return NotIn{values: c.values} }

func (c In) String() string { return render(c) }
func (c In) body() string   { return valueList(c.values) }

// NotIn matches values that are not members of its value set.
type NotIn In

// NotValues returns a set-exclusion constraint, the dual of [Values].
func NotValues(values ...any) NotIn {
	requireValues(values)
	return NotIn{values: slices.Clone(values)}
}

// Values returns a copy of the excluded value set, in insertion order.
func (c NotIn) Values() []any { return slices.Clone(c.values) }

// Operator implements [Constraint].
func (c NotIn) Operator() Operator { return OpNotIn }

// Negate implements [Constraint].
func (c NotIn) Negate() Constraint { return In{values: c.values} }

func (c NotIn) String() string { return render(c) }
func (c NotIn) body() string   { return valueList(c.values) }

func valueList(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = literal(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Null matches attributes holding a null value.
type Null struct{}

// IsNull returns the null-check constraint.
func IsNull() Null { return Null{} }

// Operator implements [Constraint].
func (Null) Operator() Operator { return OpNull }

// Negate implements [Constraint].
func (Null) Negate() Constraint { return NotNull{} }

func (c Null) String() string { return render(c) }
func (Null) body() string     { return "" }

// NotNull matches attributes holding a non-null value.
type NotNull struct{}

// IsNotNull returns the non-null-check constraint.
func IsNotNull() NotNull { return NotNull{} }

// Operator implements [Constraint].
func (NotNull) Operator() Operator { return OpNotNull }

// Negate implements [Constraint].
func (NotNull) Negate() Constraint { return Null{} }

func (c NotNull) String() string { return render(c) }
func (NotNull) body() string     { return "" }
