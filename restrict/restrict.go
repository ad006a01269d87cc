// Package restrict composes constraints into restriction trees: immutable
// predicates that repository callers attach to queries and persistence
// providers translate for execution.
//
// A restriction is either a leaf pairing one entity attribute with a
// [github.com/godatakit/godata/constraint.Constraint], or a composite
// grouping child restrictions with ALL or ANY semantics. The variant set is
// closed: providers can type switch over [Basic], [Text], [Composite],
// [Unrestricted] and [Unmatchable] exhaustively.
//
// Negation never rewrites a tree. On leaves it flips a flag that changes the
// observable comparison operator; on composites it wraps the whole group.
// Any De Morgan rewriting a query language needs is the provider's job. The
// one exception is the sentinel pair: negating [Unrestricted] yields
// [Unmatchable] and vice versa, so that each sentinel always means what its
// name says regardless of any flag.
package restrict

import (
	"fmt"
	"slices"
	"strings"

	"github.com/godatakit/godata/constraint"
)

// Restriction is a predicate over entities of type T, either a leaf or a
// composite. Restrictions are immutable value objects; every method returns
// a new value.
type Restriction[T any] interface {
	// Negate returns the logical complement of this restriction.
	Negate() Restriction[T]
	// IsNegated reports whether the restriction was negated.
	IsNegated() bool
	fmt.Stringer

	restriction()
}

// CompositeType tells how a composite combines its children.
type CompositeType uint8

const (
	// TypeAll matches entities satisfying every child restriction.
	TypeAll CompositeType = iota
	// TypeAny matches entities satisfying at least one child restriction.
	TypeAny
)

// String returns "ALL" or "ANY".
func (t CompositeType) String() string {
	if t == TypeAny {
		return "ANY"
	}
	return "ALL"
}

// Basic restricts a single entity attribute with one constraint.
type Basic[T any] struct {
	attribute string
	cons      constraint.Constraint
	negated   bool
}

// NewBasic returns a leaf restriction binding c to the named attribute. It
// panics when the attribute is empty or the constraint is nil.
func NewBasic[T any](attribute string, c constraint.Constraint) Basic[T] {
	if attribute == "" {
		panic("restrict: attribute must not be empty")
	}
	if c == nil {
		panic("restrict: constraint must not be nil")
	}
	return Basic[T]{attribute: attribute, cons: c}
}

// Attribute returns the restricted attribute name.
func (r Basic[T]) Attribute() string { return r.attribute }

// Constraint returns the leaf constraint as constructed, unaffected by
// negation.
func (r Basic[T]) Constraint() constraint.Constraint { return r.cons }

// Comparison returns the operator a provider must apply, accounting for
// negation.
func (r Basic[T]) Comparison() constraint.Operator {
	if r.negated {
		return r.cons.Operator().Negate()
	}
	return r.cons.Operator()
}

// IsNegated implements [Restriction].
func (r Basic[T]) IsNegated() bool { return r.negated }

// Negate implements [Restriction]. Attribute and constraint are untouched;
// only the negation flag flips.
func (r Basic[T]) Negate() Restriction[T] {
	r.negated = !r.negated
	return r
}

// String renders the restriction for debugging, for example "price < 50".
func (r Basic[T]) String() string {
	return r.attribute + " " + effective(r.cons, r.negated).String()
}

func (Basic[T]) restriction() {}

// Text is a [Basic] specialization for text attributes, adding case
// sensitivity and pattern escape state.
type Text[T any] struct {
	attribute     string
	cons          constraint.Constraint
	negated       bool
	caseSensitive bool
	escaped       bool
}

// NewText returns a text leaf restriction, case sensitive by default. The
// escaped flag records whether literal wildcards in the constraint's pattern
// were escaped during construction. It panics when the attribute is empty or
// the constraint is nil.
func NewText[T any](attribute string, c constraint.Constraint, escaped bool) Text[T] {
	if attribute == "" {
		panic("restrict: attribute must not be empty")
	}
	if c == nil {
		panic("restrict: constraint must not be nil")
	}
	return Text[T]{
		attribute:     attribute,
		cons:          c,
		caseSensitive: true,
		escaped:       escaped,
	}
}

// Attribute returns the restricted attribute name.
func (r Text[T]) Attribute() string { return r.attribute }

// Constraint returns the leaf constraint as constructed, unaffected by
// negation.
func (r Text[T]) Constraint() constraint.Constraint { return r.cons }

// Comparison returns the operator a provider must apply, accounting for
// negation.
func (r Text[T]) Comparison() constraint.Operator {
	if r.negated {
		return r.cons.Operator().Negate()
	}
	return r.cons.Operator()
}

// IgnoreCase returns a copy requesting case-insensitive comparison.
// Attribute, constraint, negation and escape state are preserved.
func (r Text[T]) IgnoreCase() Text[T] {
	r.caseSensitive = false
	return r
}

// IsCaseSensitive reports whether the comparison is case sensitive. A true
// value is ignored by data stores that cannot compare case-sensitively.
func (r Text[T]) IsCaseSensitive() bool { return r.caseSensitive }

// IsEscaped reports whether literal wildcards in the pattern were escaped
// during construction.
func (r Text[T]) IsEscaped() bool { return r.escaped }

// IsNegated implements [Restriction].
func (r Text[T]) IsNegated() bool { return r.negated }

// Negate implements [Restriction]. Only the negation flag flips.
func (r Text[T]) Negate() Restriction[T] {
	r.negated = !r.negated
	return r
}

// String renders the restriction for debugging.
func (r Text[T]) String() string {
	return r.attribute + " " + effective(r.cons, r.negated).String()
}

func (Text[T]) restriction() {}

func effective(c constraint.Constraint, negated bool) constraint.Constraint {
	if negated {
		return c.Negate()
	}
	return c
}

// Composite groups child restrictions with ALL or ANY semantics. Child order
// is preserved and significant for textual rendering.
type Composite[T any] struct {
	typ      CompositeType
	children []Restriction[T]
	negated  bool
}

// All combines restrictions so that every one must match. With no arguments
// it returns [Unrestricted].
func All[T any](restrictions ...Restriction[T]) Restriction[T] {
	if len(restrictions) == 0 {
		return Unrestricted[T]{}
	}
	return newComposite(TypeAll, restrictions)
}

// Any combines restrictions so that at least one must match. With no
// arguments it returns [Unrestricted], exactly like [All]: an absent
// predicate restricts nothing. [Unmatchable] is only ever produced
// explicitly or by negating [Unrestricted].
func Any[T any](restrictions ...Restriction[T]) Restriction[T] {
	if len(restrictions) == 0 {
		return Unrestricted[T]{}
	}
	return newComposite(TypeAny, restrictions)
}

// Not returns the complement of r. It panics when r is nil.
func Not[T any](r Restriction[T]) Restriction[T] {
	if r == nil {
		panic("restrict: restriction must not be nil")
	}
	return r.Negate()
}

func newComposite[T any](typ CompositeType, restrictions []Restriction[T]) Composite[T] {
	for _, r := range restrictions {
		if r == nil {
			panic("restrict: restrictions must not be nil")
		}
	}
	return Composite[T]{typ: typ, children: slices.Clone(restrictions)}
}

// Type returns how the children are combined.
func (r Composite[T]) Type() CompositeType { return r.typ }

// Restrictions returns the child restrictions in insertion order.
func (r Composite[T]) Restrictions() []Restriction[T] {
	return slices.Clone(r.children)
}

// IsNegated implements [Restriction].
func (r Composite[T]) IsNegated() bool { return r.negated }

// Negate implements [Restriction]. The negation wraps the whole group; it is
// not distributed to the children.
func (r Composite[T]) Negate() Restriction[T] {
	r.negated = !r.negated
	return r
}

// String renders the group for debugging, for example
// "(price < 50 AND name LIKE '%c%')".
func (r Composite[T]) String() string {
	token := " AND "
	if r.typ == TypeAny {
		token = " OR "
	}
	parts := make([]string, len(r.children))
	for i, child := range r.children {
		parts[i] = child.String()
	}
	s := "(" + strings.Join(parts, token) + ")"
	if r.negated {
		s = "NOT " + s
	}
	return s
}

func (Composite[T]) restriction() {}

// Unrestricted matches every entity. It behaves as an empty ALL composite
// and is the zero-argument result of [All].
type Unrestricted[T any] struct{}

// Type returns [TypeAll].
func (Unrestricted[T]) Type() CompositeType { return TypeAll }

// Restrictions returns no children.
func (Unrestricted[T]) Restrictions() []Restriction[T] { return nil }

// IsNegated always reports false; negation produces [Unmatchable] instead of
// setting a flag.
func (Unrestricted[T]) IsNegated() bool { return false }

// Negate implements [Restriction], returning [Unmatchable].
func (Unrestricted[T]) Negate() Restriction[T] { return Unmatchable[T]{} }

func (Unrestricted[T]) String() string { return "UNRESTRICTED" }

func (Unrestricted[T]) restriction() {}

// Unmatchable matches no entity. It behaves as an empty ANY composite and is
// the negation of [Unrestricted].
type Unmatchable[T any] struct{}

// Type returns [TypeAny].
func (Unmatchable[T]) Type() CompositeType { return TypeAny }

// Restrictions returns no children.
func (Unmatchable[T]) Restrictions() []Restriction[T] { return nil }

// IsNegated always reports false; negation produces [Unrestricted] instead
// of setting a flag.
func (Unmatchable[T]) IsNegated() bool { return false }

// Negate implements [Restriction], returning [Unrestricted].
func (Unmatchable[T]) Negate() Restriction[T] { return Unrestricted[T]{} }

func (Unmatchable[T]) String() string { return "UNMATCHABLE" }

func (Unmatchable[T]) restriction() {}
