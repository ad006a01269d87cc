package methodname

import "fmt"

// ErrBadSubject is returned when a method name does not begin with one of
// the supported subject prefixes.
type ErrBadSubject struct {
	Method string
}

// Error implements [error].
func (e ErrBadSubject) Error() string {
	return fmt.Sprintf(
		"method name %q must begin with find…By, countBy, existsBy or deleteBy",
		e.Method,
	)
}

// ErrMissingPredicate is returned when nothing follows the By keyword.
type ErrMissingPredicate struct {
	Method string
}

// Error implements [error].
func (e ErrMissingPredicate) Error() string {
	return fmt.Sprintf("method name %q has no conditions after By", e.Method)
}

// ErrUnknownAttribute is returned when no entity attribute matches the next
// segment of the method name.
type ErrUnknownAttribute struct {
	Token string
}

// Error implements [error].
func (e ErrUnknownAttribute) Error() string {
	return fmt.Sprintf("no entity attribute matches %q", e.Token)
}

// ErrReservedKeyword is returned when the method name uses a keyword the
// grammar reserves but does not define, such as Empty.
type ErrReservedKeyword struct {
	Keyword string
}

// Error implements [error].
func (e ErrReservedKeyword) Error() string {
	return fmt.Sprintf("keyword %q is reserved and cannot be used in a predicate", e.Keyword)
}

// ErrAttributeKind is returned when a keyword does not apply to the kind of
// the attribute it follows, such as StartsWith on a numeric attribute.
type ErrAttributeKind struct {
	Attribute string
	Keyword   string
}

// Error implements [error].
func (e ErrAttributeKind) Error() string {
	return fmt.Sprintf("keyword %s cannot apply to attribute %q", e.Keyword, e.Attribute)
}

// ErrArgumentCount is returned when the number of arguments does not match
// the number the conditions consume.
type ErrArgumentCount struct {
	Want int
	Got  int
}

// Error implements [error].
func (e ErrArgumentCount) Error() string {
	return fmt.Sprintf("method requires %d arguments, got %d", e.Want, e.Got)
}

// ErrArgumentType is returned when an argument cannot serve the condition it
// is bound to.
type ErrArgumentType struct {
	Keyword string
	Want    string
	Actual  any
}

// Error implements [error].
func (e ErrArgumentType) Error() string {
	return fmt.Sprintf(
		"%s argument should be of type %s, got %T",
		e.Keyword, e.Want, e.Actual,
	)
}

// ErrEmptyValues is returned when an In condition is bound to an empty
// collection.
type ErrEmptyValues struct {
	Attribute string
}

// Error implements [error].
func (e ErrEmptyValues) Error() string {
	return fmt.Sprintf("values are required for In condition on %q", e.Attribute)
}

// ErrTrailingText is returned when the predicate has text left over after
// the last condition.
type ErrTrailingText struct {
	Text string
}

// Error implements [error].
func (e ErrTrailingText) Error() string {
	return fmt.Sprintf("unexpected text %q after condition", e.Text)
}

// ErrBadOrder is returned when the order clause cannot be parsed.
type ErrBadOrder struct {
	Clause string
}

// Error implements [error].
func (e ErrBadOrder) Error() string {
	return fmt.Sprintf("malformed order clause at %q", e.Clause)
}
