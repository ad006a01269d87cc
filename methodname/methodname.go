// Package methodname parses Query by Method Name repository method names
// into structured queries.
//
// Method names combine a subject (find…By, countBy, existsBy, deleteBy,
// optionally with First and a result count), a predicate of conditions
// joined by And and Or, and an optional OrderBy clause:
//
//	findByNameLikeAndPriceLessThanEqual
//	findFirst25ByYearHiredOrderBySalaryDescLastNameAsc
//	existsByYearHiredAndWageLessThan
//
// Conditions bind method arguments in order: Between consumes two, the
// zero-argument keywords (Null, True, False) none, and every other condition
// exactly one. And binds tighter than Or. Attribute segments are resolved
// against a [metamodel.Model] by longest match, with Id aliasing the
// entity's identifier attribute.
//
// Method names arrive as runtime strings, so every malformed input is
// reported as an error, never a panic.
package methodname

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goccy/go-reflect"
	"github.com/godatakit/godata"
	"github.com/godatakit/godata/constraint"
	"github.com/godatakit/godata/metamodel"
	"github.com/godatakit/godata/restrict"
)

// Subject tells what a parsed method does with the matching entities.
type Subject uint8

const (
	// SubjectFind retrieves the matching entities.
	SubjectFind Subject = iota
	// SubjectCount counts the matching entities.
	SubjectCount
	// SubjectExists tests whether any entity matches.
	SubjectExists
	// SubjectDelete removes the matching entities.
	SubjectDelete
)

// String returns the subject name.
func (s Subject) String() string {
	switch s {
	case SubjectCount:
		return "count"
	case SubjectExists:
		return "exists"
	case SubjectDelete:
		return "delete"
	}
	return "find"
}

// Query is the structured form of a parsed method name, ready for a provider
// to execute.
type Query[T any] struct {
	// Subject tells what to do with the matching entities.
	Subject Subject
	// First caps the number of results; 0 means no cap.
	First int
	// Restriction filters the entities. It is [restrict.Unrestricted]
	// when the method has an order clause but no predicate.
	Restriction restrict.Restriction[T]
	// Order lists the sort criteria of the OrderBy clause, in precedence
	// order.
	Order []godata.Sort[T]
}

// Parse resolves a Query by Method Name style method name against the entity
// model and binds the method arguments to its conditions.
func Parse[T any](model metamodel.Model[T], method string, args ...any) (Query[T], error) {
	p := newParser(model, args)
	var q Query[T]

	rest, err := p.subject(&q, method)
	if err != nil {
		return q, err
	}

	predicate, order, hasOrder := strings.Cut(rest, "OrderBy")
	if predicate == "" && !hasOrder {
		return q, ErrMissingPredicate{Method: method}
	}

	if predicate == "" {
		q.Restriction = restrict.Unrestricted[T]{}
	} else if q.Restriction, err = p.predicate(predicate); err != nil {
		return q, err
	}

	if hasOrder {
		if q.Order, err = p.orderClause(order); err != nil {
			return q, err
		}
	}

	if p.next != len(p.args) {
		return q, ErrArgumentCount{Want: p.next, Got: len(p.args)}
	}
	return q, nil
}

type parser[T any] struct {
	model    metamodel.Model[T]
	segments []string          // attribute name segments, longest first
	names    map[string]string // segment -> attribute name
	args     []any
	next     int
}

func newParser[T any](model metamodel.Model[T], args []any) *parser[T] {
	attrs := model.Attributes()
	p := &parser[T]{
		model:    model,
		segments: make([]string, 0, len(attrs)),
		names:    make(map[string]string, len(attrs)),
		args:     args,
	}
	for _, name := range attrs {
		seg := upperFirst(name)
		p.segments = append(p.segments, seg)
		p.names[seg] = name
	}
	// longest match wins when one attribute name prefixes another
	sort.Slice(p.segments, func(i, j int) bool {
		return len(p.segments[i]) > len(p.segments[j])
	})
	return p
}

// subject strips the subject prefix and returns the remainder of the method
// name.
func (p *parser[T]) subject(q *Query[T], method string) (string, error) {
	switch {
	case strings.HasPrefix(method, "countBy"):
		q.Subject = SubjectCount
		return method[len("countBy"):], nil
	case strings.HasPrefix(method, "existsBy"):
		q.Subject = SubjectExists
		return method[len("existsBy"):], nil
	case strings.HasPrefix(method, "deleteBy"):
		q.Subject = SubjectDelete
		return method[len("deleteBy"):], nil
	case strings.HasPrefix(method, "find"):
		q.Subject = SubjectFind
		rest := method[len("find"):]
		if strings.HasPrefix(rest, "First") {
			rest = rest[len("First"):]
			q.First = 1
			if n, digits := leadingInt(rest); digits > 0 {
				if n < 1 {
					return "", ErrBadSubject{Method: method}
				}
				q.First = n
				rest = rest[digits:]
			}
		}
		// any descriptor between find(First n) and By is ignored
		_, rest, ok := strings.Cut(rest, "By")
		if !ok {
			return "", ErrBadSubject{Method: method}
		}
		return rest, nil
	}
	return "", ErrBadSubject{Method: method}
}

// predicate parses the conditions between By and OrderBy. And binds tighter
// than Or.
func (p *parser[T]) predicate(s string) (restrict.Restriction[T], error) {
	var groups [][]restrict.Restriction[T]
	var current []restrict.Restriction[T]
	for {
		r, rest, err := p.condition(s)
		if err != nil {
			return nil, err
		}
		current = append(current, r)
		if rest == "" {
			break
		}
		switch {
		case strings.HasPrefix(rest, "And") && len(rest) > len("And"):
			s = rest[len("And"):]
		case strings.HasPrefix(rest, "Or") && len(rest) > len("Or"):
			groups = append(groups, current)
			current = nil
			s = rest[len("Or"):]
		default:
			return nil, ErrTrailingText{Text: rest}
		}
	}
	groups = append(groups, current)

	ands := make([]restrict.Restriction[T], len(groups))
	for i, g := range groups {
		if len(g) == 1 {
			ands[i] = g[0]
		} else {
			ands[i] = restrict.All(g...)
		}
	}
	if len(ands) == 1 {
		return ands[0], nil
	}
	return restrict.Any(ands...), nil
}

// condition parses one attribute condition and binds its arguments.
func (p *parser[T]) condition(s string) (restrict.Restriction[T], string, error) {
	attr, rest, err := p.attribute(s)
	if err != nil {
		return nil, "", err
	}
	kind, _ := p.model.Kind(attr)

	ignoreCase := false
	if strings.HasPrefix(rest, "IgnoreCase") {
		if kind != metamodel.KindText {
			return nil, "", ErrAttributeKind{Attribute: attr, Keyword: "IgnoreCase"}
		}
		ignoreCase = true
		rest = rest[len("IgnoreCase"):]
	}

	negated := false
	if strings.HasPrefix(rest, "Not") {
		negated = true
		rest = rest[len("Not"):]
	}

	for _, kw := range reservedKeywords {
		if strings.HasPrefix(rest, kw) {
			return nil, "", ErrReservedKeyword{Keyword: kw}
		}
	}

	kw, rest := keyword(rest)
	r, err := p.build(attr, kind, kw, ignoreCase, negated)
	if err != nil {
		return nil, "", err
	}
	return r, rest, nil
}

type keywordKind uint8

const (
	kwEqual keywordKind = iota
	kwGreaterThan
	kwGreaterThanEqual
	kwLessThan
	kwLessThanEqual
	kwBetween
	kwLike
	kwContains
	kwStartsWith
	kwEndsWith
	kwIn
	kwNull
	kwTrue
	kwFalse
)

// predicateKeywords is matched longest first so that GreaterThanEqual is
// never read as GreaterThan.
var predicateKeywords = []struct {
	name string
	kind keywordKind
}{
	{"GreaterThanEqual", kwGreaterThanEqual},
	{"GreaterThan", kwGreaterThan},
	{"LessThanEqual", kwLessThanEqual},
	{"LessThan", kwLessThan},
	{"StartsWith", kwStartsWith},
	{"EndsWith", kwEndsWith},
	{"Contains", kwContains},
	{"Between", kwBetween},
	{"False", kwFalse},
	{"Like", kwLike},
	{"Null", kwNull},
	{"True", kwTrue},
	{"In", kwIn},
}

// reservedKeywords are grammar words without defined behavior. Rejecting
// them keeps method names forward compatible.
var reservedKeywords = []string{
	"Empty",
	"AbsoluteValue",
	"CharCount",
	"ElementCount",
	"RoundedDown",
	"RoundedUp",
	"Rounded",
	"Trimmed",
	"WithDay",
	"WithHour",
	"WithMinute",
	"WithMonth",
	"WithQuarter",
	"WithSecond",
	"WithWeek",
	"WithYear",
}

func keyword(s string) (keywordKind, string) {
	for _, kw := range predicateKeywords {
		if strings.HasPrefix(s, kw.name) {
			return kw.kind, s[len(kw.name):]
		}
	}
	return kwEqual, s
}

// build turns one parsed condition into a restriction, consuming arguments.
func (p *parser[T]) build(
	attr string,
	kind metamodel.Kind,
	kw keywordKind,
	ignoreCase, negated bool,
) (restrict.Restriction[T], error) {
	switch kw {
	case kwEqual:
		v, err := p.arg()
		if err != nil {
			return nil, err
		}
		if kind == metamodel.KindText {
			s, ok := v.(string)
			if !ok {
				return nil, ErrArgumentType{Keyword: "EqualTo", Want: "string", Actual: v}
			}
			c := constraint.Constraint(constraint.EqualTo(s))
			if negated {
				c = constraint.NotEqualTo(s)
			}
			return p.text(attr, c, false, ignoreCase), nil
		}
		if negated {
			return restrict.NewBasic[T](attr, constraint.NotEqualTo(v)), nil
		}
		return restrict.NewBasic[T](attr, constraint.EqualTo(v)), nil

	case kwTrue, kwFalse:
		if kind != metamodel.KindBool {
			return nil, ErrAttributeKind{Attribute: attr, Keyword: boolKeyword(kw)}
		}
		value := kw == kwTrue
		if negated {
			return restrict.NewBasic[T](attr, constraint.NotEqualTo(value)), nil
		}
		return restrict.NewBasic[T](attr, constraint.EqualTo(value)), nil

	case kwNull:
		if negated {
			return restrict.NewBasic[T](attr, constraint.IsNotNull()), nil
		}
		return restrict.NewBasic[T](attr, constraint.IsNull()), nil

	case kwGreaterThan, kwGreaterThanEqual, kwLessThan, kwLessThanEqual:
		if kind != metamodel.KindComparable && kind != metamodel.KindText {
			return nil, ErrAttributeKind{Attribute: attr, Keyword: comparisonKeyword(kw)}
		}
		v, err := p.arg()
		if err != nil {
			return nil, err
		}
		var c constraint.Constraint
		switch kw {
		case kwGreaterThan:
			c = constraint.GreaterThan(v)
		case kwGreaterThanEqual:
			c = constraint.GreaterThanEqual(v)
		case kwLessThan:
			c = constraint.LessThan(v)
		default:
			c = constraint.LessThanEqual(v)
		}
		if negated {
			c = c.Negate()
		}
		if kind == metamodel.KindText {
			return p.text(attr, c, false, ignoreCase), nil
		}
		return restrict.NewBasic[T](attr, c), nil

	case kwBetween:
		if kind != metamodel.KindComparable && kind != metamodel.KindText {
			return nil, ErrAttributeKind{Attribute: attr, Keyword: "Between"}
		}
		min, err := p.arg()
		if err != nil {
			return nil, err
		}
		max, err := p.arg()
		if err != nil {
			return nil, err
		}
		var c constraint.Constraint = constraint.Bounds(min, max)
		if negated {
			c = constraint.NotBounds(min, max)
		}
		if kind == metamodel.KindText {
			return p.text(attr, c, false, ignoreCase), nil
		}
		return restrict.NewBasic[T](attr, c), nil

	case kwLike, kwContains, kwStartsWith, kwEndsWith:
		if kind != metamodel.KindText {
			return nil, ErrAttributeKind{Attribute: attr, Keyword: patternKeyword(kw)}
		}
		v, err := p.arg()
		if err != nil {
			return nil, err
		}
		s, ok := v.(string)
		if !ok {
			return nil, ErrArgumentType{Keyword: patternKeyword(kw), Want: "string", Actual: v}
		}
		var c constraint.Constraint
		escaped := kw != kwLike
		switch {
		case kw == kwLike && negated:
			c = constraint.NotLikePattern(s)
		case kw == kwLike:
			c = constraint.LikePattern(s)
		case kw == kwContains && negated:
			c = constraint.NotLikeSubstring(s)
		case kw == kwContains:
			c = constraint.LikeSubstring(s)
		case kw == kwStartsWith && negated:
			c = constraint.NotLikePrefix(s)
		case kw == kwStartsWith:
			c = constraint.LikePrefix(s)
		case negated:
			c = constraint.NotLikeSuffix(s)
		default:
			c = constraint.LikeSuffix(s)
		}
		return p.text(attr, c, escaped, ignoreCase), nil

	case kwIn:
		v, err := p.arg()
		if err != nil {
			return nil, err
		}
		values, ok := elements(v)
		if !ok {
			return nil, ErrArgumentType{Keyword: "In", Want: "slice", Actual: v}
		}
		if len(values) == 0 {
			return nil, ErrEmptyValues{Attribute: attr}
		}
		if negated {
			return restrict.NewBasic[T](attr, constraint.NotValues(values...)), nil
		}
		return restrict.NewBasic[T](attr, constraint.Values(values...)), nil
	}
	return nil, ErrTrailingText{Text: attr}
}

func (p *parser[T]) text(
	attr string,
	c constraint.Constraint,
	escaped, ignoreCase bool,
) restrict.Restriction[T] {
	r := restrict.NewText[T](attr, c, escaped)
	if ignoreCase {
		r = r.IgnoreCase()
	}
	return r
}

// orderClause parses the attributes and directions after OrderBy.
func (p *parser[T]) orderClause(s string) ([]godata.Sort[T], error) {
	if s == "" {
		return nil, ErrBadOrder{Clause: s}
	}
	var sorts []godata.Sort[T]
	for s != "" {
		attr, rest, err := p.attribute(s)
		if err != nil {
			return nil, err
		}
		kind, _ := p.model.Kind(attr)
		if kind == metamodel.KindCollection {
			return nil, ErrAttributeKind{Attribute: attr, Keyword: "OrderBy"}
		}
		ignoreCase := false
		if strings.HasPrefix(rest, "IgnoreCase") {
			if kind != metamodel.KindText {
				return nil, ErrAttributeKind{Attribute: attr, Keyword: "IgnoreCase"}
			}
			ignoreCase = true
			rest = rest[len("IgnoreCase"):]
		}
		ascending := true
		switch {
		case strings.HasPrefix(rest, "Asc"):
			rest = rest[len("Asc"):]
		case strings.HasPrefix(rest, "Desc"):
			ascending = false
			rest = rest[len("Desc"):]
		case rest == "":
			// a trailing attribute without direction sorts ascending
		default:
			return nil, ErrBadOrder{Clause: rest}
		}
		sorts = append(sorts, makeSort[T](attr, ascending, ignoreCase))
		s = rest
	}
	return sorts, nil
}

func makeSort[T any](attr string, ascending, ignoreCase bool) godata.Sort[T] {
	switch {
	case ascending && ignoreCase:
		return godata.AscIgnoreCase[T](attr)
	case ascending:
		return godata.Asc[T](attr)
	case ignoreCase:
		return godata.DescIgnoreCase[T](attr)
	}
	return godata.Desc[T](attr)
}

// attribute resolves the next attribute segment by longest match, with Id
// aliasing the identifier attribute.
func (p *parser[T]) attribute(s string) (string, string, error) {
	for _, seg := range p.segments {
		if strings.HasPrefix(s, seg) {
			return p.names[seg], s[len(seg):], nil
		}
	}
	if p.model.ID() != "" && strings.HasPrefix(s, "Id") {
		return p.model.ID(), s[len("Id"):], nil
	}
	return "", "", ErrUnknownAttribute{Token: firstToken(s)}
}

func (p *parser[T]) arg() (any, error) {
	if p.next >= len(p.args) {
		return nil, ErrArgumentCount{Want: p.next + 1, Got: len(p.args)}
	}
	v := p.args[p.next]
	if v == nil {
		return nil, ErrArgumentType{Keyword: "condition", Want: "non-nil value", Actual: v}
	}
	p.next++
	return v, nil
}

// elements expands a slice or array argument into its values.
func elements(v any) ([]any, bool) {
	if vs, ok := v.([]any); ok {
		return vs, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func boolKeyword(kw keywordKind) string {
	if kw == kwTrue {
		return "True"
	}
	return "False"
}

func comparisonKeyword(kw keywordKind) string {
	switch kw {
	case kwGreaterThan:
		return "GreaterThan"
	case kwGreaterThanEqual:
		return "GreaterThanEqual"
	case kwLessThan:
		return "LessThan"
	}
	return "LessThanEqual"
}

func patternKeyword(kw keywordKind) string {
	switch kw {
	case kwContains:
		return "Contains"
	case kwStartsWith:
		return "StartsWith"
	case kwEndsWith:
		return "EndsWith"
	}
	return "Like"
}

func leadingInt(s string) (int, int) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, 0
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, 0
	}
	return n, i
}

// firstToken returns the leading camel-case segment of s, for error
// reporting.
func firstToken(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	i := size
	for i < len(s) {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if unicode.IsUpper(r) {
			break
		}
		i += sz
	}
	return s[:i]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

