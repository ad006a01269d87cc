package metamodel

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goccy/go-reflect"
)

// Kind classifies entity attributes for query validation. It decides which
// restriction keywords apply to an attribute: text keywords need [KindText],
// comparisons need [KindComparable] or [KindText], boolean keywords need
// [KindBool], and collection attributes cannot be sorted on.
type Kind uint8

const (
	// KindBasic supports equality, set membership and null checks only.
	KindBasic Kind = iota
	// KindBool additionally supports the True and False keywords.
	KindBool
	// KindComparable additionally supports comparisons and ranges.
	KindComparable
	// KindText additionally supports pattern matching and case folding.
	KindText
	// KindCollection marks multi-valued attributes.
	KindCollection
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindComparable:
		return "comparable"
	case KindText:
		return "text"
	case KindCollection:
		return "collection"
	}
	return "basic"
}

// Model holds the attribute metadata derived from an entity struct: the
// attribute names, their kinds and the identifier attribute.
type Model[T any] struct {
	attrs map[string]Kind
	id    string
}

// Of derives the attribute model of the entity struct T.
//
// Attribute names come from the name portion of the data struct tag when
// present, otherwise from the field name with its first letter lowered. A
// field tagged `data:"-"` is skipped. The identifier attribute is the field
// carrying the id tag option (`data:",id"`), or absent that a field named
// ID. Unexported and embedded fields are ignored.
//
// Of panics when T is not a struct type.
func Of[T any]() Model[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("metamodel: %s is not a struct type", t))
	}

	m := Model[T]{attrs: make(map[string]Kind, t.NumField())}
	var fallbackID string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" || f.Anonymous {
			continue
		}
		name := lowerFirst(f.Name)
		tagged := false
		if tag, ok := f.Tag.Lookup("data"); ok {
			base, opts, _ := strings.Cut(tag, ",")
			if base == "-" {
				continue
			}
			if base != "" {
				name = base
			}
			tagged = hasOption(opts, "id")
		}
		m.attrs[name] = kindOf(f.Type)
		if tagged && m.id == "" {
			m.id = name
		}
		if f.Name == "ID" {
			fallbackID = name
		}
	}
	if m.id == "" {
		m.id = fallbackID
	}
	return m
}

// Attributes returns the attribute names in lexical order.
func (m Model[T]) Attributes() []string {
	names := make([]string, 0, len(m.attrs))
	for name := range m.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the entity has an attribute with the given name.
func (m Model[T]) Has(name string) bool {
	_, ok := m.attrs[name]
	return ok
}

// Kind returns the kind of the named attribute and whether it exists.
func (m Model[T]) Kind(name string) (Kind, bool) {
	k, ok := m.attrs[name]
	return k, ok
}

// ID returns the identifier attribute name, or "" when the entity has none.
func (m Model[T]) ID() string { return m.id }

func kindOf(t reflect.Type) Kind {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return KindText
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindComparable
	case reflect.Slice, reflect.Map:
		return KindCollection
	case reflect.Struct:
		if t.PkgPath() == "time" && t.Name() == "Time" {
			return KindComparable
		}
	}
	return KindBasic
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
