package constraint

import (
	"fmt"
	"strings"
)

// Wildcard and escape characters of the standard pattern language. A pattern
// matches a whole value; CharWildcard matches exactly one character and
// StringWildcard matches any sequence of characters, including none.
const (
	CharWildcard   = '_'
	StringWildcard = '%'
	DefaultEscape  = '\\'
)

// Like matches string values against a wildcard pattern.
type Like struct {
	pattern string
	escape  rune // 0 when the pattern was taken verbatim
}

// LikePattern returns a pattern constraint on a caller-supplied pattern. The
// pattern is taken verbatim: wildcards keep their meaning and nothing is
// escaped.
func LikePattern(pattern string) Like {
	return Like{pattern: pattern}
}

// LikeSubstring returns a pattern matching values that contain s. Wildcard
// characters occurring in s are escaped so they match literally.
func LikeSubstring(s string) Like {
	return Like{
		pattern: "%" + escapeLiteral(s, DefaultEscape) + "%",
		escape:  DefaultEscape,
	}
}

// LikePrefix returns a pattern matching values that start with s. Wildcard
// characters occurring in s are escaped so they match literally.
func LikePrefix(s string) Like {
	return Like{
		pattern: escapeLiteral(s, DefaultEscape) + "%",
		escape:  DefaultEscape,
	}
}

// LikeSuffix returns a pattern matching values that end with s. Wildcard
// characters occurring in s are escaped so they match literally.
func LikeSuffix(s string) Like {
	return Like{
		pattern: "%" + escapeLiteral(s, DefaultEscape),
		escape:  DefaultEscape,
	}
}

// LikeTranslated returns a pattern constraint on a pattern written with
// caller-chosen wildcard characters. The custom wildcards are rewritten to
// the standard ones and literal occurrences of the standard wildcards are
// escaped. It panics when both wildcards are the same character.
func LikeTranslated(pattern string, charWildcard, stringWildcard rune) Like {
	return Like{
		pattern: translate(pattern, charWildcard, stringWildcard, DefaultEscape),
		escape:  DefaultEscape,
	}
}

// Pattern returns the pattern in the standard wildcard language.
func (c Like) Pattern() string { return c.pattern }

// Escape returns the escape character used when the pattern was built, or 0
// when the pattern was taken verbatim.
func (c Like) Escape() rune { return c.escape }

// IsEscaped reports whether literal wildcard characters in the pattern are
// escaped.
func (c Like) IsEscaped() bool { return c.escape != 0 }

// Operator implements [Constraint].
func (c Like) Operator() Operator { return OpLike }

// Negate implements [Constraint].
func (c Like) Negate() Constraint { return NotLike(c) }

func (c Like) String() string { return render(c) }
func (c Like) body() string   { return literal(c.pattern) }

// NotLike matches string values that do not match a wildcard pattern.
type NotLike Like

// NotLikePattern returns the verbatim-pattern dual of [LikePattern].
func NotLikePattern(pattern string) NotLike {
	return NotLike(LikePattern(pattern))
}

// NotLikeSubstring returns the dual of [LikeSubstring].
func NotLikeSubstring(s string) NotLike {
	return NotLike(LikeSubstring(s))
}

// NotLikePrefix returns the dual of [LikePrefix].
func NotLikePrefix(s string) NotLike {
	return NotLike(LikePrefix(s))
}

// NotLikeSuffix returns the dual of [LikeSuffix].
func NotLikeSuffix(s string) NotLike {
	return NotLike(LikeSuffix(s))
}

// NotLikeTranslated returns the dual of [LikeTranslated]. It panics when
// both wildcards are the same character.
func NotLikeTranslated(pattern string, charWildcard, stringWildcard rune) NotLike {
	return NotLike(LikeTranslated(pattern, charWildcard, stringWildcard))
}

// Pattern returns the pattern in the standard wildcard language.
func (c NotLike) Pattern() string { return c.pattern }

// Escape returns the escape character used when the pattern was built, or 0
// when the pattern was taken verbatim.
func (c NotLike) Escape() rune { return c.escape }

// IsEscaped reports whether literal wildcard characters in the pattern are
// escaped.
func (c NotLike) IsEscaped() bool { return c.escape != 0 }

// Operator implements [Constraint].
func (c NotLike) Operator() Operator { return OpNotLike }

// Negate implements [Constraint].
func (c NotLike) Negate() Constraint { return Like(c) }

func (c NotLike) String() string { return render(c) }
func (c NotLike) body() string   { return literal(c.pattern) }

// escapeLiteral escapes every wildcard character, and the escape character
// itself, in a single left-to-right pass. Escape characters inserted by the
// pass are never re-escaped.
func escapeLiteral(s string, escape rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == CharWildcard || r == StringWildcard || r == escape {
			b.WriteRune(escape)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// translate rewrites a pattern using custom wildcard characters into the
// standard pattern language, escaping literal occurrences of the standard
// wildcards and of the escape character.
func translate(pattern string, charWildcard, stringWildcard, escape rune) string {
	if charWildcard == stringWildcard {
		panic(fmt.Sprintf(
			"Cannot use the same character (%c) for both wildcards.",
			charWildcard,
		))
	}
	var b strings.Builder
	b.Grow(len(pattern))
	for _, r := range pattern {
		switch r {
		case charWildcard:
			b.WriteRune(CharWildcard)
		case stringWildcard:
			b.WriteRune(StringWildcard)
		case CharWildcard, StringWildcard, escape:
			b.WriteRune(escape)
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
