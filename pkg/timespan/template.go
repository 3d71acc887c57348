// ============================================================================
// timespan - Signed durations with placeholder templates
// ============================================================================
//
// Package:     timespan
// Description: Placeholder grammar, template compilation, render and parse
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package timespan

import (
	"regexp"
	"strconv"
	"strings"
)

// Predefined templates
const (
	// DefaultFormat renders "-" for negative spans only: "01:30:00", "-00:00:15"
	DefaultFormat = "%r%h:%i:%s"

	// TimeWithSignFormat always renders a sign: "+01:30:00", "-00:00:15"
	TimeWithSignFormat = "%R%h:%i:%s"
)

// TokenKind identifies a template token
type TokenKind int

const (
	TokenLiteral      TokenKind = iota // verbatim text
	TokenHours                         // %h
	TokenMinutes                       // %i
	TokenSeconds                       // %s
	TokenSignBare                      // %r
	TokenSignExplicit                  // %R
)

// String returns the name of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "literal"
	case TokenHours:
		return "hours"
	case TokenMinutes:
		return "minutes"
	case TokenSeconds:
		return "seconds"
	case TokenSignBare:
		return "sign"
	case TokenSignExplicit:
		return "explicit-sign"
	default:
		return "unknown"
	}
}

// IsSign reports whether the kind renders or captures the sign
func (k TokenKind) IsSign() bool {
	return k == TokenSignBare || k == TokenSignExplicit
}

// Token is one element of a compiled template
type Token struct {
	Kind TokenKind
	Text string // source text: the literal run or the placeholder, e.g. "%h"
}

// placeholder describes one verb of the grammar. The same table drives
// render and parse.
type placeholder struct {
	verb    byte
	kind    TokenKind
	pattern string
	render  func(neg bool, hours, minutes, seconds float64) string
}

var placeholders = [...]placeholder{
	{'h', TokenHours, `\d+`, func(_ bool, h, _, _ float64) string { return pad2(h) }},
	{'i', TokenMinutes, `\d{2}`, func(_ bool, _, m, _ float64) string { return pad2(m) }},
	{'s', TokenSeconds, `\d{2}`, func(_ bool, _, _, s float64) string { return pad2(s) }},
	{'r', TokenSignBare, `-?`, func(neg bool, _, _, _ float64) string {
		if neg {
			return "-"
		}
		return ""
	}},
	{'R', TokenSignExplicit, `[+-]`, func(neg bool, _, _, _ float64) string {
		if neg {
			return "-"
		}
		return "+"
	}},
}

func lookupVerb(verb byte) (placeholder, bool) {
	for _, p := range placeholders {
		if p.verb == verb {
			return p, true
		}
	}
	return placeholder{}, false
}

func lookupKind(kind TokenKind) (placeholder, bool) {
	for _, p := range placeholders {
		if p.kind == kind {
			return p, true
		}
	}
	return placeholder{}, false
}

// pad2 renders a non-negative whole number with at least two digits
func pad2(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// Template is a compiled template. It is immutable and safe for concurrent
// use.
type Template struct {
	source  string
	tokens  []Token
	pattern *regexp.Regexp
	groups  []TokenKind // kind of each capture group, in order
}

// Tokenize splits source into literal runs and placeholders. Unknown
// sequences such as "%x" and a trailing "%" stay literal.
func Tokenize(source string) []Token {
	var tokens []Token
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenLiteral, Text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(source); i++ {
		if source[i] == '%' && i+1 < len(source) {
			if p, ok := lookupVerb(source[i+1]); ok {
				flush()
				tokens = append(tokens, Token{Kind: p.kind, Text: source[i : i+2]})
				i++
				continue
			}
		}
		literal.WriteByte(source[i])
	}
	flush()

	return tokens
}

// Compile builds a Template. Compilation never fails; a template without
// any placeholder is compiled but reports Valid() == false and rejects every
// value in Parse.
func Compile(source string) *Template {
	t := &Template{
		source: source,
		tokens: Tokenize(source),
	}

	var expr strings.Builder
	expr.WriteString("^")
	for _, tok := range t.tokens {
		if tok.Kind == TokenLiteral {
			expr.WriteString(regexp.QuoteMeta(tok.Text))
			continue
		}
		p, _ := lookupKind(tok.Kind)
		expr.WriteString("(" + p.pattern + ")")
		t.groups = append(t.groups, tok.Kind)
	}
	expr.WriteString("$")

	if len(t.groups) > 0 {
		t.pattern = regexp.MustCompile(expr.String())
	}

	return t
}

// Source returns the template text
func (t *Template) Source() string {
	return t.source
}

// String returns the template text
func (t *Template) String() string {
	return t.source
}

// Tokens returns a copy of the token list
func (t *Template) Tokens() []Token {
	out := make([]Token, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// Valid reports whether the template contains at least one placeholder
func (t *Template) Valid() bool {
	return len(t.groups) > 0
}

// Pattern returns the anchored expression used by Parse, empty when the
// template is not valid
func (t *Template) Pattern() string {
	if t.pattern == nil {
		return ""
	}
	return t.pattern.String()
}

// Format renders ts. Literals are copied verbatim and placeholders are
// substituted from the decomposition of the magnitude; sign placeholders
// render wherever they appear.
func (t *Template) Format(ts Timespan) string {
	neg := ts.IsNegative()
	h, m, s := decompose(ts.Seconds)

	var b strings.Builder
	b.Grow(len(t.source) + 8)
	for _, tok := range t.tokens {
		if tok.Kind == TokenLiteral {
			b.WriteString(tok.Text)
			continue
		}
		p, _ := lookupKind(tok.Kind)
		b.WriteString(p.render(neg, h, m, s))
	}
	return b.String()
}

// Match reports whether text has the structure the template describes
func (t *Template) Match(text string) bool {
	return t.pattern != nil && t.pattern.MatchString(text)
}

// Parse decodes text. The whole input must match; missing components are
// zero. When a placeholder occurs more than once, its first occurrence
// supplies the value.
func (t *Template) Parse(text string) (*Timespan, error) {
	if t.pattern == nil {
		return nil, newInvalidFormatError(text, t.source)
	}

	match := t.pattern.FindStringSubmatch(text)
	if match == nil {
		return nil, newInvalidFormatError(text, t.source)
	}

	var (
		values = map[TokenKind]float64{}
		neg    bool
		signed bool
	)

	for i, kind := range t.groups {
		capture := match[i+1]

		if kind.IsSign() {
			if !signed {
				neg = capture == "-"
				signed = true
			}
			continue
		}

		if _, seen := values[kind]; seen {
			continue
		}
		v, err := strconv.ParseFloat(capture, 64)
		if err != nil {
			return nil, newInvalidFormatError(text, t.source)
		}
		values[kind] = v
	}

	ts := New(values[TokenHours], values[TokenMinutes], values[TokenSeconds])
	if neg && !ts.IsEmpty() {
		ts.Negate()
	}
	return ts, nil
}
