package token

import (
	"fmt"
	"strings"
)

// Position identifies a single point in the original source text.
type Position struct {
	Line   int32
	Column int32
	Offset int
}

// Span covers a half-open range [Start.Offset, End.Offset) of the
// original source text.
type Span struct {
	Start Position
	End   Position
}

func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Token is one unit of the lexed or parsed stream. A token always carries
// the exact substring of the source it covers, so concatenating the
// values of a token sequence reconstructs the text it was produced from.
type Token interface {
	Value() string
	Span() Span
	Types() TypeSet
}

// Simple is an atomic token produced by the lexer. It never contains
// other tokens.
type Simple struct {
	value string
	span  Span
	types TypeSet
}

func NewSimple(value string, span Span) *Simple {
	return &Simple{value: value, span: span}
}

func (t *Simple) Value() string {
	return t.value
}

func (t *Simple) Span() Span {
	return t.span
}

func (t *Simple) Types() TypeSet {
	return t.types
}

// WithTypes returns a copy of the token carrying the given type tags.
// The receiver is left unchanged.
func (t *Simple) WithTypes(types TypeSet) *Simple {
	return &Simple{value: t.value, span: t.span, types: types}
}

func (t *Simple) String() string {
	return fmt.Sprintf("%q@%d", t.value, t.span.Start.Offset)
}

// Group is a composite token formed by grouping a contiguous span of
// tokens into one unit. Its value is the concatenation of its children
// and its span is the union of the child spans. Children may themselves
// be groups.
type Group struct {
	tokens []Token
	value  string
}

// NewGroup panics if the token sequence is empty or not contiguous in
// the original source. The engine never produces such spans; hitting
// this is an internal inconsistency and must fail loudly rather than
// return a truncated stream.
func NewGroup(tokens []Token) *Group {
	if len(tokens) == 0 {
		panic("token: group must contain at least one token")
	}
	var b strings.Builder
	offset := tokens[0].Span().Start.Offset
	for _, t := range tokens {
		if t.Span().Start.Offset != offset {
			panic(fmt.Sprintf("token: group children are not contiguous at offset %d", offset))
		}
		offset = t.Span().End.Offset
		b.WriteString(t.Value())
	}
	return &Group{tokens: append([]Token(nil), tokens...), value: b.String()}
}

// Contiguous reports whether every token starts exactly where the one
// before it ends, with no source text missing in between.
func Contiguous(tokens []Token) bool {
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Span().Start.Offset != tokens[i-1].Span().End.Offset {
			return false
		}
	}
	return true
}

func (g *Group) Value() string {
	return g.value
}

func (g *Group) Span() Span {
	return Span{
		Start: g.tokens[0].Span().Start,
		End:   g.tokens[len(g.tokens)-1].Span().End,
	}
}

func (g *Group) Types() TypeSet {
	return TypeSet{}
}

// Tokens returns the child tokens in source order. The returned slice
// must not be modified.
func (g *Group) Tokens() []Token {
	return g.tokens
}

func (g *Group) String() string {
	return fmt.Sprintf("group(%d)%q", len(g.tokens), g.value)
}

// Shadow wraps exactly one underlying token and marks it inert: it still
// occupies its position in the sequence and still reconstructs the
// original text, but rule matching treats it as invisible. Shadowing is
// undone by discarding the wrapper, never by mutating the underlying
// token.
type Shadow struct {
	token Token
}

func NewShadow(t Token) *Shadow {
	if t == nil {
		panic("token: cannot shadow a nil token")
	}
	return &Shadow{token: t}
}

func (s *Shadow) Value() string {
	return s.token.Value()
}

func (s *Shadow) Span() Span {
	return s.token.Span()
}

func (s *Shadow) Types() TypeSet {
	return s.token.Types()
}

// Unwrap returns the underlying token.
func (s *Shadow) Unwrap() Token {
	return s.token
}

// IsShadow reports whether t is invisible to rule matching.
func IsShadow(t Token) bool {
	_, ok := t.(*Shadow)
	return ok
}

// Text concatenates the values of all tokens in the sequence. For any
// sequence produced by the lexer or the rule engine this reconstructs
// the covered source text exactly.
func Text(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Value())
	}
	return b.String()
}
