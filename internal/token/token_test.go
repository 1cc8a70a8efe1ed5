package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func simple(value string, offset int) *Simple {
	return NewSimple(value, Span{
		Start: Position{Line: 1, Column: int32(offset) + 1, Offset: offset},
		End:   Position{Line: 1, Column: int32(offset+len(value)) + 1, Offset: offset + len(value)},
	})
}

func TestSimple(t *testing.T) {
	t.Parallel()

	tok := simple("package", 0)
	require.Equal(t, "package", tok.Value())
	require.Equal(t, 7, tok.Span().Len())
	require.Equal(t, 0, tok.Types().Len())

	tagged := tok.WithTypes(NewTypeSet("keyword"))
	require.True(t, tagged.Types().Has("keyword"))
	require.Equal(t, 0, tok.Types().Len())
	require.Equal(t, tok.Value(), tagged.Value())
}

func TestContiguous(t *testing.T) {
	t.Parallel()

	require.True(t, Contiguous(nil))
	require.True(t, Contiguous([]Token{simple("a", 0)}))
	require.True(t, Contiguous([]Token{simple("a", 0), simple("b", 1)}))
	require.False(t, Contiguous([]Token{simple("a", 0), simple("b", 2)}))
}

func TestGroup(t *testing.T) {
	t.Parallel()

	a := simple("1", 0)
	dot := simple(".", 1)
	b := simple("5", 2)

	group := NewGroup([]Token{a, dot, b})
	require.Equal(t, "1.5", group.Value())
	require.Equal(t, 0, group.Span().Start.Offset)
	require.Equal(t, 3, group.Span().End.Offset)
	require.Len(t, group.Tokens(), 3)

	nested := NewGroup([]Token{group, simple("f", 3)})
	require.Equal(t, "1.5f", nested.Value())
}

func TestGroupRejectsEmpty(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		NewGroup(nil)
	})
}

func TestGroupRejectsGap(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		NewGroup([]Token{simple("a", 0), simple("b", 5)})
	})
}

func TestShadow(t *testing.T) {
	t.Parallel()

	tok := simple(" ", 0)
	shadow := NewShadow(tok)
	require.Equal(t, " ", shadow.Value())
	require.Equal(t, tok.Span(), shadow.Span())
	require.True(t, IsShadow(shadow))
	require.False(t, IsShadow(tok))
	require.Equal(t, Token(tok), shadow.Unwrap())
}

func TestText(t *testing.T) {
	t.Parallel()

	tokens := []Token{
		simple("x", 0),
		NewShadow(simple(" ", 1)),
		simple("=", 2),
	}
	require.Equal(t, "x =", Text(tokens))
}

func TestTypeSet(t *testing.T) {
	t.Parallel()

	empty := TypeSet{}
	require.Equal(t, 0, empty.Len())
	require.False(t, empty.Has("keyword"))

	set := NewTypeSet("keyword", "literal")
	require.Equal(t, 2, set.Len())
	require.True(t, set.Has("keyword"))

	bigger := set.With("operator")
	require.Equal(t, 3, bigger.Len())
	require.Equal(t, 2, set.Len())
	require.Equal(t, []Type{"keyword", "literal", "operator"}, bigger.All())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	classify := Classify([]Definition{
		{Value: "package", CaseSensitive: true, Type: "keyword"},
		{Value: "null", CaseSensitive: false, Type: "literal"},
	})

	require.True(t, classify(simple("package", 0)).Has("keyword"))
	require.False(t, classify(simple("Package", 0)).Has("keyword"))
	require.True(t, classify(simple("NULL", 0)).Has("literal"))
	require.Equal(t, 0, classify(simple("other", 0)).Len())
}
