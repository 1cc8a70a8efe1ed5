package lexer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexgram/lexgram/internal/exc"
	"github.com/lexgram/lexgram/internal/token"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	config, err := NewConfig("abcdefghijklmnopqrstuvwxyz0123456789", ".;= \n", nil)
	require.NoError(t, err)
	return config
}

func TestNewConfigRejectsOverlap(t *testing.T) {
	t.Parallel()

	_, err := NewConfig("abc", "c.", nil)
	require.Error(t, err)
	e, ok := err.(exc.Exception)
	require.True(t, ok)
	require.Equal(t, exc.CodeConflictingCharacter, e.Code())
}

func TestReadTokens(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "single run",
			input:    "abc123",
			expected: []string{"abc123"},
		},
		{
			name:     "separators split runs",
			input:    "x=1;",
			expected: []string{"x", "=", "1", ";"},
		},
		{
			name:     "each separator is its own token",
			input:    "a..b",
			expected: []string{"a", ".", ".", "b"},
		},
		{
			name:     "leading and trailing separators",
			input:    " ab ",
			expected: []string{" ", "ab", " "},
		},
		{
			name:     "newlines",
			input:    "a\nb",
			expected: []string{"a", "\n", "b"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			reader := NewReader(exc.NewReporter(nil), testConfig(t))

			tokens, err := reader.ReadTokens(ctx, "/test.txt", testCase.input)
			require.NoError(t, err)

			values := make([]string, 0, len(tokens))
			for _, tok := range tokens {
				values = append(values, tok.Value())
			}
			if testCase.expected == nil {
				require.Empty(t, values)
			} else {
				require.Equal(t, testCase.expected, values)
			}
			require.Equal(t, testCase.input, token.Text(tokens))
		})
	}
}

func TestReadTokensPositions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := NewReader(exc.NewReporter(nil), testConfig(t))

	tokens, err := reader.ReadTokens(ctx, "/test.txt", "ab\ncd")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	require.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Span().Start)
	require.Equal(t, token.Position{Line: 1, Column: 3, Offset: 2}, tokens[1].Span().Start)
	require.Equal(t, token.Position{Line: 2, Column: 1, Offset: 3}, tokens[2].Span().Start)
	require.Equal(t, token.Position{Line: 2, Column: 3, Offset: 5}, tokens[2].Span().End)
}

func TestReadTokensIllegalCharacter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reporter := exc.NewReporter(nil)
	reader := NewReader(reporter, testConfig(t))

	_, err := reader.ReadTokens(ctx, "/test.txt", "ab?cd")
	require.Error(t, err)
	e, ok := err.(exc.Exception)
	require.True(t, ok)
	require.Equal(t, exc.CodeIllegalCharacter, e.Code())
	require.Equal(t, int32(1), e.Location().Line)
	require.Equal(t, int32(3), e.Location().Column)
	require.Len(t, reporter.Reported(), 1)
}

func TestReadTokensIllegalCharacterNonFatal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reporter := exc.NewReporter([]string{exc.CodeIllegalCharacter})
	reader := NewReader(reporter, testConfig(t))

	tokens, err := reader.ReadTokens(ctx, "/test.txt", "ab?cd!")
	require.NoError(t, err)
	require.Equal(t, "ab?cd!", token.Text(tokens))
	require.Len(t, reporter.Reported(), 2)
}

func TestReadTokensClassification(t *testing.T) {
	t.Parallel()

	config, err := NewConfig("abcdefghijklmnopqrstuvwxyz", " ", token.Classify([]token.Definition{
		{Value: "return", CaseSensitive: true, Type: "keyword"},
	}))
	require.NoError(t, err)

	ctx := context.Background()
	reader := NewReader(exc.NewReporter(nil), config)

	tokens, err := reader.ReadTokens(ctx, "/test.txt", "return value")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	require.True(t, tokens[0].Types().Has("keyword"))
	require.Equal(t, 0, tokens[2].Types().Len())
}
