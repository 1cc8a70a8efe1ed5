package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexgram/lexgram/internal/exc"
)

func codes(errs []exc.Exception) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code()
	}
	return out
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		rule     Rule
		catalog  Catalog
		expected []string
	}{
		{
			name: "valid rule",
			rule: Sequence(Value("a", true), Optional(Pattern(`\d+`))),
		},
		{
			name:     "empty literal",
			rule:     Value("", true),
			expected: []string{exc.CodeInvalidRule},
		},
		{
			name:     "malformed pattern",
			rule:     Pattern("[unclosed"),
			expected: []string{exc.CodeInvalidPattern},
		},
		{
			name:     "empty sequence",
			rule:     Sequence(),
			expected: []string{exc.CodeInvalidRule},
		},
		{
			name:     "empty alternation",
			rule:     Any(),
			expected: []string{exc.CodeInvalidRule},
		},
		{
			name:     "invalid repetition range",
			rule:     Between(Value("a", true), 3, 1),
			expected: []string{exc.CodeInvalidRule},
		},
		{
			name:     "unknown reference",
			rule:     Reference("Missing"),
			expected: []string{exc.CodeUnknownRuleReference},
		},
		{
			name: "resolved reference",
			rule: Reference("Digits"),
			catalog: Catalog{
				"Digits": Pattern("[0-9]+"),
			},
		},
		{
			name: "recursive reference",
			rule: Reference("A"),
			catalog: Catalog{
				"A": Sequence(Value("a", true), Reference("B")),
				"B": Reference("A"),
			},
			expected: []string{exc.CodeInvalidRule},
		},
		{
			name:     "nested problem is found",
			rule:     Boundary(Value("\"", true), Pattern("[bad"), Value("\"", true)),
			expected: []string{exc.CodeInvalidPattern},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			errs := Validate(testCase.rule, testCase.catalog)
			require.Equal(t, testCase.expected, codes(errs))
		})
	}
}

func TestWalkOrder(t *testing.T) {
	t.Parallel()

	var visited []Rule
	rule := Sequence(Value("a", true), Optional(Value("b", true)))
	Walk(rule, func(r Rule) {
		visited = append(visited, r)
	})
	require.Len(t, visited, 4)
	require.Equal(t, rule, visited[len(visited)-1])
}
