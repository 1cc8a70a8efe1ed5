package grammar

import (
	"github.com/lexgram/lexgram/internal/token"
)

// Action transforms a matched span of tokens into its replacement in
// the output stream. An action must be pure with respect to the stream:
// the replacement must cover exactly the source text of the match, so
// reconstructing the input from token values keeps working after every
// pass. Returning nil drops the span entirely.
type Action func(match []token.Token) []token.Token

// GroupingMode selects how a matched span becomes a composite token.
// GroupMatched leaves a span that already consists of a single group
// untouched, so re-matching grouped text is a no-op. GroupAll always
// wraps the span, nesting any group inside it.
type GroupingMode int

const (
	GroupMatched GroupingMode = iota
	GroupAll
)

// Grouping replaces the matched span with a single composite token.
func Grouping(mode GroupingMode) Action {
	return func(match []token.Token) []token.Token {
		if mode == GroupMatched && len(match) == 1 {
			if _, ok := match[0].(*token.Group); ok {
				return match
			}
		}
		return []token.Token{token.NewGroup(match)}
	}
}

// Convert applies a one-to-one transformation to every token in the
// span. The usual transform is token.NewShadow wrapped to take and
// return the interface type.
func Convert(transform func(token.Token) token.Token) Action {
	return func(match []token.Token) []token.Token {
		out := make([]token.Token, len(match))
		for i, t := range match {
			out[i] = transform(t)
		}
		return out
	}
}

// Shadowing converts every token in the span into a shadow token,
// making it invisible to all later passes while keeping its text in the
// stream. Already shadowed tokens pass through unchanged.
func Shadowing() Action {
	return Convert(func(t token.Token) token.Token {
		if token.IsShadow(t) {
			return t
		}
		return token.NewShadow(t)
	})
}

// Skip removes the matched span from the stream when the predicate
// accepts it. The predicate sees the span as a single composite token;
// side effects such as collecting removed comments belong to the
// predicate. When the predicate declines, the original tokens stay.
func Skip(predicate func(token.Token) bool) Action {
	return func(match []token.Token) []token.Token {
		var span token.Token
		if len(match) == 1 {
			span = match[0]
		} else {
			span = token.NewGroup(match)
		}
		if predicate(span) {
			return nil
		}
		return match
	}
}
