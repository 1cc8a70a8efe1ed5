package rules

import (
	"fmt"
	"strings"

	"github.com/lexgram/lexgram/internal/token"
)

// Matcher evaluates rules over a token sequence. Shadow tokens are
// invisible to matching: single-token rules apply to the first visible
// token at or after the position, so a successful multi-token match may
// cover shadow tokens that sit between the visible ones. A Matcher holds
// no mutable state and is safe for concurrent use.
type Matcher struct {
	Catalog Catalog
}

// Match attempts r at position pos in seq. On success it returns the
// exclusive end index of the consumed span and true; the end equals pos
// for zero-width matches. On failure it returns pos and false.
func (m *Matcher) Match(r Rule, seq []token.Token, pos int) (int, bool) {
	switch rule := r.(type) {
	case *literal:
		i, ok := visible(seq, pos)
		if !ok {
			return pos, false
		}
		if equalValue(seq[i].Value(), rule.value, rule.caseSensitive) {
			return i + 1, true
		}
		return pos, false
	case *pattern:
		if rule.re == nil {
			return pos, false
		}
		i, ok := visible(seq, pos)
		if !ok {
			return pos, false
		}
		if rule.re.MatchString(seq[i].Value()) {
			return i + 1, true
		}
		return pos, false
	case *sequence:
		end := pos
		for _, sub := range rule.rules {
			next, ok := m.Match(sub, seq, end)
			if !ok {
				return pos, false
			}
			end = next
		}
		return end, true
	case *anyOf:
		for _, sub := range rule.rules {
			if end, ok := m.Match(sub, seq, pos); ok {
				return end, true
			}
		}
		return pos, false
	case *allOf:
		if len(rule.rules) == 0 {
			return pos, false
		}
		end, ok := m.Match(rule.rules[0], seq, pos)
		if !ok {
			return pos, false
		}
		for _, sub := range rule.rules[1:] {
			if _, ok := m.Match(sub, seq, pos); !ok {
				return pos, false
			}
		}
		return end, true
	case *notRule:
		if _, ok := m.Match(rule.sub, seq, pos); ok {
			return pos, false
		}
		return pos, true
	case *lookaheadRule:
		if _, ok := m.Match(rule.sub, seq, pos); ok {
			return pos, true
		}
		return pos, false
	case *optionalRule:
		if end, ok := m.Match(rule.sub, seq, pos); ok {
			return end, true
		}
		return pos, true
	case *repeat:
		count := 0
		end := pos
		for rule.max < 0 || count < rule.max {
			next, ok := m.Match(rule.sub, seq, end)
			if !ok {
				break
			}
			count = count + 1
			if next == end {
				// a zero-width sub-match counts as one iteration, not a loop
				break
			}
			end = next
		}
		if rule.max >= 0 && count == rule.max {
			if _, ok := m.Match(rule.sub, seq, end); ok {
				return pos, false
			}
		}
		if count < rule.min {
			return pos, false
		}
		return end, true
	case *reference:
		target, ok := m.Catalog[rule.name]
		if !ok {
			return pos, false
		}
		return m.Match(target, seq, pos)
	case *boundary:
		end, ok := m.Match(rule.start, seq, pos)
		if !ok {
			return pos, false
		}
		for {
			if stop, ok := m.Match(rule.end, seq, end); ok {
				return stop, true
			}
			if _, ok := visible(seq, end); !ok {
				// input exhausted with no terminator: unterminated
				// construct, reported as no match at this position
				return pos, false
			}
			next, ok := m.Match(rule.content, seq, end)
			if !ok {
				return pos, false
			}
			if next <= end {
				next = end + 1
			}
			end = next
		}
	case *alwaysMatch:
		return pos, true
	case *endDocument:
		if _, ok := visible(seq, pos); ok {
			return pos, false
		}
		return pos, true
	}
	panic(fmt.Sprintf("rules: unknown rule variant %T", r))
}

// visible returns the index of the first non-shadow token at or after
// pos.
func visible(seq []token.Token, pos int) (int, bool) {
	for i := pos; i < len(seq); i = i + 1 {
		if !token.IsShadow(seq[i]) {
			return i, true
		}
	}
	return len(seq), false
}

func equalValue(got string, want string, caseSensitive bool) bool {
	if caseSensitive {
		return got == want
	}
	return strings.EqualFold(got, want)
}
