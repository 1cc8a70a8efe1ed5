package grammar

import (
	"github.com/lexgram/lexgram/internal/rules"
	"github.com/lexgram/lexgram/internal/token"
)

// pass is one registered rule/action pair. Passes run in registration
// order, each as a full sweep over the sequence produced by the one
// before it.
type pass struct {
	rule   rules.Rule
	action Action
}

// applyPass sweeps the sequence left to right, rewriting each
// non-overlapping match leftmost-first. A failed or zero-width match
// keeps the current token and moves on by one. Shadow tokens are copied
// through without attempting a match at their position, though a match
// started at a visible token may still swallow shadows sitting inside
// its span. A span that straddles a hole left by an earlier removal
// pass counts as a failed match: actions only ever see unbroken source
// text.
func applyPass(m *rules.Matcher, p pass, seq []token.Token) []token.Token {
	out := make([]token.Token, 0, len(seq))
	pos := 0
	for pos < len(seq) {
		if token.IsShadow(seq[pos]) {
			out = append(out, seq[pos])
			pos = pos + 1
			continue
		}
		end, ok := m.Match(p.rule, seq, pos)
		if !ok || end <= pos || !token.Contiguous(seq[pos:end]) {
			out = append(out, seq[pos])
			pos = pos + 1
			continue
		}
		out = append(out, p.action(seq[pos:end:end])...)
		pos = end
	}
	return out
}
