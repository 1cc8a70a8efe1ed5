package lexer

import (
	"context"

	"github.com/lexgram/lexgram/internal/exc"
	"github.com/lexgram/lexgram/internal/iter"
	"github.com/lexgram/lexgram/internal/token"
)

// Reader turns raw text into a flat stream of one-level tokens. Runs of
// allowed characters become single tokens, each separator character
// becomes its own one-character token, and illegal characters are
// reported through the Reporter with their exact position.
type Reader struct {
	reporter exc.Reporter
	config   *Config
}

func NewReader(reporter exc.Reporter, config *Config) *Reader {
	return &Reader{
		reporter: reporter,
		config:   config,
	}
}

// ReadTokens scans text left to right. Every input character lands in
// exactly one token and concatenating the token values reproduces the
// input. Illegal characters are reported with their exact position; a
// fatal report aborts the scan.
func (self *Reader) ReadTokens(ctx context.Context, uri string, text string) ([]token.Token, error) {
	var out []token.Token
	pos := token.Position{Line: 1, Column: 1, Offset: 0}

	runes := iter.NewLookahead(iter.NewRunes(text), 1)
	for {
		next := runes.Next(ctx)
		if !next.IsPresent() {
			break
		}
		r := next.Value()
		start := pos
		switch self.config.classOf(r) {
		case classAllowed:
			// Consume the whole run by peeking, so the run becomes one
			// token and the following character starts fresh.
			run := []rune{r}
			pos = advance(pos, r)
			for {
				peek := runes.Lookahead(ctx, 1)
				if !peek.IsPresent() || self.config.classOf(peek.Value()) != classAllowed {
					break
				}
				r = runes.Next(ctx).Value()
				run = append(run, r)
				pos = advance(pos, r)
			}
			out = append(out, self.newToken(string(run), start, pos))
		case classSeparator:
			pos = advance(pos, r)
			out = append(out, self.newToken(string(r), start, pos))
		case classIllegal:
			e := exc.Newf(
				exc.Location{Position: pos, URI: uri},
				exc.CodeIllegalCharacter,
				"illegal character %q", r,
			)
			if fatal := self.reporter.Report(e); fatal != nil {
				return nil, fatal
			}
			// Non-fatal: keep the character as its own token so the
			// stream still reconstructs the input, then keep scanning.
			pos = advance(pos, r)
			out = append(out, self.newToken(string(r), start, pos))
		}
	}
	return out, nil
}

func (self *Reader) newToken(value string, start token.Position, end token.Position) token.Token {
	t := token.NewSimple(value, token.Span{Start: start, End: end})
	if self.config.classify == nil {
		return t
	}
	return t.WithTypes(self.config.classify(t))
}

// advance moves a position past one character. Newlines reset the
// column and bump the line, everything else moves one column right.
func advance(pos token.Position, r rune) token.Position {
	next := token.Position{
		Line:   pos.Line,
		Column: pos.Column + 1,
		Offset: pos.Offset + len(string(r)),
	}
	if r == '\n' {
		next.Line = pos.Line + 1
		next.Column = 1
	}
	return next
}
