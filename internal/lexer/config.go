package lexer

import (
	"github.com/lexgram/lexgram/internal/exc"
	"github.com/lexgram/lexgram/internal/token"
)

// ClassifyFunc attaches initial type tags to a freshly lexed token. It
// may return the empty set; it must not alter the token's text or span.
type ClassifyFunc func(token.Token) token.TypeSet

// Config is the character classification a Reader scans with: the set
// of characters allowed in unquoted content runs, the set of separator
// characters that terminate a run and become one-character tokens, and
// an optional per-token classification callback. Characters in neither
// set are illegal and fail the whole run.
type Config struct {
	allowed    map[rune]bool
	separators map[rune]bool
	classify   ClassifyFunc
}

type class int

const (
	classAllowed class = iota
	classSeparator
	classIllegal
)

// NewConfig builds a classifier configuration. A character present in
// both sets is a configuration error and is reported at build time, not
// per character.
func NewConfig(allowed string, separators string, classify ClassifyFunc) (*Config, error) {
	c := &Config{
		allowed:    make(map[rune]bool, len(allowed)),
		separators: make(map[rune]bool, len(separators)),
		classify:   classify,
	}
	for _, r := range allowed {
		c.allowed[r] = true
	}
	for _, r := range separators {
		if c.allowed[r] {
			return nil, exc.Newf(exc.Location{}, exc.CodeConflictingCharacter, "character %q is both allowed and a separator", r)
		}
		c.separators[r] = true
	}
	return c, nil
}

func (self *Config) classOf(r rune) class {
	switch {
	case self.allowed[r]:
		return classAllowed
	case self.separators[r]:
		return classSeparator
	default:
		return classIllegal
	}
}
