package iter

import (
	"context"
	"unicode/utf8"

	"github.com/lexgram/lexgram/internal/optional"
)

// NewRunes converts an in-memory string into an iterator of runes.
// Invalid UTF-8 sequences are surfaced as utf8.RuneError, one per byte.
func NewRunes(s string) Iterator[rune] {
	return &runeIterator{rest: s}
}

type runeIterator struct {
	rest string
}

func (it *runeIterator) Next(ctx context.Context) optional.Optional[rune] {
	if len(it.rest) == 0 {
		return optional.None[rune]()
	}
	r, size := utf8.DecodeRuneInString(it.rest)
	it.rest = it.rest[size:]
	return optional.Some(r)
}

func (it *runeIterator) Close(ctx context.Context) error {
	return nil
}
