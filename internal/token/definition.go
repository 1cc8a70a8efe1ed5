package token

import "strings"

// Definition binds a literal token text to a type label. Definitions are
// the simplest way to build an initial classifier for a lexer: every
// emitted token whose text equals Value receives Type.
type Definition struct {
	Value         string
	CaseSensitive bool
	Type          Type
}

func (d Definition) Matches(value string) bool {
	if d.CaseSensitive {
		return d.Value == value
	}
	return strings.EqualFold(d.Value, value)
}

// Classify builds a classification callback from a definition set. The
// callback returns the union of all matching definitions' labels and an
// empty set for tokens no definition covers.
func Classify(defs []Definition) func(Token) TypeSet {
	return func(t Token) TypeSet {
		var types []Type
		for _, d := range defs {
			if d.Matches(t.Value()) {
				types = append(types, d.Type)
			}
		}
		return NewTypeSet(types...)
	}
}
