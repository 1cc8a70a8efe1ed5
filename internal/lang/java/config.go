package java

import (
	"github.com/lexgram/lexgram/internal/lexer"
	"github.com/lexgram/lexgram/internal/token"
)

// Character classification for Java-like source. Identifier and number
// characters plus a few rarely used symbols form content runs;
// punctuation, quotes, the underscore and whitespace each lex as their
// own one-character token and are reassembled by grammar rules.
const (
	AllowedCharacters   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789#$~^"
	SeparatorCharacters = ".,:;=+-*/%&|!?\"'()[]{}<>@\\_ \n\t"
)

const (
	TypeKeyword token.Type = "keyword"
)

var keywords = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch",
	"char", "class", "const", "continue", "default", "do", "double",
	"else", "enum", "extends", "final", "finally", "float", "for",
	"goto", "if", "implements", "import", "instanceof", "int",
	"interface", "long", "native", "new", "package", "private",
	"protected", "public", "return", "short", "static", "strictfp",
	"super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while",
}

// Keywords returns literal definitions tagging every reserved word with
// TypeKeyword.
func Keywords() []token.Definition {
	defs := make([]token.Definition, len(keywords))
	for i, kw := range keywords {
		defs[i] = token.Definition{
			Value:         kw,
			CaseSensitive: true,
			Type:          TypeKeyword,
		}
	}
	return defs
}

// LexerConfig returns the classifier configuration for Java-like
// source, with keyword tagging wired in.
func LexerConfig() (*lexer.Config, error) {
	return lexer.NewConfig(AllowedCharacters, SeparatorCharacters, token.Classify(Keywords()))
}
