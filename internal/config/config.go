// Package config loads lexer character classifications from YAML
// files.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lexgram/lexgram/internal/exc"
	"github.com/lexgram/lexgram/internal/lang/java"
	"github.com/lexgram/lexgram/internal/lexer"
)

// File is the YAML schema. Each entry is a single character, one of
// the named escapes space, tab or newline, or an inclusive range such
// as "a-z".
type File struct {
	Allowed    []string `yaml:"allowed"`
	Separators []string `yaml:"separators"`
}

var namedEscapes = map[string]rune{
	"space":   ' ',
	"tab":     '\t',
	"newline": '\n',
}

// Load reads and parses a classifier configuration file.
func Load(path string) (*lexer.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exc.Wrap(exc.Location{URI: path}, exc.CodeFileNotFound, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		if e, ok := err.(exc.Exception); ok {
			return nil, exc.New(exc.Location{URI: path}, e.Code(), e.Message())
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes the YAML schema into a lexer configuration.
func Parse(data []byte) (*lexer.Config, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, exc.Wrap(exc.Location{}, exc.CodeInvalidConfig, err)
	}
	allowed, err := expand(file.Allowed)
	if err != nil {
		return nil, err
	}
	separators, err := expand(file.Separators)
	if err != nil {
		return nil, err
	}
	return lexer.NewConfig(allowed, separators, nil)
}

// Default returns the built-in Java-like classification.
func Default() (*lexer.Config, error) {
	return java.LexerConfig()
}

func expand(entries []string) (string, error) {
	var b strings.Builder
	for _, entry := range entries {
		if r, ok := namedEscapes[entry]; ok {
			b.WriteRune(r)
			continue
		}
		runes := []rune(entry)
		switch {
		case len(runes) == 1:
			b.WriteRune(runes[0])
		case len(runes) == 3 && runes[1] == '-':
			lo, hi := runes[0], runes[2]
			if hi < lo {
				return "", exc.Newf(exc.Location{}, exc.CodeInvalidConfig, "invalid character range %q", entry)
			}
			for r := lo; r <= hi; r++ {
				b.WriteRune(r)
			}
		default:
			return "", exc.Newf(exc.Location{}, exc.CodeInvalidConfig, "invalid character entry %q", entry)
		}
	}
	return b.String(), nil
}
