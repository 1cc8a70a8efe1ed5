package main

import (
	"context"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/lexgram/lexgram/internal/config"
	"github.com/lexgram/lexgram/internal/exc"
	"github.com/lexgram/lexgram/internal/lang/java"
	"github.com/lexgram/lexgram/internal/lexer"
	"github.com/lexgram/lexgram/internal/source"
	"github.com/lexgram/lexgram/internal/token"
)

type opts struct {
	Config     string
	DumpTokens bool
	NoColor    bool
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("lexgram", pflag.PanicOnError)
	flags.StringVar(&op.Config, "config", "", "Character classification YAML file. Defaults to the built-in Java-like classification.")
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Output one token per line instead of the reconstructed source")
	flags.BoolVar(&op.NoColor, "no-color", false, "Disable colored output")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	cfg, err := loadConfig(op.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	grammar, err := java.NewGrammar(java.Options{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	profile := termenv.ColorProfile()
	if op.NoColor {
		profile = termenv.Ascii
	}

	reporter := exc.NewReporter([]string{exc.CodeIllegalCharacter})
	reader := lexer.NewReader(reporter, cfg)
	loader := source.NewLoaderLocal("")

	failed := false
	for _, target := range targets {
		file, err := loader.Open(ctx, target)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			failed = true
			continue
		}
		content, err := file.Text(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			failed = true
			continue
		}

		raw, err := reader.ReadTokens(ctx, file.Path(ctx), content)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			failed = true
			continue
		}
		parsed := grammar.Parse(raw)

		fmt.Printf("%s: %d raw tokens, %d parsed tokens\n", target, len(raw), len(parsed))
		if op.DumpTokens {
			dumpTokens(parsed)
			continue
		}
		for _, t := range parsed {
			fmt.Print(stringifyToken(profile, t))
		}
		fmt.Println()
	}

	for _, e := range reporter.Reported() {
		fmt.Fprintln(os.Stderr, e.Error())
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}

func loadConfig(path string) (*lexer.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

func dumpTokens(tokens []token.Token) {
	for _, t := range tokens {
		span := t.Span()
		kind := "token"
		switch t.(type) {
		case *token.Group:
			kind = "group"
		case *token.Shadow:
			kind = "shadow"
		}
		fmt.Printf("%d:%d\t%s\t%q\n", span.Start.Line, span.Start.Column, kind, t.Value())
	}
}

// stringifyToken renders grouped tokens in green and shadowed tokens on
// a gray background so the structure the grammar found stays readable
// in the reconstructed source.
func stringifyToken(profile termenv.Profile, t token.Token) string {
	switch t := t.(type) {
	case *token.Group:
		out := ""
		for _, child := range t.Tokens() {
			if token.IsShadow(child) {
				out += termenv.String(child.Value()).Background(profile.Color("8")).String()
			} else {
				out += termenv.String(child.Value()).Foreground(profile.Color("2")).String()
			}
		}
		return out
	case *token.Shadow:
		return termenv.String(t.Value()).Background(profile.Color("8")).String()
	}
	return t.Value()
}
