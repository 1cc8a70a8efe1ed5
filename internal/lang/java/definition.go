// Package java defines a grammar for a Java-like token stream: string,
// character and text-block literals, comments, whitespace shadowing,
// package and import declarations, annotations, and the full numeric
// literal forms with underscore separators. It doubles as the reference
// grammar exercising every rule combinator and action kind.
package java

import (
	"github.com/lexgram/lexgram/internal/grammar"
	"github.com/lexgram/lexgram/internal/rules"
	"github.com/lexgram/lexgram/internal/token"
)

// Options tunes optional grammar behavior. The zero value keeps
// comments in the stream as grouped tokens.
type Options struct {
	// CollectComments, when set, removes every matched comment from the
	// stream and hands it to the callback as one composite token.
	CollectComments func(token.Token)
}

// Definition registers the Java-like rules on a grammar builder. The
// registration methods mirror the pass order the grammar relies on:
// fragments first, then literal and comment grouping, then whitespace
// shadowing and the declaration rules.
type Definition struct {
	builder *grammar.Builder
	opts    Options
}

func NewDefinition(builder *grammar.Builder, opts Options) *Definition {
	return &Definition{
		builder: builder,
		opts:    opts,
	}
}

// DefineFragments registers the named fragments the declaration rules
// reference.
func (self *Definition) DefineFragments() {
	self.builder.DefineRule("Identifier", pat("[a-zA-Z_][a-zA-Z0-9_]*"))
	self.builder.DefineRule("FullQualifiedName", rules.Sequence(
		ref("Identifier"),
		rules.ZeroOrMore(rules.Sequence(
			val("."),
			ref("Identifier"),
		)),
	))
}

// AddLiteralRules groups string, character and text-block literals and
// plain digit runs. Text blocks go first so a `"""` opener is not
// mistaken for an empty string followed by a quote.
func (self *Definition) AddLiteralRules() {
	self.builder.AddRule(rules.Boundary(
		rules.Exactly(val(`"`), 3),
		rules.AlwaysMatch(),
		rules.Exactly(val(`"`), 3),
	), grammar.Grouping(grammar.GroupMatched))

	self.builder.AddRule(rules.Boundary(
		val(`"`),
		rules.AlwaysMatch(),
		val(`"`),
	), grammar.Grouping(grammar.GroupMatched))

	self.builder.AddRule(rules.Boundary(
		val(`'`),
		rules.AlwaysMatch(),
		val(`'`),
	), grammar.Grouping(grammar.GroupMatched))

	self.builder.AddRule(pat(`\d+`), grammar.Grouping(grammar.GroupMatched))
}

// AddCommentRules recognizes single-line comments, terminated by a
// lookahead newline or the end of the document so the newline itself
// stays outside of the comment, and multi-line comments including the
// doc form. With a collector configured the matched comment leaves the
// stream; otherwise it stays as one group.
func (self *Definition) AddCommentRules() {
	singleLine := rules.Boundary(
		rules.Exactly(val("/"), 2),
		rules.AlwaysMatch(),
		rules.Any(
			rules.Lookahead(val("\n")),
			rules.EndDocument(),
		),
	)
	multiLine := rules.Boundary(
		rules.Sequence(
			rules.Between(val("/"), 1, 2),
			val("*"),
		),
		rules.AlwaysMatch(),
		rules.Sequence(
			val("*"),
			val("/"),
		),
	)

	comment := rules.Any(singleLine, multiLine)
	if self.opts.CollectComments == nil {
		self.builder.AddRule(comment, grammar.Grouping(grammar.GroupMatched))
		return
	}
	self.builder.AddRule(comment, grammar.Skip(func(span token.Token) bool {
		self.opts.CollectComments(span)
		return true
	}))
}

// AddWhitespaceRule shadows spaces and tabs so later declaration rules
// match across them without consuming them.
func (self *Definition) AddWhitespaceRule() {
	self.builder.AddRule(rules.Any(
		val(" "),
		val("\t"),
	), grammar.Shadowing())
}

// AddDeclarationRules groups package declarations, imports including
// static and wildcard forms, and annotations. An annotation match
// excludes the `interface` keyword so `@interface` declarations keep
// their own shape.
func (self *Definition) AddDeclarationRules() {
	self.builder.AddRule(rules.Sequence(
		val("package"),
		ref("FullQualifiedName"),
		val(";"),
	), grammar.Grouping(grammar.GroupAll))

	self.builder.AddRule(rules.Sequence(
		val("import"),
		rules.Optional(rules.Value("static", false)),
		ref("FullQualifiedName"),
		rules.Optional(rules.Sequence(
			val("."),
			val("*"),
		)),
		val(";"),
	), grammar.Grouping(grammar.GroupAll))

	self.builder.AddRule(rules.Sequence(
		val("@"),
		rules.All(
			ref("Identifier"),
			rules.Not(val("interface")),
		),
		rules.Optional(rules.Sequence(
			val("("),
			val(")"),
		)),
	), grammar.Grouping(grammar.GroupAll))
}

// NewGrammar assembles the complete Java-like grammar, numeric literal
// rules included, in the order the passes depend on.
func NewGrammar(opts Options) (*grammar.Grammar, error) {
	return grammar.New(func(b *grammar.Builder) {
		definition := NewDefinition(b, opts)
		definition.DefineFragments()
		definition.AddLiteralRules()
		definition.AddCommentRules()

		numeric := NewNumericDefinition(b)
		numeric.AddNumericRules()

		definition.AddWhitespaceRule()
		definition.AddDeclarationRules()
	})
}

func val(text string) rules.Rule {
	return rules.Value(text, true)
}

func pat(expr string) rules.Rule {
	return rules.Pattern(expr)
}

func ref(name string) rules.Rule {
	return rules.Reference(name)
}
