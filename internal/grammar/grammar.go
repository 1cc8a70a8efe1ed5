// Package grammar applies ordered rewrite passes to a flat token
// stream. A grammar is built in two phases: named fragments are defined
// for use through rules.Reference, then rule/action pairs are
// registered in priority order. Build validates the whole rule forest
// at once and produces an immutable Grammar whose Parse is safe for
// concurrent use.
package grammar

import (
	"errors"

	"github.com/lexgram/lexgram/internal/exc"
	"github.com/lexgram/lexgram/internal/rules"
	"github.com/lexgram/lexgram/internal/token"
)

type Builder struct {
	catalog rules.Catalog
	passes  []pass
	errs    []exc.Exception
}

func NewBuilder() *Builder {
	return &Builder{
		catalog: rules.Catalog{},
	}
}

// DefineRule registers a named fragment for Reference lookups. Forward
// references are fine as long as the name exists before Build. Defining
// the same name twice is an error surfaced by Build.
func (self *Builder) DefineRule(name string, r rules.Rule) *Builder {
	if _, ok := self.catalog[name]; ok {
		self.errs = append(self.errs, exc.Newf(exc.Location{}, exc.CodeDuplicateRuleFragment, "rule fragment %q is already defined", name))
		return self
	}
	self.catalog[name] = r
	return self
}

// AddRule appends a rule/action pair. Registration order is priority
// order: earlier pairs run their pass first, so more specific rules
// must be added before more general ones.
func (self *Builder) AddRule(r rules.Rule, action Action) *Builder {
	self.passes = append(self.passes, pass{rule: r, action: action})
	return self
}

// Build validates every registered rule and fragment against the
// catalog and returns the immutable grammar. All construction problems
// are reported together in one joined error.
func (self *Builder) Build() (*Grammar, error) {
	errs := append([]exc.Exception(nil), self.errs...)
	for _, r := range self.catalog {
		errs = append(errs, rules.Validate(r, self.catalog)...)
	}
	for _, p := range self.passes {
		errs = append(errs, rules.Validate(p.rule, self.catalog)...)
	}
	if len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return nil, errors.Join(joined...)
	}
	catalog := make(rules.Catalog, len(self.catalog))
	for name, r := range self.catalog {
		catalog[name] = r
	}
	return &Grammar{
		matcher: &rules.Matcher{Catalog: catalog},
		passes:  append([]pass(nil), self.passes...),
	}, nil
}

// New builds a grammar through a definition callback, so a grammar
// definition can be expressed as a single function over the builder.
func New(define func(*Builder)) (*Grammar, error) {
	b := NewBuilder()
	define(b)
	return b.Build()
}

// Grammar is an immutable set of ordered rewrite passes.
type Grammar struct {
	matcher *rules.Matcher
	passes  []pass
}

// Parse runs every pass in order over the token sequence and returns
// the rewritten sequence. The input is never modified; concatenating
// the output token values always reproduces the input text.
func (self *Grammar) Parse(tokens []token.Token) []token.Token {
	seq := tokens
	for _, p := range self.passes {
		seq = applyPass(self.matcher, p, seq)
	}
	return seq
}
