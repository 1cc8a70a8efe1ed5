// Package rules implements the combinator language for describing match
// rules over token sequences. Rules are immutable values; building one
// never evaluates anything. Evaluation happens through a Matcher, which
// the grammar engine drives position by position.
package rules

import "regexp"

// Rule is a matcher over a position in a token sequence. Evaluating a
// rule at position i either fails or succeeds with the exclusive end
// index of the consumed span; zero-width rules succeed with end == i.
//
// The concrete rule set is closed: every variant lives in this package
// and the evaluator switches over all of them.
type Rule interface {
	rule()
}

type literal struct {
	value         string
	caseSensitive bool
}

type pattern struct {
	expr string
	re   *regexp.Regexp
	err  error
}

type sequence struct {
	rules []Rule
}

type anyOf struct {
	rules []Rule
}

type allOf struct {
	rules []Rule
}

type notRule struct {
	sub Rule
}

type lookaheadRule struct {
	sub Rule
}

type optionalRule struct {
	sub Rule
}

// repeat covers ZeroOrMore, Exactly and Between. max < 0 means
// unbounded.
type repeat struct {
	sub Rule
	min int
	max int
}

type reference struct {
	name string
}

type boundary struct {
	start   Rule
	content Rule
	end     Rule
}

type alwaysMatch struct{}

type endDocument struct{}

func (*literal) rule()       {}
func (*pattern) rule()       {}
func (*sequence) rule()      {}
func (*anyOf) rule()         {}
func (*allOf) rule()         {}
func (*notRule) rule()       {}
func (*lookaheadRule) rule() {}
func (*optionalRule) rule()  {}
func (*repeat) rule()        {}
func (*reference) rule()     {}
func (*boundary) rule()      {}
func (*alwaysMatch) rule()   {}
func (*endDocument) rule()   {}

// Value matches exactly one token whose text equals the given string.
// With caseSensitive false the comparison ignores case.
func Value(text string, caseSensitive bool) Rule {
	return &literal{value: text, caseSensitive: caseSensitive}
}

// Pattern matches one token whose entire text satisfies expr. The
// expression is anchored to the full token text, never a substring
// search. A malformed expression is a build-time error surfaced by
// Builder.Build, not a match-time one.
func Pattern(expr string) Rule {
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	return &pattern{expr: expr, re: re, err: err}
}

// Sequence matches all sub-rules in order with no gap or overlap.
func Sequence(rs ...Rule) Rule {
	return &sequence{rules: rs}
}

// Any tries each sub-rule at the same start position in listed order and
// commits to the first that matches. First-match-wins, never
// longest-match: the listed order is part of the grammar's contract.
func Any(rs ...Rule) Rule {
	return &anyOf{rules: rs}
}

// All succeeds only if every sub-rule matches at the same position. The
// consumed span is that of the first rule; the rest act as side
// constraints.
func All(rs ...Rule) Rule {
	return &allOf{rules: rs}
}

// Not is a zero-width negative lookahead: it succeeds, consuming
// nothing, iff the sub-rule fails at the current position.
func Not(r Rule) Rule {
	return &notRule{sub: r}
}

// Lookahead is a zero-width positive lookahead: it succeeds, consuming
// nothing, iff the sub-rule matches at the current position.
func Lookahead(r Rule) Rule {
	return &lookaheadRule{sub: r}
}

// Optional tries the sub-rule and succeeds with zero width when it does
// not match.
func Optional(r Rule) Rule {
	return &optionalRule{sub: r}
}

// ZeroOrMore greedily matches the sub-rule until it fails and always
// succeeds. A zero-width sub-match is treated as a single iteration so
// the loop terminates.
func ZeroOrMore(r Rule) Rule {
	return &repeat{sub: r, min: 0, max: -1}
}

// Exactly matches the sub-rule exactly n consecutive times. One more
// possible match past the count fails the whole rule.
func Exactly(r Rule, n int) Rule {
	return &repeat{sub: r, min: n, max: n}
}

// Between matches the sub-rule between min and max consecutive times,
// greedily. One more possible match past max fails the whole rule.
func Between(r Rule, min int, max int) Rule {
	return &repeat{sub: r, min: min, max: max}
}

// Reference resolves to the rule registered under name in the grammar's
// catalog, at match time. The indirection permits forward references
// between fragments; a name missing from the catalog is a build-time
// error.
func Reference(name string) Rule {
	return &reference{name: name}
}

// Boundary matches start, then content repeatedly while end does not yet
// match at the current position, then end. Content is consumed
// non-greedily up to the first terminator, one token minimum per step.
// If end never matches before the input exhausts the whole rule fails;
// grammars that allow end-of-input as an implicit terminator include
// EndDocument in the end rule.
func Boundary(start Rule, content Rule, end Rule) Rule {
	return &boundary{start: start, content: content, end: end}
}

// AlwaysMatch succeeds with zero width at any position.
func AlwaysMatch() Rule {
	return &alwaysMatch{}
}

// EndDocument matches only at the position past the last visible token.
func EndDocument() Rule {
	return &endDocument{}
}

// Catalog maps fragment names to rules for Reference lookups.
type Catalog map[string]Rule
