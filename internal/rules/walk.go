package rules

import (
	"github.com/lexgram/lexgram/internal/exc"
)

// Walk visits every rule in the tree rooted at r, children before the
// rule itself. References are not followed; validation resolves them
// against the catalog separately.
func Walk(r Rule, f func(Rule)) {
	switch rule := r.(type) {
	case *sequence:
		for _, sub := range rule.rules {
			Walk(sub, f)
		}
	case *anyOf:
		for _, sub := range rule.rules {
			Walk(sub, f)
		}
	case *allOf:
		for _, sub := range rule.rules {
			Walk(sub, f)
		}
	case *notRule:
		Walk(rule.sub, f)
	case *lookaheadRule:
		Walk(rule.sub, f)
	case *optionalRule:
		Walk(rule.sub, f)
	case *repeat:
		Walk(rule.sub, f)
	case *boundary:
		Walk(rule.start, f)
		Walk(rule.content, f)
		Walk(rule.end, f)
	}
	f(r)
}

// Validate reports the construction problems in the tree rooted at r:
// malformed pattern expressions, references to fragments missing from
// the catalog, reference cycles, and empty or degenerate combinators.
// Match-time evaluation assumes a validated rule and treats these
// conditions as plain non-matches instead.
func Validate(r Rule, catalog Catalog) []exc.Exception {
	var errs []exc.Exception
	Walk(r, func(r Rule) {
		switch rule := r.(type) {
		case *literal:
			if rule.value == "" {
				errs = append(errs, exc.New(exc.Location{}, exc.CodeInvalidRule, "literal rule must not be empty"))
			}
		case *pattern:
			if rule.err != nil {
				errs = append(errs, exc.Newf(exc.Location{}, exc.CodeInvalidPattern, "invalid pattern %q: %v", rule.expr, rule.err))
			}
		case *sequence:
			if len(rule.rules) == 0 {
				errs = append(errs, exc.New(exc.Location{}, exc.CodeInvalidRule, "sequence requires at least one rule"))
			}
		case *anyOf:
			if len(rule.rules) == 0 {
				errs = append(errs, exc.New(exc.Location{}, exc.CodeInvalidRule, "alternation requires at least one rule"))
			}
		case *allOf:
			if len(rule.rules) == 0 {
				errs = append(errs, exc.New(exc.Location{}, exc.CodeInvalidRule, "conjunction requires at least one rule"))
			}
		case *repeat:
			if rule.min < 0 || (rule.max >= 0 && rule.max < rule.min) {
				errs = append(errs, exc.Newf(exc.Location{}, exc.CodeInvalidRule, "invalid repetition range [%d,%d]", rule.min, rule.max))
			}
		case *reference:
			errs = append(errs, validateReference(rule.name, catalog, nil)...)
		}
	})
	return errs
}

// validateReference checks that name resolves in the catalog and that
// following it does not loop back into itself through further
// references.
func validateReference(name string, catalog Catalog, trail []string) []exc.Exception {
	for _, seen := range trail {
		if seen == name {
			return []exc.Exception{exc.Newf(exc.Location{}, exc.CodeInvalidRule, "recursive rule reference %q", name)}
		}
	}
	target, ok := catalog[name]
	if !ok {
		return []exc.Exception{exc.Newf(exc.Location{}, exc.CodeUnknownRuleReference, "unknown rule reference %q", name)}
	}
	var errs []exc.Exception
	trail = append(trail, name)
	Walk(target, func(r Rule) {
		if ref, ok := r.(*reference); ok {
			errs = append(errs, validateReference(ref.name, catalog, trail)...)
		}
	})
	return errs
}
