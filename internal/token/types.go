package token

import (
	"sort"
	"strings"
)

// Type is a classification label attached to a token by a classifier
// callback. Labels are free-form; grammars agree on them by convention.
type Type string

// TypeSet is an immutable set of type labels. The zero value is the
// empty set. Adding labels produces a new set, so tokens sharing a set
// never observe each other's classification.
type TypeSet struct {
	types map[Type]struct{}
}

func NewTypeSet(types ...Type) TypeSet {
	if len(types) == 0 {
		return TypeSet{}
	}
	m := make(map[Type]struct{}, len(types))
	for _, t := range types {
		m[t] = struct{}{}
	}
	return TypeSet{types: m}
}

func (s TypeSet) Has(t Type) bool {
	_, ok := s.types[t]
	return ok
}

func (s TypeSet) Len() int {
	return len(s.types)
}

// With returns a new set containing the receiver's labels plus the
// given ones.
func (s TypeSet) With(types ...Type) TypeSet {
	m := make(map[Type]struct{}, len(s.types)+len(types))
	for t := range s.types {
		m[t] = struct{}{}
	}
	for _, t := range types {
		m[t] = struct{}{}
	}
	return TypeSet{types: m}
}

// All returns the labels in lexical order.
func (s TypeSet) All() []Type {
	out := make([]Type, 0, len(s.types))
	for t := range s.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s TypeSet) String() string {
	all := s.All()
	parts := make([]string, len(all))
	for i, t := range all {
		parts[i] = string(t)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
