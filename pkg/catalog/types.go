package catalog

import (
	"sort"
	"strings"
)

// RuleKind distinguishes the applicability rule variants
type RuleKind int

const (
	// RuleAlways marks an unconditional item
	RuleAlways RuleKind = iota
	// RuleAnyOf marks an item included when any of its tags is active
	RuleAnyOf
)

// String returns the string representation of the rule kind
func (k RuleKind) String() string {
	switch k {
	case RuleAlways:
		return "always"
	case RuleAnyOf:
		return "any-of"
	default:
		return "unknown"
	}
}

// Rule decides whether an item applies to a set of active tags.
// The zero value is an unconditional rule.
type Rule struct {
	kind RuleKind
	tags []string
}

// Always returns a rule that applies to every selection
func Always() Rule {
	return Rule{kind: RuleAlways}
}

// AnyOf returns a rule that applies when at least one of the tags is active.
// With no tags it is equivalent to Always.
func AnyOf(tags ...string) Rule {
	if len(tags) == 0 {
		return Always()
	}
	return Rule{kind: RuleAnyOf, tags: append([]string(nil), tags...)}
}

// Kind returns the rule variant
func (r Rule) Kind() RuleKind {
	return r.kind
}

// Tags returns a copy of the rule's tags in declaration order
func (r Rule) Tags() []string {
	return append([]string(nil), r.tags...)
}

// Applies reports whether the rule passes for the active tag set
func (r Rule) Applies(active TagSet) bool {
	switch r.kind {
	case RuleAnyOf:
		for _, tag := range r.tags {
			if active.Has(tag) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// String renders the rule for listings ("always" or "any of: a, b")
func (r Rule) String() string {
	if r.kind == RuleAlways {
		return "always"
	}
	return "any of: " + strings.Join(r.tags, ", ")
}

// TagSet is a set of active tag ids
type TagSet map[string]struct{}

// NewTagSet builds a set from the given tags
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether the tag is in the set
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Union returns a new set holding the tags of both sets
func (s TagSet) Union(other TagSet) TagSet {
	out := make(TagSet, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

// Sorted returns the tags in lexical order
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Item is a single packable thing
type Item struct {
	ID       string
	Name     string
	Required bool // display only, never affects filtering
	Rule     Rule
}

// Section groups items under a title
type Section struct {
	Title string
	Items []Item
}

// Tag is an entry of the discipline or extra vocabulary
type Tag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
