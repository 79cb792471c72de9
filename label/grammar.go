package label

import (
	"fmt"
	"regexp"
)

// Parser decodes a label into T. Grammars built from a single pattern and
// grammars built from token combinators both implement it, as does the
// Dispatcher itself.
type Parser[T any] interface {
	Parse(label string) (T, error)
}

// Filter is implemented by parsers that can describe cheap necessary
// conditions for a match. The Dispatcher uses it to prefilter candidates.
type Filter interface {
	Requirements() Requirements
}

// Captures gives an extraction function access to the groups matched by a
// Grammar's pattern.
type Captures struct {
	names  []string
	groups []string
}

// NewCaptures builds Captures from group names and values. Index 0 is the
// whole match.
func NewCaptures(names, groups []string) Captures {
	return Captures{names: names, groups: groups}
}

// Index returns the text of group i, or "" if it did not participate.
func (c Captures) Index(i int) string {
	if i < 0 || i >= len(c.groups) {
		return ""
	}
	return c.groups[i]
}

// Name returns the text of the named group, or "" if there is none.
func (c Captures) Name(name string) string {
	for i, n := range c.names {
		if n == name && i < len(c.groups) && c.groups[i] != "" {
			return c.groups[i]
		}
	}
	return ""
}

// Has reports whether the named group matched a non-empty string.
func (c Captures) Has(name string) bool {
	return c.Name(name) != ""
}

// Names returns the group names, indexed like the groups. Unnamed groups
// have an empty name.
func (c Captures) Names() []string {
	return c.names
}

// Len returns the number of groups including the whole match.
func (c Captures) Len() int {
	return len(c.groups)
}

// Grammar maps one label shape to a typed result.
type Grammar[T any] struct {
	name    string
	pattern string
	re      *regexp.Regexp
	extract func(Captures) (T, error)
	req     Requirements
}

// GrammarOption configures a Grammar.
type GrammarOption func(*grammarConfig)

type grammarConfig struct {
	name string
}

// Named sets the name used for a Grammar in diagnostics.
func Named(name string) GrammarOption {
	return func(c *grammarConfig) {
		c.name = name
	}
}

// NewGrammar compiles pattern and pairs it with extract. Whitespace in the
// pattern is insignificant. It panics if the pattern does not compile, so
// grammars must be constructed during startup.
func NewGrammar[T any](pattern string, extract func(Captures) (T, error), opts ...GrammarOption) *Grammar[T] {
	var cfg grammarConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	compacted := compact(pattern)
	re, err := regexp.Compile(anchor(compacted))
	if err != nil {
		panic(fmt.Sprintf("label: compile grammar %q: %v", compacted, err))
	}
	req, err := patternRequirements(re.String())
	if err != nil {
		panic(fmt.Sprintf("label: analyse grammar %q: %v", compacted, err))
	}

	name := cfg.name
	if name == "" {
		name = compacted
	}

	return &Grammar[T]{
		name:    name,
		pattern: compacted,
		re:      re,
		extract: extract,
		req:     req,
	}
}

// Name returns the grammar's diagnostic name.
func (g *Grammar[T]) Name() string {
	return g.name
}

// Pattern returns the compacted, unanchored pattern.
func (g *Grammar[T]) Pattern() string {
	return g.pattern
}

// Requirements implements Filter.
func (g *Grammar[T]) Requirements() Requirements {
	return g.req
}

// Parse decodes label. The pattern must match the whole label.
func (g *Grammar[T]) Parse(label string) (T, error) {
	var zero T
	groups := g.re.FindStringSubmatch(label)
	if groups == nil {
		return zero, NoMatch(label)
	}
	v, err := g.extract(NewCaptures(g.re.SubexpNames(), groups))
	if err != nil {
		return zero, WithLabel(label, err)
	}
	return v, nil
}

func (g *Grammar[T]) String() string {
	return g.name
}
