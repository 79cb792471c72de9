package combinator

import (
	"slices"
	"strings"

	"github.com/dhamidi/labeldecode/label"
)

// Grammar is a label grammar built from tokens. It implements
// label.Parser and label.Filter, so it can be registered in a
// label.Dispatcher next to pattern grammars.
type Grammar[T any] struct {
	name    string
	root    Token
	names   []string
	extract func(label.Captures) (T, error)
	req     label.Requirements
}

// Option configures a Grammar.
type Option func(*config)

type config struct {
	name string
}

// WithName sets the name used for a Grammar in diagnostics.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// New pairs root with an extraction function.
func New[T any](root Token, extract func(label.Captures) (T, error), opts ...Option) *Grammar[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	name := cfg.name
	if name == "" {
		name = root.String()
	}

	lo, hi := root.bounds()
	if hi == unbounded {
		hi = label.Unbounded
	}
	var lits []string
	for _, lit := range root.literals() {
		if len(lit) >= 2 && !slices.Contains(lits, lit) {
			lits = append(lits, lit)
		}
	}

	return &Grammar[T]{
		name:    name,
		root:    root,
		names:   append([]string{""}, captureNames(root, nil)...),
		extract: extract,
		req:     label.Requirements{MinLen: lo, MaxLen: hi, Literals: lits},
	}
}

// Name returns the grammar's diagnostic name.
func (g *Grammar[T]) Name() string {
	return g.name
}

// Requirements implements label.Filter.
func (g *Grammar[T]) Requirements() label.Requirements {
	return g.req
}

// Parse decodes the whole of text.
func (g *Grammar[T]) Parse(text string) (T, error) {
	var zero T
	caps, ok := g.run(text)
	if !ok {
		return zero, label.NoMatch(text)
	}

	groups := make([]string, len(g.names))
	groups[0] = text
	// The list is newest first; keep the newest capture for each name.
	filled := make([]bool, len(g.names))
	for c := caps; c != nil; c = c.next {
		i := slices.Index(g.names, c.name)
		if i > 0 && !filled[i] {
			groups[i] = text[c.start:c.end]
			filled[i] = true
		}
	}

	v, err := g.extract(label.NewCaptures(g.names, groups))
	if err != nil {
		return zero, label.WithLabel(text, err)
	}
	return v, nil
}

func (g *Grammar[T]) run(text string) (*capture, bool) {
	m := &matcher{input: text}
	var caps *capture
	ok := g.root.match(m, 0, nil, func(pos int, c *capture) bool {
		if pos != len(text) {
			return false
		}
		caps = c
		return true
	})
	return caps, ok
}

// Viable reports whether prefix is the beginning of some label the grammar
// matches, including a complete one.
func (g *Grammar[T]) Viable(prefix string) bool {
	m := &matcher{input: prefix, partial: true}
	return g.root.match(m, 0, nil, func(pos int, _ *capture) bool {
		return pos == len(prefix)
	})
}

// Stream returns a Stream that accumulates a label line by line.
func (g *Grammar[T]) Stream() *Stream[T] {
	return &Stream[T]{g: g}
}

func (g *Grammar[T]) String() string {
	return g.name
}

// Stream feeds a grammar one physical line of a label at a time. Lines are
// joined with a single space.
type Stream[T any] struct {
	g     *Grammar[T]
	text  strings.Builder
	lines int
}

// Feed appends line and reports ErrNoMatch as soon as the text seen so far
// can no longer be completed into a match.
func (s *Stream[T]) Feed(line string) error {
	if s.lines > 0 {
		s.text.WriteByte(' ')
	}
	s.text.WriteString(line)
	s.lines++
	if !s.g.Viable(s.text.String()) {
		return label.NoMatch(s.text.String())
	}
	return nil
}

// Text returns the label accumulated so far.
func (s *Stream[T]) Text() string {
	return s.text.String()
}

// Lines returns the number of lines fed.
func (s *Stream[T]) Lines() int {
	return s.lines
}

// IsComplete reports whether Finish would succeed.
func (s *Stream[T]) IsComplete() bool {
	_, err := s.g.Parse(s.text.String())
	return err == nil
}

// Finish decodes the accumulated label.
func (s *Stream[T]) Finish() (T, error) {
	return s.g.Parse(s.text.String())
}

// Reset discards the accumulated text.
func (s *Stream[T]) Reset() {
	s.text.Reset()
	s.lines = 0
}
