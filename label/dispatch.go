package label

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("labeldecode.label")

// Ambiguity describes a label that more than one grammar of a Dispatcher
// decodes. The winner's result is used; the others are reported so the
// grammars can be split or reordered.
type Ambiguity struct {
	Family string
	Label  string
	Winner int
	Others []int
	// Names holds the diagnostic name of Winner followed by those of Others.
	Names []string
}

func (a Ambiguity) String() string {
	return fmt.Sprintf("%s: ambiguous label %q: decoded by %s, also matched by %s", a.Family, a.Label, a.Names[0], strings.Join(a.Names[1:], ", "))
}

// Match is a successful dispatch.
type Match[T any] struct {
	Value T
	// Index is the position of the winning grammar in declaration order.
	Index int
	// Ambiguous lists the other grammars that also decode the label.
	Ambiguous []int
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*dispatcherConfig)

type dispatcherConfig struct {
	name        string
	onAmbiguity func(Ambiguity)
}

// WithName names the component family a Dispatcher decodes.
func WithName(name string) DispatcherOption {
	return func(c *dispatcherConfig) {
		c.name = name
	}
}

// WithAmbiguityHandler replaces the default handler, which logs a warning.
func WithAmbiguityHandler(fn func(Ambiguity)) DispatcherOption {
	return func(c *dispatcherConfig) {
		c.onAmbiguity = fn
	}
}

func logAmbiguity(a Ambiguity) {
	log.Warning(a.String())
}

// Dispatcher tries an ordered set of grammars for one component family.
// It is immutable and safe for concurrent use.
type Dispatcher[T any] struct {
	name        string
	grammars    []Parser[T]
	names       []string
	filter      *prefilter
	req         Requirements
	onAmbiguity func(Ambiguity)
}

// NewDispatcher registers grammars in the order they are tried. Parsers that
// implement Filter take part in prefiltering; the rest are always tried.
func NewDispatcher[T any](grammars []Parser[T], opts ...DispatcherOption) *Dispatcher[T] {
	cfg := dispatcherConfig{onAmbiguity: logAmbiguity}
	for _, opt := range opts {
		opt(&cfg)
	}

	reqs := make([]Requirements, len(grammars))
	names := make([]string, len(grammars))
	for i, g := range grammars {
		if g == nil {
			panic(fmt.Sprintf("label: dispatcher %q: grammar %d is nil", cfg.name, i))
		}
		reqs[i] = Any
		if f, ok := g.(Filter); ok {
			reqs[i] = f.Requirements()
		}
		names[i] = fmt.Sprintf("#%d", i)
		if n, ok := g.(interface{ Name() string }); ok {
			names[i] = n.Name()
		}
	}

	return &Dispatcher[T]{
		name:        cfg.name,
		grammars:    append([]Parser[T](nil), grammars...),
		names:       names,
		filter:      newPrefilter(reqs),
		req:         mergeRequirements(reqs),
		onAmbiguity: cfg.onAmbiguity,
	}
}

// Name returns the family name.
func (d *Dispatcher[T]) Name() string {
	return d.name
}

// Len returns the number of registered grammars.
func (d *Dispatcher[T]) Len() int {
	return len(d.grammars)
}

// GrammarName returns the diagnostic name of grammar i.
func (d *Dispatcher[T]) GrammarName(i int) string {
	return d.names[i]
}

// Requirements implements Filter so dispatchers can be nested.
func (d *Dispatcher[T]) Requirements() Requirements {
	return d.req
}

// Candidates returns the indices of grammars that pass the prefilter.
func (d *Dispatcher[T]) Candidates(label string) []int {
	return d.filter.candidates(label)
}

// Parse returns the result of the first grammar that decodes label.
func (d *Dispatcher[T]) Parse(label string) (T, error) {
	m, err := d.Match(label)
	return m.Value, err
}

// Match is Parse with the identity of the winning and ambiguous grammars.
// If no grammar decodes label, the error is a constraint violation when some
// grammar matched but rejected a captured value, and ErrNoMatch otherwise.
func (d *Dispatcher[T]) Match(label string) (Match[T], error) {
	candidates := d.filter.candidates(label)

	var violation error
	for pos, i := range candidates {
		v, err := d.grammars[i].Parse(label)
		if err != nil {
			if violation == nil && !errors.Is(err, ErrNoMatch) {
				violation = err
			}
			continue
		}

		m := Match[T]{Value: v, Index: i}
		for _, j := range candidates[pos+1:] {
			if _, err := d.grammars[j].Parse(label); err == nil {
				m.Ambiguous = append(m.Ambiguous, j)
			}
		}
		if len(m.Ambiguous) > 0 && d.onAmbiguity != nil {
			d.onAmbiguity(d.ambiguity(label, m))
		}
		return m, nil
	}

	if violation != nil {
		return Match[T]{Index: -1}, violation
	}
	return Match[T]{Index: -1}, NoMatch(label)
}

func (d *Dispatcher[T]) ambiguity(label string, m Match[T]) Ambiguity {
	a := Ambiguity{
		Family: d.name,
		Label:  label,
		Winner: m.Index,
		Others: m.Ambiguous,
		Names:  []string{d.names[m.Index]},
	}
	for _, j := range m.Ambiguous {
		a.Names = append(a.Names, d.names[j])
	}
	return a
}

// Viable reports whether some grammar can still match once more text is
// appended to prefix. Grammars that cannot evaluate partial input are
// ignored.
func (d *Dispatcher[T]) Viable(prefix string) bool {
	for _, g := range d.grammars {
		if v, ok := g.(interface{ Viable(string) bool }); ok && v.Viable(prefix) {
			return true
		}
	}
	return false
}
