package chip

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dhamidi/labeldecode/label"
)

// Decoded is a successful decode with the grammars that produced it.
type Decoded struct {
	Record    Record
	Grammar   string
	Ambiguous []string
}

// Family decodes the labels of one kind of component.
type Family interface {
	Name() string
	Decode(text string) (Record, error)
	Match(text string) (Decoded, error)
	// Viable reports whether text may still become a decodable label when
	// more lines are appended. Families without streaming grammars always
	// report false.
	Viable(text string) bool
	Grammars() []string
}

type family[T Recorder] struct {
	d *label.Dispatcher[T]
}

func newFamily[T Recorder](name string, grammars ...label.Parser[T]) *family[T] {
	return &family[T]{d: label.NewDispatcher(grammars, label.WithName(name))}
}

func (f *family[T]) Name() string {
	return f.d.Name()
}

func (f *family[T]) Decode(text string) (Record, error) {
	v, err := f.d.Parse(text)
	if err != nil {
		return Record{}, err
	}
	rec := v.Record()
	rec.Family = f.d.Name()
	return rec, nil
}

func (f *family[T]) Match(text string) (Decoded, error) {
	m, err := f.d.Match(text)
	if err != nil {
		return Decoded{}, err
	}
	out := Decoded{
		Record:  m.Value.Record(),
		Grammar: f.d.GrammarName(m.Index),
	}
	out.Record.Family = f.d.Name()
	for _, i := range m.Ambiguous {
		out.Ambiguous = append(out.Ambiguous, f.d.GrammarName(i))
	}
	return out, nil
}

func (f *family[T]) Viable(text string) bool {
	return f.d.Viable(text)
}

func (f *family[T]) Grammars() []string {
	names := make([]string, f.d.Len())
	for i := range names {
		names[i] = f.d.GrammarName(i)
	}
	return names
}

// Registry is the immutable set of known families.
type Registry struct {
	families []Family
	byName   map[string]Family
}

// NewRegistry builds a registry. Family names must be unique.
func NewRegistry(families ...Family) (*Registry, error) {
	r := &Registry{byName: make(map[string]Family, len(families))}
	for _, f := range families {
		if _, dup := r.byName[f.Name()]; dup {
			return nil, fmt.Errorf("duplicate family %q", f.Name())
		}
		r.byName[f.Name()] = f
		r.families = append(r.families, f)
	}
	return r, nil
}

// Lookup returns the family called name.
func (r *Registry) Lookup(name string) (Family, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// Families returns all families in registration order.
func (r *Registry) Families() []Family {
	return slices.Clone(r.families)
}

// Names returns the family names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.families))
	for i, f := range r.families {
		names[i] = f.Name()
	}
	return names
}

// Decode decodes text with the family called name.
func (r *Registry) Decode(name, text string) (Record, error) {
	f, ok := r.byName[name]
	if !ok {
		return Record{}, fmt.Errorf("unknown family %q", name)
	}
	return f.Decode(text)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(
		newSRAMFamily(),
		newCrystalFamily(),
		newCPUFamily(),
		newMaskROMFamily(),
		newEEPROMFamily(),
	)
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the registry of built-in families. The grammars are
// compiled on the first call, which programs should make during startup;
// there is no way to rebuild it.
func Default() *Registry {
	return defaultRegistry()
}
