package label

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

type recorder struct {
	mu   sync.Mutex
	seen []Ambiguity
}

func (r *recorder) handle(a Ambiguity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, a)
}

func tagged(tag, pattern string) *Grammar[string] {
	return NewGrammar(pattern, func(Captures) (string, error) {
		return tag, nil
	}, Named(tag))
}

// countingParser implements Parser without Filter, so it is never
// prefiltered out.
type countingParser struct {
	mu    sync.Mutex
	calls int
	match string
}

func (p *countingParser) Parse(label string) (string, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if label != p.match {
		return "", NoMatch(label)
	}
	return "counting", nil
}

func TestDispatcherFirstMatchWins(t *testing.T) {
	rec := &recorder{}
	d := NewDispatcher([]Parser[string]{
		tagged("g1", `AB[0-9]{2}`),
		tagged("g2", `[A-Z]{2}[0-9]{2}`),
		tagged("g3", `XY[0-9]{2}`),
	}, WithName("test"), WithAmbiguityHandler(rec.handle))

	m, err := d.Match("AB12")
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if m.Value != "g1" || m.Index != 0 {
		t.Errorf("Match = %+v, want g1 at 0", m)
	}
	if len(m.Ambiguous) != 1 || m.Ambiguous[0] != 1 {
		t.Errorf("Ambiguous = %v, want [1]", m.Ambiguous)
	}

	if len(rec.seen) != 1 {
		t.Fatalf("recorded %d ambiguities, want 1", len(rec.seen))
	}
	a := rec.seen[0]
	if a.Family != "test" || a.Label != "AB12" || a.Winner != 0 {
		t.Errorf("ambiguity = %+v", a)
	}
	if strings.Join(a.Names, ",") != "g1,g2" {
		t.Errorf("ambiguity names = %v", a.Names)
	}
	want := `test: ambiguous label "AB12": decoded by g1, also matched by g2`
	if a.String() != want {
		t.Errorf("String() = %q, want %q", a.String(), want)
	}
}

func TestDispatcherUnambiguous(t *testing.T) {
	rec := &recorder{}
	d := NewDispatcher([]Parser[string]{
		tagged("g1", `AB[0-9]{2}`),
		tagged("g2", `[A-Z]{2}[0-9]{2}`),
	}, WithAmbiguityHandler(rec.handle))

	v, err := d.Parse("CD34")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if v != "g2" {
		t.Errorf("Parse = %q, want g2", v)
	}
	if len(rec.seen) != 0 {
		t.Errorf("recorded ambiguities %v, want none", rec.seen)
	}
}

func TestDispatcherDeterministic(t *testing.T) {
	rec := &recorder{}
	d := NewDispatcher([]Parser[string]{
		tagged("g1", `[A-Z]{2}[0-9]{2}`),
		tagged("g2", `AB[0-9]{2}`),
	}, WithAmbiguityHandler(rec.handle))

	for i := 0; i < 10; i++ {
		m, err := d.Match("AB12")
		if err != nil || m.Value != "g1" || len(m.Ambiguous) != 1 {
			t.Fatalf("call %d: Match = %+v, %v", i, m, err)
		}
	}
	if len(rec.seen) != 10 {
		t.Errorf("recorded %d ambiguities, want 10", len(rec.seen))
	}
}

func TestDispatcherNoMatch(t *testing.T) {
	d := NewDispatcher([]Parser[string]{
		tagged("g1", `AB[0-9]{2}`),
	})

	label := "LH5264N4T UNKNOWN"
	_, err := d.Parse(label)
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("error = %v, want ErrNoMatch", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Label != label {
		t.Errorf("error does not carry label: %+v", err)
	}
}

func TestDispatcherConstraintViolation(t *testing.T) {
	week := NewGrammar(`W(?P<week>[0-9]{2})`, func(c Captures) (Week, error) {
		return DecodeWeek2(c.Name("week"))
	})
	d := NewDispatcher([]Parser[Week]{week})

	_, err := d.Parse("W60")
	if !errors.Is(err, ErrConstraint) {
		t.Fatalf("error = %v, want ErrConstraint", err)
	}
}

func TestDispatcherViolationDoesNotHideLaterMatch(t *testing.T) {
	strict := NewGrammar(`W(?P<week>[0-9]{2})`, func(c Captures) (Week, error) {
		return DecodeWeek2(c.Name("week"))
	})
	loose := NewGrammar(`W[0-9]{2}`, func(Captures) (Week, error) {
		return 1, nil
	})
	d := NewDispatcher([]Parser[Week]{strict, loose})

	w, err := d.Parse("W60")
	if err != nil || w != 1 {
		t.Errorf("Parse = %v, %v, want 1", w, err)
	}
}

func TestDispatcherPrefilter(t *testing.T) {
	d := NewDispatcher([]Parser[string]{
		tagged("sharp", `SHARP\ [0-9]{4}`),
		tagged("nec", `NEC\ [0-9]{4}`),
		tagged("short", `[0-9]{2}`),
	})

	tests := []struct {
		label string
		want  []int
	}{
		{"SHARP 9512", []int{0}},
		{"NEC 9512", []int{1}},
		{"12", []int{2}},
		{"TOSHIBA 9512", nil},
	}
	for _, tt := range tests {
		got := d.Candidates(tt.label)
		if len(got) != len(tt.want) {
			t.Errorf("Candidates(%q) = %v, want %v", tt.label, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Candidates(%q) = %v, want %v", tt.label, got, tt.want)
			}
		}
	}
}

func TestDispatcherUnfilteredParserAlwaysTried(t *testing.T) {
	p := &countingParser{match: "zz"}
	d := NewDispatcher([]Parser[string]{
		tagged("g1", `AB[0-9]{2}`),
		p,
	})

	v, err := d.Parse("zz")
	if err != nil || v != "counting" {
		t.Fatalf("Parse = %q, %v", v, err)
	}
	if p.calls != 1 {
		t.Errorf("calls = %d, want 1", p.calls)
	}
	if got := d.GrammarName(1); got != "#1" {
		t.Errorf("GrammarName(1) = %q, want #1", got)
	}
}

func TestDispatcherNested(t *testing.T) {
	inner := NewDispatcher([]Parser[string]{
		tagged("a", `A[0-9]`),
		tagged("b", `B[0-9]{3}`),
	})
	req := inner.Requirements()
	if req.MinLen != 2 || req.MaxLen != 4 {
		t.Errorf("Requirements = %+v", req)
	}

	outer := NewDispatcher([]Parser[string]{inner, tagged("c", `C`)})
	if v, err := outer.Parse("B123"); err != nil || v != "b" {
		t.Errorf("Parse = %q, %v", v, err)
	}
}

func TestDispatcherConcurrentUse(t *testing.T) {
	rec := &recorder{}
	d := NewDispatcher([]Parser[string]{
		tagged("g1", `AB[0-9]{2}`),
		tagged("g2", `[A-Z]{2}[0-9]{2}`),
	}, WithAmbiguityHandler(rec.handle))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if v, err := d.Parse("AB12"); err != nil || v != "g1" {
					t.Errorf("Parse = %q, %v", v, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if len(rec.seen) != 16*50 {
		t.Errorf("recorded %d ambiguities, want %d", len(rec.seen), 16*50)
	}
}

func TestNewDispatcherPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewDispatcher did not panic")
		}
	}()
	NewDispatcher([]Parser[string]{nil})
}
