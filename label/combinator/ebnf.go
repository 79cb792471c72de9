package combinator

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/ebnf"
)

// FromEBNF builds a token from an EBNF description of a label, starting at
// production start. Productions whose names start with an uppercase letter,
// other than start itself, become captures named after the production.
// Recursive productions are rejected because labels are flat.
//
//	Label = Vendor " " Year Week .
//	Vendor = "ROHM" | "XICOR" .
//	Year = digit digit .
//	Week = digit digit .
//	digit = "0" … "9" .
func FromEBNF(filename string, src io.Reader, start string) (Token, error) {
	grammar, err := ebnf.Parse(filename, src)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(grammar, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}

	b := &ebnfBuilder{
		grammar:  grammar,
		start:    start,
		built:    make(map[string]Token),
		visiting: make(map[string]bool),
	}
	return b.name(start)
}

// LoadEBNF reads an EBNF label description from a file.
func LoadEBNF(filename, start string) (Token, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return FromEBNF(filename, f, start)
}

// MustEBNF is FromEBNF for grammars embedded in the program. It panics on
// error.
func MustEBNF(name, src, start string) Token {
	t, err := FromEBNF(name, strings.NewReader(src), start)
	if err != nil {
		panic(fmt.Sprintf("combinator: %s: %v", name, err))
	}
	return t
}

type ebnfBuilder struct {
	grammar  ebnf.Grammar
	start    string
	built    map[string]Token
	visiting map[string]bool
}

func isCaptureName(name string) bool {
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}

func (b *ebnfBuilder) name(name string) (Token, error) {
	if t, ok := b.built[name]; ok {
		return t, nil
	}
	if b.visiting[name] {
		return nil, fmt.Errorf("production %s is recursive", name)
	}

	prod, ok := b.grammar[name]
	if !ok {
		return nil, fmt.Errorf("missing production %s", name)
	}

	b.visiting[name] = true
	t, err := b.expr(prod.Expr)
	delete(b.visiting, name)
	if err != nil {
		return nil, err
	}

	if name != b.start && isCaptureName(name) {
		t = Capture(name, t)
	}
	b.built[name] = t
	return t, nil
}

func (b *ebnfBuilder) expr(expr ebnf.Expression) (Token, error) {
	switch e := expr.(type) {
	case nil:
		return seq(nil), nil

	case *ebnf.Token:
		return Tag(e.String), nil

	case *ebnf.Range:
		if len(e.Begin.String) != 1 || len(e.End.String) != 1 {
			return nil, fmt.Errorf("%s: range bounds must be single bytes", e.Pos())
		}
		return Range(e.Begin.String[0], e.End.String[0]), nil

	case ebnf.Sequence:
		out := make(seq, 0, len(e))
		for _, item := range e {
			t, err := b.expr(item)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
		return out, nil

	case ebnf.Alternative:
		out := make(alt, 0, len(e))
		for _, item := range e {
			t, err := b.expr(item)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
		return out, nil

	case *ebnf.Option:
		t, err := b.expr(e.Body)
		if err != nil {
			return nil, err
		}
		return Opt(t), nil

	case *ebnf.Repetition:
		t, err := b.expr(e.Body)
		if err != nil {
			return nil, err
		}
		return Many(t), nil

	case *ebnf.Group:
		return b.expr(e.Body)

	case *ebnf.Name:
		return b.name(e.String)

	default:
		return nil, fmt.Errorf("%s: unsupported expression %T", expr.Pos(), expr)
	}
}
