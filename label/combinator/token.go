// Package combinator builds label grammars from small token combinators
// instead of a single pattern. A grammar assembled this way matches left to
// right and can tell whether an incomplete label may still match, so labels
// printed on several lines can be checked one line at a time.
package combinator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Token matches a run of label text.
type Token interface {
	// match tries to match input at pos and calls k with the end position
	// for each way it can, stopping at the first k that succeeds. When the
	// matcher is partial, running out of input counts as success.
	match(m *matcher, pos int, caps *capture, k cont) bool
	bounds() (lo, hi int)
	literals() []string
	String() string
}

type cont func(pos int, caps *capture) bool

// capture is a persistent list, so backtracking never has to undo it.
type capture struct {
	name       string
	start, end int
	next       *capture
}

type matcher struct {
	input   string
	partial bool
}

const unbounded = -1

func addLen(a, b int) int {
	if a == unbounded || b == unbounded {
		return unbounded
	}
	return a + b
}

type run struct {
	desc string
	n    int
	ok   func(byte) bool
}

func (r run) match(m *matcher, pos int, caps *capture, k cont) bool {
	for i := 0; i < r.n; i++ {
		p := pos + i
		if p >= len(m.input) {
			return m.partial
		}
		if !r.ok(m.input[p]) {
			return false
		}
	}
	return k(pos+r.n, caps)
}

func (r run) bounds() (int, int) { return r.n, r.n }
func (r run) literals() []string { return nil }
func (r run) String() string     { return fmt.Sprintf("%s(%d)", r.desc, r.n) }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// Digits matches exactly n ASCII digits.
func Digits(n int) Token {
	return run{desc: "digits", n: n, ok: isDigit}
}

// Letters matches exactly n uppercase ASCII letters.
func Letters(n int) Token {
	return run{desc: "letters", n: n, ok: isUpper}
}

// AlphaNum matches exactly n uppercase ASCII letters or digits.
func AlphaNum(n int) Token {
	return run{desc: "alnum", n: n, ok: func(c byte) bool {
		return isDigit(c) || isUpper(c)
	}}
}

// Class matches exactly n bytes from set.
func Class(set string, n int) Token {
	return run{desc: fmt.Sprintf("class[%s]", set), n: n, ok: func(c byte) bool {
		return strings.IndexByte(set, c) >= 0
	}}
}

// Range matches one byte in lo..hi.
func Range(lo, hi byte) Token {
	return run{desc: fmt.Sprintf("range[%c-%c]", lo, hi), n: 1, ok: func(c byte) bool {
		return c >= lo && c <= hi
	}}
}

type tag string

func (t tag) match(m *matcher, pos int, caps *capture, k cont) bool {
	for i := 0; i < len(t); i++ {
		p := pos + i
		if p >= len(m.input) {
			return m.partial
		}
		if m.input[p] != t[i] {
			return false
		}
	}
	return k(pos+len(t), caps)
}

func (t tag) bounds() (int, int) {
	n := utf8.RuneCountInString(string(t))
	return n, n
}

func (t tag) literals() []string { return []string{string(t)} }
func (t tag) String() string     { return fmt.Sprintf("%q", string(t)) }

// Tag matches s literally.
func Tag(s string) Token {
	return tag(s)
}

// Space matches a single space.
func Space() Token {
	return tag(" ")
}

type seq []Token

func (s seq) match(m *matcher, pos int, caps *capture, k cont) bool {
	if len(s) == 0 {
		return k(pos, caps)
	}
	return s[0].match(m, pos, caps, func(p int, c *capture) bool {
		return s[1:].match(m, p, c, k)
	})
}

func (s seq) bounds() (int, int) {
	lo, hi := 0, 0
	for _, t := range s {
		l, h := t.bounds()
		lo += l
		hi = addLen(hi, h)
	}
	return lo, hi
}

func (s seq) literals() []string {
	var out []string
	for _, t := range s {
		out = append(out, t.literals()...)
	}
	return out
}

func (s seq) String() string { return "(" + join(s, " ") + ")" }

// Seq matches tokens one after another.
func Seq(tokens ...Token) Token {
	return seq(tokens)
}

type alt []Token

func (a alt) match(m *matcher, pos int, caps *capture, k cont) bool {
	for _, t := range a {
		if t.match(m, pos, caps, k) {
			return true
		}
	}
	return false
}

func (a alt) bounds() (int, int) {
	lo, hi := 0, 0
	for i, t := range a {
		l, h := t.bounds()
		if i == 0 || l < lo {
			lo = l
		}
		if i == 0 || hi != unbounded && (h == unbounded || h > hi) {
			hi = h
		}
	}
	return lo, hi
}

func (a alt) literals() []string { return nil }
func (a alt) String() string     { return "(" + join(a, " | ") + ")" }

// Alt matches the first alternative that lets the rest of the grammar
// match, trying them in order.
func Alt(tokens ...Token) Token {
	return alt(tokens)
}

type opt struct{ t Token }

func (o opt) match(m *matcher, pos int, caps *capture, k cont) bool {
	return o.t.match(m, pos, caps, k) || k(pos, caps)
}

func (o opt) bounds() (int, int) {
	_, h := o.t.bounds()
	return 0, h
}

func (o opt) literals() []string { return nil }
func (o opt) String() string     { return "[" + o.t.String() + "]" }

// Opt matches t or nothing, preferring t.
func Opt(t Token) Token {
	return opt{t}
}

type many struct{ t Token }

func (r many) match(m *matcher, pos int, caps *capture, k cont) bool {
	return r.t.match(m, pos, caps, func(p int, c *capture) bool {
		if p == pos {
			return false
		}
		return r.match(m, p, c, k)
	}) || k(pos, caps)
}

func (r many) bounds() (int, int) { return 0, unbounded }
func (r many) literals() []string { return nil }
func (r many) String() string     { return "{" + r.t.String() + "}" }

// Many matches t zero or more times, greedily.
func Many(t Token) Token {
	return many{t}
}

type named struct {
	name string
	t    Token
}

func (n named) match(m *matcher, pos int, caps *capture, k cont) bool {
	return n.t.match(m, pos, caps, func(p int, c *capture) bool {
		return k(p, &capture{name: n.name, start: pos, end: p, next: c})
	})
}

func (n named) bounds() (int, int) { return n.t.bounds() }
func (n named) literals() []string { return n.t.literals() }
func (n named) String() string     { return n.name + ":" + n.t.String() }

// Capture records the text matched by t under name.
func Capture(name string, t Token) Token {
	return named{name: name, t: t}
}

func join(ts []Token, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, sep)
}

// captureNames lists capture names in the order they appear in t.
func captureNames(t Token, out []string) []string {
	switch t := t.(type) {
	case named:
		out = appendUnique(out, t.name)
		return captureNames(t.t, out)
	case seq:
		for _, sub := range t {
			out = captureNames(sub, out)
		}
	case alt:
		for _, sub := range t {
			out = captureNames(sub, out)
		}
	case opt:
		return captureNames(t.t, out)
	case many:
		return captureNames(t.t, out)
	}
	return out
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
