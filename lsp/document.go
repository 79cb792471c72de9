package lsp

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/labeldecode/chip"
	"github.com/dhamidi/labeldecode/label"
)

// Severity mirrors the LSP diagnostic severities.
type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
	SeverityInformation
	SeverityHint
)

// ParseSeverity maps a configuration name to a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "error":
		return SeverityError, nil
	case "warning":
		return SeverityWarning, nil
	case "information":
		return SeverityInformation, nil
	case "hint":
		return SeverityHint, nil
	}
	return 0, fmt.Errorf("unknown severity %q", name)
}

// Position is a zero-based line and UTF-16 column.
type Position struct {
	Line   int
	Column int
}

type Diagnostic struct {
	Start    Position
	End      Position
	Severity Severity
	Message  string
}

// Entry is one "family: label" item of a document. A label may continue on
// following lines that start with whitespace; the pieces are joined with a
// single space.
type Entry struct {
	Family     string
	Label      string
	FamilyFrom Position
	FamilyTo   Position
	LabelFrom  Position
	LabelTo    Position

	Decoded chip.Decoded
	Err     error
	// Incomplete is set when Err is a no-match but more text could still
	// produce a match.
	Incomplete bool
}

func (e *Entry) contains(p Position) bool {
	if p.Line < e.FamilyFrom.Line || p.Line > e.LabelTo.Line {
		return false
	}
	return true
}

// Document is an analysed label document.
type Document struct {
	Path        string
	Content     string
	Entries     []*Entry
	Diagnostics []Diagnostic
}

// EntryAt returns the entry covering position p.
func (d *Document) EntryAt(p Position) *Entry {
	for _, e := range d.Entries {
		if e.contains(p) {
			return e
		}
	}
	return nil
}

// Analyze splits content into entries and decodes each of them.
// incomplete is the severity given to labels that may still decode once
// more text is typed.
func Analyze(reg *chip.Registry, path, content string, incomplete Severity) *Document {
	doc := &Document{Path: path, Content: content}

	var cur *Entry
	for n, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		text, _, _ := strings.Cut(line, "#")
		if strings.TrimSpace(text) == "" {
			cur = nil
			continue
		}

		if cur != nil && unicode.IsSpace(rune(text[0])) {
			start := len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace))
			piece := strings.TrimRightFunc(text[start:], unicode.IsSpace)
			if cur.Label == "" {
				cur.Label = piece
				cur.LabelFrom = Position{n, columnOf(line, start)}
			} else {
				cur.Label += " " + piece
			}
			cur.LabelTo = Position{n, columnOf(line, start+len(piece))}
			continue
		}

		family, rest, ok := strings.Cut(text, ":")
		if !ok {
			doc.Diagnostics = append(doc.Diagnostics, Diagnostic{
				Start:    Position{n, 0},
				End:      Position{n, columnOf(line, len(text))},
				Severity: SeverityError,
				Message:  `expected "family: label"`,
			})
			cur = nil
			continue
		}

		famStart := len(family) - len(strings.TrimLeftFunc(family, unicode.IsSpace))
		name := strings.TrimSpace(family)
		labelStart := len(family) + 1
		labelStart += len(rest) - len(strings.TrimLeftFunc(rest, unicode.IsSpace))
		value := strings.TrimSpace(rest)

		cur = &Entry{
			Family:     name,
			Label:      value,
			FamilyFrom: Position{n, columnOf(line, famStart)},
			FamilyTo:   Position{n, columnOf(line, famStart+len(name))},
			LabelFrom:  Position{n, columnOf(line, labelStart)},
			LabelTo:    Position{n, columnOf(line, labelStart+len(value))},
		}
		doc.Entries = append(doc.Entries, cur)
	}

	for _, e := range doc.Entries {
		doc.Diagnostics = append(doc.Diagnostics, e.decode(reg, incomplete)...)
	}
	return doc
}

func (e *Entry) decode(reg *chip.Registry, incomplete Severity) []Diagnostic {
	f, ok := reg.Lookup(e.Family)
	if !ok {
		e.Err = fmt.Errorf("unknown family %q", e.Family)
		return []Diagnostic{{
			Start:    e.FamilyFrom,
			End:      e.FamilyTo,
			Severity: SeverityError,
			Message:  e.Err.Error(),
		}}
	}

	e.Decoded, e.Err = f.Match(e.Label)
	switch {
	case e.Err == nil && len(e.Decoded.Ambiguous) > 0:
		return []Diagnostic{e.diagnostic(SeverityWarning, fmt.Sprintf(
			"ambiguous label: decoded by %s, also matched by %s",
			e.Decoded.Grammar, strings.Join(e.Decoded.Ambiguous, ", ")))}
	case e.Err == nil:
		return nil
	case errors.Is(e.Err, label.ErrNoMatch) && f.Viable(e.Label):
		e.Incomplete = true
		return []Diagnostic{e.diagnostic(incomplete, "incomplete "+e.Family+" label")}
	default:
		return []Diagnostic{e.diagnostic(SeverityError, e.Err.Error())}
	}
}

func (e *Entry) diagnostic(sev Severity, msg string) Diagnostic {
	from, to := e.LabelFrom, e.LabelTo
	if e.Label == "" {
		from, to = e.FamilyFrom, e.FamilyTo
	}
	return Diagnostic{Start: from, End: to, Severity: sev, Message: msg}
}

// columnOf converts a byte offset in line to a UTF-16 column.
func columnOf(line string, offset int) int {
	col := 0
	for _, r := range line[:offset] {
		if r >= 0x10000 {
			col += 2
		} else {
			col++
		}
	}
	return col
}

// offsetOf converts a UTF-16 column to a byte offset in line.
func offsetOf(line string, column int) int {
	col := 0
	for i, r := range line {
		if col >= column {
			return i
		}
		if r >= 0x10000 {
			col += 2
		} else {
			col++
		}
	}
	return len(line)
}

// Hover describes the entry for display.
func (e *Entry) Hover() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** `%s`\n\n", e.Family, e.Label)
	if e.Err != nil {
		if e.Incomplete {
			sb.WriteString("incomplete label\n")
		} else {
			fmt.Fprintf(&sb, "%v\n", e.Err)
		}
		return sb.String()
	}

	r := e.Decoded.Record
	fmt.Fprintf(&sb, "- grammar: %s\n", e.Decoded.Grammar)
	if r.Manufacturer != "" {
		fmt.Fprintf(&sb, "- manufacturer: %s\n", r.Manufacturer)
	}
	if r.Part != "" {
		fmt.Fprintf(&sb, "- part: %s\n", r.Part)
	}
	if r.Code != "" {
		fmt.Fprintf(&sb, "- code: %s\n", r.Code)
	}
	fmt.Fprintf(&sb, "- date: %s\n", r.Date)
	if len(e.Decoded.Ambiguous) > 0 {
		fmt.Fprintf(&sb, "- also matched by: %s\n", strings.Join(e.Decoded.Ambiguous, ", "))
	}
	return sb.String()
}

// familyPrefix returns the text before the cursor when the cursor is still
// in the family part of a line, and false otherwise.
func familyPrefix(line string, column int) (string, bool) {
	prefix := line[:offsetOf(line, column)]
	if strings.ContainsAny(prefix, ":#") {
		return "", false
	}
	if prefix != "" {
		if r, _ := utf8.DecodeRuneInString(prefix); unicode.IsSpace(r) {
			return "", false
		}
	}
	return strings.TrimSpace(prefix), true
}
