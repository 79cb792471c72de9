package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/labeldecode/batch"
)

// LineEncoder writes one tab-separated line per submission and per
// component, for reading in a terminal or with cut and awk.
type LineEncoder struct {
	w       io.Writer
	results []batch.Result
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(results []batch.Result) error {
	e.results = results
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder

	for _, r := range e.results {
		if r.Err != nil {
			fmt.Fprintf(&sb, "error\t%s\t%s\n", r.ID, r.Err)
			continue
		}
		hint := "-"
		if r.Hint != nil {
			hint = r.Hint.String()
		}
		fmt.Fprintf(&sb, "submission\t%s\t%s\n", r.ID, hint)

		for _, c := range r.Components {
			fmt.Fprintf(&sb, "component\t%s\t%s\t%s\t%s\t%s\t%s\n",
				c.Slot,
				c.Family,
				orDash(string(c.Record.Manufacturer)),
				orDash(c.Record.Part),
				Date(c.Date),
				e.grammarStr(c),
			)
		}
	}

	return []byte(sb.String()), nil
}

func (e *LineEncoder) grammarStr(c batch.Decoded) string {
	if len(c.Ambiguous) == 0 {
		return c.Grammar
	}
	return c.Grammar + " (also " + strings.Join(c.Ambiguous, ",") + ")"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
