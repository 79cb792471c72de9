// Package format renders batch results for people and for other programs.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/labeldecode/batch"
	"github.com/dhamidi/labeldecode/label"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(results []batch.Result) error
}

// Names lists the encoders New accepts.
var Names = []string{"text", "json", "yaml"}

// New returns the encoder called name writing to w.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text", "":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}

type resultData struct {
	ID         string          `json:"id" yaml:"id"`
	Source     string          `json:"source,omitempty" yaml:"source,omitempty"`
	Hint       string          `json:"hint,omitempty" yaml:"hint,omitempty"`
	Error      string          `json:"error,omitempty" yaml:"error,omitempty"`
	Components []componentData `json:"components,omitempty" yaml:"components,omitempty"`
}

type componentData struct {
	Slot         string   `json:"slot" yaml:"slot"`
	Family       string   `json:"family" yaml:"family"`
	Label        string   `json:"label" yaml:"label"`
	Manufacturer string   `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Part         string   `json:"part,omitempty" yaml:"part,omitempty"`
	Code         string   `json:"code,omitempty" yaml:"code,omitempty"`
	Grammar      string   `json:"grammar" yaml:"grammar"`
	Ambiguous    []string `json:"ambiguous,omitempty" yaml:"ambiguous,omitempty"`
	DateCode     string   `json:"dateCode" yaml:"date_code"`
	Year         uint16   `json:"year,omitempty" yaml:"year,omitempty"`
	Week         uint8    `json:"week,omitempty" yaml:"week,omitempty"`
	Month        int      `json:"month,omitempty" yaml:"month,omitempty"`
}

func buildResults(results []batch.Result) []resultData {
	out := make([]resultData, 0, len(results))
	for _, r := range results {
		data := resultData{ID: r.ID, Source: r.Source}
		if r.Hint != nil {
			data.Hint = r.Hint.String()
		}
		if r.Err != nil {
			data.Error = r.Err.Error()
		}
		for _, c := range r.Components {
			data.Components = append(data.Components, componentData{
				Slot:         c.Slot,
				Family:       c.Family,
				Label:        c.Label,
				Manufacturer: string(c.Record.Manufacturer),
				Part:         c.Record.Part,
				Code:         c.Record.Code,
				Grammar:      c.Grammar,
				Ambiguous:    c.Ambiguous,
				DateCode:     c.Record.Date.String(),
				Year:         c.Date.Year,
				Week:         uint8(c.Date.Week),
				Month:        int(c.Date.Month),
			})
		}
		out = append(out, data)
	}
	return out
}

// Date renders a resolved date as 1994-w06, 1989-03 or just the year.
// An unresolved year prints as ????.
func Date(d label.Date) string {
	year := "????"
	if d.Year != 0 {
		year = fmt.Sprintf("%04d", d.Year)
	}
	switch {
	case d.Week != 0:
		return fmt.Sprintf("%s-w%02d", year, d.Week)
	case d.Month != 0:
		return fmt.Sprintf("%s-%02d", year, int(d.Month))
	}
	return year
}
