package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/labeldecode/batch"
)

type JSONEncoder struct {
	w       io.Writer
	results []batch.Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(results []batch.Result) error {
	e.results = results
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildResults(e.results), "", "  ")
}
