package format

import (
	"io"

	"github.com/dhamidi/labeldecode/batch"
	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w       io.Writer
	results []batch.Result
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(results []batch.Result) error {
	e.results = results
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(buildResults(e.results))
}
