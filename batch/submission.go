// Package batch decodes submissions: the labels read off every component of
// one assembly, decoded together so that partial years can be resolved
// against a component that prints a full one.
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Component is one labelled part of a submission.
type Component struct {
	Slot   string `json:"slot" yaml:"slot"`
	Family string `json:"family" yaml:"family"`
	Label  string `json:"label" yaml:"label"`
}

// Submission groups the components of one assembly. HintSlot names the
// component whose year resolves the others; empty means the decoder's
// default.
type Submission struct {
	ID         string      `json:"id" yaml:"id"`
	Components []Component `json:"components" yaml:"components"`
	HintSlot   string      `json:"hint_slot,omitempty" yaml:"hint_slot,omitempty"`
}

// Validate checks that the submission is well formed. It does not look at
// the labels themselves.
func (s *Submission) Validate() error {
	if s.ID == "" {
		return errors.New("submission has no id")
	}
	seen := make(map[string]bool, len(s.Components))
	for i, c := range s.Components {
		if c.Slot == "" {
			return fmt.Errorf("submission %s: component %d has no slot", s.ID, i)
		}
		if c.Family == "" {
			return fmt.Errorf("submission %s: component %s has no family", s.ID, c.Slot)
		}
		if seen[c.Slot] {
			return fmt.Errorf("submission %s: duplicate slot %q", s.ID, c.Slot)
		}
		seen[c.Slot] = true
	}
	return nil
}

// Read parses every submission in r. The input is a stream of YAML
// documents, one submission each; JSON objects are accepted as well.
func Read(r io.Reader) ([]Submission, error) {
	dec := yaml.NewDecoder(r)
	var subs []Submission
	for {
		var s Submission
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode submission: %w", err)
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, nil
}

// ReadFile reads the submissions stored in path.
func ReadFile(path string) ([]Submission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open submissions: %w", err)
	}
	defer f.Close()

	subs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return subs, nil
}

// IsSubmissionFile reports whether path has an extension Read understands.
func IsSubmissionFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
