package label

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a DecodeError.
type ErrorKind int

const (
	// KindNoMatch means no grammar explained the label. It is an expected
	// outcome for labels outside the known vocabulary.
	KindNoMatch ErrorKind = iota
	// KindConstraint means a grammar matched but a captured value was rejected
	// by a primitive decoder. This is a bug in the grammar's pattern.
	KindConstraint
)

func (k ErrorKind) String() string {
	switch k {
	case KindNoMatch:
		return "no match"
	case KindConstraint:
		return "constraint violation"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is.
var (
	ErrNoMatch    = errors.New("no match")
	ErrConstraint = errors.New("constraint violation")
)

// DecodeError is returned by every decoder in this package.
type DecodeError struct {
	Kind ErrorKind
	// Label is the full label being decoded. Primitive decoders leave it
	// empty; Grammar.Parse fills it in.
	Label string
	// Text is the offending substring, if any.
	Text string
	// Expect describes the violated expectation ("2 digits", "1..=53").
	Expect string
	Err    error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Kind == KindNoMatch:
		return fmt.Sprintf("no match: %q", e.Label)
	case e.Err != nil && e.Text == "":
		return fmt.Sprintf("%q: %v", e.Label, e.Err)
	case e.Label == "":
		return fmt.Sprintf("invalid %q: expected %s", e.Text, e.Expect)
	default:
		return fmt.Sprintf("%q: invalid %q: expected %s", e.Label, e.Text, e.Expect)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrNoMatch:
		return e.Kind == KindNoMatch
	case ErrConstraint:
		return e.Kind == KindConstraint
	}
	return false
}

// NoMatch returns the error reported when label matched nothing.
func NoMatch(label string) *DecodeError {
	return &DecodeError{Kind: KindNoMatch, Label: label}
}

func constraint(text, expect string) *DecodeError {
	return &DecodeError{Kind: KindConstraint, Text: text, Expect: expect}
}

// WithLabel attaches label to err, converting foreign errors returned by
// extraction functions into constraint violations.
func WithLabel(label string, err error) *DecodeError {
	var de *DecodeError
	if errors.As(err, &de) {
		out := *de
		out.Label = label
		return &out
	}
	return &DecodeError{Kind: KindConstraint, Label: label, Err: err}
}
