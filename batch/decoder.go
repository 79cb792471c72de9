package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/dhamidi/labeldecode/chip"
	"github.com/dhamidi/labeldecode/label"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

var log = commonlog.GetLogger("labeldecode.batch")

// DefaultHintSlot is the slot used for year hints when neither the
// submission nor the decoder names one.
const DefaultHintSlot = "cpu"

// Decoded is one decoded component.
type Decoded struct {
	Component
	Record    chip.Record
	Grammar   string
	Ambiguous []string
	// Date is the record's date with its year reconciled against the hint.
	Date label.Date
}

// Result is the outcome of one submission. When Err is set the submission
// was aborted and Components holds nothing.
type Result struct {
	ID         string
	Source     string
	Hint       label.Year
	Components []Decoded
	Err        error
}

// Decoder decodes submissions against a family registry.
type Decoder struct {
	registry *chip.Registry
	workers  int
	hintSlot string
}

type Option func(*Decoder)

// WithWorkers bounds the number of submissions decoded at once.
func WithWorkers(n int) Option {
	return func(d *Decoder) {
		if n > 0 {
			d.workers = n
		}
	}
}

// WithHintSlot sets the slot used when a submission names none.
func WithHintSlot(slot string) Option {
	return func(d *Decoder) {
		if slot != "" {
			d.hintSlot = slot
		}
	}
}

func NewDecoder(registry *chip.Registry, opts ...Option) *Decoder {
	d := &Decoder{
		registry: registry,
		workers:  runtime.GOMAXPROCS(0),
		hintSlot: DefaultHintSlot,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run decodes subs concurrently. Results are in the order of subs. A
// submission that fails to decode is reported through its Result; Run
// itself only fails when ctx is cancelled.
func (d *Decoder) Run(ctx context.Context, subs []Submission) ([]Result, error) {
	results := make([]Result, len(subs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i, s := range subs {
		i, s := i, s // per-iteration copies; module targets Go 1.21
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = d.Decode(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	return results, nil
}

// Decode decodes a single submission.
func (d *Decoder) Decode(s Submission) Result {
	res := Result{ID: s.ID}

	decoded := make([]Decoded, 0, len(s.Components))
	for _, c := range s.Components {
		f, ok := d.registry.Lookup(c.Family)
		if !ok {
			res.Err = fmt.Errorf("slot %s: unknown family %q", c.Slot, c.Family)
			log.Errorf("submission %s: %v", s.ID, res.Err)
			return res
		}
		m, err := f.Match(c.Label)
		if err != nil {
			res.Err = fmt.Errorf("slot %s: %w", c.Slot, err)
			log.Errorf("submission %s: %v", s.ID, res.Err)
			return res
		}
		decoded = append(decoded, Decoded{
			Component: c,
			Record:    m.Record,
			Grammar:   m.Grammar,
			Ambiguous: m.Ambiguous,
		})
	}

	hintSlot := s.HintSlot
	if hintSlot == "" {
		hintSlot = d.hintSlot
	}
	for _, c := range decoded {
		if c.Slot == hintSlot {
			res.Hint = c.Record.Date.Year
			break
		}
	}
	for i := range decoded {
		decoded[i].Date = label.ReconcileDate(decoded[i].Record.Date, res.Hint)
	}
	res.Components = decoded

	log.Debugf("submission %s: decoded %d components", s.ID, len(decoded))
	return res
}
