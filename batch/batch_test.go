package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dhamidi/labeldecode/chip"
	"github.com/dhamidi/labeldecode/label"
	"github.com/google/go-cmp/cmp"
)

const (
	cpuLabel     = "DMG-CPU B © 1989 Nintendo JAPAN 9235 D"
	sramLabel    = "LH5264N4T LSI LOGIC JAPAN D4 06 05 C"
	crystalLabel = "4.194 KDS 9C"
)

func board(id string) Submission {
	return Submission{
		ID: id,
		Components: []Component{
			{Slot: "cpu", Family: "cpu", Label: cpuLabel},
			{Slot: "wram", Family: "sram", Label: sramLabel},
			{Slot: "xtal", Family: "crystal", Label: crystalLabel},
		},
	}
}

func TestRead(t *testing.T) {
	input := `
id: dmg-1
hint_slot: cpu
components:
  - slot: cpu
    family: cpu
    label: "DMG-CPU B © 1989 Nintendo JAPAN 9235 D"
---
{"id": "dmg-2", "components": [{"slot": "wram", "family": "sram", "label": "x"}]}
`
	subs, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	want := []Submission{
		{
			ID:         "dmg-1",
			HintSlot:   "cpu",
			Components: []Component{{Slot: "cpu", Family: "cpu", Label: cpuLabel}},
		},
		{
			ID:         "dmg-2",
			Components: []Component{{Slot: "wram", Family: "sram", Label: "x"}},
		},
	}
	if diff := cmp.Diff(want, subs); diff != "" {
		t.Errorf("Read mismatch (-want +got):\n%s", diff)
	}
}

func TestReadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no id", "components: []", "no id"},
		{"no slot", "id: a\ncomponents: [{family: cpu, label: x}]", "has no slot"},
		{"no family", "id: a\ncomponents: [{slot: cpu, label: x}]", "has no family"},
		{"duplicate", "id: a\ncomponents: [{slot: cpu, family: cpu}, {slot: cpu, family: cpu}]", "duplicate slot"},
		{"syntax", "id: [", "decode submission"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Read error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestDecodeReconcilesAgainstHint(t *testing.T) {
	d := NewDecoder(chip.Default())
	res := d.Decode(board("dmg"))
	if res.Err != nil {
		t.Fatalf("Decode error: %v", res.Err)
	}
	if res.Hint != label.FullYear(1992) {
		t.Errorf("Hint = %v, want 1992", res.Hint)
	}

	got := make(map[string]label.Date)
	for _, c := range res.Components {
		got[c.Slot] = c.Date
	}
	want := map[string]label.Date{
		"cpu":  {Year: 1992, Week: 35},
		"wram": {Year: 1994, Week: 6},
		"xtal": {Year: 1989, Month: time.March},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dates mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeHintSlot(t *testing.T) {
	s := board("dmg")
	s.HintSlot = "missing"
	res := NewDecoder(chip.Default()).Decode(s)
	if res.Err != nil {
		t.Fatalf("Decode error: %v", res.Err)
	}
	if res.Hint != nil {
		t.Errorf("Hint = %v, want none", res.Hint)
	}
	for _, c := range res.Components {
		if c.Slot == "wram" && c.Date.Year != 0 {
			t.Errorf("wram year = %d, want unresolved", c.Date.Year)
		}
	}

	res = NewDecoder(chip.Default(), WithHintSlot("xtal")).Decode(board("dmg"))
	if res.Hint != label.PartialYear(9) {
		t.Errorf("Hint = %v, want xxx9", res.Hint)
	}
}

func TestDecodeAborts(t *testing.T) {
	d := NewDecoder(chip.Default())

	s := board("bad")
	s.Components[1].Label = "LH5264N4T SOMETHING ELSE"
	res := d.Decode(s)
	if !errors.Is(res.Err, label.ErrNoMatch) {
		t.Fatalf("Err = %v, want no match", res.Err)
	}
	if !strings.Contains(res.Err.Error(), "LH5264N4T SOMETHING ELSE") {
		t.Errorf("Err %q does not name the label", res.Err)
	}
	if res.Components != nil {
		t.Errorf("Components = %v, want none", res.Components)
	}

	s = board("unknown")
	s.Components[2].Family = "capacitor"
	res = d.Decode(s)
	if res.Err == nil || !strings.Contains(res.Err.Error(), `unknown family "capacitor"`) {
		t.Errorf("Err = %v, want unknown family", res.Err)
	}
}

func TestRun(t *testing.T) {
	bad := board("bad")
	bad.Components[0].Label = "nonsense"
	subs := []Submission{board("a"), bad, board("c"), board("d")}

	results, err := NewDecoder(chip.Default(), WithWorkers(2)).Run(context.Background(), subs)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(results) != len(subs) {
		t.Fatalf("got %d results, want %d", len(results), len(subs))
	}
	for i, r := range results {
		if r.ID != subs[i].ID {
			t.Errorf("results[%d].ID = %q, want %q", i, r.ID, subs[i].ID)
		}
		if failed := r.Err != nil; failed != (r.ID == "bad") {
			t.Errorf("results[%d].Err = %v", i, r.Err)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewDecoder(chip.Default()).Run(ctx, []Submission{board("a")})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dmg.yaml")
	write := func(content string, mod time.Time) {
		t.Helper()
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls []Result
	w := NewWatcher(dir, NewDecoder(chip.Default()), func(p string, results []Result) {
		if p != path {
			t.Errorf("handled %s, want %s", p, path)
		}
		calls = append(calls, results...)
	})
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	write("id: one\ncomponents:\n  - {slot: cpu, family: cpu, label: \""+cpuLabel+"\"}\n", base)
	if err := w.Scan(ctx); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 1 || calls[0].ID != "one" || calls[0].Source != path || calls[0].Err != nil {
		t.Fatalf("first scan: %+v", calls)
	}

	if err := w.Scan(ctx); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 1 {
		t.Fatalf("unchanged file decoded again: %+v", calls)
	}

	write("id: [", base.Add(time.Minute))
	if err := w.Scan(ctx); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 2 || calls[1].Err == nil || calls[1].Source != path {
		t.Fatalf("broken file: %+v", calls)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := w.Scan(ctx); err != nil {
		t.Fatal(err)
	}
	if len(w.modTimes) != 0 {
		t.Errorf("removed file still tracked: %v", w.modTimes)
	}
}
