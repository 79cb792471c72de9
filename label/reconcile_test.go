package label

import (
	"testing"
	"time"
)

func TestReconcileYear(t *testing.T) {
	tests := []struct {
		name   string
		own    Year
		hint   Year
		want   uint16
		wantOK bool
	}{
		{"partial near hint", PartialYear(9), FullYear(1998), 1999, true},
		{"partial without hint", PartialYear(9), nil, 0, false},
		{"full ignores hint", FullYear(2005), FullYear(1998), 2005, true},
		{"full without hint", FullYear(1991), nil, 1991, true},
		{"same digit", PartialYear(8), FullYear(1998), 1998, true},
		{"previous decade", PartialYear(9), FullYear(2001), 1999, true},
		{"next decade", PartialYear(0), FullYear(1998), 2000, true},
		{"tie prefers earlier", PartialYear(3), FullYear(1998), 1993, true},
		{"partial hint is no hint", PartialYear(3), PartialYear(8), 0, false},
		{"no own year", nil, FullYear(1998), 0, false},
		{"never before year zero", PartialYear(9), FullYear(3), 9, true},
		{"never past the last year", PartialYear(9), FullYear(65535), 65529, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReconcileYear(tt.own, tt.hint)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ReconcileYear(%v, %v) = %d, %v, want %d, %v", tt.own, tt.hint, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestReconcileYearEndsInDigit(t *testing.T) {
	for hint := 1985; hint <= 2015; hint++ {
		for d := 0; d <= 9; d++ {
			got, ok := ReconcileYear(PartialYear(d), FullYear(hint))
			if !ok {
				t.Fatalf("hint %d digit %d: unresolved", hint, d)
			}
			if int(got)%10 != d {
				t.Errorf("hint %d digit %d: got %d", hint, d, got)
			}
			if diff := int(got) - hint; diff < -5 || diff > 5 {
				t.Errorf("hint %d digit %d: got %d, more than 5 years away", hint, d, got)
			}
		}
	}
}

func TestReconcileDate(t *testing.T) {
	got := ReconcileDate(DateCode{Year: PartialYear(4), Week: 6}, FullYear(1995))
	want := Date{Year: 1994, Week: 6}
	if got != want {
		t.Errorf("ReconcileDate = %+v, want %+v", got, want)
	}

	got = ReconcileDate(DateCode{Month: time.March}, FullYear(1995))
	if got != (Date{Month: time.March}) {
		t.Errorf("ReconcileDate without year = %+v", got)
	}
}
