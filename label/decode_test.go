package label

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestDecodeYear2Century(t *testing.T) {
	for n := 0; n <= 99; n++ {
		text := fmt.Sprintf("%02d", n)
		want := FullYear(2000 + n)
		if n >= 88 {
			want = FullYear(1900 + n)
		}
		got, err := DecodeYear2(text)
		if err != nil {
			t.Fatalf("DecodeYear2(%q) error: %v", text, err)
		}
		if got != want {
			t.Errorf("DecodeYear2(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestDecodeYear2(t *testing.T) {
	tests := []struct {
		text    string
		want    Year
		wantErr bool
	}{
		{"AL", FullYear(2000), false},
		{"AM", FullYear(2001), false},
		{"AN", nil, true},
		{"9", nil, true},
		{"999", nil, true},
		{"9A", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := DecodeYear2(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeYear2(%q) = %v, want error", tt.text, got)
				}
				if !errors.Is(err, ErrConstraint) {
					t.Errorf("error %v is not ErrConstraint", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeYear2(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("DecodeYear2(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDecodeYear1(t *testing.T) {
	for d := 0; d <= 9; d++ {
		text := fmt.Sprint(d)
		got, err := DecodeYear1(text)
		if err != nil {
			t.Fatalf("DecodeYear1(%q) error: %v", text, err)
		}
		if got != PartialYear(d) {
			t.Errorf("DecodeYear1(%q) = %v, want PartialYear(%d)", text, got, d)
		}
	}
	for _, text := range []string{"", "12", "X"} {
		if _, err := DecodeYear1(text); err == nil {
			t.Errorf("DecodeYear1(%q) succeeded, want error", text)
		}
	}
}

func TestDecodeYear4(t *testing.T) {
	got, err := DecodeYear4("1996")
	if err != nil || got != FullYear(1996) {
		t.Errorf("DecodeYear4(\"1996\") = %v, %v", got, err)
	}
	if _, err := DecodeYear4("96"); err == nil {
		t.Error("DecodeYear4(\"96\") succeeded, want error")
	}
}

func TestDecodeWeek2(t *testing.T) {
	tests := []struct {
		text    string
		want    Week
		wantErr bool
	}{
		{"01", 1, false},
		{"06", 6, false},
		{"53", 53, false},
		{"00", 0, true},
		{"54", 0, true},
		{"99", 0, true},
		{"5", 0, true},
		{"5A", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := DecodeWeek2(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeWeek2(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DecodeWeek2(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestDecodeMonth2(t *testing.T) {
	for m := 1; m <= 12; m++ {
		text := fmt.Sprintf("%02d", m)
		got, err := DecodeMonth2(text)
		if err != nil {
			t.Fatalf("DecodeMonth2(%q) error: %v", text, err)
		}
		if got != time.Month(m) {
			t.Errorf("DecodeMonth2(%q) = %v, want %v", text, got, time.Month(m))
		}
	}
	for _, text := range []string{"00", "13", "1", "1A"} {
		if _, err := DecodeMonth2(text); err == nil {
			t.Errorf("DecodeMonth2(%q) succeeded, want error", text)
		}
	}
}

func TestDecodeMonthLetter(t *testing.T) {
	letters := "ABCDEFGHJKLM"
	for i, c := range letters {
		got, err := DecodeMonthLetter(string(c))
		if err != nil {
			t.Fatalf("DecodeMonthLetter(%q) error: %v", c, err)
		}
		if got != time.Month(i+1) {
			t.Errorf("DecodeMonthLetter(%q) = %v, want %v", c, got, time.Month(i+1))
		}
	}
	for _, text := range []string{"I", "N", "a", "1", "", "AB"} {
		if _, err := DecodeMonthLetter(text); err == nil {
			t.Errorf("DecodeMonthLetter(%q) succeeded, want error", text)
		}
	}
}

func TestDecodeMonth1(t *testing.T) {
	tests := []struct {
		text string
		want time.Month
	}{
		{"1", time.January},
		{"9", time.September},
		{"A", time.October},
		{"C", time.December},
	}
	for _, tt := range tests {
		got, err := DecodeMonth1(tt.text)
		if err != nil || got != tt.want {
			t.Errorf("DecodeMonth1(%q) = %v, %v, want %v", tt.text, got, err, tt.want)
		}
	}
	for _, text := range []string{"0", "D", "10"} {
		if _, err := DecodeMonth1(text); err == nil {
			t.Errorf("DecodeMonth1(%q) succeeded, want error", text)
		}
	}
}

func TestConstraintErrorMessage(t *testing.T) {
	_, err := DecodeWeek2("54")
	if err == nil {
		t.Fatal("expected error")
	}
	want := `invalid "54": expected week in 1..=53`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestYear2Week2(t *testing.T) {
	got, err := Year2Week2("94", "12")
	if err != nil {
		t.Fatalf("Year2Week2 error: %v", err)
	}
	if got.Year != FullYear(1994) || got.Week != 12 || got.Month != 0 {
		t.Errorf("Year2Week2 = %+v", got)
	}
	if _, err := Year2Week2("94", "60"); err == nil {
		t.Error("Year2Week2 with week 60 succeeded, want error")
	}
}
