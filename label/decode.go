package label

import (
	"strings"
	"time"
)

// Reserved two-letter year codes printed by some crystal vendors in place of
// the numeric "00" and "01".
var yearCodes = map[string]FullYear{
	"AL": 2000,
	"AM": 2001,
}

// Month letters skip I.
const monthLetters = "ABCDEFGHJKLM"

// One-symbol month run: 1-9 are January to September, A-C October to December.
const monthRun = "123456789ABC"

func digits(text string, n int) (int, bool) {
	if len(text) != n {
		return 0, false
	}
	v := 0
	for i := 0; i < n; i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}

// DecodeYear1 decodes a single digit year.
func DecodeYear1(text string) (Year, error) {
	v, ok := digits(text, 1)
	if !ok {
		return nil, constraint(text, "1 digit")
	}
	return PartialYear(v), nil
}

// DecodeYear2 decodes a two character year. 00-87 are 2000-2087 and 88-99 are
// 1988-1999, which is only correct for parts made between 1988 and 2087.
func DecodeYear2(text string) (Year, error) {
	if y, ok := yearCodes[text]; ok {
		return y, nil
	}
	v, ok := digits(text, 2)
	if !ok {
		return nil, constraint(text, "2 digits")
	}
	if v >= 88 {
		return FullYear(1900 + v), nil
	}
	return FullYear(2000 + v), nil
}

// DecodeYear4 decodes a four digit year.
func DecodeYear4(text string) (Year, error) {
	v, ok := digits(text, 4)
	if !ok {
		return nil, constraint(text, "4 digits")
	}
	return FullYear(v), nil
}

// DecodeWeek2 decodes a two digit week in 1..=53.
func DecodeWeek2(text string) (Week, error) {
	v, ok := digits(text, 2)
	if !ok {
		return 0, constraint(text, "2 digits")
	}
	if v < 1 || v > 53 {
		return 0, constraint(text, "week in 1..=53")
	}
	return Week(v), nil
}

// DecodeMonth2 decodes a two digit month in 1..=12.
func DecodeMonth2(text string) (time.Month, error) {
	v, ok := digits(text, 2)
	if !ok {
		return 0, constraint(text, "2 digits")
	}
	if v < 1 || v > 12 {
		return 0, constraint(text, "month in 1..=12")
	}
	return time.Month(v), nil
}

// DecodeMonth1 decodes a one symbol month: 1-9, then A, B, C.
func DecodeMonth1(text string) (time.Month, error) {
	return lookupMonth(text, monthRun)
}

// DecodeMonthLetter decodes a month letter A-M without I.
func DecodeMonthLetter(text string) (time.Month, error) {
	return lookupMonth(text, monthLetters)
}

func lookupMonth(text, alphabet string) (time.Month, error) {
	if len(text) != 1 {
		return 0, constraint(text, "1 character")
	}
	i := strings.IndexByte(alphabet, text[0])
	if i < 0 {
		return 0, constraint(text, "one of "+alphabet)
	}
	return time.Month(i + 1), nil
}

// Year1Week2 decodes a one digit year and a two digit week.
func Year1Week2(year, week string) (DateCode, error) {
	y, err := DecodeYear1(year)
	if err != nil {
		return DateCode{}, err
	}
	w, err := DecodeWeek2(week)
	if err != nil {
		return DateCode{}, err
	}
	return DateCode{Year: y, Week: w}, nil
}

// Year2Week2 decodes a two character year and a two digit week.
func Year2Week2(year, week string) (DateCode, error) {
	y, err := DecodeYear2(year)
	if err != nil {
		return DateCode{}, err
	}
	w, err := DecodeWeek2(week)
	if err != nil {
		return DateCode{}, err
	}
	return DateCode{Year: y, Week: w}, nil
}

// Year2Month2 decodes a two character year and a two digit month.
func Year2Month2(year, month string) (DateCode, error) {
	y, err := DecodeYear2(year)
	if err != nil {
		return DateCode{}, err
	}
	m, err := DecodeMonth2(month)
	if err != nil {
		return DateCode{}, err
	}
	return DateCode{Year: y, Month: m}, nil
}

// Year1MonthLetter decodes a one digit year and a month letter.
func Year1MonthLetter(year, month string) (DateCode, error) {
	y, err := DecodeYear1(year)
	if err != nil {
		return DateCode{}, err
	}
	m, err := DecodeMonthLetter(month)
	if err != nil {
		return DateCode{}, err
	}
	return DateCode{Year: y, Month: m}, nil
}
