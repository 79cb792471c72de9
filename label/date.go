package label

import (
	"fmt"
	"strconv"
	"time"
)

// Year is either a FullYear or a PartialYear. A nil Year means the label
// carried no year at all.
type Year interface {
	year()
	String() string
}

// FullYear is an unambiguous calendar year.
type FullYear uint16

// PartialYear is the last decimal digit of a year. The decade is unknown.
type PartialYear uint8

func (FullYear) year()    {}
func (PartialYear) year() {}

func (y FullYear) String() string {
	return strconv.Itoa(int(y))
}

func (y PartialYear) String() string {
	return fmt.Sprintf("xxx%d", uint8(y))
}

// Week is a manufacturing week in 1..=53.
type Week uint8

// DateCode is the date information a grammar extracted from a label.
// Zero Week or Month means the label carried none.
type DateCode struct {
	Year  Year
	Week  Week
	Month time.Month
}

func (d DateCode) String() string {
	var s string
	if d.Year != nil {
		s = d.Year.String()
	} else {
		s = "????"
	}
	switch {
	case d.Week != 0:
		s += fmt.Sprintf("/w%02d", d.Week)
	case d.Month != 0:
		s += fmt.Sprintf("/%02d", int(d.Month))
	}
	return s
}

// Date is a DateCode whose year has been resolved to a calendar year.
// Year is zero when it could not be resolved.
type Date struct {
	Year  uint16
	Week  Week
	Month time.Month
}
