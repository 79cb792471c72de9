package label

import "math"

// ReconcileYear resolves own against hint, a full year taken from another
// component of the same assembly. A FullYear own is returned unchanged. A
// PartialYear resolves to the year ending in that digit closest to hint;
// when two years are equally close the earlier one is chosen. Without a
// full-year hint a partial year stays unresolved.
func ReconcileYear(own Year, hint Year) (uint16, bool) {
	switch y := own.(type) {
	case FullYear:
		return uint16(y), true
	case PartialYear:
		h, ok := hint.(FullYear)
		if !ok {
			return 0, false
		}
		return nearestYear(uint8(y), int(h)), true
	default:
		return 0, false
	}
}

func nearestYear(digit uint8, hint int) uint16 {
	base := hint - hint%10 + int(digit)
	best := -1
	for _, c := range []int{base - 10, base, base + 10} {
		if c < 0 || c > math.MaxUint16 {
			continue
		}
		if best < 0 || abs(c-hint) < abs(best-hint) {
			best = c
		}
	}
	return uint16(best)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ReconcileDate resolves the year of own against hint and keeps its week
// and month.
func ReconcileDate(own DateCode, hint Year) Date {
	d := Date{Week: own.Week, Month: own.Month}
	if y, ok := ReconcileYear(own.Year, hint); ok {
		d.Year = y
	}
	return d
}
