package label

import (
	"regexp/syntax"
	"slices"
)

// Unbounded is the MaxLen of a grammar that accepts arbitrarily long labels.
const Unbounded = -1

// Requirements are necessary conditions for a grammar to match a label:
// the label's length in runes lies in [MinLen, MaxLen] and every literal
// occurs in it.
type Requirements struct {
	MinLen   int
	MaxLen   int
	Literals []string
}

// Any is satisfied by every label.
var Any = Requirements{MaxLen: Unbounded}

// Allows reports whether a label of n runes is within the length bounds.
func (r Requirements) Allows(n int) bool {
	if n < r.MinLen {
		return false
	}
	return r.MaxLen == Unbounded || n <= r.MaxLen
}

// Shortest literals carry too little information to be worth testing.
const minLiteralLen = 2

func patternRequirements(pattern string) (Requirements, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return Requirements{}, err
	}
	re = re.Simplify()

	lo, hi := lengthBounds(re)
	var lits []string
	for _, lit := range requiredLiterals(re) {
		if len(lit) >= minLiteralLen && !slices.Contains(lits, lit) {
			lits = append(lits, lit)
		}
	}
	return Requirements{MinLen: lo, MaxLen: hi, Literals: lits}, nil
}

func addLen(a, b int) int {
	if a == Unbounded || b == Unbounded {
		return Unbounded
	}
	return a + b
}

func lengthBounds(re *syntax.Regexp) (lo, hi int) {
	switch re.Op {
	case syntax.OpLiteral:
		return len(re.Rune), len(re.Rune)
	case syntax.OpCharClass, syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return 1, 1
	case syntax.OpCapture:
		return lengthBounds(re.Sub[0])
	case syntax.OpStar:
		return 0, Unbounded
	case syntax.OpPlus:
		lo, _ = lengthBounds(re.Sub[0])
		return lo, Unbounded
	case syntax.OpQuest:
		_, hi = lengthBounds(re.Sub[0])
		return 0, hi
	case syntax.OpRepeat:
		subLo, subHi := lengthBounds(re.Sub[0])
		lo = subLo * re.Min
		if re.Max == -1 || subHi == Unbounded {
			return lo, Unbounded
		}
		return lo, subHi * re.Max
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			subLo, subHi := lengthBounds(sub)
			lo += subLo
			hi = addLen(hi, subHi)
		}
		return lo, hi
	case syntax.OpAlternate:
		for i, sub := range re.Sub {
			subLo, subHi := lengthBounds(sub)
			if i == 0 || subLo < lo {
				lo = subLo
			}
			if i == 0 || hi != Unbounded && (subHi == Unbounded || subHi > hi) {
				hi = subHi
			}
		}
		return lo, hi
	default:
		// Empty-width assertions and OpEmptyMatch.
		return 0, 0
	}
}

// requiredLiterals returns case-sensitive literals every match contains.
func requiredLiterals(re *syntax.Regexp) []string {
	switch re.Op {
	case syntax.OpLiteral:
		if re.Flags&syntax.FoldCase != 0 {
			return nil
		}
		return []string{string(re.Rune)}
	case syntax.OpCapture, syntax.OpPlus:
		return requiredLiterals(re.Sub[0])
	case syntax.OpRepeat:
		if re.Min == 0 {
			return nil
		}
		return requiredLiterals(re.Sub[0])
	case syntax.OpConcat:
		var out []string
		for _, sub := range re.Sub {
			out = append(out, requiredLiterals(sub)...)
		}
		return out
	default:
		return nil
	}
}
