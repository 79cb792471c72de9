package label

import (
	"strings"
	"unicode/utf8"
)

// prefilter shortlists the grammars of a Dispatcher that could match a
// label. Literals shared between grammars are stored once and each is
// searched for at most once per label.
type prefilter struct {
	literals []string
	needs    [][]int
	reqs     []Requirements
}

func newPrefilter(reqs []Requirements) *prefilter {
	p := &prefilter{
		needs: make([][]int, len(reqs)),
		reqs:  reqs,
	}
	index := make(map[string]int)
	for i, r := range reqs {
		for _, lit := range r.Literals {
			j, ok := index[lit]
			if !ok {
				j = len(p.literals)
				index[lit] = j
				p.literals = append(p.literals, lit)
			}
			p.needs[i] = append(p.needs[i], j)
		}
	}
	return p
}

const (
	litUnknown int8 = iota
	litPresent
	litAbsent
)

// candidates returns, in declaration order, the indices of grammars whose
// requirements the label satisfies.
func (p *prefilter) candidates(label string) []int {
	n := utf8.RuneCountInString(label)
	seen := make([]int8, len(p.literals))

	var out []int
	for i, r := range p.reqs {
		if !r.Allows(n) {
			continue
		}
		ok := true
		for _, j := range p.needs[i] {
			if seen[j] == litUnknown {
				seen[j] = litAbsent
				if strings.Contains(label, p.literals[j]) {
					seen[j] = litPresent
				}
			}
			if seen[j] == litAbsent {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, i)
		}
	}
	return out
}

func mergeRequirements(reqs []Requirements) Requirements {
	if len(reqs) == 0 {
		return Requirements{}
	}
	out := Requirements{MinLen: reqs[0].MinLen, MaxLen: reqs[0].MaxLen}
	for _, r := range reqs[1:] {
		out.MinLen = min(out.MinLen, r.MinLen)
		if out.MaxLen != Unbounded && (r.MaxLen == Unbounded || r.MaxLen > out.MaxLen) {
			out.MaxLen = r.MaxLen
		}
	}
	return out
}
