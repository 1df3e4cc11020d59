package palette

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// CodeCount is the number of cells carrying one color code.
type CodeCount struct {
	Code  string
	Count int
}

// Census counts the distinct codes of a frame, most frequent first. Codes with
// the same count are ordered by code so the result is stable.
func Census(codes []string) []CodeCount {
	counts := map[string]int{}
	for _, code := range codes {
		counts[code]++
	}

	result := make([]CodeCount, 0, len(counts))
	for code, n := range counts {
		result = append(result, CodeCount{Code: code, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Code < result[j].Code
	})
	return result
}

// Match is a palette entry close to some color code.
type Match struct {
	Code     string
	Name     string
	Distance float64
}

// Nearest returns the palette entry perceptually closest to code (CIE L*a*b*
// distance). It only serves palette authoring; translation never guesses.
func (p *Palette) Nearest(code string) (Match, error) {
	target, err := colorful.Hex("#" + code)
	if err != nil {
		return Match{}, fmt.Errorf("invalid color code %q: %w", code, err)
	}

	var best Match
	found := false
	for _, c := range p.Codes() {
		ref, err := colorful.Hex("#" + c)
		if err != nil {
			continue
		}
		d := target.DistanceLab(ref)
		if !found || d < best.Distance {
			best = Match{Code: c, Name: p.colors[c], Distance: d}
			found = true
		}
	}
	if !found {
		return Match{}, fmt.Errorf("palette %s has no colors", p.name)
	}
	return best, nil
}
