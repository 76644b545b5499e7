package values

import (
	"sort"
)

const (
	// DefaultScore is the scale midpoint used for any code missing from a
	// score mapping.
	DefaultScore = 3.5

	MinScore = 1.0
	MaxScore = 6.0
)

// Scores maps basic value codes to survey scores. Mappings may be sparse.
type Scores map[string]float64

// Get returns the score for code, or DefaultScore when it is absent. Every
// scorer in the module reads scores through this method.
func (s Scores) Get(code string) float64 {
	if v, ok := s[code]; ok {
		return v
	}
	return DefaultScore
}

// Resolved returns a dense copy holding one entry per catalog value.
func (s Scores) Resolved() Scores {
	out := make(Scores, len(catalog))
	for _, v := range catalog {
		out[v.Code] = s.Get(v.Code)
	}
	return out
}

// RankedValue is a basic value paired with its resolved score.
type RankedValue struct {
	Code      string    `json:"code" yaml:"code"`
	Label     string    `json:"label" yaml:"label"`
	Dimension Dimension `json:"dimension" yaml:"dimension"`
	Score     float64   `json:"score" yaml:"score"`
}

// Ranked returns every catalog value sorted by descending score. Equal
// scores keep catalog order.
func (s Scores) Ranked() []RankedValue {
	ranked := s.entries()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// TopValues returns the n highest scoring values, highest first.
func TopValues(scores Scores, n int) []RankedValue {
	n = clamp(n)
	return scores.Ranked()[:n]
}

// BottomValues returns the n lowest scoring values, lowest first. Equal
// scores keep catalog order.
func BottomValues(scores Scores, n int) []RankedValue {
	n = clamp(n)
	ranked := scores.entries()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	return ranked[:n]
}

// TopCodes returns the codes of TopValues.
func TopCodes(scores Scores, n int) []string {
	return codesOf(TopValues(scores, n))
}

func (s Scores) entries() []RankedValue {
	out := make([]RankedValue, len(catalog))
	for i, v := range catalog {
		out[i] = RankedValue{
			Code:      v.Code,
			Label:     v.Label,
			Dimension: v.Dimension,
			Score:     s.Get(v.Code),
		}
	}
	return out
}

func clamp(n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(catalog) {
		return len(catalog)
	}
	return n
}

func codesOf(vs []RankedValue) []string {
	codes := make([]string, len(vs))
	for i, v := range vs {
		codes[i] = v.Code
	}
	return codes
}

// Labels returns the labels of vs in order.
func Labels(vs []RankedValue) []string {
	labels := make([]string, len(vs))
	for i, v := range vs {
		labels[i] = v.Label
	}
	return labels
}
