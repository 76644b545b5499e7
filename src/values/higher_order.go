package values

import (
	"sort"
)

// HigherOrderScores holds the mean score of each dimension. It is derived
// on every call and never cached, since the source mapping may change.
type HigherOrderScores map[Dimension]float64

// DimensionScore pairs a dimension with its aggregate.
type DimensionScore struct {
	Dimension Dimension `json:"dimension" yaml:"dimension"`
	Score     float64   `json:"score" yaml:"score"`
}

// CalculateHigherOrderScores averages the resolved scores of each
// dimension's members. Absent codes count as DefaultScore.
func CalculateHigherOrderScores(scores Scores) HigherOrderScores {
	sums := make(map[Dimension]float64, len(dimensions))
	counts := make(map[Dimension]int, len(dimensions))
	for _, v := range catalog {
		sums[v.Dimension] += scores.Get(v.Code)
		counts[v.Dimension]++
	}

	out := make(HigherOrderScores, len(dimensions))
	for _, d := range dimensions {
		if counts[d] == 0 {
			out[d] = DefaultScore
			continue
		}
		out[d] = sums[d] / float64(counts[d])
	}
	return out
}

// Ranked returns the dimensions by descending aggregate. Ties keep
// dimension declaration order.
func (h HigherOrderScores) Ranked() []DimensionScore {
	ranked := make([]DimensionScore, len(dimensions))
	for i, d := range dimensions {
		ranked[i] = DimensionScore{Dimension: d, Score: h.Get(d)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Highest is the first dimension of Ranked.
func (h HigherOrderScores) Highest() Dimension {
	return h.Ranked()[0].Dimension
}

// Lowest is the last dimension of Ranked.
func (h HigherOrderScores) Lowest() Dimension {
	ranked := h.Ranked()
	return ranked[len(ranked)-1].Dimension
}

// Get returns the aggregate for d, or DefaultScore when it is absent.
func (h HigherOrderScores) Get(d Dimension) float64 {
	if v, ok := h[d]; ok {
		return v
	}
	return DefaultScore
}
