package archetype

import (
	"sort"

	"traitgen/src/errors"
	"traitgen/src/values"
)

const (
	// topWindow is how many of the highest ranked values a primary value
	// must fall within to contribute to a match.
	topWindow = 6

	// positionWeight multiplies the inverted rank of a primary value.
	positionWeight = 2

	// patternBonus is awarded per satisfied secondary-pattern extreme.
	patternBonus = 3

	// maxMatchingValues caps the explanation returned with a match.
	maxMatchingValues = 3
)

// MatchScore scores a against scores.
//
// Each primary code found at zero-based position p within the top six values
// adds (6-p)*2. With a secondary pattern, 3 points are added when the pattern
// marks the highest dimension as high and 3 more when it marks the lowest
// dimension as low. Requirements on any other dimension or direction score
// nothing.
func MatchScore(scores values.Scores, a Archetype) int {
	score := 0

	top := values.TopCodes(scores, topWindow)
	for _, code := range a.PrimaryValues {
		if position := indexOf(top, code); position >= 0 {
			score += (topWindow - position) * positionWeight
		}
	}

	if a.HasSecondaryPattern() {
		ho := values.CalculateHigherOrderScores(scores)
		if a.SecondaryPattern[ho.Highest()] == High {
			score += patternBonus
		}
		if a.SecondaryPattern[ho.Lowest()] == Low {
			score += patternBonus
		}
	}

	return score
}

// MatchingValues returns up to three of a's primary codes that appear in
// the top six values, in a's declared order.
func MatchingValues(scores values.Scores, a Archetype) []string {
	top := values.TopCodes(scores, topWindow)
	matching := []string{}
	for _, code := range a.PrimaryValues {
		if indexOf(top, code) >= 0 {
			matching = append(matching, code)
			if len(matching) == maxMatchingValues {
				break
			}
		}
	}
	return matching
}

// FindBest returns the highest scoring archetype of category. The first
// declared entry wins ties.
func (c *Catalog) FindBest(scores values.Scores, category Category) (Archetype, error) {
	candidates, err := c.candidates(category)
	if err != nil {
		return Archetype{}, err
	}

	best := candidates[0]
	bestScore := MatchScore(scores, best)
	for _, a := range candidates[1:] {
		if s := MatchScore(scores, a); s > bestScore {
			best, bestScore = a, s
		}
	}
	return best, nil
}

// Rank scores every archetype of category, best first. Equal scores keep
// declaration order, so Rank(...)[0] is always FindBest's result.
func (c *Catalog) Rank(scores values.Scores, category Category) ([]Match, error) {
	candidates, err := c.candidates(category)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, len(candidates))
	for i, a := range candidates {
		matches[i] = Match{
			Archetype:      a,
			Score:          MatchScore(scores, a),
			MatchingValues: MatchingValues(scores, a),
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}

// BestMatch is FindBest plus the explanation values and score.
func (c *Catalog) BestMatch(scores values.Scores, category Category) (Match, error) {
	a, err := c.FindBest(scores, category)
	if err != nil {
		return Match{}, err
	}
	return Match{
		Archetype:      a,
		Score:          MatchScore(scores, a),
		MatchingValues: MatchingValues(scores, a),
	}, nil
}

func (c *Catalog) candidates(category Category) ([]Archetype, error) {
	if _, err := c.Info(category); err != nil {
		return nil, err
	}
	candidates := c.InCategory(category)
	if len(candidates) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyCategory, "category %q", category)
	}
	return candidates, nil
}

// FindBest matches against the embedded catalog.
func FindBest(scores values.Scores, category Category) (Archetype, error) {
	return defaultCatalog.FindBest(scores, category)
}

// Rank ranks against the embedded catalog.
func Rank(scores values.Scores, category Category) ([]Match, error) {
	return defaultCatalog.Rank(scores, category)
}

// BestMatch matches against the embedded catalog.
func BestMatch(scores values.Scores, category Category) (Match, error) {
	return defaultCatalog.BestMatch(scores, category)
}

func indexOf(codes []string, code string) int {
	for i, c := range codes {
		if c == code {
			return i
		}
	}
	return -1
}
