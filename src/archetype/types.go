package archetype

import (
	"traitgen/src/values"
)

// Category groups archetypes for matching.
type Category string

const (
	Fictional    Category = "fictional"
	Historical   Category = "historical"
	Superheroes  Category = "superheroes"
	Mythological Category = "mythological"
	Literary     Category = "literary"
)

// Level is the qualitative requirement a secondary pattern places on a
// higher-order dimension.
type Level string

const (
	High Level = "high"
	Low  Level = "low"
)

// CategoryInfo describes a category for display.
type CategoryInfo struct {
	Value       Category `toml:"value" json:"value"`
	Label       string   `toml:"label" json:"label"`
	Description string   `toml:"description" json:"description"`
}

// Archetype is a persona in the catalog.
type Archetype struct {
	Name        string
	Description string
	// ImagePrompt is passed through to callers untouched; it plays no part in
	// matching.
	ImagePrompt string
	Category    Category
	// PrimaryValues are basic value codes; earlier codes weigh more.
	PrimaryValues    []string
	SecondaryPattern map[values.Dimension]Level
}

// HasSecondaryPattern reports whether a declares any dimension requirement.
func (a Archetype) HasSecondaryPattern() bool {
	return len(a.SecondaryPattern) > 0
}

// clone copies the slice and map so catalog entries cannot be mutated
// through a returned value.
func (a Archetype) clone() Archetype {
	out := a
	out.PrimaryValues = append([]string(nil), a.PrimaryValues...)
	if a.SecondaryPattern != nil {
		out.SecondaryPattern = make(map[values.Dimension]Level, len(a.SecondaryPattern))
		for d, l := range a.SecondaryPattern {
			out.SecondaryPattern[d] = l
		}
	}
	return out
}

// Match is an archetype scored against a score mapping.
type Match struct {
	Archetype      Archetype
	Score          int
	MatchingValues []string
}
