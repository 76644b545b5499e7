package composer

import (
	"fmt"
	"strings"

	"traitgen/src/archetype"
	"traitgen/src/narrator"
	"traitgen/src/values"
)

// layerSeparator divides prompt layers.
const layerSeparator = "\n\n---\n\n"

const communicationStyle = `## Communication Style
Let these values shape priorities, word choice and recommendations. Do not recite scores or name the survey unless asked. Keep the tone natural and never claim to have feelings you were not given.`

// Options controls which layers Compose adds after the value layer.
type Options struct {
	// Archetype adds a persona layer for the given match when non-nil.
	Archetype *archetype.Match
	// Bare drops the communication-style footer.
	Bare bool
}

// Compose builds a layered system prompt from scores.
func Compose(scores values.Scores, opts Options) string {
	return strings.Join(Layers(scores, opts), layerSeparator)
}

// Layers returns the individual prompt layers in order.
func Layers(scores values.Scores, opts Options) []string {
	// Layer 1: value profile
	layers := []string{strings.TrimRight(narrator.SystemPrompt(scores), "\n")}

	// Layer 2: archetype persona (optional)
	if opts.Archetype != nil {
		layers = append(layers, personaLayer(*opts.Archetype))
	}

	// Layer 3: communication style
	if !opts.Bare {
		layers = append(layers, communicationStyle)
	}

	return layers
}

func personaLayer(m archetype.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Archetype: %s\n\n", m.Archetype.Name)
	b.WriteString(m.Archetype.Description)

	if len(m.MatchingValues) > 0 {
		labels := make([]string, 0, len(m.MatchingValues))
		for _, code := range m.MatchingValues {
			labels = append(labels, values.MustValueByCode(code).Label)
		}
		fmt.Fprintf(&b, "\n\nShared values: %s", strings.Join(labels, ", "))
	}
	return b.String()
}
