// Package narrator turns a score mapping into a plain-text profile
// description and an assistant system prompt. Both are deterministic
// functions of the scores.
package narrator

import (
	"fmt"
	"strings"

	"traitgen/src/values"
)

const summarySize = 3

// Profile bundles both generated artifacts.
type Profile struct {
	Description  string `json:"description" yaml:"description"`
	SystemPrompt string `json:"system_prompt" yaml:"system_prompt"`
}

// Generate returns the description and the system prompt for scores.
func Generate(scores values.Scores) Profile {
	return Profile{
		Description:  Description(scores),
		SystemPrompt: SystemPrompt(scores),
	}
}

// Description assembles a one-paragraph summary of the strongest and weakest
// values, followed by the first detected tension, if any.
func Description(scores values.Scores) string {
	top := values.TopValues(scores, summarySize)
	bottom := values.BottomValues(scores, summarySize)

	var b strings.Builder
	b.WriteString("This profile shows strongest emphasis on ")
	b.WriteString(listWithScores(top))
	b.WriteString(". This suggests someone who ")
	b.WriteString(pick(topClauses, defaultTopClause, codes(top)))
	b.WriteString(".")

	b.WriteString(" Less emphasized are ")
	b.WriteString(listWithScores(bottom))
	b.WriteString(". This indicates ")
	b.WriteString(pick(bottomClauses, defaultBottomClause, codes(bottom)))
	b.WriteString(".")

	if tensions := Tensions(scores); len(tensions) > 0 {
		b.WriteString(" Notable patterns: ")
		b.WriteString(tensions[0].Text)
		b.WriteString(".")
	}

	return b.String()
}

// listWithScores renders "A (1.00), B (2.00), and C (3.00)".
func listWithScores(vs []values.RankedValue) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%s (%.2f)", v.Label, v.Score)
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
}

func codes(vs []values.RankedValue) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Code
	}
	return out
}
