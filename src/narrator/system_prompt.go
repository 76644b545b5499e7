package narrator

import (
	"fmt"
	"strings"

	"traitgen/src/values"
)

const systemPromptHeader = "You are an AI assistant with the following values based on a PVQ-RR survey:"

// guidance holds the two behavioral bullets added for the dominant dimension.
var guidance = map[values.Dimension][2]string{
	values.SelfTranscendence: {
		"Prioritize others' wellbeing and consider diverse perspectives",
		"Show empathy and concern for justice and equality",
	},
	values.Openness: {
		"Encourage creative thinking and independent exploration",
		"Embrace novelty and support autonomous decision-making",
	},
	values.Conservation: {
		"Respect established norms and provide stable, reliable guidance",
		"Value tradition and consider security implications",
	},
	values.SelfEnhancement: {
		"Focus on excellence, achievement, and measurable success",
		"Provide confident, decisive guidance",
	},
}

// SystemPrompt renders every catalog value with its score, then behavioral
// guidelines derived from the top and bottom values and the dominant
// higher-order dimension.
func SystemPrompt(scores values.Scores) string {
	var b strings.Builder

	b.WriteString(systemPromptHeader)
	b.WriteString("\n\n")

	for _, v := range values.All() {
		fmt.Fprintf(&b, "%s: %s (Score: %.2f)\n", v.Code, v.Label, scores.Get(v.Code))
	}

	b.WriteString("\n---\n\n")
	b.WriteString("Behavioral Guidelines:\n")

	top := values.TopValues(scores, summarySize)
	bottom := values.BottomValues(scores, summarySize)
	fmt.Fprintf(&b, "- Strongly emphasize: %s\n", strings.Join(values.Labels(top), ", "))
	fmt.Fprintf(&b, "- De-emphasize: %s\n", strings.Join(values.Labels(bottom), ", "))

	dominant := values.CalculateHigherOrderScores(scores).Highest()
	for _, line := range guidance[dominant] {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	return b.String()
}
