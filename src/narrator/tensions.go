package narrator

import (
	"traitgen/src/values"
)

const (
	dimensionTensionThreshold = 4.0
	valueTensionThreshold     = 4.5
)

// Tension is a pair of usually opposed motivations that both score high.
type Tension struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

type tensionCheck struct {
	name  string
	text  string
	check func(scores values.Scores, ho values.HigherOrderScores) bool
}

// tensionChecks run in this order; the description reports only the first hit.
var tensionChecks = []tensionCheck{
	{
		name: "enhancement-transcendence",
		text: "high Power values alongside high Benevolence, suggesting a complex leader who seeks influence to help others",
		check: func(_ values.Scores, ho values.HigherOrderScores) bool {
			return ho.Get(values.SelfEnhancement) > dimensionTensionThreshold &&
				ho.Get(values.SelfTranscendence) > dimensionTensionThreshold
		},
	},
	{
		name: "openness-conservation",
		text: "strong Openness combined with Conservation values, indicating someone who innovates within established frameworks",
		check: func(_ values.Scores, ho values.HigherOrderScores) bool {
			return ho.Get(values.Openness) > dimensionTensionThreshold &&
				ho.Get(values.Conservation) > dimensionTensionThreshold
		},
	},
	{
		name: "dominance-caring",
		text: "unusually high Power-dominance paired with Benevolence-caring, suggesting protective or parental leadership",
		check: func(scores values.Scores, _ values.HigherOrderScores) bool {
			return scores.Get("POD") > valueTensionThreshold && scores.Get("BEC") > valueTensionThreshold
		},
	},
	{
		name: "action-rules",
		text: "valuing both independent action and rule-following, potentially indicating selective conformity",
		check: func(scores values.Scores, _ values.HigherOrderScores) bool {
			return scores.Get("SDA") > valueTensionThreshold && scores.Get("COR") > valueTensionThreshold
		},
	},
}

// Tensions returns every detected tension in check order.
func Tensions(scores values.Scores) []Tension {
	ho := values.CalculateHigherOrderScores(scores)
	var found []Tension
	for _, tc := range tensionChecks {
		if tc.check(scores, ho) {
			found = append(found, Tension{Name: tc.name, Text: tc.text})
		}
	}
	return found
}
