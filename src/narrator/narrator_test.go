package narrator

import (
	"regexp"
	"strings"
	"testing"

	"traitgen/src/values"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// protectiveScores has a universalism-led top three and POD, BEC above 4.5
// while keeping both dimension-level tensions below threshold.
func protectiveScores() values.Scores {
	return values.Scores{
		"UNC": 6.0,
		"UNT": 5.9,
		"UNN": 5.8,
		"BEC": 4.8,
		"POD": 4.7,
	}
}

func TestDescriptionProtectiveLeadership(t *testing.T) {
	t.Parallel()

	want := "This profile shows strongest emphasis on Universalism Concern (6.00), " +
		"Universalism Tolerance (5.90), and Universalism Nature (5.80). " +
		"This suggests someone who prioritizes universal welfare and embraces diverse perspectives. " +
		"Less emphasized are Self-Direction Thought (3.50), Self-Direction Action (3.50), and Stimulation (3.50). " +
		"This indicates a more measured approach to pleasure-seeking and novelty. " +
		"Notable patterns: unusually high Power-dominance paired with Benevolence-caring, " +
		"suggesting protective or parental leadership."

	got := Description(protectiveScores())
	assert.Equal(t, want, got)
	assert.Equal(t, 1, strings.Count(got, "Notable patterns:"))
}

func TestDescriptionWithoutTension(t *testing.T) {
	t.Parallel()

	got := Description(values.Scores{"ACM": 5.5, "SES": 5.0, "TRD": 4.8, "HED": 1.5, "STI": 1.8, "UNN": 2.0})
	assert.Contains(t, got, "Achievement (5.50), Security Societal (5.00), and Tradition (4.80)")
	assert.Contains(t, got, "is driven by achievement and the desire to excel")
	assert.Contains(t, got, "Hedonism (1.50), Stimulation (1.80), and Universalism Nature (2.00)")
	assert.Contains(t, got, "a more measured approach to pleasure-seeking and novelty")
	assert.NotContains(t, got, "Notable patterns")
	assert.NotContains(t, got, "*")
	assert.NotContains(t, got, "\n")
}

func TestDescriptionReportsFirstTensionOnly(t *testing.T) {
	t.Parallel()

	scores := values.Scores{}
	for _, code := range values.Codes() {
		scores[code] = 5.0
	}

	tensions := Tensions(scores)
	require.Len(t, tensions, 4)
	assert.Equal(t, []string{
		"enhancement-transcendence", "openness-conservation", "dominance-caring", "action-rules",
	}, []string{tensions[0].Name, tensions[1].Name, tensions[2].Name, tensions[3].Name})

	got := Description(scores)
	assert.True(t, strings.HasSuffix(got, "Notable patterns: "+tensions[0].Text+"."))
	for _, other := range tensions[1:] {
		assert.NotContains(t, got, other.Text)
	}
}

func TestTensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scores values.Scores
		want   []string
	}{
		{name: "none", scores: values.Scores{}, want: nil},
		{name: "protective", scores: protectiveScores(), want: []string{"dominance-caring"}},
		{name: "action and rules", scores: values.Scores{"SDA": 4.6, "COR": 4.9}, want: []string{"action-rules"}},
		{name: "threshold is exclusive", scores: values.Scores{"SDA": 4.5, "COR": 4.5, "POD": 4.5, "BEC": 6.0}, want: nil},
		{
			name: "openness with conservation",
			scores: values.Scores{
				"SDT": 5, "SDA": 5, "STI": 5, "HED": 5,
				"SEP": 5, "SES": 5, "TRD": 5, "COR": 4.2, "COI": 5,
			},
			want: []string{"openness-conservation"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got []string
			for _, tn := range Tensions(tt.scores) {
				got = append(got, tn.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClausePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		list     []clause
		fallback string
		codes    []string
		expect   string
	}{
		{"universalism beats benevolence", topClauses, defaultTopClause, []string{"BEC", "UNN", "SDT"}, "prioritizes universal welfare"},
		{"benevolence beats autonomy", topClauses, defaultTopClause, []string{"SDT", "BED", "ACM"}, "close relationships"},
		{"security last", topClauses, defaultTopClause, []string{"SEP", "HED", "FAC"}, "safety, stability"},
		{"top default", topClauses, defaultTopClause, []string{"HED", "STI", "FAC"}, "distinctive combination"},
		{"power first", bottomClauses, defaultBottomClause, []string{"HUM", "HED", "POR"}, "accumulating power"},
		{"tradition before face", bottomClauses, defaultBottomClause, []string{"FAC", "COR", "UNN"}, "traditional expectations"},
		{"bottom default", bottomClauses, defaultBottomClause, []string{"UNC", "BEC", "SES"}, "less motivational emphasis"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, pick(tt.list, tt.fallback, tt.codes), tt.expect)
		})
	}
}

var valueLine = regexp.MustCompile(`^[A-Z]{3}: [A-Za-z -]+ \(Score: \d+\.\d{2}\)$`)

func TestSystemPromptSparseInput(t *testing.T) {
	t.Parallel()

	prompt := SystemPrompt(values.Scores{"BEC": 5.25})

	var lines []string
	for _, line := range strings.Split(prompt, "\n") {
		if valueLine.MatchString(line) {
			lines = append(lines, line)
		}
	}
	require.Len(t, lines, values.Count())
	for i, v := range values.All() {
		assert.True(t, strings.HasPrefix(lines[i], v.Code+": "+v.Label+" "), lines[i])
	}
	assert.Contains(t, prompt, "BEC: Benevolence Caring (Score: 5.25)\n")
	assert.Contains(t, prompt, "UNC: Universalism Concern (Score: 3.50)\n")
	assert.Equal(t, values.Count()-1, strings.Count(prompt, "(Score: 3.50)"))
}

func TestSystemPromptLayout(t *testing.T) {
	t.Parallel()

	prompt := SystemPrompt(values.Scores{})
	sections := strings.SplitN(prompt, "\n---\n\n", 2)
	require.Len(t, sections, 2)

	assert.True(t, strings.HasPrefix(sections[0], systemPromptHeader+"\n\nSDT: Self-Direction Thought (Score: 3.50)\n"))
	assert.Equal(t, "Behavioral Guidelines:\n"+
		"- Strongly emphasize: Self-Direction Thought, Self-Direction Action, Stimulation\n"+
		"- De-emphasize: Self-Direction Thought, Self-Direction Action, Stimulation\n"+
		"- Prioritize others' wellbeing and consider diverse perspectives\n"+
		"- Show empathy and concern for justice and equality\n", sections[1])
}

func TestSystemPromptGuidanceByDominantDimension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scores values.Scores
		want   string
	}{
		{"self-transcendence", values.Scores{"BEC": 6, "UNC": 6}, "- Show empathy and concern for justice and equality\n"},
		{"openness", values.Scores{"STI": 6, "SDA": 6}, "- Embrace novelty and support autonomous decision-making\n"},
		{"conservation", values.Scores{"TRD": 6, "SEP": 6}, "- Value tradition and consider security implications\n"},
		{"self-enhancement", values.Scores{"POD": 6, "ACM": 6}, "- Provide confident, decisive guidance\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			prompt := SystemPrompt(tt.scores)
			assert.True(t, strings.HasSuffix(prompt, tt.want), prompt)
			// emphasize, de-emphasize, then exactly one guidance pair
			bullets := strings.Count(prompt[strings.Index(prompt, "Behavioral Guidelines:"):], "\n- ")
			assert.Equal(t, 4, bullets)
		})
	}
}

func TestGenerateMatchesIndependentCalls(t *testing.T) {
	t.Parallel()

	scores := protectiveScores()
	p := Generate(scores)
	assert.Equal(t, Description(scores), p.Description)
	assert.Equal(t, SystemPrompt(scores), p.SystemPrompt)

	again := Generate(scores)
	assert.Equal(t, p, again)
}
