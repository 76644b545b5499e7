package cmd

import (
	"fmt"
	"io"

	"traitgen/src/archetype"
	"traitgen/src/narrator"
	"traitgen/src/values"

	"github.com/spf13/cobra"
)

type profileReport struct {
	// Scores holds every catalog code, defaults filled in.
	Scores values.Scores `json:"scores" yaml:"scores"`

	valuesReport `yaml:",inline"`
	Archetype    matchView          `json:"archetype" yaml:"archetype"`
	Description  string             `json:"description" yaml:"description"`
	Tensions     []narrator.Tension `json:"tensions" yaml:"tensions"`
	SystemPrompt string             `json:"system_prompt" yaml:"system_prompt"`
}

func buildProfileReport(scores values.Scores, category archetype.Category, top int) (profileReport, error) {
	m, err := archetype.BestMatch(scores, category)
	if err != nil {
		return profileReport{}, err
	}
	p := narrator.Generate(scores)
	return profileReport{
		Scores:       scores.Resolved(),
		valuesReport: buildValuesReport(scores, top),
		Archetype:    newMatchView(m),
		Description:  p.Description,
		Tensions:     narrator.Tensions(scores),
		SystemPrompt: p.SystemPrompt,
	}, nil
}

func (r profileReport) render(w io.Writer) error {
	if err := r.valuesReport.render(w); err != nil {
		return err
	}
	if err := renderMatch(w, r.Archetype); err != nil {
		return err
	}
	section(w, "Description")
	fmt.Fprintln(w, r.Description)
	section(w, "System prompt")
	fmt.Fprint(w, r.SystemPrompt)
	return nil
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the full report: values, archetype, description and prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scores, err := resolveScores()
		if err != nil {
			return err
		}
		category, err := resolveCategory()
		if err != nil {
			return err
		}
		report, err := buildProfileReport(scores, category, settings.Profile.Top)
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), report, report.render)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
