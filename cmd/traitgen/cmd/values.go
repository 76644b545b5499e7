package cmd

import (
	"io"

	"traitgen/src/values"

	"github.com/spf13/cobra"
)

type valuesReport struct {
	Top        []values.RankedValue    `json:"top" yaml:"top"`
	Bottom     []values.RankedValue    `json:"bottom" yaml:"bottom"`
	Dimensions []values.DimensionScore `json:"dimensions" yaml:"dimensions"`
}

func buildValuesReport(scores values.Scores, top int) valuesReport {
	return valuesReport{
		Top:        values.TopValues(scores, top),
		Bottom:     values.BottomValues(scores, top),
		Dimensions: values.CalculateHigherOrderScores(scores).Ranked(),
	}
}

func (r valuesReport) render(w io.Writer) error {
	section(w, "Most emphasized")
	if err := table(w, valueTable(r.Top)); err != nil {
		return err
	}
	section(w, "Least emphasized")
	if err := table(w, valueTable(r.Bottom)); err != nil {
		return err
	}
	section(w, "Higher-order dimensions")
	return table(w, dimensionTable(r.Dimensions))
}

var valuesCmd = &cobra.Command{
	Use:   "values",
	Short: "Rank basic values and aggregate the four dimensions",
	Long: `List the most and least emphasized basic values and the mean score of each
higher-order dimension. Ties keep catalog order.

Examples:
  traitgen values --scores survey.toml
  traitgen values --score UNC=5.5 --score BEC=5 --top 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scores, err := resolveScores()
		if err != nil {
			return err
		}
		report := buildValuesReport(scores, settings.Profile.Top)
		return emit(cmd.OutOrStdout(), report, report.render)
	},
}

func init() {
	rootCmd.AddCommand(valuesCmd)
}
