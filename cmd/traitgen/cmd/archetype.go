package cmd

import (
	"fmt"
	"io"
	"strconv"

	"traitgen/src/archetype"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var showAllArchetypes bool

func renderMatch(w io.Writer, m matchView) error {
	section(w, fmt.Sprintf("%s (%s)", m.Name, m.Category))
	fmt.Fprintln(w, m.Description)
	fmt.Fprintf(w, "\nMatch score: %d\n", m.Score)
	if len(m.MatchingValues) > 0 {
		fmt.Fprintf(w, "Shared values: %s\n", valueLabels(m.MatchingValues))
	}
	return nil
}

func renderRanking(w io.Writer, ms []matchView) error {
	data := pterm.TableData{{"#", "Archetype", "Score", "Shared values"}}
	for i, m := range ms {
		data = append(data, []string{strconv.Itoa(i + 1), m.Name, strconv.Itoa(m.Score), valueLabels(m.MatchingValues)})
	}
	return table(w, data)
}

var archetypeCmd = &cobra.Command{
	Use:   "archetype",
	Short: "Find the archetype that best matches the scores",
	Long: `Score every archetype of the selected category and print the best match
with the basic values that drove it. With --all, print the whole ranking.

Examples:
  traitgen archetype --scores survey.yaml --category historical
  traitgen archetype --scores survey.yaml --all -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scores, err := resolveScores()
		if err != nil {
			return err
		}
		category, err := resolveCategory()
		if err != nil {
			return err
		}

		if !showAllArchetypes {
			m, err := archetype.BestMatch(scores, category)
			if err != nil {
				return err
			}
			view := newMatchView(m)
			return emit(cmd.OutOrStdout(), view, func(w io.Writer) error {
				return renderMatch(w, view)
			})
		}

		matches, err := archetype.Rank(scores, category)
		if err != nil {
			return err
		}
		views := make([]matchView, len(matches))
		for i, m := range matches {
			views[i] = newMatchView(m)
		}
		return emit(cmd.OutOrStdout(), views, func(w io.Writer) error {
			return renderRanking(w, views)
		})
	},
}

func init() {
	rootCmd.AddCommand(archetypeCmd)
	archetypeCmd.Flags().BoolVar(&showAllArchetypes, "all", false, "rank every archetype of the category")
}
