package cmd

import (
	"fmt"
	"io"

	"traitgen/src/narrator"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe the value profile in plain language",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scores, err := resolveScores()
		if err != nil {
			return err
		}
		description := narrator.Description(scores)
		data := map[string]interface{}{
			"description": description,
			"tensions":    narrator.Tensions(scores),
		}
		return emit(cmd.OutOrStdout(), data, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, description)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
