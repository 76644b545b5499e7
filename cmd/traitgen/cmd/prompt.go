package cmd

import (
	"fmt"
	"io"

	"traitgen/src/archetype"
	"traitgen/src/composer"

	"github.com/spf13/cobra"
)

var (
	withArchetype bool
	barePrompt    bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Compose an assistant system prompt from the scores",
	Long: `Compose a layered system prompt: the value profile, optionally the matched
archetype persona, and a communication style footer unless --bare is set.

Examples:
  traitgen prompt --scores survey.toml > prompt.md
  traitgen prompt --scores survey.toml --with-archetype --category mythological`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scores, err := resolveScores()
		if err != nil {
			return err
		}

		opts := composer.Options{Bare: barePrompt}
		if withArchetype {
			category, err := resolveCategory()
			if err != nil {
				return err
			}
			m, err := archetype.BestMatch(scores, category)
			if err != nil {
				return err
			}
			opts.Archetype = &m
		}

		layers := composer.Layers(scores, opts)
		prompt := composer.Compose(scores, opts)
		data := map[string]interface{}{
			"prompt": prompt,
			"layers": layers,
		}
		return emit(cmd.OutOrStdout(), data, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, prompt)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().BoolVar(&withArchetype, "with-archetype", false, "add the best matching archetype as a persona layer")
	promptCmd.Flags().BoolVar(&barePrompt, "bare", false, "omit the communication style layer")
}
