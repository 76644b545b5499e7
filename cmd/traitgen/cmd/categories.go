package cmd

import (
	"io"
	"strconv"

	"traitgen/src/archetype"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type categoryView struct {
	archetype.CategoryInfo `yaml:",inline"`
	Archetypes             []string `json:"archetypes" yaml:"archetypes"`
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List archetype categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var views []categoryView
		for _, ci := range archetype.Categories() {
			v := categoryView{CategoryInfo: ci}
			for _, a := range archetype.InCategory(ci.Value) {
				v.Archetypes = append(v.Archetypes, a.Name)
			}
			views = append(views, v)
		}

		return emit(cmd.OutOrStdout(), views, func(w io.Writer) error {
			data := pterm.TableData{{"Category", "Label", "Description", "Archetypes"}}
			for _, v := range views {
				data = append(data, []string{string(v.Value), v.Label, v.Description, strconv.Itoa(len(v.Archetypes))})
			}
			return table(w, data)
		})
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
