package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of traitgen",
	Args:  cobra.NoArgs,
	// No settings are needed to print the version.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "traitgen v%s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
