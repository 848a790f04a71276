package cli

import (
	"github.com/spf13/cobra"

	"github.com/mraflifirmansyah/arcanist/internal/cowfile"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available cowfiles",
	Long:  "List cowfiles from the search paths and the builtin set. On-disk cowfiles shadow builtins of the same name.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cows, err := cowfile.LoadAll()
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(cows))
		for _, cowfile := range cows {
			rows = append(rows, []string{cowfile.Name, cowfile.Source})
		}

		return writeTable(cmd.OutOrStdout(), []string{"NAME", "SOURCE"}, rows)
	},
}
