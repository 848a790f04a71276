package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mraflifirmansyah/arcanist/internal/cowfile"
	"github.com/mraflifirmansyah/arcanist/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive cow preview",
	Long:  "Launch a terminal UI that renders the balloon and figure live while you type, with cowfile and face cycling.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cows, err := cowfile.LoadAll()
		if err != nil {
			return err
		}

		return tui.Run(tui.Config{
			Cowfiles: cows,
			Eyes:     viper.GetString("eyes"),
			Tongue:   viper.GetString("tongue"),
		})
	},
}
