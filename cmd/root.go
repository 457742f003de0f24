package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "klondike",
	Short: "Klondike solitaire in the terminal",
	Long: `Klondike is single-player solitaire for the terminal.
Build the four foundations up by suit from Ace to King, moving cards between
seven tableau piles that build down in alternating colours.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
	RootCmd.PersistentFlags().Bool("ascii", false, "Use letters instead of suit symbols")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
