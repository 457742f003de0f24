package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print a dealt table and exit",
	Long: `Deal shuffles a deck, lays out the tableau and stock, and prints the table.
The same seed always produces the same deal, so a seed printed by
'klondike play' can be inspected here.

Examples:
  klondike deal
  klondike deal --seed 1234
  klondike deal --seed 1234 --ascii --no-color
  klondike deal --seed 1234 --order`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		t := s.newTable()

		fmt.Printf("Game %d\n\n", s.seed)
		fmt.Print(s.renderer.Table(t))

		if showOrder, _ := cmd.Flags().GetBool("order"); showOrder {
			ascii, _ := cmd.Flags().GetBool("ascii")
			fmt.Println("\nDealt order, first card first:")
			fmt.Print(formatDeck(t.Order(), ascii))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)
	addSeedFlag(dealCmd)
	dealCmd.Flags().Bool("order", false, "Also list the deck in the order it was dealt")
}
