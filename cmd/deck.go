package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the 52-card deck",
	Long:  `Commands for inspecting the deck used to deal games.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the deck in canonical or shuffled order",
	Long: `List prints every card of the deck, thirteen to a line.
Without --seed the canonical suit-major order is shown. With --seed the
order is the one 'klondike deal --seed' lays out, bottom card first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cards := deck.New()
		if cmd.Flags().Changed("seed") {
			seed, err := cmd.Flags().GetUint64("seed")
			if err != nil {
				return err
			}
			cards = deck.NewShuffled(seed)
		}

		ascii, _ := cmd.Flags().GetBool("ascii")
		fmt.Print(formatDeck(cards, ascii))
		return nil
	},
}

// formatDeck lays cards out in rows of thirteen.
func formatDeck(cards []*card.Card, ascii bool) string {
	var b strings.Builder
	for i, c := range cards {
		code := c.Code()
		if !ascii {
			code = c.Rank().Code() + c.Suit().Symbol()
		}
		b.WriteString(fmt.Sprintf("%3s", code))
		if (i+1)%13 == 0 || i == len(cards)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckListCmd.Flags().Uint64("seed", 0, "Show the shuffled order for this seed")
}
