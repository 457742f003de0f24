package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of Klondike",
	Long: `Play deals a game and reads moves from standard input.

Examples:
  klondike play
  klondike play --seed 1234
  echo "d" | klondike play --seed 1234 --no-color`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Game %d. Type help for commands.\n", s.seed)

		session := console.NewSession(s.newTable(), s.renderer, os.Stdout)
		if err := session.Run(os.Stdin); err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
	addSeedFlag(playCmd)
}
