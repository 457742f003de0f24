package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/console"
	"github.com/arcanaland/klondike/internal/engine"
	"github.com/arcanaland/klondike/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [commands...]",
	Short: "Replay console commands and audit the resulting table",
	Long: `Validate deals a game, replays each argument as a console command, then
checks that the table still holds a legal Klondike position: every card once,
face-down cards only where they belong, foundations and tableau runs in order.

Rejected moves are listed as warnings, like they would be reported in play.

Examples:
  klondike validate --seed 1234
  klondike validate --seed 1234 d "m kc t1" "a ah"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		t := s.newTable()
		rejected, err := replay(t, args)
		if err != nil {
			return err
		}

		// Create validator and run validation
		v := validator.NewValidator(t)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		results.Warnings = append(rejected, results.Warnings...)

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Game %d is in a valid position after %d command(s).\n", s.seed, len(args))
		} else {
			fmt.Printf("❌ Game %d has %d validation errors:\n", s.seed, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

// replay runs each line against t. Lines that do not parse abort the replay;
// gestures the table refuses or slides back are returned as warnings.
func replay(t *engine.Table, lines []string) ([]string, error) {
	session := console.NewSession(t, nil, nil)

	var rejected []string
	for i, line := range lines {
		c, err := console.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
		if c.Kind == console.CmdQuit {
			break
		}

		events, err := session.Execute(c)
		if err != nil {
			rejected = append(rejected, fmt.Sprintf("command %d (%q): %v", i+1, line, err))
			continue
		}
		for _, e := range events {
			if e.Type == engine.EventSlideBack {
				rejected = append(rejected, fmt.Sprintf("command %d (%q): %s", i+1, line, e.Message))
			}
		}
	}
	return rejected, nil
}

func init() {
	addSeedFlag(validateCmd)
}
