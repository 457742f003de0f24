package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/klondike/internal/config"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/arcanaland/klondike/internal/engine"
	"github.com/arcanaland/klondike/internal/render"
)

// settings is what every game command needs once flags and config are read.
type settings struct {
	cfg      *config.Config
	logger   *slog.Logger
	renderer *render.Renderer
	seed     uint64
}

func addSeedFlag(cmd *cobra.Command) {
	cmd.Flags().Uint64("seed", 0, "Deal the game identified by this seed (default: config or random)")
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))

	seed, err := resolveSeed(cmd, cfg)
	if err != nil {
		return nil, err
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	ascii, _ := cmd.Flags().GetBool("ascii")

	fd := int(os.Stdout.Fd())
	isTTY := term.IsTerminal(fd)

	// Get terminal width
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	renderer, err := render.New(render.Options{
		Color:     cfg.Display.Color && !noColor && isTTY,
		TrueColor: cfg.Display.TrueColor,
		ASCII:     ascii || cfg.Display.Symbols == "ascii",
		Red:       cfg.Display.Red,
		Black:     cfg.Display.Black,
		Back:      cfg.Display.Back,
		Width:     width,
	})
	if err != nil {
		return nil, err
	}

	return &settings{cfg: cfg, logger: logger, renderer: renderer, seed: seed}, nil
}

// resolveSeed prefers the --seed flag, then the configured seed, then a
// random one.
func resolveSeed(cmd *cobra.Command, cfg *config.Config) (uint64, error) {
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		return cmd.Flags().GetUint64("seed")
	}
	if cfg.Game.Seed != 0 {
		return cfg.Game.Seed, nil
	}
	return deck.NewSeed()
}

// newTable deals the first game for s.seed.
func (s *settings) newTable() *engine.Table {
	t := engine.NewTable(deck.NewRNG(s.seed), s.logger)
	t.NewGame()
	return t
}
