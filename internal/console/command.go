// Package console maps typed commands onto table gestures.
package console

import (
	"fmt"
	"strings"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/engine"
)

// Kind identifies a console command.
type Kind int

const (
	CmdDraw Kind = iota
	CmdMove
	CmdAuto
	CmdClick
	CmdNew
	CmdRestart
	CmdShow
	CmdHelp
	CmdQuit
)

// Command is one parsed input line.
type Command struct {
	Kind Kind
	Rank card.Rank
	Suit card.Suit
	Pile string
}

var aliases = map[string]Kind{
	"d": CmdDraw, "draw": CmdDraw,
	"m": CmdMove, "move": CmdMove,
	"a": CmdAuto, "auto": CmdAuto,
	"c": CmdClick, "click": CmdClick,
	"n": CmdNew, "new": CmdNew,
	"r": CmdRestart, "restart": CmdRestart,
	"s": CmdShow, "show": CmdShow,
	"h": CmdHelp, "help": CmdHelp, "?": CmdHelp,
	"q": CmdQuit, "quit": CmdQuit, "exit": CmdQuit,
}

// Help lists the commands understood by Parse.
const Help = `Commands:
  d, draw                draw from the stock (refills it when empty)
  m, move <card> <pile>  drag a card and drop it on a pile
  a, auto <card>         drop a card wherever it fits
  c, click <card>        click a card (draws it when it tops the stock)
  n, new                 shuffle and deal a new game
  r, restart             deal the current game again
  s, show                show the table
  h, help                show this help
  q, quit                leave the game
Cards are written rank then suit: AH, 10S, TD, QC.
Piles: s (stock), w (waste), f1-f4 (foundations), t1-t7 (tableaus).`

// Parse reads one command line.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	kind, ok := aliases[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("unknown command %q (try help)", fields[0])
	}
	cmd := Command{Kind: kind}
	args := fields[1:]

	want := 0
	switch kind {
	case CmdMove:
		want = 2
	case CmdAuto, CmdClick:
		want = 1
	}
	if len(args) != want {
		return Command{}, fmt.Errorf("%s takes %d argument(s), got %d", fields[0], want, len(args))
	}

	if want > 0 {
		rank, suit, err := card.Parse(args[0])
		if err != nil {
			return Command{}, err
		}
		cmd.Rank, cmd.Suit = rank, suit
	}
	if want > 1 {
		cmd.Pile = strings.ToLower(args[1])
	}
	return cmd, nil
}

// ResolvePile finds a pile by its console name.
func ResolvePile(t *engine.Table, name string) (*engine.Pile, error) {
	switch name = strings.ToLower(name); name {
	case "s", "stock":
		return t.Stock(), nil
	case "w", "waste", "discard":
		return t.Discard(), nil
	}

	var n int
	if len(name) >= 2 {
		if _, err := fmt.Sscanf(name[1:], "%d", &n); err == nil && fmt.Sprint(n) == name[1:] {
			switch {
			case name[0] == 'f' && n >= 1 && n <= engine.NumFoundations:
				return t.Foundations()[n-1], nil
			case name[0] == 't' && n >= 1 && n <= engine.NumTableaus:
				return t.Tableaus()[n-1], nil
			}
		}
	}
	return nil, fmt.Errorf("unknown pile %q", name)
}
