package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/engine"
	"github.com/arcanaland/klondike/internal/render"
)

// Session plays one table from a line-based input.
type Session struct {
	table    *engine.Table
	renderer *render.Renderer
	out      io.Writer
}

func NewSession(t *engine.Table, r *render.Renderer, out io.Writer) *Session {
	return &Session{table: t, renderer: r, out: out}
}

// Run reads commands until quit or end of input. Rejected commands are
// reported and play goes on.
func (s *Session) Run(in io.Reader) error {
	s.show()
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, err := Parse(line)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		if cmd.Kind == CmdQuit {
			return nil
		}

		events, err := s.Execute(cmd)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		if cmd.Kind == CmdHelp {
			fmt.Fprintln(s.out, Help)
			continue
		}
		fmt.Fprint(s.out, s.renderer.Events(events))
		s.show()
	}
}

func (s *Session) show() {
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, s.renderer.Table(s.table))
}

// Execute applies cmd to the table and returns what happened. Quit, show and
// help leave the table alone.
func (s *Session) Execute(cmd Command) ([]engine.Event, error) {
	t := s.table

	switch cmd.Kind {
	case CmdDraw:
		return t.ClickStock()
	case CmdNew:
		return t.NewGame(), nil
	case CmdRestart:
		return t.Restart(), nil
	case CmdShow, CmdHelp, CmdQuit:
		return nil, nil
	}

	c, err := s.lookup(cmd.Rank, cmd.Suit)
	if err != nil {
		return nil, err
	}

	switch cmd.Kind {
	case CmdClick:
		events, err := t.ClickCard(c)
		if err == nil && events == nil {
			return nil, fmt.Errorf("nothing happens when you click %s", c)
		}
		return events, err
	case CmdMove:
		p, err := ResolvePile(t, cmd.Pile)
		if err != nil {
			return nil, err
		}
		return s.drop(c, engine.OverPile(p))
	case CmdAuto:
		return s.drop(c, engine.OverAll)
	default:
		return nil, fmt.Errorf("unsupported command")
	}
}

func (s *Session) lookup(rank card.Rank, suit card.Suit) (*card.Card, error) {
	c := s.table.FindCard(rank, suit)
	if c == nil {
		return nil, fmt.Errorf("%s of %s is not on the table", rank, suit)
	}
	return c, nil
}

// drop performs a whole drag gesture. The console has no pointer, so the
// card is released where over says it is.
func (s *Session) drop(c *card.Card, over engine.Overlapper) ([]engine.Event, error) {
	if err := s.table.PressStart(c, 0, 0); err != nil {
		return nil, fmt.Errorf("cannot pick up %s: %w", c, err)
	}
	if err := s.table.DragTo(c, 0, 0); err != nil {
		return nil, err
	}
	return s.table.Release(c, over)
}
