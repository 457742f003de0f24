// Package render draws a Klondike table for the terminal.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/engine"
)

// Options selects the palette and glyphs.
type Options struct {
	Color     bool
	TrueColor bool
	ASCII     bool
	Red       string // hex colours, used with TrueColor
	Black     string
	Back      string
	Width     int // terminal width, 0 for unknown
}

// Renderer turns piles and events into terminal text.
type Renderer struct {
	opts Options

	red   func(string) string
	black func(string) string
	back  func(string) string
	label func(string) string
	win   func(string) string
}

func New(opts Options) (*Renderer, error) {
	r := &Renderer{opts: opts}

	plain := func(s string) string { return s }
	r.red, r.black, r.back, r.label, r.win = plain, plain, plain, plain, plain
	if !opts.Color {
		return r, nil
	}

	r.label = sprint(colorize.New(colorize.FgCyan))
	r.win = sprint(colorize.New(colorize.FgHiGreen, colorize.Bold))

	if !opts.TrueColor {
		r.red = sprint(colorize.New(colorize.FgRed, colorize.Bold))
		r.black = sprint(colorize.New(colorize.FgHiWhite, colorize.Bold))
		r.back = sprint(colorize.New(colorize.FgBlue))
		return r, nil
	}

	var err error
	if r.red, err = trueColor(opts.Red); err != nil {
		return nil, err
	}
	if r.black, err = trueColor(opts.Black); err != nil {
		return nil, err
	}
	if r.back, err = trueColor(opts.Back); err != nil {
		return nil, err
	}
	return r, nil
}

// sprint forces colour on: the caller already decided the output is a
// terminal.
func sprint(c *colorize.Color) func(string) string {
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}

// trueColor returns a 24-bit foreground painter for a hex colour.
func trueColor(hex string) (func(string) string, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	r, g, b := col.RGB255()
	return func(s string) string {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
	}, nil
}

const cellWidth = 5

// Card renders one card as a five-column cell, e.g. "[ Q♥]".
func (r *Renderer) Card(c *card.Card) string {
	if c == nil {
		return "[   ]"
	}
	if c.IsFaceDown() {
		return r.back("[###]")
	}

	suit := c.Suit().Symbol()
	if r.opts.ASCII {
		suit = c.Suit().Code()
	}
	face := fmt.Sprintf("[%2s%s]", c.Rank().Code(), suit)
	if c.Color() == card.Red {
		return r.red(face)
	}
	return r.black(face)
}

// Table renders the whole layout: stock, discard and foundations on top,
// tableau columns below.
func (r *Renderer) Table(t *engine.Table) string {
	var b strings.Builder
	gap := "  "
	if r.opts.Width > 0 && r.opts.Width < engine.NumTableaus*(cellWidth+len(gap))+2 {
		gap = " "
	}

	stock := t.Stock()
	stockCell := "[   ]"
	if !stock.IsEmpty() {
		stockCell = r.back("[###]")
	}
	fmt.Fprintf(&b, "%s %s %-3d%s%s %s%s",
		r.label("s"), stockCell, stock.Len(), gap,
		r.label("w"), r.Card(t.Discard().TopCard()), gap)
	for i, f := range t.Foundations() {
		fmt.Fprintf(&b, "%s%s %s", gap, r.label(fmt.Sprintf("f%d", i+1)), r.Card(f.TopCard()))
	}
	b.WriteString("\n\n")

	tableaus := t.Tableaus()
	for i := range tableaus {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(r.label(padRight(fmt.Sprintf(" t%d", i+1), cellWidth)))
	}
	b.WriteString("\n")

	height := 0
	for _, p := range tableaus {
		height = max(height, p.Len())
	}
	for row := 0; row < max(height, 1); row++ {
		for i, p := range tableaus {
			if i > 0 {
				b.WriteString(gap)
			}
			cards := p.Cards()
			switch {
			case row < len(cards):
				b.WriteString(r.Card(cards[row]))
			case row == 0:
				b.WriteString("[   ]")
			default:
				b.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
		b.WriteString("\n")
	}

	if t.Phase() == engine.PhaseWon {
		b.WriteString("\n" + r.win("All four foundations are complete.") + "\n")
	}
	return b.String()
}

// Events renders the status lines for events, wrapped to the terminal width.
func (r *Renderer) Events(events []engine.Event) string {
	var b strings.Builder
	for _, ev := range events {
		msg := ev.Message
		if ev.Type == engine.EventWon {
			msg = r.win(msg)
			b.WriteString(msg + "\n")
			continue
		}
		for _, line := range wrapText(msg, r.opts.Width) {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// VisibleWidth returns the printed width of s, ignoring ANSI escapes.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

func padRight(s string, width int) string {
	if w := VisibleWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 80
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
