package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/arcanaland/klondike/internal/engine"
	"github.com/arcanaland/klondike/internal/render"
)

// newSession deals the canonical deck: tableau tops AH, 3H, 6H, 10H, 2D, 8D,
// 2S and the King of Clubs on top of the stock.
func newSession(t *testing.T) (*Session, *engine.Table, *bytes.Buffer) {
	t.Helper()
	tbl := engine.NewTable(deck.NewRNG(1), nil)
	tbl.Deal(deck.New())
	r, err := render.New(render.Options{ASCII: true, Width: 80})
	require.NoError(t, err)
	var out bytes.Buffer
	return NewSession(tbl, r, &out), tbl, &out
}

func mustParse(t *testing.T, line string) Command {
	t.Helper()
	cmd, err := Parse(line)
	require.NoError(t, err, "parse %q", line)
	return cmd
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"d", Command{Kind: CmdDraw}},
		{"DRAW", Command{Kind: CmdDraw}},
		{"m qh t3", Command{Kind: CmdMove, Rank: card.Queen, Suit: card.Hearts, Pile: "t3"}},
		{"move 10S F1", Command{Kind: CmdMove, Rank: card.Ten, Suit: card.Spades, Pile: "f1"}},
		{"a 2d", Command{Kind: CmdAuto, Rank: card.Two, Suit: card.Diamonds}},
		{"click kc", Command{Kind: CmdClick, Rank: card.King, Suit: card.Clubs}},
		{"restart", Command{Kind: CmdRestart}},
		{"q", Command{Kind: CmdQuit}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustParse(t, tt.line), tt.line)
	}
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{"", "fly", "m qh", "m zz t1", "a", "d 1", "n now"} {
		_, err := Parse(line)
		assert.Error(t, err, "%q", line)
	}
}

func TestResolvePile(t *testing.T) {
	tbl := engine.NewTable(deck.NewRNG(1), nil)
	tests := map[string]*engine.Pile{
		"s":     tbl.Stock(),
		"stock": tbl.Stock(),
		"w":     tbl.Discard(),
		"f1":    tbl.Foundations()[0],
		"F4":    tbl.Foundations()[3],
		"t1":    tbl.Tableaus()[0],
		"t7":    tbl.Tableaus()[6],
	}
	for name, want := range tests {
		got, err := ResolvePile(tbl, name)
		if assert.NoError(t, err, name) {
			assert.Same(t, want, got, name)
		}
	}

	for _, name := range []string{"f0", "f5", "t8", "t", "x1", "t01", "t1x"} {
		_, err := ResolvePile(tbl, name)
		assert.Error(t, err, name)
	}
}

func TestExecuteMoveToFoundation(t *testing.T) {
	s, tbl, _ := newSession(t)

	events, err := s.Execute(mustParse(t, "m ah f2"))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, engine.EventMove, events[0].Type)
	assert.Equal(t, 1, tbl.Foundations()[1].Len(), "AH should sit on the second foundation")
}

func TestExecuteAutoFindsAPile(t *testing.T) {
	s, tbl, _ := newSession(t)

	_, err := s.Execute(mustParse(t, "a ah"))
	require.NoError(t, err)

	// The red ace also fits on the black two of the last tableau, and
	// tableaus win over foundations.
	top := tbl.Tableaus()[6].TopCard()
	require.NotNil(t, top)
	assert.Equal(t, "AH", top.Code())
	for _, f := range tbl.Foundations() {
		assert.True(t, f.IsEmpty(), "%s should be empty", f.Name)
	}
}

func TestExecuteRejectsFaceDownCard(t *testing.T) {
	s, _, _ := newSession(t)

	_, err := s.Execute(mustParse(t, "m 2h f1"))
	assert.ErrorIs(t, err, engine.ErrNotDraggable)
}

func TestExecuteClick(t *testing.T) {
	s, tbl, _ := newSession(t)

	_, err := s.Execute(mustParse(t, "c qc"))
	assert.Error(t, err, "clicking a buried stock card should report that nothing happens")

	events, err := s.Execute(mustParse(t, "c kc"))
	require.NoError(t, err)
	assert.Equal(t, engine.EventDraw, events[0].Type)
	assert.Equal(t, 1, tbl.Discard().Len())
}

func TestExecuteRestart(t *testing.T) {
	s, tbl, _ := newSession(t)
	_, err := s.Execute(mustParse(t, "d"))
	require.NoError(t, err)
	_, err = s.Execute(mustParse(t, "r"))
	require.NoError(t, err)

	assert.Equal(t, 0, tbl.Discard().Len())
	assert.Equal(t, 24, tbl.Stock().Len())
}

func TestRunPlaysUntilQuit(t *testing.T) {
	s, tbl, out := newSession(t)

	input := strings.NewReader("d\n\nm kc t1\nbogus\nm ah f1\nq\nd\n")
	require.NoError(t, s.Run(input))

	text := out.String()
	for _, want := range []string{
		"Placed King of Clubs to the waste.",
		"King of Clubs cannot go there.",
		`unknown command "bogus"`,
		"Placed Ace of Hearts to the foundation.",
	} {
		assert.Contains(t, text, want)
	}
	// The draw after quit must not run.
	assert.Equal(t, 1, tbl.Discard().Len())
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	s, _, _ := newSession(t)
	assert.NoError(t, s.Run(strings.NewReader("show\n")))
}
