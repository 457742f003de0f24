package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/arcanaland/klondike/internal/engine"
)

func plainRenderer(t *testing.T, ascii bool) *Renderer {
	t.Helper()
	r, err := New(Options{ASCII: ascii, Width: 80})
	require.NoError(t, err)
	return r
}

func TestCardCells(t *testing.T) {
	r := plainRenderer(t, false)

	queen := card.New(card.Queen, card.Hearts)
	assert.Equal(t, "[###]", r.Card(queen), "face-down card")
	queen.TurnFaceUp()
	assert.Equal(t, "[ Q♥]", r.Card(queen))

	ten := card.New(card.Ten, card.Spades)
	ten.TurnFaceUp()
	assert.Equal(t, "[10♠]", r.Card(ten))
	assert.Equal(t, "[   ]", r.Card(nil), "empty cell")
}

func TestASCIICards(t *testing.T) {
	r := plainRenderer(t, true)
	c := card.New(card.Ace, card.Clubs)
	c.TurnFaceUp()
	assert.Equal(t, "[ AC]", r.Card(c))
}

func TestTableShowsEveryColumn(t *testing.T) {
	tbl := engine.NewTable(deck.NewRNG(1), nil)
	tbl.Deal(deck.New())

	out := plainRenderer(t, true).Table(tbl)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "s [###] 24"), "top row %q", lines[0])
	for i := 1; i <= 7; i++ {
		assert.Contains(t, lines[2], fmt.Sprintf(" t%d", i))
	}
	// Seven rows of tableau cards under the header.
	require.Len(t, lines, 3+7)
	assert.True(t, strings.HasPrefix(lines[3], "[ AH]"), "first tableau row %q", lines[3])
	assert.True(t, strings.HasSuffix(lines[9], "[ 2S]"), "last tableau row %q", lines[9])
}

func TestColorOutputHasSameVisibleWidth(t *testing.T) {
	c := card.New(card.King, card.Diamonds)
	c.TurnFaceUp()

	for _, opts := range []Options{
		{Color: true},
		{Color: true, TrueColor: true, Red: "#ff0000", Black: "#ffffff", Back: "#0000ff"},
	} {
		r, err := New(opts)
		require.NoError(t, err)

		cell := r.Card(c)
		assert.Contains(t, cell, "\x1b[")
		assert.Equal(t, cellWidth, VisibleWidth(cell), "cell %q", cell)
	}
}

func TestNewRejectsBadHex(t *testing.T) {
	_, err := New(Options{Color: true, TrueColor: true, Red: "zzz", Black: "#000000", Back: "#000000"})
	assert.Error(t, err)
}

func TestEventsWrap(t *testing.T) {
	r, err := New(Options{Width: 20})
	require.NoError(t, err)

	out := r.Events([]engine.Event{{Message: "Placed Queen of Hearts to King of Spades."}})
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 20, "line %q", line)
	}
}

func TestWrapTextEmpty(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("", 40))
}
