package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/klondike/internal/card"
)

func TestNewCardStartsFaceDownWithoutPile(t *testing.T) {
	c := card.New(card.Queen, card.Hearts)
	require.True(t, c.IsFaceDown(), "new card should be face-down")

	_, ok := c.Pile()
	require.False(t, ok, "new card should not belong to a pile")

	assert.Equal(t, "Queen of Hearts", c.String())
	assert.Equal(t, "QH", c.Code())
}

func TestFlipToggles(t *testing.T) {
	c := card.New(card.Ace, card.Spades)
	c.Flip()
	require.True(t, c.IsFaceUp(), "expected face-up after one flip")
	c.Flip()
	assert.True(t, c.IsFaceDown(), "expected face-down after two flips")
}

func TestSuitColors(t *testing.T) {
	tests := map[card.Suit]card.Color{
		card.Hearts:   card.Red,
		card.Diamonds: card.Red,
		card.Spades:   card.Black,
		card.Clubs:    card.Black,
	}
	for s, want := range tests {
		assert.Equal(t, want, s.Color(), s.String())
	}
}

func TestNewPanicsOnInvalidRank(t *testing.T) {
	assert.Panics(t, func() { card.New(14, card.Clubs) })
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		rank card.Rank
		suit card.Suit
	}{
		{"qh", card.Queen, card.Hearts},
		{"10s", card.Ten, card.Spades},
		{"TS", card.Ten, card.Spades},
		{"AC", card.Ace, card.Clubs},
		{" 7d ", card.Seven, card.Diamonds},
		{"KD", card.King, card.Diamonds},
	}
	for _, tt := range tests {
		rank, suit, err := card.Parse(tt.in)
		if !assert.NoError(t, err, tt.in) {
			continue
		}
		assert.Equal(t, tt.rank, rank, tt.in)
		assert.Equal(t, tt.suit, suit, tt.in)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "Q", "QX", "11H", "0S", "ZZ"} {
		_, _, err := card.Parse(in)
		assert.Error(t, err, "%q", in)
	}
}
