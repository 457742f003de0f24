package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/klondike/internal/card"
)

func faceUp(rank card.Rank, suit card.Suit) *card.Card {
	c := card.New(rank, suit)
	c.TurnFaceUp()
	return c
}

func pileWith(typ PileType, cards ...*card.Card) *Pile {
	p := newPile(0, typ, typ.String(), 0)
	p.AddCards(cards)
	return p
}

func TestEmptyFoundationAcceptsOnlyAces(t *testing.T) {
	for r := card.Ace; r <= card.King; r++ {
		got := IsMoveValid(faceUp(r, card.Spades), pileWith(Foundation))
		assert.Equal(t, r == card.Ace, got, "%s onto empty foundation", r)
	}
}

func TestEmptyTableauAcceptsOnlyKings(t *testing.T) {
	for r := card.Ace; r <= card.King; r++ {
		got := IsMoveValid(faceUp(r, card.Hearts), pileWith(Tableau))
		assert.Equal(t, r == card.King, got, "%s onto empty tableau", r)
	}
}

func TestStockAndDiscardNeverAcceptDrops(t *testing.T) {
	for _, typ := range []PileType{Stock, Discard} {
		assert.False(t, IsMoveValid(faceUp(card.Ace, card.Hearts), pileWith(typ)),
			"empty %s accepted an ace", typ)
		assert.False(t, IsMoveValid(faceUp(card.Two, card.Hearts), pileWith(typ, faceUp(card.Ace, card.Hearts))),
			"%s accepted a two on its ace", typ)
	}
}

func TestFoundationBuildsUpInSuit(t *testing.T) {
	dest := pileWith(Foundation, faceUp(card.Ace, card.Clubs))

	assert.True(t, IsMoveValid(faceUp(card.Two, card.Clubs), dest), "two of clubs on ace of clubs")
	assert.False(t, IsMoveValid(faceUp(card.Two, card.Spades), dest), "two of spades on ace of clubs")
	assert.False(t, IsMoveValid(faceUp(card.Three, card.Clubs), dest), "three of clubs on ace of clubs")
}

func TestTableauBuildsDownInAlternatingColors(t *testing.T) {
	redSeven := pileWith(Tableau, faceUp(card.Seven, card.Diamonds))
	blackSeven := pileWith(Tableau, faceUp(card.Seven, card.Clubs))
	redFive := pileWith(Tableau, faceUp(card.Five, card.Hearts))
	sixOfSpades := faceUp(card.Six, card.Spades)

	assert.True(t, IsMoveValid(sixOfSpades, redSeven), "black six on red seven")
	assert.False(t, IsMoveValid(sixOfSpades, blackSeven), "black six on black seven")
	assert.False(t, IsMoveValid(sixOfSpades, redFive), "black six on red five")
	assert.True(t, IsMoveValid(faceUp(card.Six, card.Hearts), blackSeven), "red six on black seven")
}

// Hearts and Diamonds are both red, so they never stack on each other.
func TestTableauRejectsSameColorOtherSuit(t *testing.T) {
	assert.False(t, IsMoveValid(faceUp(card.Six, card.Hearts), pileWith(Tableau, faceUp(card.Seven, card.Diamonds))))
	assert.False(t, IsMoveValid(faceUp(card.Six, card.Clubs), pileWith(Tableau, faceUp(card.Seven, card.Spades))))
}
