package engine

import (
	"github.com/arcanaland/klondike/internal/card"
)

// PileType decides how a pile accepts and gives up cards.
type PileType int

const (
	Stock PileType = iota
	Discard
	Foundation
	Tableau
)

var pileTypeNames = map[PileType]string{
	Stock:      "Stock",
	Discard:    "Discard",
	Foundation: "Foundation",
	Tableau:    "Tableau",
}

func (t PileType) String() string {
	if s, ok := pileTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// Display offsets between stacked cards, as laid out by the original table.
const (
	StockGap      = 1
	FoundationGap = 0
	TableauGap    = 30
)

// Pile is an ordered stack of cards, bottom first.
type Pile struct {
	ID     int
	Type   PileType
	Name   string
	Offset float64

	cards []*card.Card
}

func newPile(id int, typ PileType, name string, offset float64) *Pile {
	return &Pile{ID: id, Type: typ, Name: name, Offset: offset}
}

// AddCard puts c on top of the pile and makes the pile its owner.
func (p *Pile) AddCard(c *card.Card) {
	p.cards = append(p.cards, c)
	c.SetPile(p.ID)
}

// AddCards puts cards on top of the pile in the given order.
func (p *Pile) AddCards(cards []*card.Card) {
	for _, c := range cards {
		p.AddCard(c)
	}
}

// TopCard returns the last card, or nil for an empty pile.
func (p *Pile) TopCard() *card.Card {
	if len(p.cards) == 0 {
		return nil
	}
	return p.cards[len(p.cards)-1]
}

// Clear empties the pile. The cards are kept intact but no longer owned.
func (p *Pile) Clear() {
	for _, c := range p.cards {
		c.SetPile(card.NoPile)
	}
	p.cards = nil
}

func (p *Pile) IsEmpty() bool { return len(p.cards) == 0 }

func (p *Pile) Len() int { return len(p.cards) }

// Cards returns a copy of the pile contents, bottom first.
func (p *Pile) Cards() []*card.Card {
	out := make([]*card.Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// Contains reports whether c refers to this pile as its home.
func (p *Pile) Contains(c *card.Card) bool {
	id, ok := c.Pile()
	return ok && id == p.ID
}

// remove takes c out of the pile. On a tableau, a face-down card left on top
// is turned up and returned.
func (p *Pile) remove(c *card.Card) (revealed *card.Card) {
	for i, pc := range p.cards {
		if pc != c {
			continue
		}
		p.cards = append(p.cards[:i], p.cards[i+1:]...)
		c.SetPile(card.NoPile)
		break
	}

	if p.Type != Tableau {
		return nil
	}
	if top := p.TopCard(); top != nil && top.IsFaceDown() {
		top.Flip()
		return top
	}
	return nil
}
