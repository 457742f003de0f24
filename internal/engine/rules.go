package engine

import "github.com/arcanaland/klondike/internal/card"

// IsMoveValid decides whether c may be dropped on dest. It does not know
// where c comes from; callers skip the pile that already holds it.
//
// Foundations build up by suit from Ace, one card at a time. Tableaus build
// down in alternating colours and only a King may fill an empty one. Stock
// and Discard never accept drops.
func IsMoveValid(c *card.Card, dest *Pile) bool {
	top := dest.TopCard()

	switch dest.Type {
	case Foundation:
		if top == nil {
			return c.Rank() == card.Ace
		}
		return c.Rank() == top.Rank()+1 && c.Suit() == top.Suit()
	case Tableau:
		if top == nil {
			return c.Rank() == card.King
		}
		return c.Rank() == top.Rank()-1 && c.Color() != top.Color()
	default:
		return false
	}
}
