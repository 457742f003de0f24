package engine

import "github.com/arcanaland/klondike/internal/card"

// DragState tracks the card in flight between press and release. The card
// stays in its origin pile until the drop resolves.
type DragState struct {
	Card    *card.Card
	Origin  int
	AnchorX float64
	AnchorY float64
	OffsetX float64
	OffsetY float64
}

// Overlapper answers the geometric question the engine cannot: does the
// dragged card currently cover pile p (its top card, or the pile itself when
// empty)?
type Overlapper interface {
	Overlaps(c *card.Card, p *Pile) bool
}

// OverlapFunc adapts a function to the Overlapper interface.
type OverlapFunc func(c *card.Card, p *Pile) bool

func (f OverlapFunc) Overlaps(c *card.Card, p *Pile) bool { return f(c, p) }

// OverPile reports an overlap with target only.
func OverPile(target *Pile) Overlapper {
	return OverlapFunc(func(_ *card.Card, p *Pile) bool { return p == target })
}

// OverAll reports an overlap with every pile.
var OverAll Overlapper = OverlapFunc(func(*card.Card, *Pile) bool { return true })
