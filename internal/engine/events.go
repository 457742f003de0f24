package engine

import (
	"fmt"

	"github.com/arcanaland/klondike/internal/card"
)

// EventType identifies what changed on the table.
type EventType int

const (
	EventDeal EventType = iota
	EventMove
	EventSlideBack
	EventDraw
	EventRefill
	EventReveal
	EventWon
)

var eventNames = map[EventType]string{
	EventDeal:      "deal",
	EventMove:      "move",
	EventSlideBack: "slide_back",
	EventDraw:      "draw",
	EventRefill:    "refill",
	EventReveal:    "reveal",
	EventWon:       "won",
}

func (t EventType) String() string {
	if s, ok := eventNames[t]; ok {
		return s
	}
	return "unknown"
}

// Event is returned to the presentation layer after every gesture. Message
// is the human-readable status line.
type Event struct {
	Type    EventType
	Card    *card.Card
	From    int
	To      int
	Message string
}

func moveMessage(c *card.Card, dest *Pile) string {
	top := dest.TopCard()
	if top == nil {
		if dest.Type == Foundation {
			return fmt.Sprintf("Placed %s to the foundation.", c)
		}
		return fmt.Sprintf("Placed %s to a new pile.", c)
	}
	return fmt.Sprintf("Placed %s to %s.", c, top)
}
