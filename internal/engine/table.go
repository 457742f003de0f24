// Package engine implements the Klondike rules: pile topology, dealing,
// gesture resolution, card transfer and win detection.
//
// A Table is driven by a presentation layer that reports gestures (press,
// drag, release, stock clicks) and renders the piles and events it gets back.
// The table is not safe for concurrent use.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
)

var (
	ErrNotDraggable = errors.New("card cannot be dragged")
	ErrNoDrag       = errors.New("card is not being dragged")
	ErrGameWon      = errors.New("game is already won")
	ErrDragging     = errors.New("a card is being dragged")
)

// Pile layout. Piles are addressed by index everywhere, cards included.
const (
	StockID         = 0
	DiscardID       = 1
	FirstFoundation = 2
	FirstTableau    = FirstFoundation + NumFoundations
	NumFoundations  = 4
	NumTableaus     = 7
	NumPiles        = FirstTableau + NumTableaus
)

// Table holds the entire game state.
type Table struct {
	piles  []*Pile
	order  []*card.Card // last dealt order, replayed by Restart
	rng    deck.RNG
	logger *slog.Logger

	drag *DragState
	won  bool
}

// NewTable creates an empty table. Call NewGame or Deal before play.
// A nil logger discards log output.
func NewTable(rng deck.RNG, logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	t := &Table{rng: rng, logger: logger}
	t.initPiles()
	return t
}

func (t *Table) initPiles() {
	t.piles = make([]*Pile, 0, NumPiles)
	t.piles = append(t.piles, newPile(StockID, Stock, "Stock", StockGap))
	t.piles = append(t.piles, newPile(DiscardID, Discard, "Discard", StockGap))
	for i := 0; i < NumFoundations; i++ {
		t.piles = append(t.piles, newPile(FirstFoundation+i, Foundation, fmt.Sprintf("Foundation %d", i+1), FoundationGap))
	}
	for i := 0; i < NumTableaus; i++ {
		t.piles = append(t.piles, newPile(FirstTableau+i, Tableau, fmt.Sprintf("Tableau %d", i+1), TableauGap))
	}
}

// NewGame deals a freshly shuffled deck.
func (t *Table) NewGame() []Event {
	cards := deck.New()
	deck.Shuffle(cards, t.rng)
	return t.Deal(cards)
}

// Restart deals the last dealt order again. Without a previous deal it
// starts a new game.
func (t *Table) Restart() []Event {
	if t.order == nil {
		return t.NewGame()
	}
	return t.Deal(t.order)
}

// Deal lays out cards in order: tableau i gets i+1 cards with only its top
// card face-up, the rest go face-down to the stock. It panics unless given
// a full deck.
func (t *Table) Deal(cards []*card.Card) []Event {
	if len(cards) != deck.Size {
		panic(fmt.Sprintf("engine: deal needs %d cards, got %d", deck.Size, len(cards)))
	}

	for _, p := range t.piles {
		p.Clear()
	}
	t.order = append([]*card.Card(nil), cards...)
	t.drag = nil
	t.won = false

	for _, c := range cards {
		c.TurnFaceDown()
	}

	next := 0
	for i, p := range t.Tableaus() {
		p.AddCards(cards[next : next+i+1])
		next += i + 1
		p.TopCard().TurnFaceUp()
	}
	t.Stock().AddCards(cards[next:])

	ev := Event{
		Type:    EventDeal,
		From:    card.NoPile,
		To:      StockID,
		Message: fmt.Sprintf("Dealt %d cards to the tableau and %d to the stock.", next, len(cards)-next),
	}
	t.log(ev)
	return []Event{ev}
}

// PressStart begins a drag on c at scene position (x, y). Only the face-up
// top card of a discard, foundation or tableau pile can be dragged.
func (t *Table) PressStart(c *card.Card, x, y float64) error {
	if t.won {
		return ErrGameWon
	}
	id, ok := c.Pile()
	if !ok || c.IsFaceDown() {
		return ErrNotDraggable
	}
	p := t.piles[id]
	if p.Type == Stock || p.TopCard() != c {
		return ErrNotDraggable
	}

	t.drag = &DragState{Card: c, Origin: id, AnchorX: x, AnchorY: y}
	return nil
}

// DragTo records how far the card in flight has moved from its anchor.
func (t *Table) DragTo(c *card.Card, dx, dy float64) error {
	if t.drag == nil || t.drag.Card != c {
		return ErrNoDrag
	}
	t.drag.OffsetX = dx
	t.drag.OffsetY = dy
	return nil
}

// Release drops the card in flight. Tableau piles are tried before
// foundations; among piles of one type the last one that overlaps and
// accepts the card wins. With no such pile, or when the card is no longer
// on top of the pile it was picked from, the card slides back.
func (t *Table) Release(c *card.Card, over Overlapper) ([]Event, error) {
	if t.won {
		return nil, ErrGameWon
	}
	if t.drag == nil || t.drag.Card != c {
		return nil, ErrNoDrag
	}
	origin := t.drag.Origin
	t.drag = nil

	var dest *Pile
	if src := t.piles[origin]; src.Contains(c) && src.TopCard() == c {
		dest = t.validIntersectingPile(c, origin, t.Tableaus(), over)
		if dest == nil {
			dest = t.validIntersectingPile(c, origin, t.Foundations(), over)
		}
	}
	if dest == nil {
		at, _ := c.Pile()
		ev := Event{
			Type:    EventSlideBack,
			Card:    c,
			From:    at,
			To:      at,
			Message: fmt.Sprintf("%s cannot go there.", c),
		}
		t.log(ev)
		return []Event{ev}, nil
	}

	return t.transfer(c, dest), nil
}

func (t *Table) validIntersectingPile(c *card.Card, origin int, piles []*Pile, over Overlapper) *Pile {
	var result *Pile
	for _, p := range piles {
		if p.ID != origin && over.Overlaps(c, p) && IsMoveValid(c, p) {
			result = p
		}
	}
	return result
}

// ClickCard draws c to the discard pile, face-up, when it is the top card of
// the stock. Clicks on any other card do nothing. Clicks are refused while a
// card is in flight.
func (t *Table) ClickCard(c *card.Card) ([]Event, error) {
	if t.won {
		return nil, ErrGameWon
	}
	if t.drag != nil {
		return nil, ErrDragging
	}
	stock := t.Stock()
	if c == nil || stock.TopCard() != c {
		return nil, nil
	}

	events := t.MoveCard(c, t.Discard())
	c.TurnFaceUp()

	ev := Event{
		Type:    EventDraw,
		Card:    c,
		From:    StockID,
		To:      DiscardID,
		Message: fmt.Sprintf("Placed %s to the waste.", c),
	}
	t.log(ev)
	return append([]Event{ev}, events...), nil
}

// ClickStock handles a click on the stock pile. An empty stock is refilled
// from the discard pile, which keeps its order; passes are unlimited. On a
// non-empty stock the click draws the top card.
func (t *Table) ClickStock() ([]Event, error) {
	if t.won {
		return nil, ErrGameWon
	}
	if t.drag != nil {
		return nil, ErrDragging
	}
	if top := t.Stock().TopCard(); top != nil {
		return t.ClickCard(top)
	}
	return t.refillStockFromDiscard(), nil
}

func (t *Table) refillStockFromDiscard() []Event {
	discard := t.Discard()
	if discard.IsEmpty() {
		return nil
	}

	cards := discard.Cards()
	discard.Clear()
	for _, c := range cards {
		c.TurnFaceDown()
	}
	t.Stock().AddCards(cards)

	ev := Event{
		Type:    EventRefill,
		From:    DiscardID,
		To:      StockID,
		Message: "Stock refilled from discard pile.",
	}
	t.log(ev)
	return []Event{ev}
}

// MoveCard takes c off its current pile and puts it on top of dest without
// checking any rule. Removing a tableau's top card reveals the one beneath.
func (t *Table) MoveCard(c *card.Card, dest *Pile) []Event {
	var events []Event

	var src *Pile
	if id, ok := c.Pile(); ok {
		src = t.piles[id]
		if revealed := src.remove(c); revealed != nil {
			ev := Event{
				Type:    EventReveal,
				Card:    revealed,
				From:    src.ID,
				To:      src.ID,
				Message: fmt.Sprintf("Turned up %s.", revealed),
			}
			t.log(ev)
			events = append(events, ev)
		}
	}
	dest.AddCard(c)

	if dest.Type == Foundation || (src != nil && src.Type == Foundation) {
		events = append(events, t.afterFoundationChange()...)
	}
	return events
}

func (t *Table) transfer(c *card.Card, dest *Pile) []Event {
	from, _ := c.Pile()
	ev := Event{
		Type:    EventMove,
		Card:    c,
		From:    from,
		To:      dest.ID,
		Message: moveMessage(c, dest),
	}
	t.log(ev)
	return append([]Event{ev}, t.MoveCard(c, dest)...)
}

// afterFoundationChange runs after every mutation of a foundation pile.
func (t *Table) afterFoundationChange() []Event {
	won := t.IsGameWon()
	if won == t.won {
		return nil
	}
	t.won = won
	if !won {
		return nil
	}

	t.drag = nil
	ev := Event{Type: EventWon, From: card.NoPile, To: card.NoPile, Message: "You won!"}
	t.log(ev)
	return []Event{ev}
}

// IsGameWon reports whether every foundation holds a full suit.
func (t *Table) IsGameWon() bool {
	for _, p := range t.Foundations() {
		if p.Len() != 13 {
			return false
		}
	}
	return true
}

// Phase returns the current state of the gesture state machine.
func (t *Table) Phase() GamePhase {
	switch {
	case t.won:
		return PhaseWon
	case t.drag != nil:
		return PhaseDragging
	default:
		return PhaseIdle
	}
}

// Drag returns a copy of the drag in progress, if any.
func (t *Table) Drag() (DragState, bool) {
	if t.drag == nil {
		return DragState{}, false
	}
	return *t.drag, true
}

// Piles returns all piles in layout order.
func (t *Table) Piles() []*Pile {
	return append([]*Pile(nil), t.piles...)
}

// Pile returns the pile with the given index, or nil.
func (t *Table) Pile(id int) *Pile {
	if id < 0 || id >= len(t.piles) {
		return nil
	}
	return t.piles[id]
}

func (t *Table) Stock() *Pile { return t.piles[StockID] }

func (t *Table) Discard() *Pile { return t.piles[DiscardID] }

func (t *Table) Foundations() []*Pile {
	return append([]*Pile(nil), t.piles[FirstFoundation:FirstTableau]...)
}

func (t *Table) Tableaus() []*Pile {
	return append([]*Pile(nil), t.piles[FirstTableau:NumPiles]...)
}

// Order returns the last dealt order.
func (t *Table) Order() []*card.Card {
	return append([]*card.Card(nil), t.order...)
}

// FindCard returns the card with the given rank and suit, or nil before the
// first deal.
func (t *Table) FindCard(rank card.Rank, suit card.Suit) *card.Card {
	for _, p := range t.piles {
		for _, c := range p.cards {
			if c.Rank() == rank && c.Suit() == suit {
				return c
			}
		}
	}
	return nil
}

// CardCount returns the number of cards across all piles.
func (t *Table) CardCount() int {
	n := 0
	for _, p := range t.piles {
		n += p.Len()
	}
	return n
}

func (t *Table) log(ev Event) {
	attrs := []any{"event", ev.Type.String()}
	if ev.Card != nil {
		attrs = append(attrs, "card", ev.Card.Code())
	}
	if ev.Type == EventSlideBack {
		t.logger.Debug(ev.Message, attrs...)
		return
	}
	t.logger.Info(ev.Message, attrs...)
}
