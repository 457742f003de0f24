package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/arcanaland/klondike/internal/engine"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator audits a table against the Klondike layout invariants.
type Validator struct {
	Table   *engine.Table
	Results ValidationResults
}

func NewValidator(t *engine.Table) *Validator {
	return &Validator{
		Table:   t,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if v.Table == nil {
		return v.Results, errors.New("no table to validate")
	}

	v.validateCardSet()
	v.validatePileMembership()
	v.validateStock()
	v.validateDiscard()
	v.validateFoundations()
	v.validateTableaus()
	v.validateWinState()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateCardSet checks that the table holds exactly one full deck
func (v *Validator) validateCardSet() {
	if n := v.Table.CardCount(); n != deck.Size {
		v.errorf("table holds %d cards, expected %d", n, deck.Size)
	}

	seen := make(map[string]int)
	for _, p := range v.Table.Piles() {
		for _, c := range p.Cards() {
			seen[c.Code()]++
		}
	}

	duplicates := []string{}
	missing := []string{}
	for _, suit := range card.Suits {
		for rank := card.Ace; rank <= card.King; rank++ {
			code := rank.Code() + suit.Code()
			switch n := seen[code]; {
			case n == 0:
				missing = append(missing, code)
			case n > 1:
				duplicates = append(duplicates, code)
			}
		}
	}

	if len(missing) > 0 {
		v.errorf("missing cards: %s", strings.Join(missing, ", "))
	}
	if len(duplicates) > 0 {
		v.errorf("duplicate cards: %s", strings.Join(duplicates, ", "))
	}
}

// validatePileMembership checks every card points back at the pile holding it
func (v *Validator) validatePileMembership() {
	for _, p := range v.Table.Piles() {
		for _, c := range p.Cards() {
			if !p.Contains(c) {
				id, _ := c.Pile()
				v.errorf("%s sits in %s but refers to pile %d", c, p.Name, id)
			}
		}
	}
}

func (v *Validator) validateStock() {
	for _, c := range v.Table.Stock().Cards() {
		if c.IsFaceUp() {
			v.errorf("stock card %s is face-up", c)
		}
	}
}

func (v *Validator) validateDiscard() {
	for _, c := range v.Table.Discard().Cards() {
		if c.IsFaceDown() {
			v.errorf("discard card %s is face-down", c)
		}
	}
}

// validateFoundations checks each foundation is a same-suit run from Ace
func (v *Validator) validateFoundations() {
	suits := make(map[card.Suit]string)

	for _, p := range v.Table.Foundations() {
		cards := p.Cards()
		if len(cards) == 0 {
			continue
		}

		first := cards[0]
		if first.Rank() != card.Ace {
			v.errorf("%s starts with %s instead of an ace", p.Name, first)
		}
		if other, ok := suits[first.Suit()]; ok {
			v.errorf("%s and %s both collect %s", other, p.Name, first.Suit())
		}
		suits[first.Suit()] = p.Name

		for i, c := range cards {
			if c.IsFaceDown() {
				v.errorf("%s has face-down card %s", p.Name, c)
			}
			if i == 0 {
				continue
			}
			prev := cards[i-1]
			if c.Suit() != prev.Suit() || c.Rank() != prev.Rank()+1 {
				v.errorf("%s: %s does not follow %s", p.Name, c, prev)
			}
		}
	}
}

// validateTableaus checks each tableau is face-down cards under a face-up
// run that builds down in alternating colours
func (v *Validator) validateTableaus() {
	for _, p := range v.Table.Tableaus() {
		cards := p.Cards()
		if len(cards) == 0 {
			continue
		}

		if top := cards[len(cards)-1]; top.IsFaceDown() {
			v.errorf("%s has face-down top card %s", p.Name, top)
		}

		firstUp := len(cards)
		for i, c := range cards {
			if c.IsFaceUp() {
				firstUp = i
				break
			}
		}
		for _, c := range cards[firstUp:] {
			if c.IsFaceDown() {
				v.errorf("%s has face-down card %s above face-up cards", p.Name, c)
			}
		}

		for i := firstUp + 1; i < len(cards); i++ {
			prev, c := cards[i-1], cards[i]
			if c.IsFaceDown() || prev.IsFaceDown() {
				continue
			}
			if c.Rank() != prev.Rank()-1 || c.Color() == prev.Color() {
				v.errorf("%s: %s does not build on %s", p.Name, c, prev)
			}
		}
	}
}

func (v *Validator) validateWinState() {
	if v.Table.IsGameWon() && v.Table.Phase() != engine.PhaseWon {
		v.errorf("all foundations are complete but the game is not marked won")
	}
	if v.Table.Stock().IsEmpty() && v.Table.Discard().IsEmpty() && !v.Table.IsGameWon() {
		v.warnf("stock and discard are both exhausted")
	}
}
