// Package deck builds the 52-card French deck and shuffles it.
package deck

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/klondike/internal/card"
)

// Size is the number of cards in a deck.
const Size = 52

// RNG abstracts random number generation for deterministic testing.
// *rand.Rand from math/rand/v2 satisfies it.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// New returns one face-down card for every rank and suit, suit-major in
// canonical order (Hearts Ace..King, Diamonds, Spades, Clubs).
func New() []*card.Card {
	cards := make([]*card.Card, 0, Size)
	for _, suit := range card.Suits {
		for rank := card.Ace; rank <= card.King; rank++ {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return cards
}

// Shuffle permutes cards in place (Fisher-Yates).
func Shuffle(cards []*card.Card, rng RNG) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// NewRNG returns a PCG generator for seed. Equal seeds give equal deals.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewShuffled returns a fresh deck shuffled with the generator for seed.
func NewShuffled(seed uint64) []*card.Card {
	cards := New()
	Shuffle(cards, NewRNG(seed))
	return cards
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
