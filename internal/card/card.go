package card

import (
	"fmt"
	"strings"
)

// Suit identifies one of the four French suits. Hearts and Diamonds are red,
// Spades and Clubs are black.
type Suit int

const (
	Hearts Suit = iota + 1
	Diamonds
	Spades
	Clubs
)

// Suits lists every suit in canonical order.
var Suits = []Suit{Hearts, Diamonds, Spades, Clubs}

// Rank is the face value of a card, Ace low.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Color groups suits for tableau building.
type Color int

const (
	Red Color = iota
	Black
)

// NoPile is the back-reference of a card that sits in no pile.
const NoPile = -1

// Card represents a playing card
type Card struct {
	rank   Rank
	suit   Suit
	faceUp bool
	pile   int // index into the owning table's piles
}

// New creates a face-down card that belongs to no pile.
func New(rank Rank, suit Suit) *Card {
	if rank < Ace || rank > King {
		panic(fmt.Sprintf("card: rank %d out of range", rank))
	}
	if suit < Hearts || suit > Clubs {
		panic(fmt.Sprintf("card: suit %d out of range", suit))
	}
	return &Card{rank: rank, suit: suit, pile: NoPile}
}

func (c *Card) Rank() Rank { return c.rank }

func (c *Card) Suit() Suit { return c.suit }

func (c *Card) Color() Color { return c.suit.Color() }

func (c *Card) IsFaceDown() bool { return !c.faceUp }

func (c *Card) IsFaceUp() bool { return c.faceUp }

// Flip turns the card over.
func (c *Card) Flip() { c.faceUp = !c.faceUp }

// TurnFaceDown leaves the card face-down whatever its current orientation.
func (c *Card) TurnFaceDown() { c.faceUp = false }

// TurnFaceUp leaves the card face-up whatever its current orientation.
func (c *Card) TurnFaceUp() { c.faceUp = true }

// Pile returns the index of the pile holding the card.
func (c *Card) Pile() (int, bool) {
	return c.pile, c.pile != NoPile
}

// SetPile records the pile that now holds the card. Only piles call it.
func (c *Card) SetPile(id int) { c.pile = id }

// Code returns the short form used on the command line, e.g. "QH" or "10S".
func (c *Card) Code() string {
	return c.rank.Code() + c.suit.Code()
}

// String returns the long form, e.g. "Queen of Hearts".
func (c *Card) String() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Code returns the one-letter suit code.
func (s Suit) Code() string {
	return s.String()[:1]
}

// Symbol returns the unicode pip for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

var rankNames = map[Rank]string{
	Ace:   "Ace",
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Code returns "A", "2".."10", "J", "Q" or "K".
func (r Rank) Code() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Parse reads a card code such as "qh", "10s", "TS" or "AC". Only rank and
// suit are returned; the caller looks the card up on its table.
func Parse(code string) (Rank, Suit, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 {
		return 0, 0, fmt.Errorf("invalid card code: %q", code)
	}

	var suit Suit
	switch code[len(code)-1] {
	case 'H':
		suit = Hearts
	case 'D':
		suit = Diamonds
	case 'S':
		suit = Spades
	case 'C':
		suit = Clubs
	default:
		return 0, 0, fmt.Errorf("invalid suit in card code: %q", code)
	}

	var rank Rank
	switch r := code[:len(code)-1]; r {
	case "A", "1":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "T", "10":
		rank = Ten
	default:
		if len(r) != 1 || r[0] < '2' || r[0] > '9' {
			return 0, 0, fmt.Errorf("invalid rank in card code: %q", code)
		}
		rank = Rank(r[0] - '0')
	}

	return rank, suit, nil
}
