// Package table implements the drop-contact core of the casino platform:
// locating table entities, resolving which entity a dropped card touched,
// and computing the displayed value of card stacks. All operations are pure
// functions over caller-supplied snapshots of the table.
package table

import "fmt"

// Suit identifies a card suit. Suits have no geometric meaning; they only
// matter for matching loose cards and for scoring.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns the suit symbol.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Rank is a card rank from Ace (1) to King (13).
type Rank int

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Value returns the numeric value of the rank used for build arithmetic.
func (r Rank) Value() int {
	return int(r)
}

// String returns the short rank label.
func (r Rank) String() string {
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

// Card is a playing card. Cards are immutable values; two cards are equal
// iff their rank and suit are equal.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns a compact label like "9♥".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// sameCards reports whether two card sequences are identical in order.
func sameCards(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
