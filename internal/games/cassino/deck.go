package cassino

import (
	"math/rand"

	"github.com/lindabaloyi/official-casino-game-sub001/internal/table"
)

// handSize is the number of cards dealt to each player per deal.
const handSize = 4

// tableDeal is the number of cards dealt face-up to the table at the start.
const tableDeal = 4

// newDeck returns an ordered 52-card deck.
func newDeck() []table.Card {
	deck := make([]table.Card, 0, 52)
	for suit := table.Hearts; suit <= table.Spades; suit++ {
		for rank := table.Ace; rank <= table.King; rank++ {
			deck = append(deck, table.Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// shuffle permutes the deck in place using the game's RNG.
func shuffle(deck []table.Card, rng *rand.Rand) {
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// draw removes and returns up to n cards from the front of the deck.
func draw(deck []table.Card, n int) ([]table.Card, []table.Card) {
	if n > len(deck) {
		n = len(deck)
	}
	drawn := make([]table.Card, n)
	copy(drawn, deck[:n])
	return drawn, deck[n:]
}

// removeCard removes the card at index i from a hand, preserving order.
func removeCard(hand []table.Card, i int) []table.Card {
	if i < 0 || i >= len(hand) {
		return hand
	}
	return append(hand[:i], hand[i+1:]...)
}

// indexOfRankValue returns the index of the first card in the hand whose
// rank value equals v, or -1.
func indexOfRankValue(hand []table.Card, v int) int {
	for i, c := range hand {
		if c.Rank.Value() == v {
			return i
		}
	}
	return -1
}
