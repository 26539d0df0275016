package cassino

import (
	"github.com/lindabaloyi/official-casino-game-sub001/internal/table"
)

// RoundPoints breaks down a player's tally at the end of a round.
// Classic Cassino scoring: most cards 3, most spades 1, the ten of
// diamonds 2, the two of spades 1, and one per ace.
type RoundPoints struct {
	Cards         int
	Spades        int
	BigCassino    int
	LittleCassino int
	Aces          int
}

// Total returns the sum of all point categories.
func (p RoundPoints) Total() int {
	return p.Cards + p.Spades + p.BigCassino + p.LittleCassino + p.Aces
}

// scoreRound tallies both capture piles. Ties on cards or spades award
// the category to neither player.
func scoreRound(player, cpu []table.Card) (RoundPoints, RoundPoints) {
	var p, c RoundPoints

	switch {
	case len(player) > len(cpu):
		p.Cards = 3
	case len(cpu) > len(player):
		c.Cards = 3
	}

	playerSpades := countSuit(player, table.Spades)
	cpuSpades := countSuit(cpu, table.Spades)
	switch {
	case playerSpades > cpuSpades:
		p.Spades = 1
	case cpuSpades > playerSpades:
		c.Spades = 1
	}

	for _, card := range player {
		tallySpecials(card, &p)
	}
	for _, card := range cpu {
		tallySpecials(card, &c)
	}

	return p, c
}

func tallySpecials(card table.Card, pts *RoundPoints) {
	if card.Rank == table.Ten && card.Suit == table.Diamonds {
		pts.BigCassino = 2
	}
	if card.Rank == table.Two && card.Suit == table.Spades {
		pts.LittleCassino = 1
	}
	if card.Rank == table.Ace {
		pts.Aces++
	}
}

func countSuit(cards []table.Card, suit table.Suit) int {
	n := 0
	for _, c := range cards {
		if c.Suit == suit {
			n++
		}
	}
	return n
}

// entityCards flattens a table entity into the cards it holds.
func entityCards(e table.Entity) []table.Card {
	switch v := e.(type) {
	case *table.LooseCard:
		return []table.Card{v.Card}
	case *table.Build:
		return v.Cards
	case *table.TempStack:
		return v.Cards
	default:
		return nil
	}
}

// capturableBy returns the entities a card of the given rank value may
// capture: loose cards of equal rank and builds matching the value.
func capturableBy(card table.Card, entities []table.Entity) []table.Entity {
	var targets []table.Entity
	for _, e := range entities {
		switch v := e.(type) {
		case *table.LooseCard:
			if v.Card.Rank == card.Rank {
				targets = append(targets, e)
			}
		case *table.Build:
			if v.Value == card.Rank.Value() {
				targets = append(targets, e)
			}
		}
	}
	return targets
}

// removeEntity returns the entity list without e, matching by identity.
func removeEntity(entities []table.Entity, e table.Entity) []table.Entity {
	for i, other := range entities {
		if other == e {
			return append(entities[:i], entities[i+1:]...)
		}
	}
	return entities
}
