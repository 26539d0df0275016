package cassino

import (
	"testing"

	"github.com/lindabaloyi/official-casino-game-sub001/internal/table"
)

func TestScoreRoundCategories(t *testing.T) {
	player := []table.Card{
		{Rank: table.Ten, Suit: table.Diamonds},
		{Rank: table.Two, Suit: table.Spades},
		{Rank: table.Ace, Suit: table.Hearts},
		{Rank: table.Ace, Suit: table.Clubs},
		{Rank: table.Five, Suit: table.Spades},
	}
	cpu := []table.Card{
		{Rank: table.Seven, Suit: table.Hearts},
		{Rank: table.Ace, Suit: table.Diamonds},
	}

	p, c := scoreRound(player, cpu)

	if p.Cards != 3 {
		t.Errorf("player cards points = %d, expected 3", p.Cards)
	}
	if p.Spades != 1 {
		t.Errorf("player spades points = %d, expected 1", p.Spades)
	}
	if p.BigCassino != 2 {
		t.Errorf("player big cassino points = %d, expected 2", p.BigCassino)
	}
	if p.LittleCassino != 1 {
		t.Errorf("player little cassino points = %d, expected 1", p.LittleCassino)
	}
	if p.Aces != 2 {
		t.Errorf("player aces = %d, expected 2", p.Aces)
	}
	if p.Total() != 9 {
		t.Errorf("player total = %d, expected 9", p.Total())
	}

	if c.Cards != 0 || c.Spades != 0 {
		t.Errorf("cpu should win no majority categories, got %+v", c)
	}
	if c.Aces != 1 || c.Total() != 1 {
		t.Errorf("cpu total = %d, expected 1 (single ace)", c.Total())
	}
}

func TestScoreRoundTiesAwardNeither(t *testing.T) {
	// Equal card counts and equal spade counts
	player := []table.Card{
		{Rank: table.Three, Suit: table.Spades},
		{Rank: table.Four, Suit: table.Hearts},
	}
	cpu := []table.Card{
		{Rank: table.Six, Suit: table.Spades},
		{Rank: table.Eight, Suit: table.Clubs},
	}

	p, c := scoreRound(player, cpu)

	if p.Cards != 0 || c.Cards != 0 {
		t.Errorf("tied card count must award neither, got player %d cpu %d", p.Cards, c.Cards)
	}
	if p.Spades != 0 || c.Spades != 0 {
		t.Errorf("tied spade count must award neither, got player %d cpu %d", p.Spades, c.Spades)
	}
}

func TestCapturableBy(t *testing.T) {
	entities := []table.Entity{
		&table.LooseCard{Card: table.Card{Rank: table.Nine, Suit: table.Hearts}},
		&table.LooseCard{Card: table.Card{Rank: table.Four, Suit: table.Clubs}},
		&table.Build{ID: "b1", Value: 9, Cards: []table.Card{
			{Rank: table.Four, Suit: table.Spades},
			{Rank: table.Five, Suit: table.Hearts},
		}},
		&table.Build{ID: "b2", Value: 7, Cards: []table.Card{
			{Rank: table.Three, Suit: table.Diamonds},
			{Rank: table.Four, Suit: table.Diamonds},
		}},
	}

	nine := table.Card{Rank: table.Nine, Suit: table.Clubs}
	targets := capturableBy(nine, entities)

	if len(targets) != 2 {
		t.Fatalf("capturableBy(9) = %d targets, expected 2", len(targets))
	}
	if lc, ok := targets[0].(*table.LooseCard); !ok || lc.Card.Rank != table.Nine {
		t.Errorf("first target should be the loose nine, got %v", targets[0])
	}
	if b, ok := targets[1].(*table.Build); !ok || b.Value != 9 {
		t.Errorf("second target should be the 9-build, got %v", targets[1])
	}
}

func TestRemoveEntityMatchesByIdentity(t *testing.T) {
	// Two equal-looking loose cards must be distinguishable by identity
	a := &table.LooseCard{Card: table.Card{Rank: table.Five, Suit: table.Hearts}}
	b := &table.LooseCard{Card: table.Card{Rank: table.Five, Suit: table.Hearts}}
	entities := []table.Entity{a, b}

	entities = removeEntity(entities, b)
	if len(entities) != 1 {
		t.Fatalf("expected 1 entity after removal, got %d", len(entities))
	}
	if entities[0] != table.Entity(a) {
		t.Error("wrong entity removed")
	}
}

func TestNewDeck(t *testing.T) {
	deck := newDeck()
	if len(deck) != 52 {
		t.Fatalf("deck size = %d, expected 52", len(deck))
	}

	seen := make(map[table.Card]bool, 52)
	for _, c := range deck {
		if seen[c] {
			t.Errorf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestDraw(t *testing.T) {
	deck := newDeck()

	drawn, rest := draw(deck, handSize)
	if len(drawn) != handSize {
		t.Errorf("drew %d cards, expected %d", len(drawn), handSize)
	}
	if len(rest) != 52-handSize {
		t.Errorf("rest = %d cards, expected %d", len(rest), 52-handSize)
	}

	// Over-drawing drains the deck without panicking
	drawn, rest = draw(rest[:2], 5)
	if len(drawn) != 2 || len(rest) != 0 {
		t.Errorf("over-draw: got %d drawn, %d rest", len(drawn), len(rest))
	}
}

func TestIndexOfRankValue(t *testing.T) {
	hand := []table.Card{
		{Rank: table.Three, Suit: table.Hearts},
		{Rank: table.Jack, Suit: table.Clubs},
	}

	if i := indexOfRankValue(hand, 11); i != 1 {
		t.Errorf("indexOfRankValue(11) = %d, expected 1", i)
	}
	if i := indexOfRankValue(hand, 9); i != -1 {
		t.Errorf("indexOfRankValue(9) = %d, expected -1", i)
	}
}
