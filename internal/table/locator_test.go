package table

import (
	"testing"

	"github.com/lindabaloyi/official-casino-game-sub001/internal/config"
	"github.com/lindabaloyi/official-casino-game-sub001/internal/core"
)

func testLocator() *Locator {
	return NewLocator(config.DefaultTableConfig())
}

func TestLocatorLooseCardRow(t *testing.T) {
	loc := testLocator()

	first := &LooseCard{Card: Card{Rank: Ace, Suit: Hearts}}
	second := &LooseCard{Card: Card{Rank: Two, Suit: Spades}}
	third := &LooseCard{Card: Card{Rank: 7, Suit: Clubs}}
	entities := []Entity{first, second, third}

	tests := []struct {
		name     string
		entity   Entity
		expected core.Rect
	}{
		{"index 0", first, core.NewRect(50, 100, 60, 80)},
		{"index 1", second, core.NewRect(130, 100, 60, 80)},
		{"index 2", third, core.NewRect(210, 100, 60, 80)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bounds, ok := loc.Bounds(tc.entity, entities)
			if !ok {
				t.Fatal("Bounds() reported entity as unlocatable")
			}
			if bounds != tc.expected {
				t.Errorf("Bounds() = %v, expected %v", bounds, tc.expected)
			}
		})
	}
}

func TestLocatorLooseCardMatchesByRankAndSuit(t *testing.T) {
	loc := testLocator()

	// A distinct value with the same rank and suit must locate the
	// first matching entity in the list.
	entities := []Entity{
		&LooseCard{Card: Card{Rank: 5, Suit: Diamonds}},
		&LooseCard{Card: Card{Rank: 9, Suit: Hearts}},
	}
	query := &LooseCard{Card: Card{Rank: 9, Suit: Hearts}}

	bounds, ok := loc.Bounds(query, entities)
	if !ok {
		t.Fatal("Bounds() should match by rank and suit")
	}
	expected := core.NewRect(130, 100, 60, 80)
	if bounds != expected {
		t.Errorf("Bounds() = %v, expected %v", bounds, expected)
	}
}

func TestLocatorBuildRow(t *testing.T) {
	loc := testLocator()

	b1 := &Build{ID: "b1", Value: 7, Cards: []Card{{Rank: 3, Suit: Hearts}, {Rank: 4, Suit: Clubs}}}
	b2 := &Build{ID: "b2", Value: 9, Cards: []Card{{Rank: 9, Suit: Spades}}}
	// Builds are indexed among builds only; loose cards do not shift them.
	entities := []Entity{
		&LooseCard{Card: Card{Rank: Ace, Suit: Hearts}},
		b1,
		&LooseCard{Card: Card{Rank: King, Suit: Clubs}},
		b2,
	}

	bounds, ok := loc.Bounds(b1, entities)
	if !ok {
		t.Fatal("Bounds() should locate first build")
	}
	if expected := core.NewRect(200, 50, 90, 80); bounds != expected {
		t.Errorf("first build bounds = %v, expected %v", bounds, expected)
	}

	bounds, ok = loc.Bounds(b2, entities)
	if !ok {
		t.Fatal("Bounds() should locate second build")
	}
	if expected := core.NewRect(300, 50, 90, 80); bounds != expected {
		t.Errorf("second build bounds = %v, expected %v", bounds, expected)
	}
}

func TestLocatorBuildFallsBackToCardSequence(t *testing.T) {
	loc := testLocator()

	cards := []Card{{Rank: 2, Suit: Hearts}, {Rank: 6, Suit: Spades}}
	onTable := &Build{Cards: cards, Value: 8}
	entities := []Entity{onTable}

	// No IDs on either side: the card sequence identifies the build.
	query := &Build{Cards: []Card{{Rank: 2, Suit: Hearts}, {Rank: 6, Suit: Spades}}, Value: 8}
	if _, ok := loc.Bounds(query, entities); !ok {
		t.Error("Bounds() should fall back to card-sequence matching")
	}
}

func TestLocatorTempStackRow(t *testing.T) {
	loc := testLocator()

	s1 := &TempStack{ID: "s1", Cards: []Card{{Rank: 4, Suit: Hearts}}}
	s2 := &TempStack{ID: "s2", Cards: []Card{{Rank: 8, Suit: Clubs}}}
	entities := []Entity{s1, &LooseCard{Card: Card{Rank: 3, Suit: Diamonds}}, s2}

	bounds, ok := loc.Bounds(s2, entities)
	if !ok {
		t.Fatal("Bounds() should locate second temp stack")
	}
	if expected := core.NewRect(320, 200, 72, 80); bounds != expected {
		t.Errorf("temp stack bounds = %v, expected %v", bounds, expected)
	}
}

func TestLocatorMissingEntity(t *testing.T) {
	loc := testLocator()

	entities := []Entity{&LooseCard{Card: Card{Rank: 5, Suit: Hearts}}}
	gone := &LooseCard{Card: Card{Rank: 9, Suit: Spades}}

	if _, ok := loc.Bounds(gone, entities); ok {
		t.Error("Bounds() should report a removed entity as unlocatable")
	}
	if _, ok := loc.Bounds(gone, nil); ok {
		t.Error("Bounds() should report no bounds for an empty list")
	}
}

// fixedEntity is an entity of an unrecognized kind, optionally carrying
// authoritative bounds.
type fixedEntity struct {
	rect core.Rect
	has  bool
}

func (*fixedEntity) Kind() EntityKind { return EntityKind(99) }

func (f *fixedEntity) Bounds() (core.Rect, bool) { return f.rect, f.has }

func TestLocatorUnknownKindUsesLooseRow(t *testing.T) {
	loc := testLocator()

	unknown := &fixedEntity{}
	entities := []Entity{
		&LooseCard{Card: Card{Rank: Ace, Suit: Clubs}},
		unknown,
	}

	bounds, ok := loc.Bounds(unknown, entities)
	if !ok {
		t.Fatal("Bounds() should treat an unknown kind as a loose card")
	}
	if expected := core.NewRect(130, 100, 60, 80); bounds != expected {
		t.Errorf("unknown-kind bounds = %v, expected %v", bounds, expected)
	}
}

func TestLocatorBoundsProviderWins(t *testing.T) {
	loc := testLocator()

	authoritative := core.NewRect(500, 500, 60, 80)
	e := &fixedEntity{rect: authoritative, has: true}

	bounds, ok := loc.Bounds(e, []Entity{e})
	if !ok {
		t.Fatal("Bounds() should accept authoritative bounds")
	}
	if bounds != authoritative {
		t.Errorf("Bounds() = %v, expected authoritative %v", bounds, authoritative)
	}
}
