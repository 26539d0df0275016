package table

import (
	"math"
	"testing"

	"github.com/lindabaloyi/official-casino-game-sub001/internal/config"
	"github.com/lindabaloyi/official-casino-game-sub001/internal/core"
)

func testResolver() *Resolver {
	return NewResolver(config.DefaultTableConfig())
}

// overlapEntity pins an entity at a fixed rectangle so tests can dial in
// exact overlap percentages against a known drop point.
type overlapEntity struct {
	name string
	rect core.Rect
}

func (*overlapEntity) Kind() EntityKind { return KindLooseCard }

func (o *overlapEntity) Bounds() (core.Rect, bool) { return o.rect, true }

// entityAtOverlap returns an entity whose overlap percentage against a
// 60x80 card dropped at (100, 100) is exactly pct.
func entityAtOverlap(name string, pct float64) *overlapEntity {
	// Dropped bounds are {70, 60, 60, 80}. Shifting an equal-size rect
	// right by dx leaves an overlap fraction of (60-dx)/60.
	dx := 60 * (1 - pct)
	return &overlapEntity{
		name: name,
		rect: core.NewRect(70+dx, 60, 60, 80),
	}
}

func TestBestContactEmptyTable(t *testing.T) {
	r := testResolver()

	result := r.BestContact(core.Point{X: 100, Y: 100}, nil)
	if result.HasContact {
		t.Error("BestContact() on an empty table must report no contact")
	}
	if result.Entity != nil {
		t.Error("BestContact() on an empty table must have a nil entity")
	}
	if result.DroppedBounds != core.NewRect(70, 60, 60, 80) {
		t.Errorf("DroppedBounds = %v, expected {70 60 60 80}", result.DroppedBounds)
	}
}

func TestBestContactThresholdStrictness(t *testing.T) {
	r := testResolver()
	drop := core.Point{X: 100, Y: 100}

	// Exactly at the threshold: not contact.
	exact := entityAtOverlap("exact", 0.20)
	if r.HasAnyContact(drop, []Entity{exact}) {
		t.Error("an overlap of exactly the threshold must not count as contact")
	}

	// Just above the threshold: contact.
	above := entityAtOverlap("above", 0.21)
	if !r.HasAnyContact(drop, []Entity{above}) {
		t.Error("an overlap above the threshold must count as contact")
	}
}

func TestBestContactFirstMaximumWins(t *testing.T) {
	r := testResolver()
	drop := core.Point{X: 100, Y: 100}

	first := entityAtOverlap("first", 0.5)
	middle := entityAtOverlap("middle", 0.3)
	last := entityAtOverlap("last", 0.5)
	entities := []Entity{first, middle, last}

	result := r.BestContact(drop, entities)
	if !result.HasContact {
		t.Fatal("BestContact() should find contact")
	}
	got, ok := result.Entity.(*overlapEntity)
	if !ok || got.name != "first" {
		t.Errorf("BestContact() selected %v, expected the first equal maximum", result.Entity)
	}
}

func TestAllContactsOrdering(t *testing.T) {
	r := testResolver()
	drop := core.Point{X: 100, Y: 100}

	entities := []Entity{
		entityAtOverlap("low", 0.3),
		entityAtOverlap("high", 0.6),
		entityAtOverlap("mid", 0.45),
	}

	contacts := r.AllContacts(drop, entities)
	if len(contacts) != 3 {
		t.Fatalf("AllContacts() returned %d entries, expected 3", len(contacts))
	}

	wantOrder := []string{"high", "mid", "low"}
	for i, want := range wantOrder {
		got := contacts[i].Entity.(*overlapEntity).name
		if got != want {
			t.Errorf("contacts[%d] = %q, expected %q", i, got, want)
		}
	}
	for i := 1; i < len(contacts); i++ {
		if contacts[i].Overlap > contacts[i-1].Overlap {
			t.Error("AllContacts() must be sorted descending by overlap")
		}
	}
}

func TestAllContactsStableOnTies(t *testing.T) {
	r := testResolver()
	drop := core.Point{X: 100, Y: 100}

	a := entityAtOverlap("a", 0.5)
	b := entityAtOverlap("b", 0.5)
	contacts := r.AllContacts(drop, []Entity{a, b})

	if len(contacts) != 2 {
		t.Fatalf("AllContacts() returned %d entries, expected 2", len(contacts))
	}
	if contacts[0].Entity.(*overlapEntity).name != "a" {
		t.Error("equal overlaps must retain relative input order")
	}
}

func TestAllContactsExcludesBelowThreshold(t *testing.T) {
	r := testResolver()
	drop := core.Point{X: 100, Y: 100}

	entities := []Entity{
		entityAtOverlap("in", 0.4),
		entityAtOverlap("out", 0.1),
	}

	contacts := r.AllContacts(drop, entities)
	if len(contacts) != 1 {
		t.Fatalf("AllContacts() returned %d entries, expected 1", len(contacts))
	}
	if contacts[0].Entity.(*overlapEntity).name != "in" {
		t.Error("AllContacts() must exclude entities below the threshold")
	}
}

func TestLooseCardContactsFiltersKinds(t *testing.T) {
	r := testResolver()

	// A build and a loose card in the same region of the table. Drop
	// between the loose row and the build row so both qualify.
	build := &Build{ID: "b1", Value: 10, Cards: []Card{{Rank: Ten, Suit: Hearts}}}
	loose := &LooseCard{Card: Card{Rank: 4, Suit: Clubs}}
	entities := []Entity{build, loose}

	// Loose card 0 sits at {50, 100, 60, 80}; build 0 at {200, 50, 90, 80}.
	drop := core.Point{X: 80, Y: 140}
	all := r.AllContacts(drop, entities)
	if len(all) == 0 {
		t.Fatal("expected at least the loose card in contact")
	}

	looseOnly := r.LooseCardContacts(drop, entities)
	for _, c := range looseOnly {
		if c.Kind != KindLooseCard {
			t.Errorf("LooseCardContacts() returned kind %v", c.Kind)
		}
	}
	if len(looseOnly) != 1 || looseOnly[0].Entity != Entity(loose) {
		t.Error("LooseCardContacts() should return exactly the loose card")
	}
}

func TestBestContactUnknownKindParticipates(t *testing.T) {
	r := testResolver()

	// An entity of an unrecognized kind takes a loose-card slot instead
	// of being treated as an error.
	unknown := &fixedEntity{}
	loose := &LooseCard{Card: Card{Rank: 9, Suit: Hearts}}

	result := r.BestContact(core.Point{X: 90, Y: 100}, []Entity{unknown, loose})
	if !result.HasContact {
		t.Fatal("expected contact with the loose-card row")
	}
	// The unknown entity occupies index 0 of the loose row, directly
	// under the drop point, so it wins over the shifted loose card.
	if result.Entity != Entity(unknown) {
		t.Errorf("BestContact() selected %v, expected the unknown-kind entity", result.Entity)
	}
}

func TestContactEndToEndScenario(t *testing.T) {
	// Canonical regression for the locator x geometry interaction:
	// drop (90, 100) with 60x80 cards gives dropped bounds {60, 60, 60, 80};
	// the loose card at table index 0 has bounds {50, 100, 60, 80}; overlap
	// is (110-60)x(140-100) = 2000, i.e. 2000/4800 of the smaller area.
	r := testResolver()

	loose := &LooseCard{Card: Card{Rank: 9, Suit: Hearts}}
	result := r.BestContact(core.Point{X: 90, Y: 100}, []Entity{loose})

	if result.DroppedBounds != core.NewRect(60, 60, 60, 80) {
		t.Errorf("DroppedBounds = %v, expected {60 60 60 80}", result.DroppedBounds)
	}
	if result.EntityBounds != core.NewRect(50, 100, 60, 80) {
		t.Errorf("EntityBounds = %v, expected {50 100 60 80}", result.EntityBounds)
	}

	wantPct := 2000.0 / 4800.0
	if math.Abs(result.Overlap-wantPct) > 1e-9 {
		t.Errorf("Overlap = %v, expected %v", result.Overlap, wantPct)
	}
	if !result.HasContact {
		t.Error("an overlap of ~0.417 must count as contact")
	}
	if result.Kind != KindLooseCard {
		t.Errorf("Kind = %v, expected loose card", result.Kind)
	}
}

func TestResolverThresholdIsConfigurable(t *testing.T) {
	cfg := config.DefaultTableConfig()
	cfg.Contact.Threshold = 0.5
	r := NewResolver(cfg)

	drop := core.Point{X: 100, Y: 100}
	e := entityAtOverlap("e", 0.45)
	if r.HasAnyContact(drop, []Entity{e}) {
		t.Error("raising the threshold must exclude previously qualifying overlaps")
	}
}
