package table

import (
	"github.com/lindabaloyi/official-casino-game-sub001/internal/config"
	"github.com/lindabaloyi/official-casino-game-sub001/internal/core"
)

// Locator derives a best-effort bounding rectangle for a table entity from
// its ordinal position within the current entity list. Entities carry no
// authoritative screen coordinates, so bounds are re-derived on every query
// from type-specific row layouts; they are only stable while the list
// ordering and per-kind counts are stable between queries. This is a
// deliberate approximation, not a hit-test against rendered pixels.
type Locator struct {
	cfg config.TableConfig
}

// NewLocator creates a locator using the given table configuration.
func NewLocator(cfg config.TableConfig) *Locator {
	return &Locator{cfg: cfg}
}

// Bounds returns the approximate rectangle for the entity, or false when
// the entity cannot be found in the list (e.g. already removed). Callers
// must skip unlocatable entities rather than fail: a query against a
// just-removed entity is an expected race in a rapidly-updating UI.
func (l *Locator) Bounds(e Entity, entities []Entity) (core.Rect, bool) {
	// Entities that know their real rendered bounds win over the heuristic.
	if bp, ok := e.(BoundsProvider); ok {
		if r, has := bp.Bounds(); has {
			return r, true
		}
	}

	switch e.Kind() {
	case KindBuild:
		return l.buildBounds(e, entities)
	case KindTempStack:
		return l.tempStackBounds(e, entities)
	default:
		// Loose cards, and any unrecognized kind, use the loose-card row.
		return l.looseBounds(e, entities)
	}
}

func (l *Locator) buildBounds(e Entity, entities []Entity) (core.Rect, bool) {
	target, _ := e.(*Build)

	index := 0
	for _, other := range entities {
		b, ok := other.(*Build)
		if !ok {
			continue
		}
		if matchesBuild(target, b, e, other) {
			row := l.cfg.Layout.Builds
			return core.Rect{
				X: row.BaseX + float64(index)*row.Spacing,
				Y: row.Y,
				W: l.cfg.Card.Width * row.WidthFactor,
				H: l.cfg.Card.Height,
			}, true
		}
		index++
	}
	return core.Rect{}, false
}

// matchesBuild matches by ID when available, falling back to comparing the
// card sequence, and finally to interface identity.
func matchesBuild(target, candidate *Build, e, other Entity) bool {
	if target == nil {
		return e == other
	}
	if target.ID != "" || candidate.ID != "" {
		return target.ID == candidate.ID
	}
	return sameCards(target.Cards, candidate.Cards)
}

func (l *Locator) tempStackBounds(e Entity, entities []Entity) (core.Rect, bool) {
	target, _ := e.(*TempStack)

	index := 0
	for _, other := range entities {
		s, ok := other.(*TempStack)
		if !ok {
			continue
		}
		if matchesTempStack(target, s, e, other) {
			row := l.cfg.Layout.TempStacks
			return core.Rect{
				X: row.BaseX + float64(index)*row.Spacing,
				Y: row.Y,
				W: l.cfg.Card.Width * row.WidthFactor,
				H: l.cfg.Card.Height,
			}, true
		}
		index++
	}
	return core.Rect{}, false
}

func matchesTempStack(target, candidate *TempStack, e, other Entity) bool {
	if target == nil {
		return e == other
	}
	if target.ID != "" || candidate.ID != "" {
		return target.ID == candidate.ID
	}
	return sameCards(target.Cards, candidate.Cards)
}

func (l *Locator) looseBounds(e Entity, entities []Entity) (core.Rect, bool) {
	index := 0
	for _, other := range entities {
		kind := other.Kind()
		if kind == KindBuild || kind == KindTempStack {
			continue
		}
		if matchesLoose(e, other) {
			row := l.cfg.Layout.LooseCards
			return core.Rect{
				X: row.BaseX + float64(index)*row.Spacing,
				Y: row.Y,
				W: l.cfg.Card.Width * row.WidthFactor,
				H: l.cfg.Card.Height,
			}, true
		}
		index++
	}
	return core.Rect{}, false
}

// matchesLoose matches loose cards by rank and suit (first match wins);
// entities of unrecognized kinds match by identity only.
func matchesLoose(e, other Entity) bool {
	a, aok := e.(*LooseCard)
	b, bok := other.(*LooseCard)
	if aok && bok {
		return a.Card == b.Card
	}
	return e == other
}
