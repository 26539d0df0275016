package table

import (
	"sort"

	"github.com/lindabaloyi/official-casino-game-sub001/internal/config"
	"github.com/lindabaloyi/official-casino-game-sub001/internal/core"
)

// Contact describes the result of resolving a drop against the table.
type Contact struct {
	// HasContact is true iff some entity's overlap with the dropped card
	// strictly exceeded the contact threshold.
	HasContact bool
	// Entity is the touched entity, nil when HasContact is false.
	Entity Entity
	// Kind is the touched entity's kind, meaningless when HasContact is false.
	Kind EntityKind
	// Overlap is the overlap percentage in [0, 1] against the smaller of
	// the two rectangles.
	Overlap float64
	// EntityBounds is the touched entity's derived rectangle.
	EntityBounds core.Rect
	// DroppedBounds is the synthetic rectangle of the dropped card.
	DroppedBounds core.Rect
}

// Resolver answers "what did this drop touch?" over a snapshot of the
// current table-entity list. All methods are pure queries: the resolver
// holds only configuration and never mutates the supplied entities.
type Resolver struct {
	cfg     config.TableConfig
	locator *Locator
}

// NewResolver creates a resolver using the given table configuration.
func NewResolver(cfg config.TableConfig) *Resolver {
	return &Resolver{
		cfg:     cfg,
		locator: NewLocator(cfg),
	}
}

// Locator returns the resolver's entity locator.
func (r *Resolver) Locator() *Locator {
	return r.locator
}

// Threshold returns the configured contact threshold.
func (r *Resolver) Threshold() float64 {
	return r.cfg.Contact.Threshold
}

func (r *Resolver) cardSize() core.Size {
	return core.Size{W: r.cfg.Card.Width, H: r.cfg.Card.Height}
}

// BestContact returns the single best match of a drop against the table:
// the entity with the strictly highest overlap percentage among those
// strictly exceeding the threshold. Ties are broken by iteration order,
// so the first entity reaching a given maximum wins. An overlap of exactly
// the threshold does not count as contact. Entities with no locatable
// bounds are skipped. An empty entity list yields no contact.
func (r *Resolver) BestContact(drop core.Point, entities []Entity) Contact {
	dropped := core.DroppedBounds(drop, r.cardSize())
	result := Contact{DroppedBounds: dropped}

	for _, e := range entities {
		bounds, ok := r.locator.Bounds(e, entities)
		if !ok {
			continue
		}
		pct := core.OverlapPercentage(dropped, bounds)
		if pct <= r.cfg.Contact.Threshold {
			continue
		}
		if pct > result.Overlap {
			result = Contact{
				HasContact:    true,
				Entity:        e,
				Kind:          e.Kind(),
				Overlap:       pct,
				EntityBounds:  bounds,
				DroppedBounds: dropped,
			}
		}
	}
	return result
}

// AllContacts returns every entity strictly exceeding the threshold,
// sorted descending by overlap percentage. The sort is stable: entities
// with equal overlap retain their relative input order. Used when multiple
// overlaps must be considered, e.g. multi-entity stacking decisions.
func (r *Resolver) AllContacts(drop core.Point, entities []Entity) []Contact {
	dropped := core.DroppedBounds(drop, r.cardSize())

	var contacts []Contact
	for _, e := range entities {
		bounds, ok := r.locator.Bounds(e, entities)
		if !ok {
			continue
		}
		pct := core.OverlapPercentage(dropped, bounds)
		if pct <= r.cfg.Contact.Threshold {
			continue
		}
		contacts = append(contacts, Contact{
			HasContact:    true,
			Entity:        e,
			Kind:          e.Kind(),
			Overlap:       pct,
			EntityBounds:  bounds,
			DroppedBounds: dropped,
		})
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Overlap > contacts[j].Overlap
	})
	return contacts
}

// HasAnyContact reports whether the drop touches any entity.
func (r *Resolver) HasAnyContact(drop core.Point, entities []Entity) bool {
	return r.BestContact(drop, entities).HasContact
}

// LooseCardContacts returns only the loose-card matches from the full
// contact list. Some callers only care about card-to-card contact and not
// builds or stacks.
func (r *Resolver) LooseCardContacts(drop core.Point, entities []Entity) []Contact {
	all := r.AllContacts(drop, entities)
	var loose []Contact
	for _, c := range all {
		if c.Kind == KindLooseCard {
			loose = append(loose, c)
		}
	}
	return loose
}
