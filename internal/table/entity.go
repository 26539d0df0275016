package table

import "github.com/lindabaloyi/official-casino-game-sub001/internal/core"

// EntityKind discriminates the three kinds of table entity.
type EntityKind int

const (
	KindLooseCard EntityKind = iota
	KindBuild
	KindTempStack
)

// String returns a human-readable kind name.
func (k EntityKind) String() string {
	switch k {
	case KindLooseCard:
		return "loose_card"
	case KindBuild:
		return "build"
	case KindTempStack:
		return "temporary_stack"
	default:
		return "unknown"
	}
}

// Entity is a card, build, or temporary stack currently on the table.
// The core never mutates entities; it only reads the current list to
// answer contact and value queries. Creation and destruction of entities
// belong to the surrounding game controller.
type Entity interface {
	Kind() EntityKind
}

// BoundsProvider is an optional capability: entities that know their real
// rendered rectangle can implement it to bypass the locator's positional
// heuristic. The heuristic remains the default when absent.
type BoundsProvider interface {
	Bounds() (core.Rect, bool)
}

// LooseCard is a single face-up card on the table.
type LooseCard struct {
	Card Card
}

// Kind implements Entity.
func (*LooseCard) Kind() EntityKind { return KindLooseCard }

// Build is a committed stack whose cards jointly satisfy a declared
// numeric target value.
type Build struct {
	ID         string
	Owner      string
	Value      int
	Cards      []Card
	Extendable bool
}

// Kind implements Entity.
func (*Build) Kind() EntityKind { return KindBuild }

// TempStack is a transient, player-confirmable staging stack. It has no
// committed value; its displayed label comes from StackValue when shown.
type TempStack struct {
	ID    string
	Cards []Card
}

// Kind implements Entity.
func (*TempStack) Kind() EntityKind { return KindTempStack }
