package table

// ValueMode says how a stack's displayed value was computed.
type ValueMode int

const (
	// SetMode: every card shares one rank; the value is that rank's value.
	SetMode ValueMode = iota
	// SumMode: mixed ranks; the value is the arithmetic total.
	SumMode
)

// StackValue returns the displayed value of a staged stack. A stack of
// identical ranks is in set mode and shows the common rank value; any
// other stack is in sum mode and shows the total. This is presentation
// metadata only: it does not validate whether the stack is a legal build
// or capture under game rules.
//
// The card sequence must be non-empty; an empty sequence is a caller
// precondition violation and panics.
func StackValue(cards []Card) int {
	v, _ := StackValueMode(cards)
	return v
}

// StackValueMode returns the displayed value together with the mode that
// produced it. Same precondition as StackValue.
func StackValueMode(cards []Card) (int, ValueMode) {
	if len(cards) == 0 {
		panic("table: StackValue requires at least one card")
	}

	rank := cards[0].Rank
	sum := 0
	allSame := true
	for _, c := range cards {
		if c.Rank != rank {
			allSame = false
		}
		sum += c.Rank.Value()
	}

	if allSame {
		return rank.Value(), SetMode
	}
	return sum, SumMode
}
