package table

import "testing"

func TestStackValue(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		expected int
		mode     ValueMode
	}{
		{
			name:     "set mode pair",
			cards:    []Card{{Rank: 9, Suit: Hearts}, {Rank: 9, Suit: Spades}},
			expected: 9,
			mode:     SetMode,
		},
		{
			name:     "sum mode pair",
			cards:    []Card{{Rank: 3, Suit: Hearts}, {Rank: 6, Suit: Spades}},
			expected: 9,
			mode:     SumMode,
		},
		{
			name:     "single card is set mode",
			cards:    []Card{{Rank: Queen, Suit: Clubs}},
			expected: 12,
			mode:     SetMode,
		},
		{
			name: "set mode triple",
			cards: []Card{
				{Rank: 4, Suit: Hearts},
				{Rank: 4, Suit: Clubs},
				{Rank: 4, Suit: Diamonds},
			},
			expected: 4,
			mode:     SetMode,
		},
		{
			name: "sum mode with duplicate ranks mixed in",
			cards: []Card{
				{Rank: 2, Suit: Hearts},
				{Rank: 2, Suit: Clubs},
				{Rank: 5, Suit: Spades},
			},
			expected: 9,
			mode:     SumMode,
		},
		{
			name:     "aces count as one",
			cards:    []Card{{Rank: Ace, Suit: Hearts}, {Rank: 9, Suit: Clubs}},
			expected: 10,
			mode:     SumMode,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			value, mode := StackValueMode(tc.cards)
			if value != tc.expected {
				t.Errorf("StackValueMode() value = %d, expected %d", value, tc.expected)
			}
			if mode != tc.mode {
				t.Errorf("StackValueMode() mode = %v, expected %v", mode, tc.mode)
			}
			if got := StackValue(tc.cards); got != tc.expected {
				t.Errorf("StackValue() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestStackValueEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("StackValue(nil) should panic: empty stacks violate the precondition")
		}
	}()
	StackValue(nil)
}
