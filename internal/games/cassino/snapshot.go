package cassino

import "github.com/lindabaloyi/official-casino-game-sub001/internal/table"

// PhaseType names the current turn phase for snapshots.
type PhaseType string

const (
	PhaseSelecting PhaseType = "selecting"
	PhaseAiming    PhaseType = "aiming"
	PhaseStaging   PhaseType = "staging"
	PhaseCPUTurn   PhaseType = "cpu_turn"
	PhaseRoundOver PhaseType = "round_over"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Phase        PhaseType
	DeckLen      int
	PlayerHand   int
	CPUHand      int
	LooseCards   int
	Builds       int
	TempStacks   int
	PlayerPile   int
	CPUPile      int
	PlayerPoints int
	CPUPoints    int
	LastCapturer string
	CursorX      float64
	CursorY      float64
	Selected     int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	p := PhaseSelecting
	switch g.phase {
	case phaseAim:
		p = PhaseAiming
	case phaseStack:
		p = PhaseStaging
	case phaseCPU:
		p = PhaseCPUTurn
	case phaseOver:
		p = PhaseRoundOver
	}

	loose, builds, stacks := 0, 0, 0
	for _, e := range g.entities {
		switch e.Kind() {
		case table.KindBuild:
			builds++
		case table.KindTempStack:
			stacks++
		default:
			loose++
		}
	}

	return Snapshot{
		Tick:         g.tick,
		Phase:        p,
		DeckLen:      len(g.deck),
		PlayerHand:   len(g.playerHand),
		CPUHand:      len(g.cpuHand),
		LooseCards:   loose,
		Builds:       builds,
		TempStacks:   stacks,
		PlayerPile:   len(g.playerPile),
		CPUPile:      len(g.cpuPile),
		PlayerPoints: g.playerPoints.Total(),
		CPUPoints:    g.cpuPoints.Total(),
		LastCapturer: g.lastCapturer,
		CursorX:      g.cursor.X,
		CursorY:      g.cursor.Y,
		Selected:     g.selected,
	}
}
