package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RoundOutcome summarizes a finished round for persistence.
// Games that track per-round results expose it through RoundReporter.
type RoundOutcome struct {
	PlayerPoints int
	CPUPoints    int
	PlayerCards  int
	CPUCards     int
	Winner       string // "player", "cpu" or "draw"
	DurationSecs int
}

// RoundReporter is an optional interface for games that can report the
// outcome of their last finished round.
type RoundReporter interface {
	LastRound() (RoundOutcome, bool)
}
