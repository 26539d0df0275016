package cassino

import (
	"fmt"
	"math/rand"

	"github.com/lindabaloyi/official-casino-game-sub001/internal/config"
	"github.com/lindabaloyi/official-casino-game-sub001/internal/core"
	"github.com/lindabaloyi/official-casino-game-sub001/internal/registry"
	"github.com/lindabaloyi/official-casino-game-sub001/internal/table"
)

// Owner tags for builds and capture bookkeeping.
const (
	ownerPlayer = "player"
	ownerCPU    = "cpu"
)

// phase is the current turn phase.
type phase int

const (
	phaseSelect phase = iota // choosing a hand card
	phaseAim                 // moving the drop cursor over the table
	phaseStack               // a staged temp stack awaits confirm/cancel
	phaseCPU                 // cpu thinking delay
	phaseOver                // round finished
)

// Table coordinate extents the drop cursor may roam.
const (
	tableMaxX = 640
	tableMaxY = 280
	// cursorStep is the cursor movement per tick of held input, in
	// table units.
	cursorStep = 10
)

// cpuDelayTicks is how long the CPU "thinks" before playing (~0.5s at 60fps).
const cpuDelayTicks = 30

// Game implements the Cassino card game: cards are dropped onto the table
// and the contact resolver decides which entity received the drop.
type Game struct {
	tableCfg config.TableConfig
	resolver *table.Resolver

	rng      *rand.Rand
	tick     uint64
	tickRate int

	deck       []table.Card
	playerHand []table.Card
	cpuHand    []table.Card
	entities   []table.Entity

	playerPile []table.Card
	cpuPile    []table.Card

	playerPoints RoundPoints
	cpuPoints    RoundPoints
	lastCapturer string

	phase    phase
	selected int        // index into playerHand
	cursor   core.Point // drop cursor in table units
	cpuWait  int

	// Staged stack state: the pending temp stack, the table cards it
	// absorbed, and the hand cards the player committed to it.
	pending     *table.TempStack
	pendingBase []table.Card
	pendingHand []table.Card

	highlight table.Entity // entity under the drop cursor, if any
	message   string

	outcome    core.RoundOutcome
	hasOutcome bool

	idSeq    int
	paused   bool
	gameOver bool
	tooSmall bool

	screenW int
	screenH int
}

// Package-level variables for config/difficulty, set by the CLI before
// the game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the table config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new Cassino game against the CPU.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("cassino", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "cassino"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Cassino"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tableCfg, err := config.LoadTable(configPath)
	if err != nil {
		tableCfg = config.DefaultTableConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTablePreset(&tableCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.tableCfg = tableCfg
	g.resolver = table.NewResolver(tableCfg)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	g.outcome = core.RoundOutcome{}
	g.hasOutcome = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < 70 || cfg.ScreenH < 22

	g.playerPile = nil
	g.cpuPile = nil
	g.playerPoints = RoundPoints{}
	g.cpuPoints = RoundPoints{}
	g.lastCapturer = ""
	g.phase = phaseSelect
	g.selected = 0
	g.cursor = core.Point{X: tableMaxX / 2, Y: tableMaxY / 2}
	g.cpuWait = 0
	g.pending = nil
	g.pendingBase = nil
	g.pendingHand = nil
	g.highlight = nil
	g.message = ""
	g.idSeq = 0
	g.paused = false
	g.gameOver = false

	g.deck = newDeck()
	shuffle(g.deck, g.rng)

	g.entities = nil
	var tableCards []table.Card
	tableCards, g.deck = draw(g.deck, tableDeal)
	for _, c := range tableCards {
		g.entities = append(g.entities, &table.LooseCard{Card: c})
	}
	g.dealHands()
}

// dealHands deals a fresh hand to both players.
func (g *Game) dealHands() {
	g.playerHand, g.deck = draw(g.deck, handSize)
	g.cpuHand, g.deck = draw(g.deck, handSize)
	g.selected = 0
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case phaseSelect:
		g.stepSelect(input)
	case phaseAim:
		g.stepAim(input)
	case phaseStack:
		g.stepStack(input)
	case phaseCPU:
		g.stepCPU()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepSelect(input core.InputFrame) {
	g.highlight = nil

	switch {
	case input.Has(core.ActionLeft):
		if g.selected > 0 {
			g.selected--
		}
	case input.Has(core.ActionRight):
		if g.selected < len(g.playerHand)-1 {
			g.selected++
		}
	case input.Has(core.ActionConfirm) || input.Has(core.ActionDrop):
		if len(g.playerHand) > 0 {
			g.phase = phaseAim
			g.message = ""
		}
	}
}

func (g *Game) stepAim(input core.InputFrame) {
	if input.Has(core.ActionBack) {
		g.phase = phaseSelect
		if g.pending != nil {
			g.phase = phaseStack
		}
		g.highlight = nil
		return
	}

	if input.Has(core.ActionLeft) {
		g.cursor.X -= cursorStep
	}
	if input.Has(core.ActionRight) {
		g.cursor.X += cursorStep
	}
	if input.Has(core.ActionUp) {
		g.cursor.Y -= cursorStep
	}
	if input.Has(core.ActionDown) {
		g.cursor.Y += cursorStep
	}
	g.cursor.X = clampF(g.cursor.X, 0, tableMaxX)
	g.cursor.Y = clampF(g.cursor.Y, 0, tableMaxY)

	// Live contact feedback for the renderer.
	contact := g.resolver.BestContact(g.cursor, g.entities)
	if contact.HasContact {
		g.highlight = contact.Entity
	} else {
		g.highlight = nil
	}

	if input.Has(core.ActionDrop) {
		g.applyDrop(g.cursor)
	}
}

func (g *Game) stepStack(input core.InputFrame) {
	switch {
	case input.Has(core.ActionConfirm):
		g.confirmStack()
	case input.Has(core.ActionBack):
		g.cancelStack()
	case input.Has(core.ActionLeft):
		if g.selected > 0 {
			g.selected--
		}
	case input.Has(core.ActionRight):
		if g.selected < len(g.playerHand)-1 {
			g.selected++
		}
	case input.Has(core.ActionDrop):
		if len(g.playerHand) > 0 {
			g.phase = phaseAim
		}
	}
}

// applyDrop resolves the player dropping the selected hand card at the
// given table point and applies the resulting transition.
func (g *Game) applyDrop(drop core.Point) {
	if g.selected < 0 || g.selected >= len(g.playerHand) {
		return
	}
	card := g.playerHand[g.selected]
	contact := g.resolver.BestContact(drop, g.entities)

	// A staged stack must be resolved before any other play.
	if g.pending != nil && (!contact.HasContact || contact.Entity != table.Entity(g.pending)) {
		g.message = "confirm or cancel the staged stack first"
		g.phase = phaseStack
		return
	}

	if !contact.HasContact {
		g.trail(card)
		return
	}

	switch target := contact.Entity.(type) {
	case *table.LooseCard:
		g.dropOnLoose(card, target)
	case *table.Build:
		g.dropOnBuild(card, target)
	case *table.TempStack:
		g.dropOnStack(card, target)
	default:
		// Unrecognized entities occupy loose-card slots but accept no
		// plays; treat the drop as a trail.
		g.trail(card)
	}
}

// trail places the selected card on the table as a loose card.
func (g *Game) trail(card table.Card) {
	g.playerHand = removeCard(g.playerHand, g.selected)
	g.entities = append(g.entities, &table.LooseCard{Card: card})
	g.message = fmt.Sprintf("trailed %s", card)
	g.endPlayerMove()
}

// dropOnLoose captures on a rank match, otherwise stages a temp stack.
func (g *Game) dropOnLoose(card table.Card, target *table.LooseCard) {
	if card.Rank == target.Card.Rank {
		g.playerHand = removeCard(g.playerHand, g.selected)
		g.entities = removeEntity(g.entities, target)
		g.playerPile = append(g.playerPile, target.Card, card)
		g.lastCapturer = ownerPlayer
		g.message = fmt.Sprintf("captured %s with %s", target.Card, card)
		g.endPlayerMove()
		return
	}

	g.playerHand = removeCard(g.playerHand, g.selected)
	g.entities = removeEntity(g.entities, target)
	stack := &table.TempStack{
		ID:    g.nextID("stack"),
		Cards: []table.Card{target.Card, card},
	}
	g.entities = append(g.entities, stack)
	g.pending = stack
	g.pendingBase = []table.Card{target.Card}
	g.pendingHand = []table.Card{card}
	g.phase = phaseStack
	g.message = fmt.Sprintf("staged stack worth %d", table.StackValue(stack.Cards))
}

// dropOnBuild captures a matching build or extends an extendable one.
func (g *Game) dropOnBuild(card table.Card, target *table.Build) {
	if card.Rank.Value() == target.Value {
		g.playerHand = removeCard(g.playerHand, g.selected)
		g.entities = removeEntity(g.entities, target)
		g.playerPile = append(g.playerPile, target.Cards...)
		g.playerPile = append(g.playerPile, card)
		g.lastCapturer = ownerPlayer
		g.message = fmt.Sprintf("captured build of %d", target.Value)
		g.endPlayerMove()
		return
	}

	if !target.Extendable {
		g.message = fmt.Sprintf("build of %d cannot be extended", target.Value)
		g.phase = phaseSelect
		return
	}

	newValue := target.Value + card.Rank.Value()
	rest := append(append([]table.Card(nil), g.playerHand[:g.selected]...), g.playerHand[g.selected+1:]...)
	if newValue > int(table.King) || indexOfRankValue(rest, newValue) < 0 {
		g.message = fmt.Sprintf("no card in hand to claim a build of %d", newValue)
		g.phase = phaseSelect
		return
	}

	g.playerHand = removeCard(g.playerHand, g.selected)
	target.Cards = append(target.Cards, card)
	target.Value = newValue
	target.Owner = ownerPlayer
	g.message = fmt.Sprintf("extended build to %d", newValue)
	g.endPlayerMove()
}

// dropOnStack adds the selected card to the staged stack.
func (g *Game) dropOnStack(card table.Card, target *table.TempStack) {
	g.playerHand = removeCard(g.playerHand, g.selected)
	target.Cards = append(target.Cards, card)
	if g.pending == nil {
		g.pending = target
	}
	g.pendingHand = append(g.pendingHand, card)
	g.phase = phaseStack
	g.message = fmt.Sprintf("stack now worth %d", table.StackValue(target.Cards))
}

// confirmStack commits the staged stack as a build. The player must hold
// a card matching the stack's displayed value.
func (g *Game) confirmStack() {
	if g.pending == nil {
		return
	}
	value, mode := table.StackValueMode(g.pending.Cards)
	if indexOfRankValue(g.playerHand, value) < 0 {
		g.message = fmt.Sprintf("need a %d in hand to build", value)
		return
	}

	build := &table.Build{
		ID:         g.nextID("build"),
		Owner:      ownerPlayer,
		Value:      value,
		Cards:      append([]table.Card(nil), g.pending.Cards...),
		Extendable: mode == table.SumMode,
	}
	g.entities = removeEntity(g.entities, g.pending)
	g.entities = append(g.entities, build)
	g.clearPending()
	g.message = fmt.Sprintf("built %d", value)
	g.endPlayerMove()
}

// cancelStack undoes the staging: hand cards return to the hand and the
// absorbed table cards come back as loose cards. No turn is consumed.
func (g *Game) cancelStack() {
	if g.pending == nil {
		return
	}
	g.entities = removeEntity(g.entities, g.pending)
	for _, c := range g.pendingBase {
		g.entities = append(g.entities, &table.LooseCard{Card: c})
	}
	g.playerHand = append(g.playerHand, g.pendingHand...)
	g.clearPending()
	g.phase = phaseSelect
	g.message = "stack cancelled"
}

func (g *Game) clearPending() {
	g.pending = nil
	g.pendingBase = nil
	g.pendingHand = nil
}

// endPlayerMove hands the turn to the CPU.
func (g *Game) endPlayerMove() {
	if g.selected >= len(g.playerHand) {
		g.selected = len(g.playerHand) - 1
	}
	if g.selected < 0 {
		g.selected = 0
	}
	g.highlight = nil
	g.phase = phaseCPU
	g.cpuWait = cpuDelayTicks
}

func (g *Game) stepCPU() {
	if g.cpuWait > 0 {
		g.cpuWait--
		return
	}
	g.cpuPlay()
	g.afterMove()
}

// cpuPlay makes the CPU's move: greedy capture when the difficulty bias
// allows, otherwise a safe trail.
func (g *Game) cpuPlay() {
	if len(g.cpuHand) == 0 {
		return
	}

	bestIdx := -1
	var bestTargets []table.Entity
	bestGain := 0
	for i, c := range g.cpuHand {
		targets := capturableBy(c, g.entities)
		gain := 0
		for _, e := range targets {
			gain += len(entityCards(e))
		}
		if gain > bestGain {
			bestGain = gain
			bestIdx = i
			bestTargets = targets
		}
	}

	if bestIdx >= 0 && g.rng.Float64() < g.tableCfg.Difficulty.CaptureBias {
		card := g.cpuHand[bestIdx]
		g.cpuHand = removeCard(g.cpuHand, bestIdx)
		for _, e := range bestTargets {
			g.entities = removeEntity(g.entities, e)
			g.cpuPile = append(g.cpuPile, entityCards(e)...)
		}
		g.cpuPile = append(g.cpuPile, card)
		g.lastCapturer = ownerCPU
		g.message = fmt.Sprintf("cpu captured with %s", card)
		return
	}

	if g.tableCfg.Difficulty.BuildsEnabled && g.cpuBuild() {
		return
	}

	idx := g.cpuSafeTrailIndex()
	card := g.cpuHand[idx]
	g.cpuHand = removeCard(g.cpuHand, idx)
	g.entities = append(g.entities, &table.LooseCard{Card: card})
	g.message = fmt.Sprintf("cpu trailed %s", card)
}

// cpuBuild creates a build from one loose card and one cpu card when the
// cpu holds a card matching the sum. Returns false when no build exists.
func (g *Game) cpuBuild() bool {
	for _, e := range g.entities {
		loose, ok := e.(*table.LooseCard)
		if !ok {
			continue
		}
		for i, c := range g.cpuHand {
			sum := loose.Card.Rank.Value() + c.Rank.Value()
			if sum > int(table.King) {
				continue
			}
			rest := append(append([]table.Card(nil), g.cpuHand[:i]...), g.cpuHand[i+1:]...)
			if indexOfRankValue(rest, sum) < 0 {
				continue
			}
			g.cpuHand = removeCard(g.cpuHand, i)
			g.entities = removeEntity(g.entities, e)
			g.entities = append(g.entities, &table.Build{
				ID:         g.nextID("build"),
				Owner:      ownerCPU,
				Value:      sum,
				Cards:      []table.Card{loose.Card, c},
				Extendable: true,
			})
			g.message = fmt.Sprintf("cpu built %d", sum)
			return true
		}
	}
	return false
}

// cpuSafeTrailIndex prefers discarding a card that matches nothing on the
// table, lowest first.
func (g *Game) cpuSafeTrailIndex() int {
	best := 0
	bestSafe := false
	bestValue := int(table.King) + 1
	for i, c := range g.cpuHand {
		safe := len(capturableBy(c, g.entities)) == 0
		v := c.Rank.Value()
		if (safe && !bestSafe) || (safe == bestSafe && v < bestValue) {
			best = i
			bestSafe = safe
			bestValue = v
		}
	}
	return best
}

// afterMove handles dealing and round end once the CPU has played.
func (g *Game) afterMove() {
	if len(g.playerHand) == 0 && len(g.cpuHand) == 0 {
		if len(g.deck) > 0 {
			g.dealHands()
			g.phase = phaseSelect
			return
		}
		g.finishRound()
		return
	}
	// Staging can spend several hand cards in one turn, so the player may
	// run dry while the CPU still holds cards.
	if len(g.playerHand) == 0 && len(g.cpuHand) > 0 {
		g.phase = phaseCPU
		g.cpuWait = cpuDelayTicks
		return
	}
	g.phase = phaseSelect
}

// finishRound sweeps the remaining table to the last capturer and tallies.
func (g *Game) finishRound() {
	if g.lastCapturer != "" {
		for _, e := range g.entities {
			cards := entityCards(e)
			if g.lastCapturer == ownerPlayer {
				g.playerPile = append(g.playerPile, cards...)
			} else {
				g.cpuPile = append(g.cpuPile, cards...)
			}
		}
		g.entities = nil
	}

	g.playerPoints, g.cpuPoints = scoreRound(g.playerPile, g.cpuPile)
	g.phase = phaseOver
	g.gameOver = true
	g.recordOutcome()
}

// recordOutcome snapshots the finished round for the platform to persist.
func (g *Game) recordOutcome() {
	winner := "draw"
	switch {
	case g.playerPoints.Total() > g.cpuPoints.Total():
		winner = ownerPlayer
	case g.cpuPoints.Total() > g.playerPoints.Total():
		winner = ownerCPU
	}

	duration := 0
	if g.tickRate > 0 {
		duration = int(g.tick) / g.tickRate
	}

	g.outcome = core.RoundOutcome{
		PlayerPoints: g.playerPoints.Total(),
		CPUPoints:    g.cpuPoints.Total(),
		PlayerCards:  len(g.playerPile),
		CPUCards:     len(g.cpuPile),
		Winner:       winner,
		DurationSecs: duration,
	}
	g.hasOutcome = true
}

// LastRound reports the outcome of the last finished round.
func (g *Game) LastRound() (core.RoundOutcome, bool) {
	return g.outcome, g.hasOutcome
}

func (g *Game) nextID(prefix string) string {
	g.idSeq++
	return fmt.Sprintf("%s-%d", prefix, g.idSeq)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.playerPoints.Total(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
