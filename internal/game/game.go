// Package game implements the letterfall playfield shell. It adapts raw
// platform input (keys, mouse clicks, screen size) to the simulation engine
// and renders engine snapshots into a screen buffer. All game rules live in
// the engine; this package owns layout, the catcher, and display scoring.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/letterfall/letterfall/internal/core"
	"github.com/letterfall/letterfall/internal/engine"
)

// Layout constants
const (
	SidebarWidth = 22 // Right panel with words, credits and score
	CatcherWidth = 3  // On-screen width of the catcher paddle
)

// Scoring constants
const (
	LetterPoints   = 10 // Each needed letter caught
	WordBonus      = 50 // Completing a word
	WinCreditBonus = 20 // Per credit remaining on a win
)

// CatcherSpeed is how fast the catcher moves, in field units per second.
const CatcherSpeed = 24.0

// Visual characters for rendering
const (
	CatcherChar = '▀'
	ActiveMark  = '▸'
	FoundMark   = '✓'
)

// Game drives one letterfall session: a playfield of falling letters on
// the left and a word panel on the right.
type Game struct {
	eng    *engine.Engine
	base   engine.Params
	words  []string
	logger *log.Logger

	config   core.RuntimeConfig
	field    core.Rect // Playfield interior in screen coordinates
	catcherX float64   // In field coordinates

	score     int
	tickCount int
}

// New creates a game for the given word list and engine tuning. The field
// dimensions in params are overridden on Reset to fit the screen. A nil
// logger silences engine diagnostics.
func New(words []string, params engine.Params, logger *log.Logger) *Game {
	return &Game{
		base:   params,
		words:  words,
		logger: logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "letterfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Letterfall"
}

// Reset initializes or restarts the game for the given screen.
// The playfield is sized to whatever the sidebar leaves over, so the engine
// field dimensions follow the terminal size.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg

	fieldW := core.Max(cfg.ScreenW-SidebarWidth-2, 10)
	fieldH := core.Max(cfg.ScreenH-2, 8)
	g.field = core.NewRect(1, 1, fieldW, fieldH)

	params := g.base
	params.FieldW = float64(fieldW)
	params.FieldH = float64(fieldH)

	if g.eng != nil {
		g.eng.Destroy()
	}
	g.eng = engine.New(params, cfg.Seed, nil, g.logger)

	g.catcherX = params.FieldW / 2
	g.score = 0
	g.tickCount = 0

	if err := g.eng.StartRound(g.words); err != nil {
		// Word lists are validated by the topics package before they
		// reach the game; a failure here means a programming error.
		panic(fmt.Sprintf("game: cannot start round: %v", err))
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	snap := g.eng.Snapshot()

	switch snap.Phase {
	case engine.PhaseWon, engine.PhaseLost:
		if in.Has(core.ActionRestart) {
			g.eng.RestartRound()
			g.catcherX = g.eng.Params().FieldW / 2
			g.score = 0
			g.tickCount = 0
		}
		return core.StepResult{State: g.State()}

	case engine.PhasePaused:
		if in.Has(core.ActionPause) {
			g.eng.ResumeRound()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.eng.PauseRound()
		return core.StepResult{State: g.State()}
	}

	// Word targeting via the number row
	for a := core.ActionWord1; a <= core.ActionWord5; a++ {
		if in.Has(a) {
			g.eng.SelectWord(a.WordIndex())
		}
	}

	g.tickCount++
	dt := 1.0 / float64(core.Max(g.config.TickRate, 1))

	// Move the catcher
	if in.Has(core.ActionLeft) {
		g.catcherX -= CatcherSpeed * dt
	}
	if in.Has(core.ActionRight) {
		g.catcherX += CatcherSpeed * dt
	}
	g.catcherX = core.ClampF(g.catcherX, 0, g.eng.Params().FieldW-1)

	g.eng.Tick(dt)

	// Resolve catches after motion so the hit test sees current positions
	if in.Has(core.ActionCatch) {
		g.applyCatch(g.eng.HandleInputAt(g.catcherX, g.catchY()))
	}
	if in.Click != nil {
		if fx, fy, ok := g.fieldCoords(in.Click.X, in.Click.Y); ok {
			g.applyCatch(g.eng.HandleInputAt(fx, fy))
		}
	}

	return core.StepResult{State: g.State()}
}

// catchY is the vertical catch point for the keyboard catcher, just above
// the miss boundary.
func (g *Game) catchY() float64 {
	return g.eng.Params().FieldH - 1
}

// fieldCoords maps a screen position to field coordinates.
// Returns false for positions outside the playfield.
func (g *Game) fieldCoords(sx, sy int) (float64, float64, bool) {
	if !g.field.Contains(sx, sy) {
		return 0, 0, false
	}
	return float64(sx - g.field.X), float64(sy - g.field.Y), true
}

// applyCatch folds a catch outcome into the display score.
func (g *Game) applyCatch(out engine.CatchOutcome) {
	if out.Result != engine.CatchHit {
		return
	}
	g.score += LetterPoints
	if out.WordCompleted {
		g.score += WordBonus
	}
	if out.RoundWon {
		g.score += WinCreditBonus * out.Credits
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.eng.Snapshot()
	return core.GameState{
		Score:    g.score,
		GameOver: snap.Phase == engine.PhaseWon || snap.Phase == engine.PhaseLost,
		Won:      snap.Phase == engine.PhaseWon,
		Paused:   snap.Phase == engine.PhasePaused,
	}
}

// Elapsed returns how long the current round has been running, in seconds.
func (g *Game) Elapsed() int {
	rate := core.Max(g.config.TickRate, 1)
	return g.tickCount / rate
}

// WordsFound returns how many of the round's words are complete.
func (g *Game) WordsFound() int {
	found := 0
	for _, w := range g.eng.Snapshot().Words {
		if w.Found {
			found++
		}
	}
	return found
}

// Credits returns the current credit balance.
func (g *Game) Credits() int {
	return g.eng.Snapshot().Credits
}

// Destroy releases the underlying engine resources.
func (g *Game) Destroy() {
	if g.eng != nil {
		g.eng.Destroy()
	}
}
