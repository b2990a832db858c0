package game

import (
	"github.com/letterfall/letterfall/internal/engine"
)

// Snapshot captures the complete shell state for determinism testing.
// It wraps the engine snapshot together with the shell's own state (catcher
// position and display score), which the engine knows nothing about.
type Snapshot struct {
	Engine   engine.Snapshot
	CatcherX float64
	Score    int
	Tick     int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Engine:   g.eng.Snapshot(),
		CatcherX: g.catcherX,
		Score:    g.score,
		Tick:     g.tickCount,
	}
}
