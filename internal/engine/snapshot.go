package engine

// EntityView is a read-only copy of one in-flight letter for rendering.
type EntityView struct {
	Glyph    rune
	X, Y     float64
	Velocity float64
}

// WordView is a read-only copy of one round word.
type WordView struct {
	Target   string
	Progress string
	Found    bool
}

// Snapshot captures the complete externally visible simulation state.
// The platform layer renders from snapshots and never touches engine
// internals; snapshots are also what determinism tests compare.
type Snapshot struct {
	Tick          uint64
	Phase         Phase
	Words         []WordView
	ActiveWord    int  // Index into Words, -1 when none
	NeededLetter  rune // 0 when no word is active
	Credits       int
	FairnessPulse bool // The guard intervened within the pulse window
	Pool          PoolStats
	Entities      []EntityView
}

// Snapshot returns the current read-only state.
func (e *Engine) Snapshot() Snapshot {
	words := e.round.Words()
	views := make([]WordView, len(words))
	for i, w := range words {
		views[i] = WordView{Target: w.Target, Progress: w.Progress, Found: w.Found}
	}

	actives := e.pool.ActiveEntities()
	entities := make([]EntityView, len(actives))
	for i, ent := range actives {
		entities[i] = EntityView{Glyph: ent.Glyph, X: ent.X, Y: ent.Y, Velocity: ent.Velocity}
	}

	needed, _ := e.round.NeededLetter()

	return Snapshot{
		Tick:          e.tick,
		Phase:         e.round.Phase(),
		Words:         views,
		ActiveWord:    e.round.ActiveWord(),
		NeededLetter:  needed,
		Credits:       e.round.Credits(),
		FairnessPulse: e.guard.PulseActive(e.now),
		Pool:          e.pool.Stats(),
		Entities:      entities,
	}
}
