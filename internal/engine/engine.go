package engine

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// TickEvents aggregates what one Tick did, so the shell can keep a display
// score and react to phase changes without diffing snapshots.
type TickEvents struct {
	Spawned       int
	NeededMissed  int
	FairnessPulse bool
	RoundLost     bool
}

// Engine is the simulation facade. It owns the entity pool, the spawn loop,
// the fairness guard, and the round state machine, and exposes the mutation
// surface the platform layer drives plus read-only snapshots.
//
// Everything runs on a single goroutine: ticks and input resolution share
// one event sequence, so catches apply immediately against the current
// entity set and an entity can never be both caught and missed.
type Engine struct {
	params Params
	logger *log.Logger
	rng    *rand.Rand

	pool    *EntityPool
	guard   *FairnessGuard
	spawner *Spawner
	round   *Round

	topicWords []string
	now        float64 // Elapsed simulation seconds
	tick       uint64
}

// New creates an engine with the given tuning and RNG seed. A nil logger
// silences diagnostics; a nil factory uses invisible no-op renderables.
func New(p Params, seed int64, factory RenderableFactory, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := rand.New(rand.NewSource(seed))

	pool := NewEntityPool(p.PoolInitial, p.PoolMax, factory, logger)
	guard := NewFairnessGuard(p.StarvationTime, p.PulseTime)

	return &Engine{
		params:  p,
		logger:  logger,
		rng:     rng,
		pool:    pool,
		guard:   guard,
		spawner: NewSpawner(pool, guard, rng, p),
		round:   NewRound(),
	}
}

// Params returns the current tuning.
func (e *Engine) Params() Params {
	return e.params
}

// SetParams swaps the tuning for the next round. Takes effect on StartRound.
func (e *Engine) SetParams(p Params) {
	e.params = p
	e.spawner.SetParams(p)
}

// StartRound seeds the round with the topic's words and enters playing.
// Any previous round state is torn down first.
func (e *Engine) StartRound(topicWords []string) error {
	e.drain()
	if err := e.round.Start(topicWords, e.params.StartingCredits, e.params.MissPenalty); err != nil {
		return err
	}
	e.topicWords = append([]string(nil), topicWords...)
	e.guard.Reset()
	e.spawner.Reset()
	e.now = 0
	e.tick = 0
	return nil
}

// RestartRound re-runs StartRound with the same topic words.
func (e *Engine) RestartRound() error {
	if e.topicWords == nil {
		return ErrInvalidTransition
	}
	return e.StartRound(e.topicWords)
}

// SelectWord switches the active word. The fairness guard resets because the
// needed letter changed.
func (e *Engine) SelectWord(i int) error {
	prev := e.round.ActiveWord()
	if err := e.round.SelectWord(i); err != nil {
		return err
	}
	if e.round.ActiveWord() != prev {
		e.guard.Reset()
	}
	return nil
}

// PauseRound stops the spawn timer and releases all in-flight entities, so
// nothing stale survives into the frozen state. Word progress and credits
// are kept intact.
func (e *Engine) PauseRound() error {
	if err := e.round.Pause(); err != nil {
		return err
	}
	e.drain()
	return nil
}

// ResumeRound continues a paused round.
func (e *Engine) ResumeRound() error {
	return e.round.Resume()
}

// ResetRoundState clears all round data, releases every pooled entity, and
// returns to idle.
func (e *Engine) ResetRoundState() {
	e.round.Reset()
	e.topicWords = nil
	e.pool.Clear()
	e.guard.Reset()
	e.spawner.Reset()
	e.now = 0
	e.tick = 0
}

// Destroy tears the engine down; the pool becomes unusable.
func (e *Engine) Destroy() {
	e.round.Reset()
	e.pool.Destroy()
}

// drain releases every active entity back to the pool.
func (e *Engine) drain() {
	actives := e.pool.ActiveEntities()
	for len(actives) > 0 {
		e.pool.Release(actives[len(actives)-1])
		actives = e.pool.ActiveEntities()
	}
}

// Tick advances the simulation by dt seconds. It is a no-op outside the
// playing phase; pausing therefore freezes motion and credit decay without
// touching timers elsewhere.
func (e *Engine) Tick(dt float64) TickEvents {
	var ev TickEvents
	if e.round.Phase() != PhasePlaying {
		return ev
	}

	e.now += dt
	e.tick++

	needed, hasNeeded := e.round.NeededLetter()
	res := e.spawner.Update(dt, e.now, needed, hasNeeded)
	ev.Spawned = res.Spawned
	ev.FairnessPulse = res.Forced
	ev.NeededMissed = res.NeededMissed

	for i := 0; i < res.NeededMissed; i++ {
		out := e.round.ApplyMiss()
		if out.Lost {
			ev.RoundLost = true
			e.drain()
			break
		}
	}

	return ev
}

// HandleInputAt resolves a player input at field coordinates (x, y) against
// the current entity set. Applied immediately, not deferred to the next
// tick. Outside the playing phase every input resolves to NoTarget.
func (e *Engine) HandleInputAt(x, y float64) CatchOutcome {
	out := CatchOutcome{Result: CatchNoTarget, Credits: e.round.Credits()}
	if e.round.Phase() != PhasePlaying {
		return out
	}

	target := resolveTarget(e.pool.ActiveEntities(), x, y, e.params.HitRadiusX, e.params.HitRadiusY)
	if target == nil {
		return out
	}

	glyph := target.Glyph
	e.pool.Release(target)
	out.Glyph = glyph

	needed, hasNeeded := e.round.NeededLetter()
	if hasNeeded && glyph == needed {
		hit := e.round.ApplyHit(glyph)
		e.guard.NeededCaught()
		out.Result = CatchHit
		out.WordCompleted = hit.WordFound
		out.RoundWon = hit.Won
		if hit.WordFound {
			// The needed letter changed (or the round ended).
			e.guard.Reset()
		}
		if hit.Won {
			e.drain()
		}
	} else {
		// A wrong catch always costs credits, unlike an uncaught noise
		// letter falling off-field.
		miss := e.round.ApplyMiss()
		out.Result = CatchMiss
		out.RoundLost = miss.Lost
		if miss.Lost {
			e.drain()
		}
	}

	out.Credits = e.round.Credits()
	return out
}

// Now returns elapsed simulation time in seconds.
func (e *Engine) Now() float64 {
	return e.now
}

// Pool exposes pool statistics for the read surface.
func (e *Engine) PoolStats() PoolStats {
	return e.pool.Stats()
}
