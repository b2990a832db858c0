package engine

import (
	"math/rand"
)

// noiseAlphabet is the glyph set noise letters are drawn from.
const noiseAlphabet = "abcdefghijklmnopqrstuvwxyz"

// MotionResult reports what the motion/spawn pass did in one tick.
type MotionResult struct {
	Spawned      int // Letters spawned this tick
	Forced       bool // The fairness guard forced a needed-letter spawn
	NeededMissed int // Needed letters that fell off-field this tick
	NoiseDropped int // Noise letters that fell off-field (no penalty)
}

// Spawner drives the per-tick spawn and motion loop: it advances every
// active entity, retires off-field entities as misses, and spawns new
// bursts at the configured interval. Within one tick, motion and miss
// resolution happen before new spawns are evaluated.
type Spawner struct {
	pool  *EntityPool
	guard *FairnessGuard
	rng   *rand.Rand
	p     Params

	sinceSpawn float64
	lastNoise  rune
	tick       uint64
}

// NewSpawner creates a spawner over the given pool and guard.
func NewSpawner(pool *EntityPool, guard *FairnessGuard, rng *rand.Rand, p Params) *Spawner {
	return &Spawner{
		pool:  pool,
		guard: guard,
		rng:   rng,
		p:     p,
	}
}

// SetParams swaps the tuning, e.g. on restart or resize.
func (s *Spawner) SetParams(p Params) {
	s.p = p
}

// Reset clears spawn timing for a fresh round.
func (s *Spawner) Reset() {
	s.sinceSpawn = 0
	s.lastNoise = 0
	s.tick = 0
}

// Update runs one simulation tick: motion and misses first, then the guard
// timers, then the spawn decision, then the coarse pool cleanup cadence.
// needed is the active word's next required letter; hasNeeded is false when
// no word is active.
func (s *Spawner) Update(dt, now float64, needed rune, hasNeeded bool) MotionResult {
	var res MotionResult
	s.tick++

	// Motion and off-field misses. Releasing mutates the active slice, so
	// fallen entities are collected first.
	var fallen []*LetterEntity
	for _, e := range s.pool.ActiveEntities() {
		e.Y += e.Velocity * dt
		e.Age++
		if e.Y > s.p.FieldH {
			fallen = append(fallen, e)
		}
	}
	for _, e := range fallen {
		glyph := e.Glyph
		s.pool.Release(e)
		// Only an uncaught needed letter costs credits; a noise letter
		// falling off-field is harmless.
		if hasNeeded && glyph == needed {
			res.NeededMissed++
		} else {
			res.NoiseDropped++
		}
	}

	s.guard.Advance(dt)

	// Spawn decision: at most one burst per interval.
	s.sinceSpawn += dt
	if s.sinceSpawn >= s.p.SpawnInterval && hasNeeded {
		s.sinceSpawn -= s.p.SpawnInterval
		res.Spawned, res.Forced = s.spawnBurst(now, needed)
	}

	if s.p.CleanupEveryTicks > 0 && s.tick%uint64(s.p.CleanupEveryTicks) == 0 {
		s.pool.PerformCleanup()
	}

	return res
}

// spawnBurst spawns 1..MaxBurst letters at randomized positions. A pool
// exhausted error skips the remainder of the burst; the tick loop carries on.
func (s *Spawner) spawnBurst(now float64, needed rune) (spawned int, forced bool) {
	burst := 1
	if s.p.MaxBurst > 1 {
		burst += s.rng.Intn(s.p.MaxBurst)
	}

	for i := 0; i < burst; i++ {
		glyph, wasForced := s.chooseGlyph(now, needed)
		x := s.rng.Float64() * s.p.FieldW
		velocity := s.jitteredVelocity()

		if _, err := s.pool.Acquire(glyph, x, 0, velocity); err != nil {
			// Exhausted pool: skip this spawn attempt, never crash the tick.
			break
		}
		spawned++
		forced = forced || wasForced
		if glyph == needed {
			s.guard.NeededSpawned()
		}
	}
	return spawned, forced
}

// chooseGlyph picks the needed letter with probability 1-NoiseLevel, or a
// noise letter otherwise. The fairness guard overrides the roll when the
// needed letter has starved past its threshold.
func (s *Spawner) chooseGlyph(now float64, needed rune) (rune, bool) {
	if s.guard.ShouldForce() {
		s.guard.MarkForced(now)
		return needed, true
	}
	if s.rng.Float64() >= s.p.NoiseLevel {
		return needed, false
	}
	return s.noiseGlyph(needed), false
}

// noiseGlyph picks any letter other than the needed one, re-rolling once to
// avoid repeating the previous noise letter back to back.
func (s *Spawner) noiseGlyph(needed rune) rune {
	g := s.rollNoise(needed)
	if g == s.lastNoise {
		g = s.rollNoise(needed)
	}
	s.lastNoise = g
	return g
}

func (s *Spawner) rollNoise(needed rune) rune {
	for {
		g := rune(noiseAlphabet[s.rng.Intn(len(noiseAlphabet))])
		if g != needed {
			return g
		}
	}
}

// jitteredVelocity applies bounded random delta to the base fall speed so
// letters do not fall in lockstep.
func (s *Spawner) jitteredVelocity() float64 {
	jitter := s.p.VelocityJitter * (2*s.rng.Float64() - 1)
	v := s.p.BaseFallSpeed * (1 + jitter)
	if v < 0.1 {
		v = 0.1
	}
	return v
}
