package engine

import (
	"math/rand"
	"testing"
)

// spawnerParams returns tuning that makes spawner behavior easy to pin down:
// one letter per one-second interval, no jitter, noise disabled.
func spawnerParams() Params {
	p := DefaultParams()
	p.FieldW = 50
	p.FieldH = 1000 // Letters never fall off unless a test lowers this
	p.SpawnInterval = 1.0
	p.MaxBurst = 1
	p.BaseFallSpeed = 5.0
	p.VelocityJitter = 0
	p.NoiseLevel = 0
	p.StarvationTime = 0 // Forcing disabled unless a test enables it
	return p
}

func newTestSpawner(p Params) (*Spawner, *EntityPool, *FairnessGuard) {
	pool := NewEntityPool(p.PoolInitial, p.PoolMax, nil, nil)
	guard := NewFairnessGuard(p.StarvationTime, p.PulseTime)
	return NewSpawner(pool, guard, rand.New(rand.NewSource(1)), p), pool, guard
}

func TestSpawnerIntervalSpawning(t *testing.T) {
	s, pool, _ := newTestSpawner(spawnerParams())

	res := s.Update(0.5, 0.5, 'a', true)
	if res.Spawned != 0 {
		t.Errorf("spawned %d before the interval elapsed, expected 0", res.Spawned)
	}

	res = s.Update(0.5, 1.0, 'a', true)
	if res.Spawned != 1 {
		t.Errorf("spawned %d at the interval, expected 1", res.Spawned)
	}

	actives := pool.ActiveEntities()
	if len(actives) != 1 {
		t.Fatalf("active entities = %d, expected 1", len(actives))
	}
	if actives[0].Glyph != 'a' {
		t.Errorf("glyph = %q, expected needed letter with zero noise", actives[0].Glyph)
	}
	if actives[0].Y != 0 {
		t.Errorf("spawn Y = %f, expected 0 (top edge)", actives[0].Y)
	}
	if actives[0].Velocity != 5.0 {
		t.Errorf("velocity = %f, expected base speed with zero jitter", actives[0].Velocity)
	}
}

func TestSpawnerMotionAndMissAsymmetry(t *testing.T) {
	p := spawnerParams()
	p.FieldH = 10
	p.SpawnInterval = 100 // No spawns during this test
	s, pool, _ := newTestSpawner(p)

	needed, _ := pool.Acquire('a', 3, 8, 5)
	noise, _ := pool.Acquire('z', 7, 9, 5)
	_ = needed
	_ = noise

	res := s.Update(1.0, 1.0, 'a', true)

	// Both crossed the lower bound: the needed letter is a miss, the noise
	// letter is harmless
	if res.NeededMissed != 1 {
		t.Errorf("NeededMissed = %d, expected 1", res.NeededMissed)
	}
	if res.NoiseDropped != 1 {
		t.Errorf("NoiseDropped = %d, expected 1", res.NoiseDropped)
	}
	if got := pool.Stats().ActiveCount; got != 0 {
		t.Errorf("active after fall = %d, expected 0", got)
	}
}

func TestSpawnerForcedNeededSpawn(t *testing.T) {
	p := spawnerParams()
	p.NoiseLevel = 1.0 // Pure noise: the guard is the only source of 'a'
	p.StarvationTime = 2.0
	s, pool, _ := newTestSpawner(p)

	res := s.Update(1.0, 1.0, 'a', true)
	if res.Forced {
		t.Fatal("guard forced before the starvation threshold")
	}

	res = s.Update(1.0, 2.0, 'a', true)
	if !res.Forced {
		t.Fatal("guard did not force after the starvation threshold")
	}

	found := false
	for _, e := range pool.ActiveEntities() {
		if e.Glyph == 'a' {
			found = true
		}
	}
	if !found {
		t.Error("forced spawn did not produce the needed letter")
	}
}

func TestSpawnerNoiseAvoidsNeeded(t *testing.T) {
	p := spawnerParams()
	p.NoiseLevel = 1.0
	p.StarvationTime = 0 // Disable forcing entirely
	p.PoolMax = 200
	p.FieldH = 100000
	s, pool, _ := newTestSpawner(p)

	for i := 0; i < 50; i++ {
		s.Update(1.0, float64(i+1), 'a', true)
	}

	for _, e := range pool.ActiveEntities() {
		if e.Glyph == 'a' {
			t.Fatalf("pure-noise spawner produced the needed letter %q", e.Glyph)
		}
	}
}

func TestSpawnerSkipsOnExhaustedPool(t *testing.T) {
	p := spawnerParams()
	p.PoolInitial = 1
	p.PoolMax = 2
	s, pool, _ := newTestSpawner(p)

	s.Update(1.0, 1.0, 'a', true)
	s.Update(1.0, 2.0, 'a', true)

	if got := pool.Stats().ActiveCount; got != 2 {
		t.Fatalf("active = %d, expected pool at its bound", got)
	}

	// The pool is full; the spawn attempt must be skipped, not crash
	res := s.Update(1.0, 3.0, 'a', true)
	if res.Spawned != 0 {
		t.Errorf("spawned %d with an exhausted pool, expected 0", res.Spawned)
	}
	if got := pool.Stats().ActiveCount; got != 2 {
		t.Errorf("active = %d, expected unchanged bound", got)
	}
}

func TestSpawnerCleanupCadence(t *testing.T) {
	p := spawnerParams()
	p.PoolInitial = 2
	p.PoolMax = 20
	p.CleanupEveryTicks = 3
	p.SpawnInterval = 100 // No spawns; only motion/cleanup ticks
	s, pool, _ := newTestSpawner(p)

	// Inflate the pooled set past its initial size
	var entities []*LetterEntity
	for i := 0; i < 8; i++ {
		e, err := pool.Acquire('a', 0, 0, 1)
		if err != nil {
			t.Fatalf("Acquire failed: %v", err)
		}
		entities = append(entities, e)
	}
	for _, e := range entities {
		pool.Release(e)
	}
	if got := pool.Stats().PoolSize; got != 8 {
		t.Fatalf("pooled = %d, expected 8 before cleanup", got)
	}

	s.Update(0.1, 0.1, 'a', true)
	s.Update(0.1, 0.2, 'a', true)
	if got := pool.Stats().PoolSize; got != 8 {
		t.Errorf("pooled = %d, cleanup ran before its cadence", got)
	}

	s.Update(0.1, 0.3, 'a', true)
	if got := pool.Stats().PoolSize; got != 2 {
		t.Errorf("pooled = %d after cadence tick, expected 2", got)
	}
}
