package engine

import (
	"errors"
	"reflect"
	"testing"
)

// engineParams returns tuning where exactly one needed letter spawns per
// one-second tick and nothing ever falls off the field.
func engineParams() Params {
	p := DefaultParams()
	p.FieldW = 50
	p.FieldH = 1000
	p.SpawnInterval = 1.0
	p.MaxBurst = 1
	p.BaseFallSpeed = 1.0
	p.VelocityJitter = 0
	p.NoiseLevel = 0
	p.StarvationTime = 0
	return p
}

func singleLetterWords() []string {
	return []string{"a", "b", "c", "d", "e"}
}

func TestEngineCatchThroughToWin(t *testing.T) {
	eng := New(engineParams(), 7, nil, nil)
	if err := eng.StartRound(singleLetterWords()); err != nil {
		t.Fatalf("StartRound failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		eng.Tick(1.0)

		snap := eng.Snapshot()
		if len(snap.Entities) != 1 {
			t.Fatalf("word %d: %d entities in flight, expected 1", i, len(snap.Entities))
		}
		ent := snap.Entities[0]
		if ent.Glyph != snap.NeededLetter {
			t.Fatalf("word %d: spawned %q, needed %q", i, ent.Glyph, snap.NeededLetter)
		}

		out := eng.HandleInputAt(ent.X, ent.Y)
		if out.Result != CatchHit {
			t.Fatalf("word %d: result = %v, expected Hit", i, out.Result)
		}
		if !out.WordCompleted {
			t.Fatalf("word %d: single-letter word not completed by its catch", i)
		}
		if i < 4 && out.RoundWon {
			t.Fatalf("word %d: round won early", i)
		}
	}

	snap := eng.Snapshot()
	if snap.Phase != PhaseWon {
		t.Errorf("phase = %v, expected won", snap.Phase)
	}
	if len(snap.Entities) != 0 {
		t.Errorf("%d entities after win, expected drained field", len(snap.Entities))
	}
	for _, w := range snap.Words {
		if !w.Found {
			t.Errorf("word %q not found after win", w.Target)
		}
	}
}

func TestEngineWrongCatchCostsCredits(t *testing.T) {
	p := engineParams()
	p.NoiseLevel = 1.0 // Everything spawned is a wrong letter
	eng := New(p, 7, nil, nil)
	if err := eng.StartRound(testWords()); err != nil {
		t.Fatalf("StartRound failed: %v", err)
	}

	eng.Tick(1.0)
	snap := eng.Snapshot()
	if len(snap.Entities) != 1 {
		t.Fatalf("%d entities, expected 1", len(snap.Entities))
	}

	out := eng.HandleInputAt(snap.Entities[0].X, snap.Entities[0].Y)
	if out.Result != CatchMiss {
		t.Fatalf("result = %v, expected Miss", out.Result)
	}
	if out.Credits != p.StartingCredits-p.MissPenalty {
		t.Errorf("credits = %d, expected %d", out.Credits, p.StartingCredits-p.MissPenalty)
	}
	if got := eng.Snapshot().Words[0].Progress; got != "" {
		t.Errorf("progress = %q, expected untouched", got)
	}
}

func TestEngineNoTarget(t *testing.T) {
	eng := New(engineParams(), 7, nil, nil)
	if err := eng.StartRound(testWords()); err != nil {
		t.Fatalf("StartRound failed: %v", err)
	}

	eng.Tick(1.0)
	before := eng.Snapshot()

	out := eng.HandleInputAt(-100, -100)
	if out.Result != CatchNoTarget {
		t.Fatalf("result = %v, expected NoTarget", out.Result)
	}

	after := eng.Snapshot()
	if after.Credits != before.Credits {
		t.Errorf("credits changed on NoTarget: %d -> %d", before.Credits, after.Credits)
	}
	if len(after.Entities) != len(before.Entities) {
		t.Errorf("entity count changed on NoTarget: %d -> %d", len(before.Entities), len(after.Entities))
	}
}

func TestEngineMissAsymmetry(t *testing.T) {
	t.Run("noise letters fall for free", func(t *testing.T) {
		p := engineParams()
		p.NoiseLevel = 1.0
		p.FieldH = 2
		p.BaseFallSpeed = 5.0
		eng := New(p, 7, nil, nil)
		if err := eng.StartRound(testWords()); err != nil {
			t.Fatalf("StartRound failed: %v", err)
		}

		for i := 0; i < 10; i++ {
			ev := eng.Tick(1.0)
			if ev.NeededMissed != 0 {
				t.Fatalf("tick %d: noise fall counted as a needed miss", i)
			}
		}
		if got := eng.Snapshot().Credits; got != p.StartingCredits {
			t.Errorf("credits = %d, expected untouched %d", got, p.StartingCredits)
		}
	})

	t.Run("needed letters fall for a penalty", func(t *testing.T) {
		p := engineParams()
		p.FieldH = 2
		p.BaseFallSpeed = 5.0
		eng := New(p, 7, nil, nil)
		if err := eng.StartRound(testWords()); err != nil {
			t.Fatalf("StartRound failed: %v", err)
		}

		// Tick 1 spawns the needed letter; tick 2 drops it off-field
		eng.Tick(1.0)
		ev := eng.Tick(1.0)
		if ev.NeededMissed != 1 {
			t.Fatalf("NeededMissed = %d, expected 1", ev.NeededMissed)
		}
		if got := eng.Snapshot().Credits; got != p.StartingCredits-p.MissPenalty {
			t.Errorf("credits = %d, expected %d", got, p.StartingCredits-p.MissPenalty)
		}
	})
}

func TestEngineLossDrainsField(t *testing.T) {
	p := engineParams()
	p.StartingCredits = 1
	p.MissPenalty = 1
	p.FieldH = 2
	p.BaseFallSpeed = 5.0
	eng := New(p, 7, nil, nil)
	if err := eng.StartRound(testWords()); err != nil {
		t.Fatalf("StartRound failed: %v", err)
	}

	eng.Tick(1.0)
	ev := eng.Tick(1.0)
	if !ev.RoundLost {
		t.Fatal("expected the round to be lost when credits drain")
	}

	snap := eng.Snapshot()
	if snap.Phase != PhaseLost {
		t.Errorf("phase = %v, expected lost", snap.Phase)
	}
	if snap.Credits != 0 {
		t.Errorf("credits = %d, expected clamped 0", snap.Credits)
	}
	if len(snap.Entities) != 0 {
		t.Errorf("%d entities after loss, expected drained field", len(snap.Entities))
	}

	// Terminal phase: further ticks are inert
	before := eng.Snapshot()
	eng.Tick(1.0)
	if got := eng.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Error("tick in lost phase mutated state")
	}
}

func TestEngineFairnessPulseSurfaced(t *testing.T) {
	p := engineParams()
	p.NoiseLevel = 1.0
	p.StarvationTime = 2.0
	p.PulseTime = 3.0
	eng := New(p, 7, nil, nil)
	if err := eng.StartRound(testWords()); err != nil {
		t.Fatalf("StartRound failed: %v", err)
	}

	ev := eng.Tick(1.0)
	if ev.FairnessPulse {
		t.Fatal("pulse before the starvation threshold")
	}

	ev = eng.Tick(1.0)
	if !ev.FairnessPulse {
		t.Fatal("no pulse after the starvation threshold")
	}
	if !eng.Snapshot().FairnessPulse {
		t.Error("snapshot does not surface the fairness pulse")
	}
}

func TestEnginePauseResume(t *testing.T) {
	eng := New(engineParams(), 7, nil, nil)
	if err := eng.StartRound(testWords()); err != nil {
		t.Fatalf("StartRound failed: %v", err)
	}

	eng.Tick(1.0)
	eng.Tick(1.0)
	creditsBefore := eng.Snapshot().Credits

	if err := eng.PauseRound(); err != nil {
		t.Fatalf("PauseRound failed: %v", err)
	}

	snap := eng.Snapshot()
	if snap.Phase != PhasePaused {
		t.Errorf("phase = %v, expected paused", snap.Phase)
	}
	// Pausing releases in-flight entities so no stale motion survives
	if len(snap.Entities) != 0 {
		t.Errorf("%d entities while paused, expected 0", len(snap.Entities))
	}
	if snap.Credits != creditsBefore {
		t.Errorf("credits changed on pause: %d -> %d", creditsBefore, snap.Credits)
	}

	// Ticks and inputs are inert while paused
	eng.Tick(1.0)
	if got := eng.Snapshot().Tick; got != snap.Tick {
		t.Errorf("tick advanced while paused: %d -> %d", snap.Tick, got)
	}
	if out := eng.HandleInputAt(10, 10); out.Result != CatchNoTarget {
		t.Errorf("input while paused = %v, expected NoTarget", out.Result)
	}

	if err := eng.ResumeRound(); err != nil {
		t.Fatalf("ResumeRound failed: %v", err)
	}
	if err := eng.ResumeRound(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double resume: expected ErrInvalidTransition, got %v", err)
	}
	if got := eng.Snapshot().Phase; got != PhasePlaying {
		t.Errorf("phase after resume = %v, expected playing", got)
	}
}

func TestEngineSelectWordAndRestart(t *testing.T) {
	eng := New(engineParams(), 7, nil, nil)
	if err := eng.StartRound(testWords()); err != nil {
		t.Fatalf("StartRound failed: %v", err)
	}

	if err := eng.SelectWord(3); err != nil {
		t.Fatalf("SelectWord failed: %v", err)
	}
	snap := eng.Snapshot()
	if snap.ActiveWord != 3 {
		t.Errorf("active word = %d, expected 3", snap.ActiveWord)
	}
	if snap.NeededLetter != 's' { // "sky"
		t.Errorf("needed letter = %q, expected 's'", snap.NeededLetter)
	}

	if err := eng.RestartRound(); err != nil {
		t.Fatalf("RestartRound failed: %v", err)
	}
	snap = eng.Snapshot()
	if snap.Phase != PhasePlaying || snap.ActiveWord != 0 {
		t.Errorf("after restart: phase = %v active = %d, expected fresh round", snap.Phase, snap.ActiveWord)
	}
	for _, w := range snap.Words {
		if w.Progress != "" || w.Found {
			t.Errorf("word %q kept progress across restart", w.Target)
		}
	}
}

func TestEngineResetRoundState(t *testing.T) {
	eng := New(engineParams(), 7, nil, nil)
	if err := eng.StartRound(testWords()); err != nil {
		t.Fatalf("StartRound failed: %v", err)
	}
	eng.Tick(1.0)

	eng.ResetRoundState()
	snap := eng.Snapshot()
	if snap.Phase != PhaseIdle {
		t.Errorf("phase = %v, expected idle", snap.Phase)
	}
	if len(snap.Words) != 0 || len(snap.Entities) != 0 {
		t.Error("expected all round data and entities cleared")
	}
	if snap.Pool.ActiveCount != 0 || snap.Pool.TotalCreated != 0 {
		t.Errorf("pool = %+v, expected reset accounting", snap.Pool)
	}

	// Restart after reset has nothing to restart
	if err := eng.RestartRound(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestEngineCatchPrefersMostImminent(t *testing.T) {
	entities := []*LetterEntity{
		{Glyph: 'a', X: 5, Y: 3, Active: true},
		{Glyph: 'b', X: 5, Y: 4, Active: true},
		{Glyph: 'c', X: 20, Y: 10, Active: true},
	}

	// Both 'a' and 'b' are in range; 'b' is nearer the miss boundary
	got := resolveTarget(entities, 5, 3.5, 1.5, 1.5)
	if got == nil || got.Glyph != 'b' {
		t.Errorf("resolveTarget picked %+v, expected the lowest letter 'b'", got)
	}

	if got := resolveTarget(entities, 40, 2, 1.5, 1.5); got != nil {
		t.Errorf("resolveTarget picked %+v far from any letter, expected nil", got)
	}
}

func TestEngineDeterminism(t *testing.T) {
	p := DefaultParams()
	p.NoiseLevel = 0.5
	p.StarvationTime = 2.0

	run := func() Snapshot {
		eng := New(p, 12345, nil, nil)
		if err := eng.StartRound(testWords()); err != nil {
			t.Fatalf("StartRound failed: %v", err)
		}
		dt := 1.0 / 60.0
		for i := 0; i < 600; i++ {
			eng.Tick(dt)
		}
		return eng.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("same seed diverged:\n%+v\nvs\n%+v", snap1, snap2)
	}
}
