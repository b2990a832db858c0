package engine

import "testing"

func TestFairnessForceAfterStarvation(t *testing.T) {
	g := NewFairnessGuard(2.0, 3.0)

	g.Advance(1.9)
	if g.ShouldForce() {
		t.Error("guard forced before the starvation threshold")
	}

	g.Advance(0.2)
	if !g.ShouldForce() {
		t.Error("guard did not force after the starvation threshold")
	}
}

func TestFairnessForcesOncePerWindow(t *testing.T) {
	g := NewFairnessGuard(2.0, 3.0)

	g.Advance(2.5)
	if !g.ShouldForce() {
		t.Fatal("expected guard to force")
	}
	g.MarkForced(2.5)

	// The timer reset: no repeated forcing until a full window elapses,
	// even if the player never catches the forced letter.
	if g.ShouldForce() {
		t.Error("guard forced again immediately after intervening")
	}
	g.Advance(1.0)
	if g.ShouldForce() {
		t.Error("guard forced again before a full starvation window")
	}
	g.Advance(1.1)
	if !g.ShouldForce() {
		t.Error("guard did not force after a second full window")
	}
}

func TestFairnessSpawnResetsTimer(t *testing.T) {
	g := NewFairnessGuard(2.0, 3.0)

	g.Advance(1.5)
	g.NeededSpawned()
	g.Advance(1.5)
	if g.ShouldForce() {
		t.Error("spawn of the needed letter should have reset the timer")
	}
	if g.SinceSpawned() != 1.5 {
		t.Errorf("SinceSpawned = %f, expected 1.5", g.SinceSpawned())
	}
}

func TestFairnessCatchTimerIndependent(t *testing.T) {
	g := NewFairnessGuard(2.0, 3.0)

	g.Advance(1.0)
	g.NeededSpawned()
	g.Advance(0.5)
	g.NeededCaught()

	if g.SinceSpawned() != 0.5 {
		t.Errorf("SinceSpawned = %f, expected 0.5", g.SinceSpawned())
	}
	if g.SinceCaught() != 0 {
		t.Errorf("SinceCaught = %f, expected 0", g.SinceCaught())
	}
}

func TestFairnessPulseWindow(t *testing.T) {
	g := NewFairnessGuard(2.0, 3.0)

	if g.PulseActive(0) {
		t.Error("pulse active before any intervention")
	}

	g.MarkForced(5.0)
	if !g.PulseActive(5.0) {
		t.Error("pulse inactive right after intervention")
	}
	if !g.PulseActive(7.9) {
		t.Error("pulse expired before its window")
	}
	if g.PulseActive(8.1) {
		t.Error("pulse still active after its window")
	}

	g.Reset()
	if g.PulseActive(8.0) {
		t.Error("pulse survived a reset")
	}
}
