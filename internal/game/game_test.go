package game

import (
	"reflect"
	"strings"
	"testing"

	"github.com/letterfall/letterfall/internal/core"
	"github.com/letterfall/letterfall/internal/engine"
)

// testParams removes every source of randomness and spawns exactly the
// needed letter once per tick, so catches resolve unambiguously.
func testParams() engine.Params {
	p := engine.DefaultParams()
	p.SpawnInterval = 1.0
	p.MaxBurst = 1
	p.BaseFallSpeed = 0.001
	p.VelocityJitter = 0
	p.NoiseLevel = 0
	p.StarvationTime = 0
	p.HitRadiusX = 1000
	p.HitRadiusY = 1000
	p.StartingCredits = 3
	p.MissPenalty = 1
	return p
}

// testConfig uses one tick per second so each Step advances the simulation
// by a full second.
func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 1, Seed: 7}
}

func testWords() []string {
	return []string{"a", "b", "c", "d", "e"}
}

func newTestGame(t *testing.T, words []string, params engine.Params) *Game {
	t.Helper()
	g := New(words, params, nil)
	g.Reset(testConfig())
	t.Cleanup(g.Destroy)
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestGameResetStartsRound(t *testing.T) {
	g := newTestGame(t, testWords(), testParams())

	state := g.State()
	if state.GameOver || state.Paused {
		t.Errorf("Fresh game should be running, got %+v", state)
	}

	snap := g.Snapshot()
	if snap.Engine.Phase != engine.PhasePlaying {
		t.Errorf("Phase = %v, want playing", snap.Engine.Phase)
	}
	if len(snap.Engine.Words) != engine.WordsPerRound {
		t.Errorf("Expected %d words, got %d", engine.WordsPerRound, len(snap.Engine.Words))
	}
	if g.Credits() != 3 {
		t.Errorf("Credits = %d, want 3", g.Credits())
	}
}

func TestGameCatchThroughToWin(t *testing.T) {
	g := newTestGame(t, testWords(), testParams())

	// Each Step spawns the needed letter; the oversized hit radius means
	// every catch press lands on it.
	for i := 0; i < engine.WordsPerRound; i++ {
		res := step(g, core.ActionCatch)
		if i < engine.WordsPerRound-1 && res.State.GameOver {
			t.Fatalf("Round over after %d catches", i+1)
		}
	}

	state := g.State()
	if !state.GameOver || !state.Won {
		t.Fatalf("Expected a won round, got %+v", state)
	}
	if g.WordsFound() != engine.WordsPerRound {
		t.Errorf("WordsFound = %d, want %d", g.WordsFound(), engine.WordsPerRound)
	}

	// 5 letters, 5 completed words, plus the credit bonus for the win.
	want := 5*LetterPoints + 5*WordBonus + 3*WinCreditBonus
	if state.Score != want {
		t.Errorf("Score = %d, want %d", state.Score, want)
	}
	if g.Elapsed() != 5 {
		t.Errorf("Elapsed = %d, want 5", g.Elapsed())
	}
}

func TestGameCatcherMovement(t *testing.T) {
	params := testParams()
	params.SpawnInterval = 1000 // Keep the field empty
	g := newTestGame(t, testWords(), params)

	fieldW := g.eng.Params().FieldW
	start := fieldW / 2
	if g.Snapshot().CatcherX != start {
		t.Fatalf("CatcherX = %v, want %v", g.Snapshot().CatcherX, start)
	}

	step(g, core.ActionRight)
	want := core.ClampF(start+CatcherSpeed, 0, fieldW-1)
	if got := g.Snapshot().CatcherX; got != want {
		t.Errorf("After right: CatcherX = %v, want %v", got, want)
	}

	for i := 0; i < 10; i++ {
		step(g, core.ActionLeft)
	}
	if got := g.Snapshot().CatcherX; got != 0 {
		t.Errorf("Catcher should clamp at the left edge, got %v", got)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(t, testWords(), testParams())

	step(g) // Spawns one entity
	if n := len(g.Snapshot().Engine.Entities); n != 1 {
		t.Fatalf("Expected 1 entity in flight, got %d", n)
	}

	res := step(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("Expected paused state")
	}
	if n := len(g.Snapshot().Engine.Entities); n != 0 {
		t.Errorf("Pause should drain the field, %d entities remain", n)
	}

	// Ticks while paused change nothing
	before := g.Snapshot()
	step(g)
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Paused game advanced on Step")
	}

	res = step(g, core.ActionPause)
	if res.State.Paused {
		t.Error("Second pause press should resume")
	}
}

func TestGameLossAndRestart(t *testing.T) {
	params := testParams()
	params.StartingCredits = 1
	params.BaseFallSpeed = 1000 // Off the field in a single tick
	g := newTestGame(t, testWords(), params)

	step(g) // Spawn
	res := step(g) // The needed letter falls out, credits hit zero
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("Expected a lost round, got %+v", res.State)
	}
	if n := len(g.Snapshot().Engine.Entities); n != 0 {
		t.Errorf("Loss should drain the field, %d entities remain", n)
	}

	res = step(g, core.ActionRestart)
	if res.State.GameOver {
		t.Fatal("Restart did not start a new round")
	}
	if res.State.Score != 0 {
		t.Errorf("Restart should zero the score, got %d", res.State.Score)
	}
	if g.Credits() != 1 {
		t.Errorf("Credits = %d, want 1 after restart", g.Credits())
	}
}

func TestGameClickCatch(t *testing.T) {
	g := newTestGame(t, testWords(), testParams())

	// A click outside the playfield is ignored
	in := core.NewInputFrame()
	in.SetClick(0, 0)
	g.Step(in)
	if g.Snapshot().Score != 0 {
		t.Fatal("Out-of-field click should not score")
	}

	// A click inside the field reaches the only entity through the
	// oversized hit radius
	in = core.NewInputFrame()
	in.SetClick(5, 5)
	g.Step(in)
	want := LetterPoints + WordBonus // Single-letter word completes
	if got := g.Snapshot().Score; got != want {
		t.Errorf("Score = %d, want %d", got, want)
	}
}

func TestGameWordSelection(t *testing.T) {
	params := testParams()
	params.SpawnInterval = 1000
	g := newTestGame(t, testWords(), params)

	step(g, core.ActionWord3)
	if got := g.Snapshot().Engine.ActiveWord; got != 2 {
		t.Errorf("ActiveWord = %d, want 2", got)
	}
	if got := g.Snapshot().Engine.NeededLetter; got != 'c' {
		t.Errorf("NeededLetter = %q, want 'c'", got)
	}
}

func TestGameRenderSmoke(t *testing.T) {
	g := newTestGame(t, testWords(), testParams())
	step(g, core.ActionCatch)

	cfg := testConfig()
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.Row(1), "LETTERFALL") {
		t.Error("Sidebar title missing from render")
	}
	if !strings.Contains(screen.String(), "Credits: 3") {
		t.Error("Credit line missing from render")
	}
	if !strings.Contains(screen.String(), "✓1 a") {
		t.Error("Found word should be marked in the sidebar")
	}
}

func TestGameDeterminism(t *testing.T) {
	params := engine.DefaultParams()
	params.StartingCredits = 50 // Survive long enough for the comparison

	script := func() []core.Action {
		return []core.Action{
			core.ActionRight, core.ActionRight, core.ActionCatch,
			core.ActionLeft, core.ActionNone, core.ActionCatch,
			core.ActionWord3, core.ActionNone, core.ActionCatch,
		}
	}

	run := func() Snapshot {
		g := New(testWords(), params, nil)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 12345})
		defer g.Destroy()

		actions := script()
		for i := 0; i < 300; i++ {
			step(g, actions[i%len(actions)])
		}
		return g.Snapshot()
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Same seed and inputs diverged:\n%+v\nvs\n%+v", first, second)
	}
}
