// Package engine implements the letterfall simulation core: a bounded pool of
// falling letter entities, the spawn/motion loop that drives them, a fairness
// guard that bounds starvation of the needed letter, a point-based catch
// resolver, and the round/word state machine that governs win and loss.
//
// The engine is pure logic: no terminal, no Bubble Tea, an injectable RNG.
// The platform layer reads Snapshot() and calls the small mutation surface
// (StartRound, Tick, HandleInputAt, SelectWord, Pause/Resume/Restart/Reset).
package engine

// Renderable is the opaque on-screen handle owned by a letter entity.
// The pool shows a renderable when its entity is acquired, hides it on
// release, and destroys it when the entity itself is destroyed. The engine
// never draws; the platform decides what a renderable actually is.
type Renderable interface {
	Show()
	Hide()
	Destroy()
}

// RenderableFactory creates renderables for newly constructed entities.
type RenderableFactory func() Renderable

// noopSprite is the default renderable used when no factory is supplied.
// The TUI renders entities from snapshots, so visibility is all it tracks.
type noopSprite struct {
	visible bool
}

func (s *noopSprite) Show()    { s.visible = true }
func (s *noopSprite) Hide()    { s.visible = false }
func (s *noopSprite) Destroy() { s.visible = false }

// LetterEntity is a pooled, mutable falling letter. Entities are created
// only by the pool and mutated in place on acquire/release; they are never
// reallocated while pooled.
type LetterEntity struct {
	Glyph    rune    // Letter shown on screen
	X, Y     float64 // Position in field cells; Y grows downward
	Velocity float64 // Fall speed in cells per second
	Age      int     // Ticks since spawn
	Active   bool    // True while in flight

	sprite Renderable
}

// Renderable returns the entity's on-screen handle.
func (e *LetterEntity) Renderable() Renderable {
	return e.sprite
}
