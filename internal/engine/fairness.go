package engine

// FairnessGuard bounds the worst-case wait before the needed letter appears.
// Pure random noise could starve the player indefinitely; the guard watches
// how long the needed letter has gone unspawned and forces the next spawn
// choice once per starvation window. It never touches letters already on
// the field.
type FairnessGuard struct {
	starvation float64 // Seconds without a needed-letter spawn before forcing
	pulse      float64 // Seconds the intervention marker stays visible

	sinceSpawned float64 // Seconds since the needed letter last spawned
	sinceCaught  float64 // Seconds since the needed letter was last caught
	pulseAt      float64 // Engine time of the last intervention, -1 if none
}

// NewFairnessGuard creates a guard with the given starvation threshold and
// pulse duration, both in seconds.
func NewFairnessGuard(starvation, pulse float64) *FairnessGuard {
	g := &FairnessGuard{
		starvation: starvation,
		pulse:      pulse,
	}
	g.Reset()
	return g
}

// Reset clears both timers and the pulse marker. Called when a round starts
// and whenever the active word (and therefore the needed letter) changes.
func (g *FairnessGuard) Reset() {
	g.sinceSpawned = 0
	g.sinceCaught = 0
	g.pulseAt = -1
}

// Advance accumulates elapsed simulation time on both timers.
func (g *FairnessGuard) Advance(dt float64) {
	g.sinceSpawned += dt
	g.sinceCaught += dt
}

// ShouldForce reports whether the next spawn choice must use the needed
// letter regardless of the noise roll.
func (g *FairnessGuard) ShouldForce() bool {
	return g.starvation > 0 && g.sinceSpawned >= g.starvation
}

// MarkForced records an intervention at the given engine time. The spawn
// timer resets so forcing applies once per starvation window, even if the
// player never catches the forced letter.
func (g *FairnessGuard) MarkForced(now float64) {
	g.pulseAt = now
	g.sinceSpawned = 0
}

// NeededSpawned resets the starvation timer after any spawn of the needed
// letter, forced or rolled.
func (g *FairnessGuard) NeededSpawned() {
	g.sinceSpawned = 0
}

// NeededCaught resets the catch timer after a confirmed catch.
func (g *FairnessGuard) NeededCaught() {
	g.sinceCaught = 0
}

// PulseActive reports whether an intervention marker should still be shown
// at the given engine time.
func (g *FairnessGuard) PulseActive(now float64) bool {
	return g.pulseAt >= 0 && now-g.pulseAt < g.pulse
}

// SinceSpawned returns seconds since the needed letter last spawned.
func (g *FairnessGuard) SinceSpawned() float64 {
	return g.sinceSpawned
}

// SinceCaught returns seconds since the needed letter was last caught.
func (g *FairnessGuard) SinceCaught() float64 {
	return g.sinceCaught
}
