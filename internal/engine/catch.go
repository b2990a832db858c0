package engine

// CatchResult classifies what a player input resolved to.
type CatchResult int

const (
	// CatchNoTarget means nothing was under the input point; no state change.
	CatchNoTarget CatchResult = iota
	// CatchHit means the needed letter was caught.
	CatchHit
	// CatchMiss means a wrong letter was caught, costing credits.
	CatchMiss
)

// String returns a human-readable name for the result.
func (c CatchResult) String() string {
	switch c {
	case CatchNoTarget:
		return "NoTarget"
	case CatchHit:
		return "Hit"
	case CatchMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// CatchOutcome is the full result of resolving one input point.
type CatchOutcome struct {
	Result        CatchResult
	Glyph         rune // The caught glyph, 0 for NoTarget
	WordCompleted bool // The catch finished the active word
	RoundWon      bool // The catch finished the last word
	RoundLost     bool // The miss drained the credits
	Credits       int  // Credit balance after resolution
}

// resolveTarget finds the entity whose hit area contains the input point.
// Ties go to the entity nearest the miss boundary (largest Y), honoring the
// player's intent to catch the most urgent letter.
func resolveTarget(entities []*LetterEntity, x, y, rx, ry float64) *LetterEntity {
	var best *LetterEntity
	for _, e := range entities {
		dx := e.X - x
		if dx < 0 {
			dx = -dx
		}
		dy := e.Y - y
		if dy < 0 {
			dy = -dy
		}
		if dx > rx || dy > ry {
			continue
		}
		if best == nil || e.Y > best.Y {
			best = e
		}
	}
	return best
}
