package engine

import "fmt"

// Phase is the round lifecycle state.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePlaying Phase = "playing"
	PhasePaused  Phase = "paused"
	PhaseWon     Phase = "won"
	PhaseLost    Phase = "lost"
)

// WordsPerRound is the fixed number of target words in a round.
const WordsPerRound = 5

// Word is one round target: an immutable target string plus the ordered
// prefix of letters already collected. Progress is appended to only by the
// round machine in response to a confirmed catch.
type Word struct {
	Target   string
	Progress string
	Found    bool
}

// NeededLetter returns the next required character, or false when found.
func (w *Word) NeededLetter() (rune, bool) {
	if w.Found {
		return 0, false
	}
	rest := []rune(w.Target)[len([]rune(w.Progress)):]
	if len(rest) == 0 {
		return 0, false
	}
	return rest[0], true
}

// HitOutcome describes the effect of a confirmed catch on round state.
type HitOutcome struct {
	Advanced  bool // The active word's progress grew by one letter
	WordFound bool // The active word was completed by this catch
	Won       bool // All words are found; phase is now won
}

// MissOutcome describes the effect of a miss on round state.
type MissOutcome struct {
	Credits int  // Credit balance after the penalty
	Lost    bool // Credits reached zero; phase is now lost
}

// Round is the round/word state machine. Phases move idle -> playing <->
// paused, and playing -> won | lost; the terminal phases only leave via a
// new Start. Credits never go negative, and the only paths to won/lost are
// all-words-found and credits-reach-zero.
type Round struct {
	phase       Phase
	words       []Word
	active      int // Index of the active word, -1 when none remain
	credits     int
	missPenalty int
}

// NewRound creates an idle round with no words.
func NewRound() *Round {
	return &Round{phase: PhaseIdle, active: -1}
}

// Start seeds the round words, resets credits, selects the first word as
// active, and enters the playing phase. Exactly WordsPerRound non-empty
// words are required.
func (r *Round) Start(words []string, startingCredits, missPenalty int) error {
	if len(words) != WordsPerRound {
		return fmt.Errorf("engine: round needs exactly %d words, got %d", WordsPerRound, len(words))
	}
	for i, w := range words {
		if w == "" {
			return fmt.Errorf("engine: round word %d is empty", i)
		}
	}
	if startingCredits < 1 {
		return fmt.Errorf("engine: starting credits must be positive, got %d", startingCredits)
	}

	r.words = make([]Word, len(words))
	for i, w := range words {
		r.words[i] = Word{Target: w}
	}
	r.active = 0
	r.credits = startingCredits
	r.missPenalty = missPenalty
	r.phase = PhasePlaying
	return nil
}

// SelectWord switches the active word to any non-found word. Allowed only
// while playing; progress of the newly selected word is kept.
func (r *Round) SelectWord(i int) error {
	if r.phase != PhasePlaying {
		return ErrInvalidTransition
	}
	if i < 0 || i >= len(r.words) {
		return fmt.Errorf("engine: word index %d out of range", i)
	}
	if r.words[i].Found {
		return ErrInvalidTransition
	}
	r.active = i
	return nil
}

// ApplyHit handles a confirmed catch of glyph for the active word. The
// progress grows only when glyph is the next required letter; completing the
// word auto-advances the active word, and completing the last word wins the
// round.
func (r *Round) ApplyHit(glyph rune) HitOutcome {
	var out HitOutcome
	if r.phase != PhasePlaying || r.active < 0 {
		return out
	}

	w := &r.words[r.active]
	needed, ok := w.NeededLetter()
	if !ok || glyph != needed {
		return out
	}

	w.Progress += string(glyph)
	out.Advanced = true

	if w.Progress == w.Target {
		w.Found = true
		out.WordFound = true
		r.advanceActiveWord()
		if r.active < 0 {
			r.phase = PhaseWon
			out.Won = true
		}
	}
	return out
}

// advanceActiveWord moves the active word to the next non-found word,
// scanning forward with wrap-around, or -1 when none remain.
func (r *Round) advanceActiveWord() {
	n := len(r.words)
	for off := 1; off <= n; off++ {
		i := (r.active + off) % n
		if !r.words[i].Found {
			r.active = i
			return
		}
	}
	r.active = -1
}

// ApplyMiss deducts the miss penalty, clamped at zero. Reaching zero credits
// loses the round.
func (r *Round) ApplyMiss() MissOutcome {
	var out MissOutcome
	if r.phase != PhasePlaying {
		out.Credits = r.credits
		return out
	}

	r.credits -= r.missPenalty
	if r.credits <= 0 {
		r.credits = 0
		r.phase = PhaseLost
		out.Lost = true
	}
	out.Credits = r.credits
	return out
}

// Pause freezes the round. Valid only while playing.
func (r *Round) Pause() error {
	if r.phase != PhasePlaying {
		return ErrInvalidTransition
	}
	r.phase = PhasePaused
	return nil
}

// Resume unfreezes the round. Valid only while paused.
func (r *Round) Resume() error {
	if r.phase != PhasePaused {
		return ErrInvalidTransition
	}
	r.phase = PhasePlaying
	return nil
}

// Reset clears all round data and returns to idle.
func (r *Round) Reset() {
	r.phase = PhaseIdle
	r.words = nil
	r.active = -1
	r.credits = 0
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Credits returns the current credit balance.
func (r *Round) Credits() int {
	return r.credits
}

// Words returns a copy of the round words.
func (r *Round) Words() []Word {
	out := make([]Word, len(r.words))
	copy(out, r.words)
	return out
}

// ActiveWord returns the index of the active word, -1 when none.
func (r *Round) ActiveWord() int {
	return r.active
}

// NeededLetter returns the next required letter of the active word.
func (r *Round) NeededLetter() (rune, bool) {
	if r.active < 0 || r.active >= len(r.words) {
		return 0, false
	}
	return r.words[r.active].NeededLetter()
}
