package engine

import "errors"

var (
	// ErrPoolExhausted is returned by Acquire when the pool is at its
	// configured maximum. Fatal to that spawn attempt only; callers skip
	// the spawn and carry on.
	ErrPoolExhausted = errors.New("engine: entity pool exhausted")

	// ErrPoolDestroyed is returned when a destroyed pool is used.
	ErrPoolDestroyed = errors.New("engine: entity pool destroyed")

	// ErrInvalidTransition is returned for state machine operations that
	// are not valid in the current phase, e.g. selecting a word while idle.
	ErrInvalidTransition = errors.New("engine: invalid phase transition")
)
