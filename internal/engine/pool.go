package engine

import (
	"io"

	"github.com/charmbracelet/log"
)

// PoolStats is a read-only view of pool accounting.
type PoolStats struct {
	PoolSize     int // Inactive (pooled) entities
	ActiveCount  int // Entities in flight
	TotalCreated int // Cumulative successful acquires since construction/Clear
}

// EntityPool recycles a bounded set of letter entities. At most maxSize
// entities (pooled + active) exist at any time; acquiring beyond that bound
// fails with ErrPoolExhausted. The pool pre-populates initialSize inactive
// entities so steady-state play allocates nothing.
type EntityPool struct {
	initialSize int
	maxSize     int
	newSprite   RenderableFactory
	logger      *log.Logger

	free     []*LetterEntity
	active   []*LetterEntity
	byHandle map[Renderable]*LetterEntity

	totalCreated int
	destroyed    bool
}

// NewEntityPool creates a pool with initialSize pre-populated entities and a
// hard bound of maxSize. A nil factory yields invisible no-op renderables; a
// nil logger silences diagnostics.
func NewEntityPool(initialSize, maxSize int, factory RenderableFactory, logger *log.Logger) *EntityPool {
	if initialSize < 0 {
		initialSize = 0
	}
	if maxSize < initialSize {
		maxSize = initialSize
	}
	if factory == nil {
		factory = func() Renderable { return &noopSprite{} }
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &EntityPool{
		initialSize: initialSize,
		maxSize:     maxSize,
		newSprite:   factory,
		logger:      logger,
		byHandle:    make(map[Renderable]*LetterEntity, maxSize),
	}
	p.prepopulate()
	return p
}

// prepopulate fills the free list with initialSize hidden entities.
func (p *EntityPool) prepopulate() {
	p.free = make([]*LetterEntity, 0, p.maxSize)
	p.active = make([]*LetterEntity, 0, p.maxSize)
	for i := 0; i < p.initialSize; i++ {
		p.free = append(p.free, p.newEntity())
	}
}

// newEntity constructs an entity with a fresh hidden renderable.
func (p *EntityPool) newEntity() *LetterEntity {
	sprite := p.newSprite()
	sprite.Hide()
	return &LetterEntity{sprite: sprite}
}

// Acquire takes a pooled entity if one is available, or creates a new one if
// the bound allows. The entity is reset to the requested glyph, position and
// velocity, marked active, made visible, and registered for GetEntity lookup.
func (p *EntityPool) Acquire(glyph rune, x, y, velocity float64) (*LetterEntity, error) {
	if p.destroyed {
		return nil, ErrPoolDestroyed
	}

	var e *LetterEntity
	if n := len(p.free); n > 0 {
		e = p.free[n-1]
		p.free = p.free[:n-1]
	} else if len(p.active) < p.maxSize {
		e = p.newEntity()
	} else {
		return nil, ErrPoolExhausted
	}

	e.Glyph = glyph
	e.X = x
	e.Y = y
	e.Velocity = velocity
	e.Age = 0
	e.Active = true
	e.sprite.Show()

	p.active = append(p.active, e)
	p.byHandle[e.sprite] = e
	p.totalCreated++
	return e, nil
}

// Release returns an entity to the pooled set: marked inactive, hidden, and
// unregistered from handle lookup. Releasing an already-inactive entity is a
// logged no-op; double release never corrupts pool accounting.
func (p *EntityPool) Release(e *LetterEntity) {
	if e == nil {
		return
	}
	if !e.Active {
		p.logger.Warn("double release of pooled entity", "glyph", string(e.Glyph))
		return
	}

	e.Active = false
	e.sprite.Hide()
	delete(p.byHandle, e.sprite)

	for i, a := range p.active {
		if a == e {
			last := len(p.active) - 1
			p.active[i] = p.active[last]
			p.active[last] = nil
			p.active = p.active[:last]
			break
		}
	}

	if p.destroyed {
		e.sprite.Destroy()
		return
	}
	p.free = append(p.free, e)
}

// GetEntity resolves a renderable handle back to its active entity.
// Unknown or released handles report not found rather than an error.
func (p *EntityPool) GetEntity(h Renderable) (*LetterEntity, bool) {
	e, ok := p.byHandle[h]
	return e, ok
}

// ActiveEntities returns the entities currently in flight. The slice is owned
// by the pool; callers must not retain it across Release calls.
func (p *EntityPool) ActiveEntities() []*LetterEntity {
	return p.active
}

// PerformCleanup trims the pooled set back toward initialSize, destroying
// excess renderables. Called by the spawn loop at a coarse cadence so bursts
// of spawns do not permanently inflate steady-state memory.
func (p *EntityPool) PerformCleanup() {
	for len(p.free) > p.initialSize {
		n := len(p.free) - 1
		e := p.free[n]
		p.free[n] = nil
		p.free = p.free[:n]
		e.sprite.Destroy()
	}
}

// Clear releases every active entity, destroys everything, and restores the
// initial pre-populated state. TotalCreated resets to zero.
func (p *EntityPool) Clear() {
	for len(p.active) > 0 {
		p.Release(p.active[len(p.active)-1])
	}
	for _, e := range p.free {
		e.sprite.Destroy()
	}
	p.totalCreated = 0
	if p.destroyed {
		p.free = nil
		p.active = nil
		return
	}
	p.prepopulate()
}

// Destroy releases all resources and makes the pool unusable. The pool size
// afterward is zero and Acquire fails with ErrPoolDestroyed.
func (p *EntityPool) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.Clear()
	p.byHandle = make(map[Renderable]*LetterEntity)
}

// Stats returns current pool accounting.
func (p *EntityPool) Stats() PoolStats {
	return PoolStats{
		PoolSize:     len(p.free),
		ActiveCount:  len(p.active),
		TotalCreated: p.totalCreated,
	}
}
