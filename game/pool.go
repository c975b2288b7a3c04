package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/simukka/ufo-defense/common"
)

// AlienPool owns every alien of a session. Each alien is either in the free
// list (inactive, not in the scene) or in the active roster (in play).
// Aliens are reused and never dropped mid-session; the pool grows on demand.
type AlienPool struct {
	free   []*Alien
	active []*Alien

	cfg   Config
	rng   common.Source
	scene Scene

	created int
}

// NewAlienPool creates an empty pool. Call Prefill or Reset to populate it.
func NewAlienPool(cfg Config, rng common.Source, scene Scene) *AlienPool {
	return &AlienPool{
		free:   make([]*Alien, 0, cfg.AlienPoolSize),
		active: make([]*Alien, 0, cfg.AlienActiveCount),
		cfg:    cfg,
		rng:    rng,
		scene:  scene,
	}
}

// Prefill constructs n inactive aliens into the free list.
func (p *AlienPool) Prefill(n int) {
	for i := 0; i < n; i++ {
		p.free = append(p.free, p.newAlien())
	}
}

func (p *AlienPool) newAlien() *Alien {
	p.created++
	return &Alien{Speed: p.cfg.AlienSpeed}
}

// SpawnPoint returns a uniform random point in the spawn rectangle at the
// entry depth of the play field.
func (p *AlienPool) SpawnPoint() mgl64.Vec3 {
	b := p.cfg.Bounds
	return mgl64.Vec3{
		common.Uniform(p.rng, b.MinX, b.MaxX),
		common.Uniform(p.rng, b.MinY, b.MaxY),
		p.cfg.SpawnDepth,
	}
}

// Acquire activates an alien at a fresh spawn point and appends it to the
// active roster. The free list is used first; a new alien is built when it
// is empty.
func (p *AlienPool) Acquire() *Alien {
	a := p.take()
	p.active = append(p.active, a)
	return a
}

// take pops or builds an alien and activates it without touching the roster.
func (p *AlienPool) take() *Alien {
	var a *Alien
	if n := len(p.free); n > 0 {
		a = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		a = p.newAlien()
	}

	a.Active = true
	a.Position = p.SpawnPoint()
	a.object = p.scene.Add(AlienObject)
	p.scene.Move(a.object, a.Position, 0)
	return a
}

// deactivate takes the alien out of the scene and puts it on the free list.
func (p *AlienPool) deactivate(a *Alien) {
	p.scene.Remove(a.object)
	a.object = 0
	a.Active = false
	p.free = append(p.free, a)
}

// Release removes an active alien from the roster, preserving the order of
// the remaining aliens, and returns it to the free list. Releasing an alien
// that is not in the roster does nothing.
func (p *AlienPool) Release(a *Alien) {
	i := p.indexOf(a)
	if i < 0 {
		return
	}
	copy(p.active[i:], p.active[i+1:])
	p.active[len(p.active)-1] = nil
	p.active = p.active[:len(p.active)-1]
	p.deactivate(a)
}

// Replace swaps the alien in roster slot i for a freshly acquired one and
// releases the old alien. The new alien is taken before the old one is
// freed, so the slot always changes identity.
func (p *AlienPool) Replace(i int) *Alien {
	if i < 0 || i >= len(p.active) {
		return nil
	}
	old := p.active[i]
	a := p.take()
	p.active[i] = a
	p.deactivate(old)
	return a
}

// Respawn moves an active alien back to a fresh spawn point without
// returning it to the pool.
func (p *AlienPool) Respawn(a *Alien) {
	a.Position = p.SpawnPoint()
	p.scene.Move(a.object, a.Position, 0)
}

// Reset releases every active alien, tops the pool up to its configured
// size and activates n aliens.
func (p *AlienPool) Reset(n int) {
	for i := len(p.active) - 1; i >= 0; i-- {
		p.Release(p.active[i])
	}
	if missing := p.cfg.AlienPoolSize - p.created; missing > 0 {
		p.Prefill(missing)
	}
	for i := 0; i < n; i++ {
		p.Acquire()
	}
}

func (p *AlienPool) indexOf(a *Alien) int {
	for i, x := range p.active {
		if x == a {
			return i
		}
	}
	return -1
}

// Active returns the active roster. The slice is owned by the pool.
func (p *AlienPool) Active() []*Alien {
	return p.active
}

// ActiveCount returns the number of aliens in play.
func (p *AlienPool) ActiveCount() int {
	return len(p.active)
}

// FreeCount returns the number of aliens waiting in the free list.
func (p *AlienPool) FreeCount() int {
	return len(p.free)
}

// Created returns how many aliens the pool has ever built.
func (p *AlienPool) Created() int {
	return p.created
}

// ForEachReverse iterates over active aliens from the last slot to the first.
func (p *AlienPool) ForEachReverse(fn func(*Alien, int)) {
	for i := len(p.active) - 1; i >= 0; i-- {
		fn(p.active[i], i)
	}
}
