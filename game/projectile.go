package game

import "github.com/go-gl/mathgl/mgl64"

// Bullet is a player projectile travelling away from the camera along -Z.
type Bullet struct {
	Position mgl64.Vec3
	Speed    float64 // depth units per tick
	Alive    bool

	object ObjectID
}

// Advance moves the bullet one tick away from the camera.
func (b *Bullet) Advance() {
	b.Position[2] -= b.Speed
}

// Expired reports whether the bullet has passed the rear exit plane.
func (b *Bullet) Expired(exitDepth float64) bool {
	return b.Position.Z() < exitDepth
}

// BulletList holds the bullets in flight in spawn order. Bullets are not
// pooled; the fire cooldown bounds how many exist.
type BulletList struct {
	bullets   []*Bullet
	scene     Scene
	exitDepth float64
}

// NewBulletList creates an empty list drawing into scene.
func NewBulletList(scene Scene, exitDepth float64) *BulletList {
	return &BulletList{
		bullets:   make([]*Bullet, 0, 32),
		scene:     scene,
		exitDepth: exitDepth,
	}
}

// Spawn creates a bullet at origin and appends it to the list.
func (l *BulletList) Spawn(origin mgl64.Vec3, speed float64) *Bullet {
	b := &Bullet{
		Position: origin,
		Speed:    speed,
		Alive:    true,
		object:   l.scene.Add(BulletObject),
	}
	l.scene.Move(b.object, b.Position, 0)
	l.bullets = append(l.bullets, b)
	return b
}

// Advance moves every bullet and drops the expired ones in a single ordered
// pass. It returns how many bullets expired.
func (l *BulletList) Advance() int {
	for _, b := range l.bullets {
		b.Advance()
		if b.Expired(l.exitDepth) {
			l.Kill(b)
			continue
		}
		l.scene.Move(b.object, b.Position, 0)
	}
	return l.RemoveDead()
}

// Kill marks a bullet dead and frees its scene object. The bullet stays in
// the list until RemoveDead.
func (l *BulletList) Kill(b *Bullet) {
	if !b.Alive {
		return
	}
	b.Alive = false
	l.scene.Remove(b.object)
	b.object = 0
}

// RemoveDead filters dead bullets out, keeping the order of the survivors.
func (l *BulletList) RemoveDead() int {
	kept := l.bullets[:0]
	for _, b := range l.bullets {
		if b.Alive {
			kept = append(kept, b)
		}
	}
	removed := len(l.bullets) - len(kept)
	for i := len(kept); i < len(l.bullets); i++ {
		l.bullets[i] = nil
	}
	l.bullets = kept
	return removed
}

// Clear kills and drops every bullet.
func (l *BulletList) Clear() {
	for _, b := range l.bullets {
		l.Kill(b)
	}
	l.RemoveDead()
}

// Len returns the number of bullets in the list.
func (l *BulletList) Len() int {
	return len(l.bullets)
}

// All returns the bullets in spawn order. The slice is owned by the list.
func (l *BulletList) All() []*Bullet {
	return l.bullets
}
