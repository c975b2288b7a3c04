package game

import "github.com/go-gl/mathgl/mgl64"

// Alien is a pooled enemy unit flying toward the camera along +Z.
type Alien struct {
	Position mgl64.Vec3
	Active   bool
	Speed    float64 // depth units per tick

	object ObjectID
}

// Object returns the scene handle of an active alien.
func (a *Alien) Object() ObjectID {
	return a.object
}

// Advance moves the alien one tick toward the camera.
func (a *Alien) Advance() {
	a.Position[2] += a.Speed
}

// Breached reports whether the alien has crossed the camera-side plane.
func (a *Alien) Breached(breachDepth float64) bool {
	return a.Position.Z() > breachDepth
}

// PlanarDistance is the XY distance to p, ignoring depth.
func (a *Alien) PlanarDistance(p mgl64.Vec3) float64 {
	return a.Position.Vec2().Sub(p.Vec2()).Len()
}

// DepthDistance is the absolute Z distance to p.
func (a *Alien) DepthDistance(p mgl64.Vec3) float64 {
	d := a.Position.Z() - p.Z()
	if d < 0 {
		return -d
	}
	return d
}
