package game

import "github.com/go-gl/mathgl/mgl64"

// Camera trails the ship with a smoothing filter rather than snapping.
type Camera struct {
	Position mgl64.Vec3
	Lerp     float64
}

// NewCamera places the camera at its fixed vantage point.
func NewCamera() *Camera {
	return &Camera{
		Position: mgl64.Vec3{CameraOffsetX, CameraOffsetY, CameraDepth},
		Lerp:     CameraLerp,
	}
}

// Target returns where the camera wants to be for the given ship.
func (c *Camera) Target(s *Ship) mgl64.Vec3 {
	if s.FollowCamera {
		return mgl64.Vec3{s.Position.X() + CameraOffsetX, s.Position.Y() + CameraOffsetY, CameraDepth}
	}
	return mgl64.Vec3{CameraOffsetX, CameraOffsetY, CameraDepth}
}

// Follow moves the camera a fraction of the way to its target.
func (c *Camera) Follow(s *Ship) {
	c.Position = lerp(c.Position, c.Target(s), c.Lerp)
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
