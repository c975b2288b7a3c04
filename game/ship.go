package game

import "github.com/go-gl/mathgl/mgl64"

// Beam is the targeting laser cast forward from the ship.
type Beam struct {
	Origin mgl64.Vec3
	Length float64
	// Locked is set when an alien is inside the lock-on radius.
	Locked bool
}

// Tip returns the far end of the beam.
func (b *Beam) Tip() mgl64.Vec3 {
	return b.Origin.Sub(mgl64.Vec3{0, 0, b.Length})
}

// Ship is the player. It moves in the XY plane at depth zero.
type Ship struct {
	Position     mgl64.Vec3
	Tilt         float64
	FollowCamera bool
	BeamEnabled  bool
	Beam         Beam

	speed  float64
	object ObjectID
}

// NewShip creates a ship at the origin and adds it to scene. The camera
// starts fixed.
func NewShip(scene Scene, speed float64) *Ship {
	s := &Ship{
		speed:  speed,
		object: scene.Add(ShipObject),
	}
	s.Beam = Beam{Length: BeamDefaultLength}
	return s
}

// Move applies the held movement flags for delta seconds and clamps the
// result to bounds. Left wins over right when both are held; up and down
// cancel out.
func (s *Ship) Move(in *Input, bounds Bounds, delta float64) {
	step := s.speed * delta

	s.Tilt = 0
	if in.MoveLeft {
		s.Position[0] -= step
		s.Tilt = -ShipTilt
	} else if in.MoveRight {
		s.Position[0] += step
		s.Tilt = ShipTilt
	}
	if in.MoveUp {
		s.Position[1] += step
	}
	if in.MoveDown {
		s.Position[1] -= step
	}

	s.Position[0], s.Position[1] = bounds.Clamp(s.Position.X(), s.Position.Y())
	s.Beam.Origin = s.Position
}

// ToggleCamera switches between the follow and fixed camera.
func (s *Ship) ToggleCamera() {
	s.FollowCamera = !s.FollowCamera
}

// ToggleBeam shows or hides the targeting laser.
func (s *Ship) ToggleBeam() {
	s.BeamEnabled = !s.BeamEnabled
}

// Reset returns the ship to the origin.
func (s *Ship) Reset() {
	s.Position = mgl64.Vec3{}
	s.Tilt = 0
	s.Beam = Beam{Length: BeamDefaultLength}
}
