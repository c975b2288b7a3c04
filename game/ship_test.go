package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestShip_MoveScalesWithDelta(t *testing.T) {
	s := NewShip(newFakeScene(), ShipSpeed)
	in := &Input{MoveRight: true, MoveUp: true}

	s.Move(in, DefaultConfig().Bounds, 0.1)

	if math.Abs(s.Position.X()-0.5) > 1e-9 || math.Abs(s.Position.Y()-0.5) > 1e-9 {
		t.Errorf("Expected (0.5, 0.5), got %v", s.Position)
	}
	if s.Tilt != ShipTilt {
		t.Errorf("Expected tilt %f moving right, got %f", ShipTilt, s.Tilt)
	}
}

func TestShip_LeftWinsOverRight(t *testing.T) {
	s := NewShip(newFakeScene(), ShipSpeed)
	in := &Input{MoveLeft: true, MoveRight: true}

	s.Move(in, DefaultConfig().Bounds, 0.1)

	if s.Position.X() >= 0 || s.Tilt != -ShipTilt {
		t.Errorf("Expected left movement, got x=%f tilt=%f", s.Position.X(), s.Tilt)
	}
}

func TestShip_UpAndDownCancel(t *testing.T) {
	s := NewShip(newFakeScene(), ShipSpeed)
	in := &Input{MoveUp: true, MoveDown: true}

	s.Move(in, DefaultConfig().Bounds, 0.05)

	if s.Position.Y() != 0 {
		t.Errorf("Expected y 0 with up and down held, got %f", s.Position.Y())
	}
}

func TestShip_ClampedToBounds(t *testing.T) {
	s := NewShip(newFakeScene(), ShipSpeed)
	b := DefaultConfig().Bounds
	in := &Input{MoveLeft: true, MoveDown: true}

	for i := 0; i < 200; i++ {
		s.Move(in, b, MaxDeltaTime)
	}

	if s.Position.X() != b.MinX || s.Position.Y() != b.MinY {
		t.Errorf("Expected (%f, %f), got %v", b.MinX, b.MinY, s.Position)
	}
}

func TestShip_TiltResetsWhenIdle(t *testing.T) {
	s := NewShip(newFakeScene(), ShipSpeed)
	s.Move(&Input{MoveLeft: true}, DefaultConfig().Bounds, 0.01)
	s.Move(&Input{}, DefaultConfig().Bounds, 0.01)

	if s.Tilt != 0 {
		t.Errorf("Expected tilt 0, got %f", s.Tilt)
	}
}

func TestBeam_Tip(t *testing.T) {
	b := Beam{Origin: mgl64.Vec3{1, 2, 0}, Length: 12}

	if b.Tip() != (mgl64.Vec3{1, 2, -12}) {
		t.Errorf("Expected tip at (1, 2, -12), got %v", b.Tip())
	}
}

func TestCamera_LerpsTowardShip(t *testing.T) {
	s := NewShip(newFakeScene(), ShipSpeed)
	s.Position = mgl64.Vec3{5, 1, 0}
	s.ToggleCamera()
	c := NewCamera()

	c.Follow(s)

	want := mgl64.Vec3{0.5, 3.1, CameraDepth}
	if !c.Position.ApproxEqual(want) {
		t.Errorf("Expected %v after one step, got %v", want, c.Position)
	}

	for i := 0; i < 300; i++ {
		c.Follow(s)
	}
	if !c.Position.ApproxEqualThreshold(mgl64.Vec3{5, 4, CameraDepth}, 1e-6) {
		t.Errorf("Expected camera to converge on the ship, got %v", c.Position)
	}
}

func TestCamera_FixedTarget(t *testing.T) {
	s := NewShip(newFakeScene(), ShipSpeed)
	s.Position = mgl64.Vec3{5, 1, 0}
	if s.FollowCamera {
		t.Fatal("Expected the camera fixed by default")
	}

	if got := NewCamera().Target(s); got != (mgl64.Vec3{CameraOffsetX, CameraOffsetY, CameraDepth}) {
		t.Errorf("Expected fixed target, got %v", got)
	}
}
