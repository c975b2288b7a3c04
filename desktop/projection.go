package desktop

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projector maps world positions to screen pixels through a perspective
// camera looking down -Z, like the browser camera.
type Projector struct {
	Width, Height float64

	proj mgl64.Mat4
	view mgl64.Mat4
	// focal is the pixel height of one world unit at unit depth.
	focal float64
}

// NewProjector creates a projector for a screen of the given size.
func NewProjector(width, height int) *Projector {
	p := &Projector{}
	p.Resize(width, height)
	p.LookFrom(mgl64.Vec3{})
	return p
}

// Resize recomputes the projection for a new screen size.
func (p *Projector) Resize(width, height int) {
	p.Width, p.Height = float64(width), float64(height)
	fov := mgl64.DegToRad(FieldOfView)
	p.proj = mgl64.Perspective(fov, p.Width/p.Height, NearPlane, FarPlane)
	p.focal = p.Height / (2 * math.Tan(fov/2))
}

// LookFrom moves the camera to eye, keeping it aimed down -Z.
func (p *Projector) LookFrom(eye mgl64.Vec3) {
	center := eye.Sub(mgl64.Vec3{0, 0, 1})
	p.view = mgl64.LookAtV(eye, center, mgl64.Vec3{0, 1, 0})
}

// Project returns the screen position of w. ok is false when the point is
// outside the view depth range.
func (p *Projector) Project(w mgl64.Vec3) (x, y float64, ok bool) {
	clip := p.proj.Mul4(p.view).Mul4x1(w.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, false
	}
	x = (ndc.X() + 1) / 2 * p.Width
	y = (1 - ndc.Y()) / 2 * p.Height
	return x, y, true
}

// Depth is the distance of w in front of the camera; negative behind it.
func (p *Projector) Depth(w mgl64.Vec3) float64 {
	return -p.view.Mul4x1(w.Vec4(1)).Z()
}

// Scale returns the on-screen size in pixels of a world length at w.
func (p *Projector) Scale(w mgl64.Vec3, length float64) float64 {
	d := p.Depth(w)
	if d <= 0 {
		return 0
	}
	return length * p.focal / d
}
