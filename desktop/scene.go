package desktop

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/simukka/ufo-defense/game"
)

// Object is one drawable entry of the scene.
type Object struct {
	ID       game.ObjectID
	Kind     game.ObjectKind
	Position mgl64.Vec3
	Tilt     float64
}

// Scene records what the simulation pushes so the window can draw it.
// It implements game.Scene; Render only counts frames.
type Scene struct {
	objects map[game.ObjectID]*Object
	next    game.ObjectID

	Camera mgl64.Vec3
	Beam   *game.Beam
	Stars  []mgl64.Vec3
	Frames int
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{objects: make(map[game.ObjectID]*Object)}
}

func (s *Scene) Add(kind game.ObjectKind) game.ObjectID {
	s.next++
	s.objects[s.next] = &Object{ID: s.next, Kind: kind}
	return s.next
}

func (s *Scene) Remove(id game.ObjectID) {
	delete(s.objects, id)
}

func (s *Scene) Move(id game.ObjectID, pos mgl64.Vec3, tilt float64) {
	if o, ok := s.objects[id]; ok {
		o.Position = pos
		o.Tilt = tilt
	}
}

// SetBeam keeps a copy; the game reuses its beam value every tick.
func (s *Scene) SetBeam(beam *game.Beam) {
	if beam == nil {
		s.Beam = nil
		return
	}
	b := *beam
	s.Beam = &b
}

func (s *Scene) MoveCamera(pos mgl64.Vec3) {
	s.Camera = pos
}

// SetStars keeps a reference to the star slice, which the star field
// updates in place.
func (s *Scene) SetStars(stars []mgl64.Vec3) {
	s.Stars = stars
}

func (s *Scene) Render() {
	s.Frames++
}

// Len returns the number of live objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// DrawOrder returns the objects sorted far to near, so nearer ones are
// painted over farther ones. Ties keep creation order.
func (s *Scene) DrawOrder() []Object {
	out := make([]Object, 0, len(s.objects))
	for _, o := range s.objects {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool {
		zi, zj := out[i].Position.Z(), out[j].Position.Z()
		if zi != zj {
			return zi < zj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// HUD keeps the last counter values for drawing.
type HUD struct {
	Score  int
	Health int
	Width  int
	Height int
}

func (h *HUD) UpdateScore(score int) { h.Score = score }
func (h *HUD) UpdateHealth(health int) { h.Health = health }
func (h *HUD) Resize(width, height int) { h.Width, h.Height = width, height }
