package desktop

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/simukka/ufo-defense/game"
)

func TestScene_AddMoveRemove(t *testing.T) {
	s := NewScene()
	a := s.Add(game.AlienObject)
	b := s.Add(game.BulletObject)
	if a == 0 || b == 0 || a == b {
		t.Fatalf("ids %d, %d must be distinct and non-zero", a, b)
	}

	s.Move(a, mgl64.Vec3{1, 2, -30}, 0)
	s.Move(b, mgl64.Vec3{0, 0, -5}, 0)
	s.Move(999, mgl64.Vec3{}, 0)

	order := s.DrawOrder()
	if len(order) != 2 || order[0].ID != a || order[1].ID != b {
		t.Fatalf("draw order = %+v, want far alien first", order)
	}

	s.Remove(a)
	if s.Len() != 1 {
		t.Errorf("len = %d after remove, want 1", s.Len())
	}
}

func TestScene_BeamIsCopied(t *testing.T) {
	s := NewScene()
	beam := &game.Beam{Length: 50}
	s.SetBeam(beam)
	beam.Locked = true

	if s.Beam == nil || s.Beam.Locked {
		t.Error("scene beam must be a copy")
	}
	s.SetBeam(nil)
	if s.Beam != nil {
		t.Error("nil beam should hide it")
	}
}

func TestScene_DrivenByGame(t *testing.T) {
	scene := NewScene()
	hud := &HUD{}
	cfg := game.DefaultConfig()
	cfg.StarCount = 10
	g := game.NewGame(cfg, game.Backend{Scene: scene, HUD: hud}, constSource(0.5))

	// ship + active aliens
	if want := 1 + cfg.AlienActiveCount; scene.Len() != want {
		t.Errorf("scene holds %d objects, want %d", scene.Len(), want)
	}
	if len(scene.Stars) != 10 {
		t.Errorf("stars = %d, want 10", len(scene.Stars))
	}
	if hud.Health != cfg.InitialHealth {
		t.Errorf("hud health = %d, want %d", hud.Health, cfg.InitialHealth)
	}

	if err := g.StartGame(); err != nil {
		t.Fatal(err)
	}
	g.Tick(1, 0.016)
	if scene.Frames != 1 {
		t.Errorf("frames = %d, want 1", scene.Frames)
	}
	if scene.Camera != g.Camera.Position {
		t.Errorf("camera = %v, want %v", scene.Camera, g.Camera.Position)
	}
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }
