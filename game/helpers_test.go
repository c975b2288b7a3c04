package game

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/simukka/ufo-defense/audio"
	"github.com/simukka/ufo-defense/common"
)

// fakeScene tracks live objects so tests can check nothing leaks.
type fakeScene struct {
	next    ObjectID
	live    map[ObjectID]ObjectKind
	pos     map[ObjectID]mgl64.Vec3
	beam    *Beam
	camera  mgl64.Vec3
	stars   int
	renders int
}

func newFakeScene() *fakeScene {
	return &fakeScene{
		live: make(map[ObjectID]ObjectKind),
		pos:  make(map[ObjectID]mgl64.Vec3),
	}
}

func (s *fakeScene) Add(kind ObjectKind) ObjectID {
	s.next++
	s.live[s.next] = kind
	return s.next
}

func (s *fakeScene) Remove(id ObjectID) {
	delete(s.live, id)
	delete(s.pos, id)
}

func (s *fakeScene) Move(id ObjectID, pos mgl64.Vec3, tilt float64) {
	s.pos[id] = pos
}

func (s *fakeScene) SetBeam(b *Beam) {
	if b == nil {
		s.beam = nil
		return
	}
	cp := *b
	s.beam = &cp
}

func (s *fakeScene) MoveCamera(pos mgl64.Vec3) { s.camera = pos }
func (s *fakeScene) SetStars(stars []mgl64.Vec3) { s.stars = len(stars) }
func (s *fakeScene) Render() { s.renders++ }

func (s *fakeScene) count(kind ObjectKind) int {
	n := 0
	for _, k := range s.live {
		if k == kind {
			n++
		}
	}
	return n
}

type fakeHUD struct {
	score, health int
	scoreCalls    int
	healthCalls   int
	width, height int
}

func (h *fakeHUD) UpdateScore(n int) { h.score = n; h.scoreCalls++ }
func (h *fakeHUD) UpdateHealth(n int) { h.health = n; h.healthCalls++ }
func (h *fakeHUD) Resize(w, ht int) { h.width, h.height = w, ht }

type fakeSounds struct {
	played []audio.EffectID
}

func (s *fakeSounds) Play(id audio.EffectID) { s.played = append(s.played, id) }

func (s *fakeSounds) count(id audio.EffectID) int {
	n := 0
	for _, p := range s.played {
		if p == id {
			n++
		}
	}
	return n
}

// manualClock only moves when the test says so.
type manualClock struct {
	t float64
}

func (c *manualClock) Now() float64 { return c.t }

var errStoreDown = errors.New("store unavailable")

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) { return "", false, errStoreDown }
func (brokenStore) Set(string, string) error { return errStoreDown }
func (brokenStore) Remove(string) error { return errStoreDown }

type testRig struct {
	g      *Game
	scene  *fakeScene
	hud    *fakeHUD
	sounds *fakeSounds
	clock  *manualClock
	store  *MemoryStore
}

// newTestGame builds a game without a star field on fake backends.
func newTestGame() *testRig {
	cfg := DefaultConfig()
	cfg.StarCount = 0
	return newTestGameWith(cfg)
}

func newTestGameWith(cfg Config) *testRig {
	r := &testRig{
		scene:  newFakeScene(),
		hud:    &fakeHUD{},
		sounds: &fakeSounds{},
		clock:  &manualClock{},
		store:  NewMemoryStore(),
	}
	r.g = NewGame(cfg, Backend{
		Scene:  r.scene,
		HUD:    r.hud,
		Store:  r.store,
		Sounds: r.sounds,
		Clock:  r.clock,
	}, common.NewSeededRNG(42))
	return r
}

// playing starts a fresh session.
func (r *testRig) playing() *testRig {
	if err := r.g.StartGame(); err != nil {
		panic(err)
	}
	return r
}

// parkAliens moves every active alien far from the ship and the breach
// plane so a tick neither hits nor breaches.
func (r *testRig) parkAliens() {
	for i, a := range r.g.Aliens.Active() {
		a.Position = mgl64.Vec3{-9 + float64(i)*4, 2.5, -25}
	}
}
