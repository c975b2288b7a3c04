package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/simukka/ufo-defense/audio"
)

// ObjectKind identifies what a scene object should look like.
type ObjectKind int

const (
	ShipObject ObjectKind = iota
	AlienObject
	BulletObject
)

func (k ObjectKind) String() string {
	switch k {
	case ShipObject:
		return "ship"
	case AlienObject:
		return "alien"
	case BulletObject:
		return "bullet"
	default:
		return "unknown"
	}
}

// ObjectID is an opaque handle to an object held by the Scene.
// The zero value never refers to a live object.
type ObjectID int

// Scene is the rendering backend. The simulation only pushes state into it.
type Scene interface {
	// Add places a new object of the given kind in the scene.
	Add(kind ObjectKind) ObjectID
	// Remove takes an object out of the scene and frees its resources.
	Remove(id ObjectID)
	// Move updates position and roll of an object.
	Move(id ObjectID, pos mgl64.Vec3, tilt float64)
	// SetBeam draws the targeting laser; nil hides it.
	SetBeam(beam *Beam)
	MoveCamera(pos mgl64.Vec3)
	SetStars(stars []mgl64.Vec3)
	Render()
}

// HUD displays the counters.
type HUD interface {
	UpdateScore(score int)
	UpdateHealth(health int)
	Resize(width, height int)
}

// Store is a string key-value store such as the browser's localStorage.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Sounds plays sound effects.
type Sounds interface {
	Play(id audio.EffectID)
}

// Backend bundles the collaborators a Game talks to. Nil fields are
// replaced by silent implementations.
type Backend struct {
	Scene  Scene
	HUD    HUD
	Store  Store
	Codec  Codec
	Sounds Sounds
	Clock  Clock
}

func (b Backend) withDefaults() Backend {
	if b.Scene == nil {
		b.Scene = nopScene{}
	}
	if b.HUD == nil {
		b.HUD = nopHUD{}
	}
	if b.Store == nil {
		b.Store = NewMemoryStore()
	}
	if b.Codec == nil {
		b.Codec = JSONCodec{}
	}
	if b.Sounds == nil {
		b.Sounds = nopSounds{}
	}
	if b.Clock == nil {
		b.Clock = NewWallClock()
	}
	return b
}

type nopScene struct{}

func (nopScene) Add(ObjectKind) ObjectID { return 0 }
func (nopScene) Remove(ObjectID) {}
func (nopScene) Move(ObjectID, mgl64.Vec3, float64) {}
func (nopScene) SetBeam(*Beam) {}
func (nopScene) MoveCamera(mgl64.Vec3) {}
func (nopScene) SetStars([]mgl64.Vec3) {}
func (nopScene) Render() {}

type nopHUD struct{}

func (nopHUD) UpdateScore(int) {}
func (nopHUD) UpdateHealth(int) {}
func (nopHUD) Resize(int, int) {}

type nopSounds struct{}

func (nopSounds) Play(audio.EffectID) {}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	delete(m.values, key)
	return nil
}
