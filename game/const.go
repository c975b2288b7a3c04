package game

// Constants for game configuration
const (
	// MaxDeltaTime caps the frame delta used for ship movement so a long
	// stall (tab switch, pause) does not teleport the ship.
	MaxDeltaTime = 0.06

	// SaveKey is the store key holding the serialized session.
	SaveKey = "gameState"
)

// Play field constants
const (
	// SpawnDepth is where aliens enter the play field, far from the camera.
	SpawnDepth = -30.0
	// BreachDepth is the camera-side boundary; crossing it costs one health.
	BreachDepth = 0.0
	// ExitDepth is the rear boundary past which projectiles are discarded.
	ExitDepth = -50.0
)

// Alien constants
const (
	AlienSpeed       = 0.025 // depth units per tick
	AlienPoolSize    = 10
	AlienActiveCount = 5
)

// Ship constants
const (
	ShipSpeed = 5.0 // units per second
	ShipTilt  = 0.15

	CameraOffsetX = 0.0
	CameraOffsetY = 3.0
	CameraDepth   = 10.0
	CameraLerp    = 0.1
)

// Collision constants
const (
	HitRadius    = 0.75
	LockOnRadius = 0.75
	HitReward    = 100

	BeamDefaultLength = 50.0
)

// Session defaults
const (
	InitialHealth         = 3
	InitialBulletCooldown = 0.75 // seconds
	InitialBulletSpeed    = 0.2  // depth units per tick

	DefaultScoreStep  = 10
	DefaultHealthStep = 1
)

// Star field constants
const (
	StarCount      = 3000
	StarSpreadX    = 75.0
	StarSpreadY    = 50.0
	StarSpreadZ    = 50.0
	StarResetX     = 50.0
	StarResetY     = 25.0
	StarResetDepth = 25.0
	StarDrift      = 0.02
)

// Bounds is the rectangle the ship may move in, also used for alien spawn X/Y.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Contains reports whether x, y lie inside the bounds (inclusive).
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Clamp returns x, y moved to the nearest point inside the bounds.
func (b Bounds) Clamp(x, y float64) (float64, float64) {
	return clamp(x, b.MinX, b.MaxX), clamp(y, b.MinY, b.MaxY)
}

// Config holds the tunable parameters of a session.
type Config struct {
	// Bounds limits the ship and the alien spawn rectangle.
	Bounds Bounds

	// SpawnDepth, BreachDepth and ExitDepth are the Z planes of the field.
	SpawnDepth  float64
	BreachDepth float64
	ExitDepth   float64

	AlienSpeed       float64
	AlienPoolSize    int
	AlienActiveCount int

	ShipSpeed float64

	HitRadius    float64
	LockOnRadius float64
	HitReward    int

	InitialHealth         int
	InitialBulletCooldown float64
	InitialBulletSpeed    float64

	// StarCount of zero disables the star field.
	StarCount int

	// FreezeClockOnPause stops the cooldown clock while the session is not
	// playing. Off by default: time spent in menus counts against cooldown.
	FreezeClockOnPause bool
}

// DefaultConfig returns the configuration the game ships with.
func DefaultConfig() Config {
	return Config{
		Bounds:                Bounds{MinX: -10, MaxX: 10, MinY: -1, MaxY: 3},
		SpawnDepth:            SpawnDepth,
		BreachDepth:           BreachDepth,
		ExitDepth:             ExitDepth,
		AlienSpeed:            AlienSpeed,
		AlienPoolSize:         AlienPoolSize,
		AlienActiveCount:      AlienActiveCount,
		ShipSpeed:             ShipSpeed,
		HitRadius:             HitRadius,
		LockOnRadius:          LockOnRadius,
		HitReward:             HitReward,
		InitialHealth:         InitialHealth,
		InitialBulletCooldown: InitialBulletCooldown,
		InitialBulletSpeed:    InitialBulletSpeed,
		StarCount:             StarCount,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
