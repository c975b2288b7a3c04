package desktop

// Window defaults
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "UFO Defense"

	// FieldOfView is the vertical field of view in degrees, matching the
	// browser camera.
	FieldOfView = 65.0
	NearPlane   = 0.1
	FarPlane    = 1000.0
)

// Config holds the native window settings.
type Config struct {
	Width, Height int
	Title         string
	// SaveDir is where the session file lives. Empty uses DefaultSaveDir.
	SaveDir string
	Muted   bool
}

// DefaultConfig returns the settings the desktop build ships with.
func DefaultConfig() Config {
	return Config{
		Width:  ScreenWidth,
		Height: ScreenHeight,
		Title:  WindowTitle,
	}
}
