package audio

// Config holds the mixing settings shared by the players.
type Config struct {
	MasterVolume float64 // 0.0 - 1.0
	Muted        bool

	// Reverb is only applied by the browser player.
	ReverbMix   float64 // 0.0 - 1.0, wet/dry mix
	ReverbTime  float64 // Reverb duration in seconds
	ReverbDecay float64 // Reverb decay exponent
}

// AudioConfig is the active configuration.
var AudioConfig = DefaultConfig()

// DefaultConfig returns the settings the game ships with.
func DefaultConfig() Config {
	return Config{
		MasterVolume: 0.6,
		ReverbMix:    0.2,
		ReverbTime:   1.2,
		ReverbDecay:  2.5,
	}
}

// Gain returns the effective master gain, zero when muted.
func (c Config) Gain() float64 {
	if c.Muted {
		return 0
	}
	switch {
	case c.MasterVolume < 0:
		return 0
	case c.MasterVolume > 1:
		return 1
	}
	return c.MasterVolume
}
