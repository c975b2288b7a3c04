package audio

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EffectID names a sound the game can trigger.
type EffectID int

const (
	Fire EffectID = iota
	Hit
	Breach
	Purchase
	Denied
	GameOver
)

func (id EffectID) String() string {
	if sfx := GetSoundEffect(id); sfx != nil {
		return sfx.Name
	}
	return fmt.Sprintf("effect(%d)", int(id))
}

// WaveType represents the oscillator waveform.
type WaveType int

const (
	WaveSquare   WaveType = 0
	WaveSawtooth WaveType = 1
	WaveSine     WaveType = 2
	WaveNoise    WaveType = 3
)

func (w WaveType) String() string {
	switch w {
	case WaveSquare:
		return "Square"
	case WaveSawtooth:
		return "Sawtooth"
	case WaveSine:
		return "Sine"
	case WaveNoise:
		return "Noise"
	default:
		return "Unknown"
	}
}

// SoundEffect is a procedural tone: one oscillator with a linear pitch
// slide shaped by an attack/sustain/decay envelope.
type SoundEffect struct {
	ID          EffectID
	Name        string
	Category    string // Player, Alien, UI
	Description string

	WaveType WaveType

	// Envelope, in seconds
	AttackTime  float64
	SustainTime float64
	DecayTime   float64

	// Frequency in Hz; Slide is Hz per second and stops at MinFrequency.
	StartFrequency float64
	Slide          float64
	MinFrequency   float64

	MasterVolume float64 // 0.0 - 1.0
}

// Duration is the total length of the effect.
func (s *SoundEffect) Duration() time.Duration {
	secs := s.AttackTime + s.SustainTime + s.DecayTime
	return time.Duration(secs * float64(time.Second))
}

// ToParamString encodes the effect as
// "wave,attack,sustain,decay,frequency,slide,minFrequency,volume".
func (s *SoundEffect) ToParamString() string {
	formatFloat := func(f float64) string {
		if f == 0 {
			return ""
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	parts := []string{
		strconv.Itoa(int(s.WaveType)),
		formatFloat(s.AttackTime),
		formatFloat(s.SustainTime),
		formatFloat(s.DecayTime),
		formatFloat(s.StartFrequency),
		formatFloat(s.Slide),
		formatFloat(s.MinFrequency),
		formatFloat(s.MasterVolume),
	}
	return strings.Join(parts, ",")
}

// ParseParamString parses a string produced by ToParamString. Empty or
// malformed fields read as zero.
func ParseParamString(id EffectID, name, category, desc, params string) *SoundEffect {
	sfx := &SoundEffect{
		ID:          id,
		Name:        name,
		Category:    category,
		Description: desc,
	}

	parts := strings.Split(params, ",")
	getFloat := func(idx int) float64 {
		if idx >= len(parts) {
			return 0
		}
		val := strings.TrimSpace(parts[idx])
		if val == "" {
			return 0
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	}

	sfx.WaveType = WaveType(int(getFloat(0)))
	sfx.AttackTime = getFloat(1)
	sfx.SustainTime = getFloat(2)
	sfx.DecayTime = getFloat(3)
	sfx.StartFrequency = getFloat(4)
	sfx.Slide = getFloat(5)
	sfx.MinFrequency = getFloat(6)
	sfx.MasterVolume = getFloat(7)

	return sfx
}

// SoundEffectLibrary holds every effect, indexed by EffectID.
var SoundEffectLibrary = []*SoundEffect{
	ParseParamString(Fire, "Fire", "Player", "Laser shot leaving the ship", "0,0.005,0.04,0.12,880,-3200,220,0.35"),
	ParseParamString(Hit, "Hit", "Alien", "Bullet destroys an alien", "3,0.002,0.05,0.25,600,-900,80,0.5"),
	ParseParamString(Breach, "Breach", "Alien", "Alien slips past the ship", "1,0.01,0.1,0.3,220,-300,60,0.45"),
	ParseParamString(Purchase, "Purchase", "UI", "Shop upgrade bought", "2,0.01,0.08,0.15,660,2200,,0.4"),
	ParseParamString(Denied, "Denied", "UI", "Shop purchase refused", "0,0.005,0.12,0.05,140,,,0.3"),
	ParseParamString(GameOver, "Game Over", "UI", "Last health lost", "1,0.02,0.5,0.8,330,-200,55,0.5"),
}

// GetSoundEffect returns a sound effect by ID.
func GetSoundEffect(id EffectID) *SoundEffect {
	if id >= 0 && int(id) < len(SoundEffectLibrary) {
		return SoundEffectLibrary[id]
	}
	return nil
}

// GetSoundEffectsByCategory returns all sound effects in a category.
func GetSoundEffectsByCategory(category string) []*SoundEffect {
	var result []*SoundEffect
	for _, sfx := range SoundEffectLibrary {
		if sfx.Category == category {
			result = append(result, sfx)
		}
	}
	return result
}
