package common

import "time"

// Source is the random number source consumed by the simulation. Any type
// returning values in [0, 1) satisfies it, including *SeededRNG.
type Source interface {
	Float64() float64
}

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// The same seed always yields the same spawn layout and star field.
type SeededRNG struct {
	state uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{state: seed}
}

// SeedFromTime derives a seed from a timestamp, for sessions that do not
// need to be reproducible.
func SeedFromTime(t time.Time) uint32 {
	n := uint64(t.UnixNano())
	return uint32(n) ^ uint32(n>>32)
}

// Float64 returns the next value in [0, 1).
func (r *SeededRNG) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Uniform draws from [min, max) using src.
func Uniform(src Source, min, max float64) float64 {
	return src.Float64()*(max-min) + min
}

// Spread draws from [-width/2, width/2) using src.
func Spread(src Source, width float64) float64 {
	return (src.Float64() - 0.5) * width
}
