package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/simukka/ufo-defense/common"
)

// SampleRate is used by every backend that renders effects.
const SampleRate = beep.SampleRate(44100)

// tone is a finite oscillator with a linear frequency slide and an
// attack/sustain/decay envelope.
type tone struct {
	sfx  *SoundEffect
	rate beep.SampleRate
	rng  *common.SeededRNG

	phase    float64
	freq     float64
	position int
	attack   int
	sustain  int
	total    int
}

// Streamer returns a finite stereo streamer playing the effect once.
func (s *SoundEffect) Streamer(rate beep.SampleRate) beep.Streamer {
	attack := rate.N(secs(s.AttackTime))
	sustain := rate.N(secs(s.SustainTime))
	decay := rate.N(secs(s.DecayTime))
	t := &tone{
		sfx:     s,
		rate:    rate,
		rng:     common.NewSeededRNG(uint32(s.ID) + 1),
		freq:    s.StartFrequency,
		attack:  attack,
		sustain: sustain,
		total:   attack + sustain + decay,
	}
	return &effects.Gain{Streamer: t, Gain: s.MasterVolume - 1}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.sfx.WaveType {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSawtooth:
			val = 2 * (t.phase - 0.5)
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveNoise:
			val = t.rng.Float64()*2 - 1
		}
		val *= t.envelope()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.freq += t.sfx.Slide / float64(t.rate)
		if t.freq < t.sfx.MinFrequency {
			t.freq = t.sfx.MinFrequency
		}
		if t.freq < 0 {
			t.freq = 0
		}
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) envelope() float64 {
	switch {
	case t.position < t.attack:
		return float64(t.position) / float64(t.attack)
	case t.position < t.attack+t.sustain:
		return 1
	default:
		decay := t.total - t.attack - t.sustain
		if decay <= 0 {
			return 0
		}
		return float64(t.total-t.position) / float64(decay)
	}
}

// Render drains a finite streamer into mono float32 samples, the layout
// an AudioBuffer channel expects.
func Render(s beep.Streamer) []float32 {
	var out []float32
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = append(out, float32((frame[0]+frame[1])/2))
		}
		if !ok {
			return out
		}
	}
}

func secs(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}
