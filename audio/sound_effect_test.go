package audio

import (
	"math"
	"testing"
)

func TestSoundEffectLibrary_IndexedByID(t *testing.T) {
	for i, sfx := range SoundEffectLibrary {
		if int(sfx.ID) != i {
			t.Errorf("library slot %d holds %s with ID %d", i, sfx.Name, sfx.ID)
		}
		if sfx.Duration() <= 0 {
			t.Errorf("%s has no duration", sfx.Name)
		}
		if sfx.MasterVolume <= 0 || sfx.MasterVolume > 1 {
			t.Errorf("%s volume %f out of range", sfx.Name, sfx.MasterVolume)
		}
	}
}

func TestGetSoundEffect_OutOfRange(t *testing.T) {
	if GetSoundEffect(-1) != nil {
		t.Error("Expected nil for negative ID")
	}
	if GetSoundEffect(EffectID(len(SoundEffectLibrary))) != nil {
		t.Error("Expected nil past the end of the library")
	}
	if GetSoundEffect(Fire) == nil {
		t.Error("Expected Fire to exist")
	}
}

func TestParamString_RoundTrip(t *testing.T) {
	orig := GetSoundEffect(Hit)
	parsed := ParseParamString(orig.ID, orig.Name, orig.Category, orig.Description, orig.ToParamString())

	if *parsed != *orig {
		t.Errorf("Expected %+v, got %+v", *orig, *parsed)
	}
}

func TestParseParamString_EmptyAndBadFields(t *testing.T) {
	sfx := ParseParamString(Denied, "x", "UI", "", "2,,abc,0.1")

	if sfx.WaveType != WaveSine {
		t.Errorf("Expected sine wave, got %s", sfx.WaveType)
	}
	if sfx.AttackTime != 0 || sfx.SustainTime != 0 {
		t.Errorf("Expected empty and malformed fields to read as zero, got %f %f", sfx.AttackTime, sfx.SustainTime)
	}
	if sfx.DecayTime != 0.1 {
		t.Errorf("Expected decay 0.1, got %f", sfx.DecayTime)
	}
	if sfx.MasterVolume != 0 {
		t.Errorf("Expected missing volume to be zero, got %f", sfx.MasterVolume)
	}
}

func TestRender_FiniteAndAudible(t *testing.T) {
	for _, sfx := range SoundEffectLibrary {
		samples := Render(sfx.Streamer(SampleRate))

		want := SampleRate.N(sfx.Duration())
		if d := len(samples) - want; d < -2 || d > 2 {
			t.Errorf("%s: expected about %d samples, got %d", sfx.Name, want, len(samples))
		}

		var peak float64
		for _, s := range samples {
			if a := math.Abs(float64(s)); a > peak {
				peak = a
			}
		}
		if peak == 0 {
			t.Errorf("%s rendered silence", sfx.Name)
		}
		if peak > 1.0001 {
			t.Errorf("%s clips with peak %f", sfx.Name, peak)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	a := Render(GetSoundEffect(Hit).Streamer(SampleRate))
	b := Render(GetSoundEffect(Hit).Streamer(SampleRate))

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestConfigGain(t *testing.T) {
	c := DefaultConfig()
	if c.Gain() != c.MasterVolume {
		t.Errorf("Expected gain %f, got %f", c.MasterVolume, c.Gain())
	}
	c.Muted = true
	if c.Gain() != 0 {
		t.Errorf("Expected muted gain 0, got %f", c.Gain())
	}
	c = Config{MasterVolume: 3}
	if c.Gain() != 1 {
		t.Errorf("Expected gain clamped to 1, got %f", c.Gain())
	}
}
