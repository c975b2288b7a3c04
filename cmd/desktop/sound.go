//go:build !js
// +build !js

package main

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/simukka/ufo-defense/audio"
)

// SoundManager plays effects through the system speaker. Every effect is
// a fresh finite streamer added to one mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Gain
	config      audio.Config
	initialized bool
}

// NewSoundManager creates a silent manager; call Initialize to open the
// speaker.
func NewSoundManager(cfg audio.Config) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: &effects.Gain{Streamer: mixer, Gain: cfg.Gain() - 1},
		config: cfg,
	}
}

// Initialize opens the speaker with a 100ms buffer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Play implements game.Sounds.
func (sm *SoundManager) Play(id audio.EffectID) {
	sfx := audio.GetSoundEffect(id)
	if sfx == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.config.Muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(sfx.Streamer(audio.SampleRate))
	speaker.Unlock()
}

// ToggleMute flips the muted flag and returns the new value.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.config.Muted = !sm.config.Muted
	speaker.Lock()
	sm.master.Gain = sm.config.Gain() - 1
	speaker.Unlock()
	return sm.config.Muted
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
