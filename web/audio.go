//go:build js
// +build js

package web

import (
	"math"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ufo-defense/audio"
	"github.com/simukka/ufo-defense/common"
)

// AudioManager plays the procedural effects through the Web Audio API.
// Effects are rendered once at Init into AudioBuffers.
type AudioManager struct {
	ctx        *js.Object
	masterGain *js.Object
	buffers    map[audio.EffectID]*js.Object
	ready      bool

	// Reverb effect chain
	reverb     *js.Object // ConvolverNode
	reverbGain *js.Object // Gain for wet signal

	config audio.Config
}

// NewAudioManager creates a new audio manager.
func NewAudioManager(cfg audio.Config) *AudioManager {
	return &AudioManager{
		buffers: make(map[audio.EffectID]*js.Object),
		config:  cfg,
	}
}

// Init creates the audio context and renders every effect. It returns false
// when the browser has no Web Audio support; Play is then a no-op.
func (am *AudioManager) Init() bool {
	if am.ctx != nil {
		return am.ready
	}

	audioCtx := js.Global.Get("AudioContext")
	if !defined(audioCtx) {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if !defined(audioCtx) {
		return false
	}

	am.ctx = audioCtx.New()
	am.masterGain = am.ctx.Call("createGain")
	am.masterGain.Call("connect", am.ctx.Get("destination"))
	am.masterGain.Get("gain").Set("value", am.config.Gain())

	am.initReverb()

	for _, sfx := range audio.SoundEffectLibrary {
		am.buffers[sfx.ID] = am.bufferFor(sfx)
	}
	am.ready = true
	return true
}

func (am *AudioManager) bufferFor(sfx *audio.SoundEffect) *js.Object {
	samples := audio.Render(sfx.Streamer(audio.SampleRate))
	n := len(samples)
	if n == 0 {
		n = 1
	}
	buffer := am.ctx.Call("createBuffer", 1, n, int(audio.SampleRate))
	data := buffer.Call("getChannelData", 0)
	for i, v := range samples {
		data.SetIndex(i, v)
	}
	return buffer
}

func (am *AudioManager) initReverb() {
	am.reverbGain = am.ctx.Call("createGain")
	am.reverbGain.Get("gain").Set("value", am.config.ReverbMix)
	am.reverbGain.Call("connect", am.masterGain)

	am.reverb = am.ctx.Call("createConvolver")
	am.reverb.Call("connect", am.reverbGain)

	am.generateImpulseResponse(am.config.ReverbTime, am.config.ReverbDecay)
}

// generateImpulseResponse fills the convolver with decaying stereo noise.
func (am *AudioManager) generateImpulseResponse(duration, decay float64) {
	sampleRate := am.ctx.Get("sampleRate").Int()
	length := int(float64(sampleRate) * duration)
	if length < 1 {
		length = 1
	}

	impulse := am.ctx.Call("createBuffer", 2, length, sampleRate)
	rng := common.NewSeededRNG(1)
	for channel := 0; channel < 2; channel++ {
		data := impulse.Call("getChannelData", channel)
		for i := 0; i < length; i++ {
			progress := float64(i) / float64(length)
			data.SetIndex(i, (rng.Float64()*2-1)*math.Pow(1-progress, decay))
		}
	}
	am.reverb.Set("buffer", impulse)
}

// Play implements game.Sounds.
func (am *AudioManager) Play(id audio.EffectID) {
	if !am.ready {
		return
	}
	buffer, ok := am.buffers[id]
	if !ok {
		return
	}
	am.Resume()

	source := am.ctx.Call("createBufferSource")
	source.Set("buffer", buffer)
	source.Call("connect", am.masterGain)
	source.Call("connect", am.reverb)
	source.Call("start", 0)
}

// Resume wakes a context suspended by the autoplay policy. Browsers only
// allow it from a user gesture handler.
func (am *AudioManager) Resume() {
	if am.ctx != nil && am.ctx.Get("state").String() == "suspended" {
		am.ctx.Call("resume")
	}
}

// SetVolume sets the master volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	am.config.MasterVolume = volume
	if am.masterGain == nil {
		return
	}
	am.masterGain.Get("gain").Set("value", am.config.Gain())
}

// ToggleMute flips the muted flag and returns the new value.
func (am *AudioManager) ToggleMute() bool {
	am.config.Muted = !am.config.Muted
	if am.masterGain != nil {
		am.masterGain.Get("gain").Set("value", am.config.Gain())
	}
	return am.config.Muted
}
