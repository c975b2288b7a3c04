//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ufo-defense/game"
)

// Keys handled by the page rather than the game.
const (
	keyStats = "F10"
	keyMute  = "m"
)

// SetupInputHandlers installs the keyboard, blur and click listeners.
func (a *App) SetupInputHandlers() {
	doc := js.Global.Get("document")

	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		key := event.Get("key").String()

		switch key {
		case keyStats:
			a.Stats.Toggle()
			event.Call("preventDefault")
			return
		case keyMute, "M":
			game.Debug("muted:", a.Audio.ToggleMute())
			return
		}

		switch game.TranslateKey(key) {
		case game.KeyArrowLeft, game.KeyArrowRight, game.KeyArrowUp, game.KeyArrowDown, game.KeySpace:
			event.Call("preventDefault")
		}
		if event.Get("repeat").Bool() {
			return
		}
		a.Game.HandleAction(a.Game.Input.KeyDown(key))
	})

	doc.Call("addEventListener", "keyup", func(event *js.Object) {
		a.Game.Input.KeyUp(event.Get("key").String())
	})

	// A key released while the window is unfocused never reports keyup.
	js.Global.Call("addEventListener", "blur", func() {
		a.Game.Input.Clear()
	})

	doc.Call("addEventListener", "click", func() {
		a.Audio.Resume()
	})

	js.Global.Call("addEventListener", "resize", func() {
		a.resize()
	})
}
