//go:build js
// +build js

package web

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ufo-defense/game"
)

// RouteLogs sends the game's log lines to the browser console.
func RouteLogs() {
	console := js.Global.Get("console")
	game.LogSink = func(level game.LogLevel, msg string) {
		msg = strings.TrimSuffix(msg, "\n")
		switch level {
		case game.LevelWarn:
			console.Call("warn", msg)
		case game.LevelError:
			console.Call("error", msg)
		default:
			console.Call("log", msg)
		}
	}
}

// defined reports whether o holds a usable JS value.
func defined(o *js.Object) bool {
	return o != nil && o != js.Undefined
}
