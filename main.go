//go:build js
// +build js

package main

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ufo-defense/game"
	"github.com/simukka/ufo-defense/web"
)

func main() {
	if strings.Contains(js.Global.Get("location").Get("search").String(), "debug") {
		game.EnableDebug = true
	}

	cfg := game.DefaultConfig()
	app := web.NewApp(cfg)
	app.Start()

	js.Global.Set("UFODefense", map[string]interface{}{
		"state": func() string {
			return app.Game.Menu.State().String()
		},
		"setVolume": func(v float64) {
			app.Audio.SetVolume(v)
		},
	})

	select {}
}
