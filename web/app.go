//go:build js
// +build js

package web

import (
	"time"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ufo-defense/audio"
	"github.com/simukka/ufo-defense/common"
	"github.com/simukka/ufo-defense/game"
)

// App ties the game to the page.
type App struct {
	Game     *game.Game
	Scene    *Scene
	HUD      *HUD
	Audio    *AudioManager
	Stats    *StatsOverlay
	Shop     *ShopPanel
	Overlays *Overlays

	AnimationFrameID int
}

// NewApp builds the browser backend and the game. It blocks until the
// models have loaded, so it must run on the main goroutine.
func NewApp(cfg game.Config) *App {
	RouteLogs()

	doc := js.Global.Get("document")
	width, height := windowSize()

	a := &App{
		Scene: NewScene(doc.Call("getElementById", "game"), width, height),
		HUD:   NewHUD(doc),
		Audio: NewAudioManager(audio.AudioConfig),
		Stats: NewStatsOverlay(doc),
	}
	a.Scene.LoadModels(ModelPaths)
	if !a.Audio.Init() {
		game.DebugWarn("Web Audio unavailable, sound disabled")
	}

	seed := common.SeedFromTime(time.Now())
	game.Debug("seed:", seed)
	a.Game = game.NewGame(cfg, game.Backend{
		Scene:  a.Scene,
		HUD:    a.HUD,
		Store:  NewLocalStorage(),
		Codec:  game.JSONCodec{},
		Sounds: a.Audio,
	}, common.NewSeededRNG(seed))

	a.Shop = NewShopPanel(doc, a.Game)
	a.Overlays = NewOverlays(doc, a.Game, a.Shop)
	a.SetupInputHandlers()
	a.resize()
	return a
}

// Start schedules the first animation frame.
func (a *App) Start() {
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.GameLoopRAF).Int()
}

// GameLoopRAF runs once per animation frame. The simulation only advances
// while playing; the scene is still drawn behind the menus.
func (a *App) GameLoopRAF(currentTime float64) {
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.GameLoopRAF).Int()

	a.Stats.FPS.Update(currentTime)
	if a.Game.Menu.Active() {
		a.Game.Frame()
	} else {
		a.Scene.Render()
	}
	a.Stats.Render(a.Game, a.Scene)
}

func (a *App) resize() {
	width, height := windowSize()
	a.Scene.Resize(width, height)
	a.Game.Resize(width, height)
}

func windowSize() (int, int) {
	return js.Global.Get("innerWidth").Int(), js.Global.Get("innerHeight").Int()
}
