//go:build !js
// +build !js

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/simukka/ufo-defense/desktop"
	"github.com/simukka/ufo-defense/game"
)

// messageTicks is how long a menu message stays on screen (ebiten ticks).
const messageTicks = 60

// playKeys are forwarded to game.Input while playing. Their String names
// are the ones game.Input understands.
var playKeys = []ebiten.Key{
	ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp, ebiten.KeyArrowDown,
	ebiten.KeyA, ebiten.KeyD, ebiten.KeyW, ebiten.KeyS,
	ebiten.KeySpace, ebiten.KeyEscape,
	ebiten.KeyB, ebiten.KeyC, ebiten.KeyH,
}

// App adapts game.Game to ebiten.Game.
type App struct {
	cfg    desktop.Config
	game   *game.Game
	scene  *desktop.Scene
	hud    *desktop.HUD
	sounds *SoundManager
	proj   *desktop.Projector

	message      string
	messageTicks int
	keys         []ebiten.Key
}

func NewApp(cfg desktop.Config, g *game.Game, scene *desktop.Scene, hud *desktop.HUD, sounds *SoundManager) *App {
	return &App{
		cfg:    cfg,
		game:   g,
		scene:  scene,
		hud:    hud,
		sounds: sounds,
		proj:   desktop.NewProjector(cfg.Width, cfg.Height),
	}
}

func (a *App) Update() error {
	if a.messageTicks > 0 {
		a.messageTicks--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && a.game.Menu.Active() {
		game.Debug("muted:", a.sounds.ToggleMute())
	}

	if a.game.Menu.Active() {
		a.updatePlay()
	} else if err := a.updateMenu(); err != nil {
		return err
	}

	a.game.Frame()
	return nil
}

func (a *App) updatePlay() {
	for _, k := range playKeys {
		name := k.String()
		if inpututil.IsKeyJustReleased(k) {
			a.game.Input.KeyUp(name)
		}
		if inpututil.IsKeyJustPressed(k) {
			a.game.HandleAction(a.game.Input.KeyDown(name))
		}
	}
}

func (a *App) updateMenu() error {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		err := desktop.HandleMenuKey(a.game, k.String())
		switch {
		case errors.Is(err, desktop.ErrQuit):
			a.sounds.Cleanup()
			return ebiten.Termination
		case errors.Is(err, game.ErrInsufficientFunds):
			a.flash("Not enough score!")
		case errors.Is(err, game.ErrItemMaxed):
			a.flash("Maxed out")
		case err != nil:
			game.DebugWarn(k.String()+":", err)
		}
		if a.game.Menu.Active() {
			// The rest of this frame's keys belong to play.
			break
		}
	}
	return nil
}

func (a *App) flash(msg string) {
	a.message = msg
	a.messageTicks = messageTicks
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}
