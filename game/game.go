package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/simukka/ufo-defense/audio"
	"github.com/simukka/ufo-defense/common"
)

// Game holds the complete session: world, counters, menus and the
// collaborators it pushes state into.
type Game struct {
	Config  Config
	Session *SessionState

	// Counters and screens
	Score  *Score
	Health *Health
	Shop   *Shop
	Menu   *Menu
	Saves  *Saves

	// Input flags, written by the frontend between frames
	Input Input

	// World
	Ship    *Ship
	Camera  *Camera
	Aliens  *AlienPool
	Bullets *BulletList
	Stars   *StarField

	// Ticks counts executed ticks since the game was created.
	Ticks int

	scene  Scene
	hud    HUD
	sounds Sounds
	clock  Clock

	lastFireTime  float64
	lastFrameTime float64

	// hits is reused by collision resolution every tick.
	hits []int
}

// NewGame creates a game sitting in the main menu with a fresh world.
func NewGame(cfg Config, b Backend, rng common.Source) *Game {
	if b.Clock == nil && cfg.FreezeClockOnPause {
		b.Clock = NewPausableClock()
	}
	b = b.withDefaults()

	session := NewSessionState(cfg)
	g := &Game{
		Config:  cfg,
		Session: &session,
		Menu:    NewMenu(),
		Saves:   NewSaves(b.Store, b.Codec),
		scene:   b.Scene,
		hud:     b.HUD,
		sounds:  b.Sounds,
		clock:   b.Clock,
		hits:    make([]int, 0, cfg.AlienActiveCount),
	}
	g.Score = NewScore(g.Session, g.hud)
	g.Health = NewHealth(g.Session, g.hud, cfg.InitialHealth)
	g.Shop = NewShop(DefaultShopItems(), g.Session, g.Score, g.Health)

	g.Ship = NewShip(g.scene, cfg.ShipSpeed)
	g.Camera = NewCamera()
	g.Aliens = NewAlienPool(cfg, rng, g.scene)
	g.Aliens.Prefill(cfg.AlienPoolSize)
	g.Bullets = NewBulletList(g.scene, cfg.ExitDepth)
	if cfg.StarCount > 0 {
		g.Stars = NewStarField(cfg.StarCount, rng)
		g.scene.SetStars(g.Stars.Stars)
	}

	g.Menu.Subscribe(MenuListenerFunc(g.menuChanged))
	if p, ok := g.clock.(Pausable); ok && cfg.FreezeClockOnPause {
		p.Pause()
	}
	g.resetWorld()
	return g
}

// resetWorld restores a fresh session and repopulates the play field.
func (g *Game) resetWorld() {
	*g.Session = NewSessionState(g.Config)
	g.Score.Refresh()
	g.Health.Refresh()

	g.Bullets.Clear()
	g.Aliens.Reset(g.Config.AlienActiveCount)
	g.Ship.Reset()
	g.scene.Move(g.Ship.object, g.Ship.Position, 0)
	g.scene.SetBeam(nil)
	g.Camera = NewCamera()
	g.scene.MoveCamera(g.Camera.Position)

	g.lastFireTime = math.Inf(-1)
	g.lastFrameTime = g.clock.Now()
}

// menuChanged keeps the clocks consistent with the screen.
func (g *Game) menuChanged(from, to MenuState) {
	if p, ok := g.clock.(Pausable); ok && g.Config.FreezeClockOnPause {
		if to == Playing {
			p.Resume()
		} else {
			p.Pause()
		}
	}
	if to == Playing {
		// The first tick after a screen change must not see the time spent
		// in the menu as frame delta.
		g.lastFrameTime = g.clock.Now()
		g.Input.Clear()
	}
}

// Clock returns the clock driving cooldown and frame delta.
func (g *Game) Clock() Clock {
	return g.clock
}

// CanContinue reports whether a saved session exists.
func (g *Game) CanContinue() bool {
	return g.Saves.Exists()
}

// StartGame begins a new session from the main menu. When a saved session
// exists the menu moves to ConfirmNewGame instead and nothing is reset.
func (g *Game) StartGame() error {
	if g.CanContinue() {
		return g.Menu.Fire(EventAskNewGame)
	}
	if err := g.Menu.Fire(EventStart); err != nil {
		return err
	}
	g.resetWorld()
	return nil
}

// ConfirmNewGame discards the saved session and starts a new one.
func (g *Game) ConfirmNewGame() error {
	if err := g.Menu.Fire(EventConfirm); err != nil {
		return err
	}
	g.clearSave()
	g.resetWorld()
	return nil
}

// CancelNewGame returns from the confirmation screen to the main menu.
func (g *Game) CancelNewGame() error {
	return g.Menu.Fire(EventCancel)
}

// ContinueGame restores the saved session and resumes play.
func (g *Game) ContinueGame() error {
	if !g.Menu.Can(EventContinue) {
		return fmt.Errorf("continue from %s: %w", g.Menu.State(), ErrInvalidTransition)
	}
	state, err := g.Saves.Load()
	if err != nil {
		return err
	}
	*g.Session = state
	g.Score.Refresh()
	g.Health.Refresh()
	return g.Menu.Fire(EventContinue)
}

// TogglePause flips between Playing and Paused.
func (g *Game) TogglePause() error {
	return g.Menu.Fire(EventTogglePause)
}

// ToggleShop opens or closes the shop, from the main menu or from play.
// Opening it from the main menu brings the saved session into memory so
// purchases are made against the score the player will continue with.
func (g *Game) ToggleShop() error {
	if g.Menu.State() == MainMenu && g.CanContinue() {
		state, err := g.Saves.Load()
		if err != nil {
			DebugWarn("load save for shop:", err)
		} else {
			*g.Session = state
			g.Score.Refresh()
			g.Health.Refresh()
		}
	}
	return g.Menu.Fire(EventToggleShop)
}

// ResetGame starts over after a game over.
func (g *Game) ResetGame() error {
	if err := g.Menu.Fire(EventReset); err != nil {
		return err
	}
	g.clearSave()
	g.resetWorld()
	return nil
}

// GoToMainMenu leaves the pause or game-over screen. After a game over the
// saved session is discarded and the world reset; from pause the save is
// kept so the player can continue.
func (g *Game) GoToMainMenu() error {
	from := g.Menu.State()
	if err := g.Menu.Fire(EventMainMenu); err != nil {
		return err
	}
	if from == GameOver {
		g.clearSave()
		g.resetWorld()
	}
	return nil
}

// Purchase buys a shop item and plays the matching sound.
func (g *Game) Purchase(key string) (ShopItem, error) {
	item, err := g.Shop.Purchase(key)
	if err != nil {
		if errors.Is(err, ErrUnknownItem) {
			DebugWarn(err)
		}
		g.sounds.Play(audio.Denied)
		return item, err
	}
	g.sounds.Play(audio.Purchase)
	if err := g.Saves.Save(*g.Session); err != nil {
		DebugWarn("save after purchase:", err)
	}
	return item, nil
}

// HandleAction dispatches a discrete key action. Actions that make no sense
// on the current screen are ignored.
func (g *Game) HandleAction(a Action) {
	var err error
	switch a {
	case ActionPause:
		err = g.TogglePause()
	case ActionShop:
		err = g.ToggleShop()
	case ActionCamera:
		g.Ship.ToggleCamera()
	case ActionBeam:
		g.Ship.ToggleBeam()
		if !g.Ship.BeamEnabled {
			g.scene.SetBeam(nil)
		}
	}
	if err != nil {
		Debug("ignored", a, "-", err)
	}
}

// Resize forwards a window size change to the HUD.
func (g *Game) Resize(width, height int) {
	g.hud.Resize(width, height)
}

func (g *Game) clearSave() {
	if err := g.Saves.Clear(); err != nil {
		DebugWarn("clear save:", err)
	}
}

func (g *Game) gameOver() {
	if err := g.Menu.Fire(EventGameOver); err != nil {
		DebugError("game over:", err)
		return
	}
	g.clearSave()
	g.sounds.Play(audio.GameOver)
	Debugf("game over after %d ticks, score %d", g.Ticks, g.Score.Value())
}
