package game

import "github.com/simukka/ufo-defense/audio"

// Frame is the scheduler entry point, called once per animation frame. It
// does nothing unless the session is playing.
func (g *Game) Frame() {
	if !g.Menu.Active() {
		return
	}

	now := g.clock.Now()
	delta := now - g.lastFrameTime
	g.lastFrameTime = now
	if delta < 0 {
		delta = 0
	}
	if delta > MaxDeltaTime {
		delta = MaxDeltaTime
	}

	g.Tick(now, delta)
}

// Tick runs one simulation step at session time now, moving the ship by
// delta seconds. A tick always runs to completion; a game over only stops
// the next one.
func (g *Game) Tick(now, delta float64) {
	g.Ticks++
	Debug("Tick:", g.Ticks, "Aliens:", g.Aliens.ActiveCount(), "Bullets:", g.Bullets.Len())

	g.UpdateShip(delta)
	g.UpdateAliens()
	g.Bullets.Advance()
	g.TryFire(now)
	g.ResolveCollisions()
	g.Persist()
	g.Render()
}

// UpdateShip moves the ship and eases the camera toward it.
func (g *Game) UpdateShip(delta float64) {
	g.Ship.Move(&g.Input, g.Config.Bounds, delta)
	g.scene.Move(g.Ship.object, g.Ship.Position, g.Ship.Tilt)

	g.Camera.Follow(g.Ship)
	g.scene.MoveCamera(g.Camera.Position)
}

// UpdateAliens advances every active alien. A breaching alien costs one
// health and is recycled in place at a new spawn point.
func (g *Game) UpdateAliens() {
	for _, a := range g.Aliens.Active() {
		a.Advance()
		if a.Breached(g.Config.BreachDepth) {
			g.Aliens.Respawn(a)
			g.sounds.Play(audio.Breach)
			if g.Health.Decrease(DefaultHealthStep) {
				g.gameOver()
			}
			continue
		}
		g.scene.Move(a.object, a.Position, 0)
	}
}

// TryFire spawns a bullet when fire is held and the cooldown has elapsed.
// It reports whether a bullet was spawned.
func (g *Game) TryFire(now float64) bool {
	if !g.Input.Fire {
		return false
	}
	if now-g.lastFireTime <= g.Session.BulletCooldown {
		return false
	}
	g.Bullets.Spawn(g.Ship.Position, g.Session.BulletSpeed)
	g.lastFireTime = now
	g.sounds.Play(audio.Fire)
	return true
}

// Persist writes the session while it is playing. Failures are logged and
// play continues.
func (g *Game) Persist() {
	if !g.Menu.Active() {
		return
	}
	if err := g.Saves.Save(*g.Session); err != nil {
		DebugWarn("save session:", err)
	}
}

// Render hands the finished frame to the scene.
func (g *Game) Render() {
	if g.Stars != nil {
		g.Stars.Update()
		g.scene.SetStars(g.Stars.Stars)
	}
	g.scene.Render()
}
