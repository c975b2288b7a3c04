//go:build js
// +build js

package web

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ufo-defense/game"
)

// StatsOverlay draws live session statistics onto the #stats canvas.
// Toggled with F10.
type StatsOverlay struct {
	Visible bool
	FPS     FPSCounter

	canvas *js.Object
	ctx    *js.Object

	LineHeight  int
	PanelWidth  int
	PanelHeight int
}

// NewStatsOverlay binds to the stats canvas. It returns a hidden overlay
// that never draws when the page has no such canvas.
func NewStatsOverlay(doc *js.Object) *StatsOverlay {
	s := &StatsOverlay{
		LineHeight:  18,
		PanelWidth:  264,
		PanelHeight: 200,
	}
	s.canvas = doc.Call("getElementById", "stats")
	if defined(s.canvas) {
		s.ctx = s.canvas.Call("getContext", "2d")
	}
	return s
}

// Toggle toggles the stats overlay visibility.
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
	if !defined(s.canvas) {
		return
	}
	if s.Visible {
		s.canvas.Get("style").Set("display", "block")
	} else {
		s.canvas.Get("style").Set("display", "none")
	}
}

// Render draws the panel for the current frame.
func (s *StatsOverlay) Render(g *game.Game, scene *Scene) {
	if !s.Visible || s.ctx == nil {
		return
	}
	ctx := s.ctx
	ctx.Call("clearRect", 0, 0, s.PanelWidth, s.PanelHeight)

	ctx.Set("fillStyle", Theme.PanelBackground)
	ctx.Call("fillRect", 0, 0, s.PanelWidth, s.PanelHeight)
	ctx.Set("strokeStyle", Theme.PanelBorder)
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", 0, 0, s.PanelWidth, s.PanelHeight)

	ctx.Set("fillStyle", Theme.PanelTitle)
	ctx.Set("font", Theme.PanelTitleFont)
	ctx.Set("textAlign", "left")
	ctx.Call("fillText", "GAME STATS [F10]", 10, 20)

	ctx.Set("font", Theme.PanelFont)
	y := 44

	s.drawStatLine("FPS", strconv.FormatFloat(s.FPS.Current, 'f', 1, 64), "#00ff00", y)
	y += s.LineHeight
	s.drawStatLine("Screen", g.Menu.State().String(), "#ffffff", y)
	y += s.LineHeight
	s.drawStatLine("Score", strconv.Itoa(g.Score.Value()), "#ffff00", y)
	y += s.LineHeight
	s.drawStatLine("Health", strconv.Itoa(g.Health.Value()), healthColor(g.Health.Value(), g.Config.InitialHealth), y)
	y += s.LineHeight

	y += 5
	ctx.Set("fillStyle", Theme.PanelSeparator)
	ctx.Call("fillText", "-- Pools --", 10, y)
	y += s.LineHeight

	aliens := strconv.Itoa(g.Aliens.ActiveCount()) + " active / " + strconv.Itoa(g.Aliens.FreeCount()) + " free"
	s.drawStatLine("Aliens", aliens, "#ff0066", y)
	y += s.LineHeight
	s.drawStatLine("Bullets", strconv.Itoa(g.Bullets.Len()), "#ff8800", y)
	y += s.LineHeight
	s.drawStatLine("Objects", strconv.Itoa(scene.Objects()), "#aaaaaa", y)
}

// drawStatLine draws a label on the left and its value right-aligned.
func (s *StatsOverlay) drawStatLine(label, value, valueColor string, y int) {
	s.ctx.Set("fillStyle", Theme.PanelLabel)
	s.ctx.Call("fillText", label+":", 15, y)

	s.ctx.Set("fillStyle", valueColor)
	s.ctx.Set("textAlign", "right")
	s.ctx.Call("fillText", value, s.PanelWidth-15, y)
	s.ctx.Set("textAlign", "left")
}
