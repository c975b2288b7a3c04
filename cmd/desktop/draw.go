//go:build !js
// +build !js

package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/simukka/ufo-defense/desktop"
	"github.com/simukka/ufo-defense/game"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	starColor       = color.RGBA{200, 200, 200, 255}
	shipColor       = color.RGBA{0x99, 0xff, 0x00, 255}
	alienColor      = color.RGBA{0x66, 0x22, 0xff, 255}
	alienRimColor   = color.RGBA{0xcc, 0xbb, 0xff, 255}
	bulletColor     = color.RGBA{0xff, 0x00, 0x00, 255}
	beamColor       = color.RGBA{0xff, 0xff, 0xff, 160}
	beamLockedColor = color.RGBA{0xff, 0x00, 0x00, 220}
	textColor       = color.White
	overlayColor    = color.RGBA{0, 0, 0, 180}
	titleColor      = color.RGBA{0x99, 0xff, 0x00, 255}
)

// World sizes of the drawn shapes.
const (
	alienRadius  = 0.5
	shipHalfSize = 0.4
	bulletSize   = 0.1
	lineHeight   = 20
)

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.proj.LookFrom(a.scene.Camera)

	a.drawStars(screen)
	for _, o := range a.scene.DrawOrder() {
		switch o.Kind {
		case game.AlienObject:
			a.drawAlien(screen, o.Position)
		case game.BulletObject:
			a.drawBullet(screen, o.Position)
		case game.ShipObject:
			a.drawShip(screen, o.Position, o.Tilt)
		}
	}
	a.drawBeam(screen)
	a.drawHUD(screen)

	if !a.game.Menu.Active() {
		a.drawMenu(screen)
	}
}

func (a *App) drawStars(screen *ebiten.Image) {
	for _, s := range a.scene.Stars {
		x, y, ok := a.proj.Project(s)
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), 1, 1, starColor, false)
	}
}

func (a *App) drawAlien(screen *ebiten.Image, p mgl64.Vec3) {
	x, y, ok := a.proj.Project(p)
	if !ok {
		return
	}
	r := float32(a.proj.Scale(p, alienRadius))
	vector.DrawFilledCircle(screen, float32(x), float32(y), r, alienColor, true)
	vector.StrokeCircle(screen, float32(x), float32(y), r, 1, alienRimColor, true)
}

func (a *App) drawBullet(screen *ebiten.Image, p mgl64.Vec3) {
	x, y, ok := a.proj.Project(p)
	if !ok {
		return
	}
	s := float32(math.Max(a.proj.Scale(p, bulletSize), 2))
	vector.DrawFilledRect(screen, float32(x)-s/2, float32(y)-s/2, s, s, bulletColor, false)
}

// drawShip draws a triangle rolled by tilt.
func (a *App) drawShip(screen *ebiten.Image, p mgl64.Vec3, tilt float64) {
	x, y, ok := a.proj.Project(p)
	if !ok {
		return
	}
	size := a.proj.Scale(p, shipHalfSize)
	rot := mgl64.Rotate2D(-tilt)
	corners := [3]mgl64.Vec2{{0, -size}, {-size, size / 2}, {size, size / 2}}
	for i := range corners {
		corners[i] = rot.Mul2x1(corners[i]).Add(mgl64.Vec2{x, y})
	}
	for i := range corners {
		from, to := corners[i], corners[(i+1)%len(corners)]
		vector.StrokeLine(screen, float32(from.X()), float32(from.Y()), float32(to.X()), float32(to.Y()), 2, shipColor, true)
	}
}

func (a *App) drawBeam(screen *ebiten.Image) {
	beam := a.scene.Beam
	if beam == nil {
		return
	}
	x0, y0, ok0 := a.proj.Project(beam.Origin)
	x1, y1, ok1 := a.proj.Project(beam.Tip())
	if !ok0 || !ok1 {
		return
	}
	clr := beamColor
	if beam.Locked {
		clr = beamLockedColor
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("Score: %d", a.hud.Score), face, 16, 24, textColor)
	health := fmt.Sprintf("Health: %d", a.hud.Health)
	text.Draw(screen, health, face, a.cfg.Width-16-len(health)*face.Advance, 24, textColor)
}

func (a *App) drawMenu(screen *ebiten.Image) {
	w, h := float32(a.cfg.Width), float32(a.cfg.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, overlayColor, false)

	face := basicfont.Face7x13
	lines := desktop.MenuLines(a.game)
	y := a.cfg.Height/2 - (len(lines)+2)*lineHeight/2

	title := desktop.MenuTitle(a.game.Menu.State())
	text.Draw(screen, title, face, (a.cfg.Width-len(title)*face.Advance)/2, y, titleColor)
	y += 2 * lineHeight

	for _, l := range lines {
		s := l.String()
		text.Draw(screen, s, face, (a.cfg.Width-len(s)*face.Advance)/2, y, textColor)
		y += lineHeight
	}

	if a.messageTicks > 0 {
		y += lineHeight
		text.Draw(screen, a.message, face, (a.cfg.Width-len(a.message)*face.Advance)/2, y, bulletColor)
	}
}
