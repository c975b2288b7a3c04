//go:build js
// +build js

package web

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// HUD writes the counters into DOM text elements.
type HUD struct {
	root   *js.Object
	score  *js.Object
	health *js.Object
}

// NewHUD binds to the #hud, #scoreText and #healthText elements.
func NewHUD(doc *js.Object) *HUD {
	return &HUD{
		root:   doc.Call("getElementById", "hud"),
		score:  doc.Call("getElementById", "scoreText"),
		health: doc.Call("getElementById", "healthText"),
	}
}

func (h *HUD) UpdateScore(score int) {
	if defined(h.score) {
		h.score.Set("textContent", "Score: "+strconv.Itoa(score))
	}
}

func (h *HUD) UpdateHealth(health int) {
	if defined(h.health) {
		h.health.Set("textContent", "Health: "+strconv.Itoa(health))
	}
}

// Resize scales the HUD font with the window height.
func (h *HUD) Resize(width, height int) {
	if !defined(h.root) {
		return
	}
	size := height / 30
	if size < 16 {
		size = 16
	}
	h.root.Get("style").Set("fontSize", strconv.Itoa(size)+"px")
}
