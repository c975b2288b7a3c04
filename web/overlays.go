//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ufo-defense/game"
)

// Overlays shows the DOM overlay of the current screen and wires the menu
// buttons to the game.
type Overlays struct {
	doc  *js.Object
	game *game.Game
	shop *ShopPanel
}

// NewOverlays binds the buttons and subscribes to menu changes.
func NewOverlays(doc *js.Object, g *game.Game, shop *ShopPanel) *Overlays {
	o := &Overlays{doc: doc, game: g, shop: shop}
	for id, action := range ButtonActions(g) {
		o.bind(id, action)
	}
	g.Menu.Subscribe(o)
	o.show(g.Menu.State())
	return o
}

func (o *Overlays) bind(id string, action func() error) {
	button := o.doc.Call("getElementById", id)
	if !defined(button) {
		game.DebugWarn("missing button", id)
		return
	}
	button.Call("addEventListener", "click", func() {
		if err := action(); err != nil {
			game.DebugWarn(id+":", err)
		}
	})
}

// MenuChanged implements game.MenuListener.
func (o *Overlays) MenuChanged(from, to game.MenuState) {
	o.show(to)
}

func (o *Overlays) show(state game.MenuState) {
	for _, id := range AllOverlays {
		o.setDisplay(id, overlayHidden)
	}
	for _, id := range OverlaysFor(state) {
		o.setDisplay(id, overlayShown)
	}
	switch state {
	case game.MainMenu:
		o.updateContinueButton()
	case game.MenuShop, game.ShopOpen:
		o.shop.Refresh()
	}
}

func (o *Overlays) setDisplay(id, display string) {
	if el := o.doc.Call("getElementById", id); defined(el) {
		el.Get("style").Set("display", display)
	}
}

// updateContinueButton greys out Continue when there is no saved session.
func (o *Overlays) updateContinueButton() {
	button := o.doc.Call("getElementById", ContinueButtonID)
	if !defined(button) {
		return
	}
	can := o.game.CanContinue()
	button.Set("disabled", !can)
	if can {
		button.Get("style").Set("backgroundColor", "")
	} else {
		button.Get("style").Set("backgroundColor", "grey")
	}
}
