//go:build js
// +build js

package web

import (
	"errors"
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ufo-defense/game"
)

// popupDuration is how long the purchase popup stays up, in milliseconds.
const popupDuration = 1000

// ShopPanel renders the shop items into the shop overlay.
type ShopPanel struct {
	game  *game.Game
	doc   *js.Object
	popup *js.Object

	buttons map[string]*js.Object
	amounts map[string]*js.Object
	timer   *js.Object
}

// NewShopPanel creates one .shop-item block per item, inserted before the
// close button of the shop overlay.
func NewShopPanel(doc *js.Object, g *game.Game) *ShopPanel {
	p := &ShopPanel{
		game:    g,
		doc:     doc,
		popup:   doc.Call("getElementById", "popupMessage"),
		buttons: make(map[string]*js.Object),
		amounts: make(map[string]*js.Object),
	}

	content := doc.Call("getElementById", "gameShopOverlay").Call("querySelector", ".overlayShopContent")
	closeButton := content.Call("querySelector", "#closeShop")
	for _, item := range g.Shop.Items() {
		content.Call("insertBefore", p.itemElement(item), closeButton)
	}
	p.Refresh()
	return p
}

func (p *ShopPanel) itemElement(item game.ShopItem) *js.Object {
	container := p.element("div", "")
	container.Set("className", "shop-item")
	container.Call("appendChild", p.element("h4", item.Name))
	container.Call("appendChild", p.element("p", "Cost: "+strconv.Itoa(item.Cost)))

	amount := p.element("p", "")
	container.Call("appendChild", amount)
	p.amounts[item.Key] = amount

	button := p.element("button", "Buy")
	button.Set("id", item.Name+"-buyButton")
	button.Set("className", "menuButton")
	key := item.Key
	button.Call("addEventListener", "click", func() {
		p.buy(key, button)
	})
	container.Call("appendChild", button)
	p.buttons[item.Key] = button

	desc := p.element("p", item.Description)
	desc.Set("className", "item-description")
	container.Call("appendChild", desc)
	return container
}

func (p *ShopPanel) element(tag, text string) *js.Object {
	el := p.doc.Call("createElement", tag)
	if text != "" {
		el.Set("textContent", text)
	}
	return el
}

func (p *ShopPanel) buy(key string, button *js.Object) {
	_, err := p.game.Purchase(key)
	switch {
	case err == nil:
		p.showPopup(button, "Purchased!")
	case errors.Is(err, game.ErrInsufficientFunds):
		p.showPopup(button, "Not enough score!")
	case errors.Is(err, game.ErrItemMaxed):
		p.showPopup(button, "Maxed out")
	}
	p.Refresh()
}

// Refresh updates the amount line and the buy button of every item.
func (p *ShopPanel) Refresh() {
	shop := p.game.Shop
	for _, item := range shop.Items() {
		if el, ok := p.amounts[item.Key]; ok {
			el.Set("textContent", "Current: "+shop.FormatAmount(item))
		}
		button, ok := p.buttons[item.Key]
		if !ok {
			continue
		}
		style := button.Get("style")
		if shop.IsMaxedOut(item) {
			button.Set("textContent", "MAX")
			button.Set("disabled", true)
			style.Set("backgroundColor", "grey")
		} else {
			button.Set("textContent", "Buy")
			button.Set("disabled", false)
			style.Set("backgroundColor", "")
		}
	}
}

func (p *ShopPanel) showPopup(button *js.Object, text string) {
	if !defined(p.popup) {
		return
	}
	rect := button.Call("getBoundingClientRect")
	left := rect.Get("left").Float() + button.Get("offsetWidth").Float()/2
	top := js.Global.Get("scrollY").Float() + rect.Get("top").Float() - 70

	p.popup.Set("textContent", text)
	style := p.popup.Get("style")
	style.Set("left", strconv.FormatFloat(left, 'f', 0, 64)+"px")
	style.Set("top", strconv.FormatFloat(top, 'f', 0, 64)+"px")
	style.Set("display", "block")

	if p.timer != nil {
		js.Global.Call("clearTimeout", p.timer)
	}
	p.timer = js.Global.Call("setTimeout", func() {
		style.Set("display", "none")
		p.timer = nil
	}, popupDuration)
}
