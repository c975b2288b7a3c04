package web

import (
	"errors"
	"testing"

	"github.com/simukka/ufo-defense/game"
)

func TestOverlaysFor_EveryScreen(t *testing.T) {
	states := []game.MenuState{
		game.MainMenu, game.ConfirmNewGame, game.MenuShop,
		game.Playing, game.Paused, game.ShopOpen, game.GameOver,
	}
	known := make(map[string]bool)
	for _, id := range AllOverlays {
		known[id] = true
	}
	for _, s := range states {
		if _, ok := screenOverlays[s]; !ok {
			t.Errorf("no overlay entry for %s", s)
		}
		for _, id := range OverlaysFor(s) {
			if !known[id] {
				t.Errorf("%s shows unknown overlay %q", s, id)
			}
		}
	}
	if n := len(OverlaysFor(game.Playing)); n != 0 {
		t.Errorf("Playing shows %d overlays, want none", n)
	}
}

func TestOverlaysFor_StackedOnMainMenu(t *testing.T) {
	for _, s := range []game.MenuState{game.ConfirmNewGame, game.MenuShop} {
		ids := OverlaysFor(s)
		if len(ids) != 2 || ids[0] != MainMenuOverlay {
			t.Errorf("%s overlays = %v, want main menu underneath", s, ids)
		}
	}
}

func TestButtonActions_DriveMenu(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.StarCount = 0
	g := game.NewGame(cfg, game.Backend{}, fixedSource{})
	actions := ButtonActions(g)

	if len(actions) != 10 {
		t.Fatalf("got %d buttons, want 10", len(actions))
	}
	if err := actions["startButton"](); err != nil {
		t.Fatalf("start: %v", err)
	}
	if g.Menu.State() != game.Playing {
		t.Fatalf("state = %s, want Playing", g.Menu.State())
	}
	if err := actions["continueButton"](); !errors.Is(err, game.ErrInvalidTransition) {
		t.Errorf("continue while playing: err = %v, want ErrInvalidTransition", err)
	}
}

func TestFPSCounter(t *testing.T) {
	var f FPSCounter
	for i := 1; i <= 60; i++ {
		f.Update(float64(i) * 1000 / 60)
	}
	if f.Current < 59 || f.Current > 61 {
		t.Errorf("fps = %.1f, want ~60", f.Current)
	}
	if f.FrameCount != 0 {
		t.Errorf("frame count = %d after a window closed, want 0", f.FrameCount)
	}
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		health, max int
		want        string
	}{
		{3, 3, "#00ff00"},
		{2, 3, "#88ff00"},
		{1, 3, "#ffff00"},
		{0, 3, "#ff0000"},
		{0, 0, "#ff0000"},
	}
	for _, tt := range tests {
		if got := healthColor(tt.health, tt.max); got != tt.want {
			t.Errorf("healthColor(%d, %d) = %s, want %s", tt.health, tt.max, got, tt.want)
		}
	}
}

type fixedSource struct{}

func (fixedSource) Float64() float64 { return 0.5 }
