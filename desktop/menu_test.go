package desktop

import (
	"errors"
	"testing"

	"github.com/simukka/ufo-defense/game"
)

func newMenuGame(t *testing.T) *game.Game {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.StarCount = 0
	return game.NewGame(cfg, game.Backend{}, constSource(0.5))
}

func TestHandleMenuKey_StartPauseMainMenu(t *testing.T) {
	g := newMenuGame(t)

	steps := []struct {
		key  string
		want game.MenuState
	}{
		{"X", game.MainMenu},
		{KeyEnter, game.Playing},
		{KeyEscape, game.Playing}, // play keys go through game.Input, not the menu
	}
	for _, s := range steps {
		if err := HandleMenuKey(g, s.key); err != nil {
			t.Fatalf("%s: %v", s.key, err)
		}
		if g.Menu.State() != s.want {
			t.Fatalf("after %s state = %s, want %s", s.key, g.Menu.State(), s.want)
		}
	}

	if err := g.TogglePause(); err != nil {
		t.Fatal(err)
	}
	if err := HandleMenuKey(g, "M"); err != nil {
		t.Fatal(err)
	}
	if g.Menu.State() != game.MainMenu {
		t.Errorf("state = %s, want MainMenu", g.Menu.State())
	}
}

func TestHandleMenuKey_Quit(t *testing.T) {
	g := newMenuGame(t)
	if err := HandleMenuKey(g, "Q"); !errors.Is(err, ErrQuit) {
		t.Errorf("Q = %v, want ErrQuit", err)
	}
}

func TestHandleMenuKey_ShopPurchase(t *testing.T) {
	g := newMenuGame(t)
	if err := HandleMenuKey(g, "B"); err != nil {
		t.Fatal(err)
	}
	if g.Menu.State() != game.MenuShop {
		t.Fatalf("state = %s, want MenuShop", g.Menu.State())
	}

	if err := HandleMenuKey(g, "Digit1"); !errors.Is(err, game.ErrInsufficientFunds) {
		t.Errorf("buy with no score = %v, want ErrInsufficientFunds", err)
	}

	g.Score.Set(200)
	if err := HandleMenuKey(g, "Digit1"); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if g.Score.Value() != 0 {
		t.Errorf("score = %d after purchase, want 0", g.Score.Value())
	}
	if err := HandleMenuKey(g, "Digit9"); err != nil {
		t.Errorf("out of range item: %v", err)
	}

	if err := HandleMenuKey(g, KeyEscape); err != nil {
		t.Fatal(err)
	}
	if g.Menu.State() != game.MainMenu {
		t.Errorf("state = %s, want MainMenu", g.Menu.State())
	}
}

func TestMenuLines_ContinueOnlyWithSave(t *testing.T) {
	g := newMenuGame(t)
	if hasKey(MenuLines(g), "C") {
		t.Error("Continue offered without a saved game")
	}

	if err := g.Saves.Save(*g.Session); err != nil {
		t.Fatal(err)
	}
	if !hasKey(MenuLines(g), "C") {
		t.Error("Continue missing with a saved game")
	}
}

func TestMenuLines_ShopShowsEveryItem(t *testing.T) {
	g := newMenuGame(t)
	if err := g.ToggleShop(); err != nil {
		t.Fatal(err)
	}
	lines := MenuLines(g)
	if want := len(g.Shop.Items()) + 1; len(lines) != want {
		t.Errorf("shop lines = %d, want %d", len(lines), want)
	}
	if MenuTitle(g.Menu.State()) != "SHOP" {
		t.Errorf("title = %q", MenuTitle(g.Menu.State()))
	}
	if MenuTitle(game.Playing) != "" {
		t.Error("Playing should have no title")
	}
}

func hasKey(lines []MenuLine, key string) bool {
	for _, l := range lines {
		if l.Key == key {
			return true
		}
	}
	return false
}
