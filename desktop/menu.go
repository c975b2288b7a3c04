package desktop

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/simukka/ufo-defense/game"
)

// ErrQuit is returned by HandleMenuKey when the player quits from the main
// menu.
var ErrQuit = errors.New("quit")

// Key names as reported by ebiten.Key.String.
const (
	KeyEnter  = "Enter"
	KeyEscape = "Escape"
	digitKey  = "Digit"
)

// MenuLine is one key hint of a menu screen.
type MenuLine struct {
	Key   string
	Label string
}

func (l MenuLine) String() string {
	return fmt.Sprintf("[%s] %s", l.Key, l.Label)
}

var menuTitles = map[game.MenuState]string{
	game.MainMenu:       "UFO DEFENSE",
	game.ConfirmNewGame: "START A NEW GAME? YOUR SAVED GAME WILL BE LOST.",
	game.MenuShop:       "SHOP",
	game.ShopOpen:       "SHOP",
	game.Paused:         "PAUSED",
	game.GameOver:       "GAME OVER",
}

// MenuTitle returns the heading of the current screen, empty while playing.
func MenuTitle(state game.MenuState) string {
	return menuTitles[state]
}

// MenuLines returns the key hints of the current screen.
func MenuLines(g *game.Game) []MenuLine {
	switch g.Menu.State() {
	case game.MainMenu:
		lines := []MenuLine{{KeyEnter, "Start"}}
		if g.CanContinue() {
			lines = append(lines, MenuLine{"C", "Continue"})
		}
		return append(lines, MenuLine{"B", "Shop"}, MenuLine{"Q", "Quit"})
	case game.ConfirmNewGame:
		return []MenuLine{{"Y", "Yes"}, {"N", "No"}}
	case game.MenuShop, game.ShopOpen:
		var lines []MenuLine
		for i, item := range g.Shop.Items() {
			label := fmt.Sprintf("%s (%d) - now %s", item.Name, item.Cost, g.Shop.FormatAmount(item))
			if g.Shop.IsMaxedOut(item) {
				label += " MAX"
			}
			lines = append(lines, MenuLine{strconv.Itoa(i + 1), label})
		}
		return append(lines, MenuLine{"B", "Close"})
	case game.Paused:
		return []MenuLine{{"Esc", "Resume"}, {"M", "Main menu"}}
	case game.GameOver:
		return []MenuLine{{KeyEnter, "Play again"}, {"M", "Main menu"}}
	}
	return nil
}

// HandleMenuKey runs the menu operation bound to key on the current screen.
// Unbound keys are ignored.
func HandleMenuKey(g *game.Game, key string) error {
	switch g.Menu.State() {
	case game.MainMenu:
		switch key {
		case KeyEnter:
			return g.StartGame()
		case "C":
			return g.ContinueGame()
		case "B":
			return g.ToggleShop()
		case "Q":
			return ErrQuit
		}
	case game.ConfirmNewGame:
		switch key {
		case "Y":
			return g.ConfirmNewGame()
		case "N", KeyEscape:
			return g.CancelNewGame()
		}
	case game.MenuShop, game.ShopOpen:
		if key == "B" || key == KeyEscape {
			return g.ToggleShop()
		}
		if n, ok := digit(key); ok {
			items := g.Shop.Items()
			if n < 1 || n > len(items) {
				return nil
			}
			_, err := g.Purchase(items[n-1].Key)
			return err
		}
	case game.Paused:
		switch key {
		case KeyEscape:
			return g.TogglePause()
		case "M":
			return g.GoToMainMenu()
		}
	case game.GameOver:
		switch key {
		case KeyEnter:
			return g.ResetGame()
		case "M":
			return g.GoToMainMenu()
		}
	}
	return nil
}

func digit(key string) (int, bool) {
	if !strings.HasPrefix(key, digitKey) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(key, digitKey))
	return n, err == nil
}
