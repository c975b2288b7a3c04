package web

import "github.com/simukka/ufo-defense/game"

// Overlay element IDs.
const (
	MainMenuOverlay  = "mainMenu"
	ConfirmOverlay   = "newGameConfirmationOverlay"
	PauseOverlay     = "pauseMenuOverlay"
	GameOverOverlay  = "gameOverOverlay"
	ShopOverlay      = "gameShopOverlay"
	ContinueButtonID = "continueButton"

	overlayShown  = "flex"
	overlayHidden = "none"
)

// AllOverlays lists every overlay the page defines.
var AllOverlays = []string{
	MainMenuOverlay,
	ConfirmOverlay,
	PauseOverlay,
	GameOverOverlay,
	ShopOverlay,
}

// screenOverlays lists the overlays visible on each screen, bottom first.
// The confirmation and the menu shop stack on top of the main menu.
var screenOverlays = map[game.MenuState][]string{
	game.MainMenu:       {MainMenuOverlay},
	game.ConfirmNewGame: {MainMenuOverlay, ConfirmOverlay},
	game.MenuShop:       {MainMenuOverlay, ShopOverlay},
	game.Playing:        nil,
	game.Paused:         {PauseOverlay},
	game.ShopOpen:       {ShopOverlay},
	game.GameOver:       {GameOverOverlay},
}

// OverlaysFor returns the overlays to show for state.
func OverlaysFor(state game.MenuState) []string {
	return screenOverlays[state]
}

// ButtonActions maps each menu button ID to the game operation it runs.
func ButtonActions(g *game.Game) map[string]func() error {
	return map[string]func() error{
		"startButton":       g.StartGame,
		"continueButton":    g.ContinueGame,
		"shopButton":        g.ToggleShop,
		"closeShop":         g.ToggleShop,
		"confirmNewGame":    g.ConfirmNewGame,
		"cancelNewGame":     g.CancelNewGame,
		"resumeGame":        g.TogglePause,
		"resetGame":         g.ResetGame,
		"goToMainMenu":      g.GoToMainMenu,
		"pauseGoToMainMenu": g.GoToMainMenu,
	}
}
