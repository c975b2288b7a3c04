package game

import "fmt"

// MenuState is the single authoritative screen/session state.
type MenuState int

const (
	MainMenu MenuState = iota
	ConfirmNewGame
	MenuShop
	Playing
	Paused
	ShopOpen
	GameOver
)

var menuStateNames = [...]string{
	MainMenu:       "MainMenu",
	ConfirmNewGame: "ConfirmNewGame",
	MenuShop:       "MenuShop",
	Playing:        "Playing",
	Paused:         "Paused",
	ShopOpen:       "Shop",
	GameOver:       "GameOver",
}

func (s MenuState) String() string {
	if s < 0 || int(s) >= len(menuStateNames) {
		return fmt.Sprintf("MenuState(%d)", int(s))
	}
	return menuStateNames[s]
}

// MenuEvent drives the state machine.
type MenuEvent int

const (
	EventStart MenuEvent = iota
	EventAskNewGame
	EventContinue
	EventToggleShop
	EventConfirm
	EventCancel
	EventTogglePause
	EventGameOver
	EventReset
	EventMainMenu
)

var menuEventNames = [...]string{
	EventStart:       "Start",
	EventAskNewGame:  "AskNewGame",
	EventContinue:    "Continue",
	EventToggleShop:  "ToggleShop",
	EventConfirm:     "Confirm",
	EventCancel:      "Cancel",
	EventTogglePause: "TogglePause",
	EventGameOver:    "GameOver",
	EventReset:       "Reset",
	EventMainMenu:    "MainMenu",
}

func (e MenuEvent) String() string {
	if e < 0 || int(e) >= len(menuEventNames) {
		return fmt.Sprintf("MenuEvent(%d)", int(e))
	}
	return menuEventNames[e]
}

type menuEdge struct {
	from  MenuState
	event MenuEvent
}

var menuTransitions = map[menuEdge]MenuState{
	{MainMenu, EventStart}:         Playing,
	{MainMenu, EventAskNewGame}:    ConfirmNewGame,
	{MainMenu, EventContinue}:      Playing,
	{MainMenu, EventToggleShop}:    MenuShop,
	{MenuShop, EventToggleShop}:    MainMenu,
	{ConfirmNewGame, EventConfirm}: Playing,
	{ConfirmNewGame, EventCancel}:  MainMenu,
	{Playing, EventTogglePause}:    Paused,
	{Playing, EventToggleShop}:     ShopOpen,
	{Playing, EventGameOver}:       GameOver,
	{Paused, EventTogglePause}:     Playing,
	{Paused, EventMainMenu}:        MainMenu,
	{ShopOpen, EventToggleShop}:    Playing,
	{GameOver, EventReset}:         Playing,
	{GameOver, EventMainMenu}:      MainMenu,
}

// MenuListener is notified after every successful transition.
type MenuListener interface {
	MenuChanged(from, to MenuState)
}

// MenuListenerFunc adapts a function to MenuListener.
type MenuListenerFunc func(from, to MenuState)

func (f MenuListenerFunc) MenuChanged(from, to MenuState) { f(from, to) }

// Menu is the screen state machine. The game loop only ticks while it is
// in Playing.
type Menu struct {
	state     MenuState
	listeners []MenuListener
}

// NewMenu creates a menu on the main screen.
func NewMenu() *Menu {
	return &Menu{state: MainMenu}
}

func (m *Menu) State() MenuState {
	return m.state
}

// Active reports whether the session should tick.
func (m *Menu) Active() bool {
	return m.state == Playing
}

// Can reports whether ev is valid from the current state.
func (m *Menu) Can(ev MenuEvent) bool {
	_, ok := menuTransitions[menuEdge{m.state, ev}]
	return ok
}

// Fire applies ev. Invalid events leave the state unchanged and return
// ErrInvalidTransition.
func (m *Menu) Fire(ev MenuEvent) error {
	to, ok := menuTransitions[menuEdge{m.state, ev}]
	if !ok {
		return fmt.Errorf("%s on %s: %w", ev, m.state, ErrInvalidTransition)
	}
	from := m.state
	m.state = to
	Debugf("menu %s -[%s]-> %s", from, ev, to)
	for _, l := range m.listeners {
		l.MenuChanged(from, to)
	}
	return nil
}

// Subscribe registers l for transition notifications.
func (m *Menu) Subscribe(l MenuListener) {
	m.listeners = append(m.listeners, l)
}
