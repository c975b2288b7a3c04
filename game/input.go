package game

// Action is a discrete key press the frontend dispatches to the game.
type Action int

const (
	NoAction Action = iota
	ActionPause
	ActionShop
	ActionCamera
	ActionBeam
)

func (a Action) String() string {
	switch a {
	case ActionPause:
		return "pause"
	case ActionShop:
		return "shop"
	case ActionCamera:
		return "camera"
	case ActionBeam:
		return "beam"
	default:
		return "none"
	}
}

// Key names as reported by KeyboardEvent.key.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeySpace      = " "
	KeyEscape     = "Escape"
)

// KeyMap maps alternative key names onto the canonical ones.
var KeyMap = map[string]string{
	"a":     KeyArrowLeft,
	"A":     KeyArrowLeft,
	"d":     KeyArrowRight,
	"D":     KeyArrowRight,
	"w":     KeyArrowUp,
	"W":     KeyArrowUp,
	"s":     KeyArrowDown,
	"S":     KeyArrowDown,
	"Space": KeySpace,
	"Esc":   KeyEscape,
}

// TranslateKey returns the canonical name for key.
func TranslateKey(key string) string {
	if mapped, ok := KeyMap[key]; ok {
		return mapped
	}
	return key
}

// Input holds the movement and fire flags the tick reads.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	MoveUp    bool
	MoveDown  bool
	Fire      bool
}

// KeyDown records a key press. Held keys set flags; discrete keys are
// returned as an Action for the caller to dispatch.
func (in *Input) KeyDown(key string) Action {
	switch TranslateKey(key) {
	case KeyArrowLeft:
		in.MoveLeft = true
	case KeyArrowRight:
		in.MoveRight = true
	case KeyArrowUp:
		in.MoveUp = true
	case KeyArrowDown:
		in.MoveDown = true
	case KeySpace:
		in.Fire = true
	case KeyEscape:
		return ActionPause
	case "b", "B":
		return ActionShop
	case "c", "C":
		return ActionCamera
	case "h", "H":
		return ActionBeam
	}
	return NoAction
}

// KeyUp clears the flag held by key.
func (in *Input) KeyUp(key string) {
	switch TranslateKey(key) {
	case KeyArrowLeft:
		in.MoveLeft = false
	case KeyArrowRight:
		in.MoveRight = false
	case KeyArrowUp:
		in.MoveUp = false
	case KeyArrowDown:
		in.MoveDown = false
	case KeySpace:
		in.Fire = false
	}
}

// Clear releases every held flag, e.g. when the window loses focus.
func (in *Input) Clear() {
	*in = Input{}
}
