package components

import (
	cfg "github.com/automoto/solar-sprint/config"
	"github.com/ebitenui/ebitenui"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// Keyboard, gamepad and on-screen controls are merged into Current.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// TouchPad is the on-screen buttons' held state, written by the UI handlers
// and merged by the input system on the next update. It lives outside the
// component storage so the handlers can keep a pointer to it.
type TouchPad struct {
	Held [cfg.ActionCount]bool
}

type ControlsData struct {
	Pad *TouchPad
	UI  *ebitenui.UI
}

var Controls = donburi.NewComponentType[ControlsData]()
