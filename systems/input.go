package systems

import (
	cfg "github.com/automoto/dexkiosk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Binding maps one action to keys and standard gamepad buttons
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings is indexed by action; Click and Quit come from the mouse and window.
var Bindings = [cfg.ActionCount]Binding{
	cfg.ActionLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionRight: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionUp: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionDown: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowDown},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionConfirm: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionQuit: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Controller is the ebiten app.Controller. Actions fire on the frame a key is pressed.
type Controller struct{}

func (Controller) Poll() []cfg.ActionID {
	var actions []cfg.ActionID
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
		if justPressed(Bindings[id]) {
			actions = append(actions, id)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		actions = append(actions, cfg.ActionClick)
	}
	if ebiten.IsWindowBeingClosed() {
		actions = append(actions, cfg.ActionQuit)
	}
	return actions
}

func justPressed(b Binding) bool {
	for _, key := range b.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}
