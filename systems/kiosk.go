package systems

import (
	"time"

	"github.com/automoto/dexkiosk/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// tickDuration is the wall time of one ebiten update.
func tickDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

// UpdateKiosk steps the menu loop once per tick and starts a fade when the
// active screen changes.
func UpdateKiosk(e *ecs.ECS) {
	entry, ok := components.Kiosk.First(e.World)
	if !ok {
		return
	}
	kiosk := components.Kiosk.Get(entry)
	if kiosk.Done {
		return
	}

	before := kiosk.Loop.Stack().Active()
	if !kiosk.Loop.Step(tickDuration()) {
		kiosk.Done = true
		return
	}
	if kiosk.Loop.Stack().Active() != before {
		StartFade(e)
	}
}

// DrawKiosk replays the last presented frame
func DrawKiosk(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Kiosk.First(e.World)
	if !ok {
		return
	}
	components.Kiosk.Get(entry).Renderer.Draw(screen)
}

// KioskDone reports whether the loop has finished
func KioskDone(e *ecs.ECS) bool {
	entry, ok := components.Kiosk.First(e.World)
	return ok && components.Kiosk.Get(entry).Done
}
