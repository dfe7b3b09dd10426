package components

import (
	"github.com/automoto/dexkiosk/app"
	"github.com/automoto/dexkiosk/display"
	"github.com/yohamta/donburi"
)

// KioskData binds the menu loop to the ebiten scene (singleton component)
type KioskData struct {
	Loop     *app.Loop
	Renderer *display.Renderer
	Done     bool // Loop asked to quit
}

var Kiosk = donburi.NewComponentType[KioskData]()
