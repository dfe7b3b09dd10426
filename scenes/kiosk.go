package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dexkiosk/app"
	"github.com/automoto/dexkiosk/archetypes"
	"github.com/automoto/dexkiosk/components"
	"github.com/automoto/dexkiosk/display"
	"github.com/automoto/dexkiosk/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// KioskScene runs the menu loop inside ebiten
type KioskScene struct {
	ecs      *ecs.ECS
	loop     *app.Loop
	renderer *display.Renderer
	once     sync.Once
}

func NewKioskScene(loop *app.Loop, renderer *display.Renderer) *KioskScene {
	return &KioskScene{loop: loop, renderer: renderer}
}

func (ks *KioskScene) Update() {
	ks.once.Do(ks.configure)
	ks.ecs.Update()
}

func (ks *KioskScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent black flashes between frames
	screen.Fill(color.White)

	if ks.ecs == nil {
		return
	}
	ks.ecs.Draw(screen)
}

// Done reports whether the menu loop has ended
func (ks *KioskScene) Done() bool {
	if ks.ecs == nil {
		return false
	}
	return systems.KioskDone(ks.ecs)
}

func (ks *KioskScene) configure() {
	ks.ecs = ecs.NewECS(donburi.NewWorld())

	kiosk := archetypes.Kiosk.Spawn(ks.ecs)
	components.Kiosk.SetValue(kiosk, components.KioskData{
		Loop:     ks.loop,
		Renderer: ks.renderer,
	})
	archetypes.Fade.Spawn(ks.ecs)

	ks.ecs.AddSystem(systems.UpdateKiosk)
	ks.ecs.AddSystem(systems.UpdateFade)

	// Overlay draws on top of the menu
	ks.ecs.AddRenderer(archetypes.LayerKiosk, systems.DrawKiosk)
	ks.ecs.AddRenderer(archetypes.LayerOverlay, systems.DrawFade)
}
