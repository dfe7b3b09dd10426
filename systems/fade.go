package systems

import (
	"image/color"

	"github.com/automoto/dexkiosk/components"
	cfg "github.com/automoto/dexkiosk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartFade restarts the overlay at full strength
func StartFade(e *ecs.ECS) {
	entry, ok := components.Fade.First(e.World)
	if !ok || cfg.Fade.Duration <= 0 {
		return
	}
	fade := components.Fade.Get(entry)
	fade.Tween = gween.New(cfg.Fade.MaxAlpha, 0, float32(cfg.Fade.Duration.Seconds()), ease.OutQuad)
	fade.Alpha = cfg.Fade.MaxAlpha
}

func UpdateFade(e *ecs.ECS) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Tween == nil {
		return
	}
	alpha, finished := fade.Tween.Update(float32(tickDuration().Seconds()))
	fade.Alpha = alpha
	if finished {
		fade.Tween = nil
		fade.Alpha = 0
	}
}

func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Alpha <= 0 {
		return
	}
	bg := cfg.Menu.BackgroundColor
	overlay := color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: uint8(fade.Alpha * 255)}
	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), overlay, false)
}
