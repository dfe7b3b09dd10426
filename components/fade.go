package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData is the white overlay drawn over a screen change
type FadeData struct {
	Tween *gween.Tween // nil when idle
	Alpha float32
}

var Fade = donburi.NewComponentType[FadeData]()
