package menu

import (
	"image"
	"time"

	"github.com/automoto/dexkiosk/config"
)

// Settings is a placeholder screen; only Left does anything.
type Settings struct {
	Base
	renderer Renderer
}

func NewSettings(r Renderer) *Settings { return &Settings{renderer: r} }

func (m *Settings) Name() string { return "settings" }
func (m *Settings) Enter()       {}

func (m *Settings) Update(dt time.Duration, actions []config.ActionID) Transition {
	switch {
	case has(actions, config.ActionConfirm):
	case has(actions, config.ActionLeft):
		return Pop()
	}
	return Stay
}

func (m *Settings) Render() {
	cfg := config.Menu
	m.renderer.DrawText("Settings", image.Pt(cfg.TitleX, cfg.TitleY), cfg.TitleColor, TextStyle{Font: config.FontTitle})
}
