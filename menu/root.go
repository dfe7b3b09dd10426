package menu

import (
	"image"
	"strings"
	"time"

	"github.com/automoto/dexkiosk/config"
	"github.com/automoto/dexkiosk/dex"
)

// Root is the main menu: Scan, the catalog, Settings and Poweroff.
type Root struct {
	Base
	renderer Renderer
	options  []string
	children []Menu
	cursor   int
}

// NewRoot binds one child per configured option, in order.
func NewRoot(d *dex.Dex, r Renderer, children ...Menu) *Root {
	options := make([]string, len(children))
	for i := range children {
		label := children[i].Name()
		if i < len(config.Menu.Options) {
			label = strings.ReplaceAll(config.Menu.Options[i], "%s", d.Name())
		}
		options[i] = label
	}
	return &Root{renderer: r, options: options, children: children}
}

func (m *Root) Name() string { return "main" }
func (m *Root) Enter()       {}
func (m *Root) Cursor() int  { return m.cursor }

func (m *Root) Update(dt time.Duration, actions []config.ActionID) Transition {
	n := len(m.options)
	switch {
	case has(actions, config.ActionConfirm) || has(actions, config.ActionRight):
		return Push(m.children[m.cursor])
	case has(actions, config.ActionClick):
		// Pointer selection has no targets yet.
	case has(actions, config.ActionUp):
		m.cursor = wrap(m.cursor-1, n)
	case has(actions, config.ActionDown):
		m.cursor = wrap(m.cursor+1, n)
	}
	return Stay
}

func (m *Root) Render() {
	cfg := config.Menu
	m.renderer.DrawText("Main", image.Pt(cfg.TitleX, cfg.TitleY), cfg.TitleColor, TextStyle{Font: config.FontTitle})
	y := cfg.OptionStartY
	for i, opt := range m.options {
		clr := cfg.TextColorNormal
		if i == m.cursor {
			clr = cfg.TextColorSelected
		}
		m.renderer.DrawText(opt, image.Pt(cfg.OptionX, y), clr, TextStyle{Font: config.FontTitle})
		y += cfg.OptionGap
	}
}
