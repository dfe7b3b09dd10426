package menu

import (
	"image"
	"log"
	"time"

	"github.com/automoto/dexkiosk/config"
	"github.com/automoto/dexkiosk/dex"
)

// ScannerMenu identifies an entry with the Scanner port and shows it.
type ScannerMenu struct {
	Base
	dex      *dex.Dex
	renderer Renderer
	scanner  Scanner
	detail   Menu
}

func NewScanner(d *dex.Dex, r Renderer, s Scanner, detail Menu) *ScannerMenu {
	return &ScannerMenu{dex: d, renderer: r, scanner: s, detail: detail}
}

func (m *ScannerMenu) Name() string { return "scanner" }
func (m *ScannerMenu) Enter()       {}

func (m *ScannerMenu) Update(dt time.Duration, actions []config.ActionID) Transition {
	switch {
	case has(actions, config.ActionConfirm) || has(actions, config.ActionRight):
		index, err := m.scanner.Scan()
		if err != nil {
			log.Printf("Warning: scan failed: %v", err)
			return Stay
		}
		if err := m.dex.SetCurrent(index); err != nil {
			log.Printf("Warning: scan result rejected: %v", err)
			return Stay
		}
		return Push(m.detail)
	case has(actions, config.ActionLeft):
		return Pop()
	}
	return Stay
}

func (m *ScannerMenu) Render() {
	cfg := config.Menu
	m.renderer.DrawText("Scanner", image.Pt(cfg.TitleX, cfg.TitleY), cfg.TitleColor, TextStyle{Font: config.FontTitle})
}
