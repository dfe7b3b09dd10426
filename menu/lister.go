package menu

import (
	"image"
	"strconv"
	"time"

	"github.com/automoto/dexkiosk/config"
	"github.com/automoto/dexkiosk/dex"
)

// toolbarRow is the cursor value of the Back/Scan row above the list.
const toolbarRow = -1

const (
	toolbarBack = iota
	toolbarScan
	toolbarLen
)

// Lister browses the whole catalog through a fixed-size scrolling window.
type Lister struct {
	Base
	dex      *dex.Dex
	renderer Renderer
	audio    AudioOut
	scanner  Menu
	detail   Menu

	names         []string
	prevLen       int
	cursor        int
	toolbarCursor int
	viewStart     int
	window        int

	lastPlayed int
	lastImage  string
}

func NewLister(d *dex.Dex, r Renderer, a AudioOut, scanner, detail Menu) *Lister {
	window := config.List.WindowLen
	if window <= 0 {
		window = 1
	}
	return &Lister{
		dex:        d,
		renderer:   r,
		audio:      a,
		scanner:    scanner,
		detail:     detail,
		window:     window,
		lastPlayed: -1,
	}
}

func (m *Lister) Name() string { return "lister" }

// Cursor returns the highlighted row, -1 for the toolbar.
func (m *Lister) Cursor() int        { return m.cursor }
func (m *Lister) ToolbarCursor() int { return m.toolbarCursor }
func (m *Lister) ViewStart() int     { return m.viewStart }

func (m *Lister) Enter() {
	m.audio.Stop()
	m.names = m.dex.Names()
	if m.cursor < 0 || m.prevLen != len(m.names) {
		m.cursor = 0
	}
	m.prevLen = len(m.names)
	m.clampView()
}

func (m *Lister) Update(dt time.Duration, actions []config.ActionID) Transition {
	size := len(m.names)
	onToolbar := m.cursor == toolbarRow
	switch {
	case has(actions, config.ActionConfirm):
		if onToolbar {
			if m.toolbarCursor == toolbarBack {
				return Pop()
			}
			return Push(m.scanner)
		}
		if err := m.dex.SetCurrent(m.cursor); err != nil {
			panic(err)
		}
		return Push(m.detail)
	case has(actions, config.ActionLeft):
		if onToolbar {
			m.toolbarCursor = wrap(m.toolbarCursor-1, toolbarLen)
			break
		}
		m.cursor -= m.window
		m.viewStart -= m.window
		if m.cursor < 0 {
			m.cursor = 0
		}
	case has(actions, config.ActionRight):
		if onToolbar {
			m.toolbarCursor = wrap(m.toolbarCursor+1, toolbarLen)
			break
		}
		m.cursor += m.window
		m.viewStart += m.window
		if m.cursor >= size {
			m.cursor = size - 1
		}
	case has(actions, config.ActionUp):
		if !onToolbar {
			m.cursor--
		}
	case has(actions, config.ActionDown):
		if onToolbar {
			break
		}
		m.cursor++
		if m.cursor >= size {
			m.cursor = toolbarRow
			m.viewStart = 0
		}
	}
	m.clampView()
	return Stay
}

// clampView keeps the highlighted row inside the window and the window inside the list.
func (m *Lister) clampView() {
	if m.cursor >= 0 {
		if m.cursor < m.viewStart {
			m.viewStart = m.cursor
		} else if m.cursor >= m.viewStart+m.window {
			m.viewStart = m.cursor - m.window + 1
		}
	}
	m.viewStart = max(0, min(len(m.names)-m.window, m.viewStart))
}

func (m *Lister) Render() {
	cfg := config.List
	m.renderer.DrawText(m.dex.Name(), image.Pt(config.Menu.TitleX, config.Menu.TitleY), config.Menu.TitleColor, TextStyle{Font: config.FontTitle})

	for i, label := range cfg.ToolbarItems {
		clr := config.Menu.TextColorNormal
		if m.cursor == toolbarRow && m.toolbarCursor == i {
			clr = config.Menu.TextColorSelected
		}
		m.renderer.DrawText(label, image.Pt(cfg.ToolbarX[i], cfg.ToolbarY), clr, TextStyle{Font: config.FontList})
	}

	end := min(m.viewStart+m.window, len(m.names))
	y := cfg.RowStartY
	for i := m.viewStart; i < end; i++ {
		clr := config.Menu.TextColorNormal
		if i == m.cursor {
			clr = config.Menu.TextColorSelected
		}
		m.renderer.DrawText(m.names[i], image.Pt(cfg.RowX, y), clr,
			TextStyle{Font: config.FontList, Anchor: Anchor{H: AlignStart, V: AlignMid}})
		m.renderer.DrawText(strconv.Itoa(i+1), image.Pt(cfg.RowX-cfg.NumberOffset, y), clr,
			TextStyle{Font: config.FontNumber, Anchor: Anchor{H: AlignMid, V: AlignMid}})
		y += cfg.RowHeight
	}

	if m.cursor >= 0 {
		m.lastImage = m.dex.MustEntryAt(m.cursor).Image
	}
	if m.lastImage != "" {
		m.renderer.DrawImage(image.Pt(cfg.ImageX, cfg.ImageY), m.renderer.LoadImage(m.lastImage))
	}

	if m.cursor >= 0 && m.cursor != m.lastPlayed {
		m.audio.Stop()
		m.audio.PlayClip(m.dex.MustEntryAt(m.cursor).Sound)
		m.lastPlayed = m.cursor
	}
}
