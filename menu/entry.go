package menu

import (
	"image"
	"strings"
	"time"

	"github.com/automoto/dexkiosk/config"
	"github.com/automoto/dexkiosk/dex"
)

// AutoPlay selects what an EntryDetail plays by itself on arrival.
type AutoPlay int

const (
	AutoNone AutoPlay = iota
	AutoCry
	AutoSpeech
)

// EntryDetail shows the current catalog entry: the image page first, then the description page.
type EntryDetail struct {
	Base
	dex      *dex.Dex
	renderer Renderer
	audio    AudioOut

	autoCry        bool
	autoSpeech     bool
	autoCryDone    bool
	autoSpeechDone bool

	page     int
	lastPage int
	entry    dex.Entry
	img      Image
}

func NewEntryDetail(d *dex.Dex, r Renderer, a AudioOut, mode AutoPlay) *EntryDetail {
	return &EntryDetail{
		dex:        d,
		renderer:   r,
		audio:      a,
		autoCry:    mode == AutoCry,
		autoSpeech: mode == AutoSpeech,
		lastPage:   max(0, config.Entry.LastPage),
	}
}

func (m *EntryDetail) Name() string {
	if m.autoSpeech {
		return "entry/speech"
	}
	return "entry/cry"
}

func (m *EntryDetail) Page() int        { return m.page }
func (m *EntryDetail) Entry() dex.Entry { return m.entry }

func (m *EntryDetail) Enter() {
	m.entry = m.dex.Current()
	m.autoCryDone = false
	m.autoSpeechDone = false
	m.img = m.renderer.LoadImage(m.entry.Image)
}

func (m *EntryDetail) Update(dt time.Duration, actions []config.ActionID) Transition {
	switch {
	case has(actions, config.ActionConfirm):
		m.audio.Stop()
		if m.page == 0 {
			m.audio.PlayClip(m.entry.Sound)
		} else if m.page == m.lastPage {
			m.audio.Speak(m.entry.Description)
		}
	case has(actions, config.ActionLeft):
		m.page--
		if m.page < 0 {
			m.page = 0
			return Pop()
		}
	case has(actions, config.ActionRight):
		m.page++
		if m.page >= m.lastPage {
			m.page = m.lastPage
			m.audio.Stop()
			m.audio.Speak(m.entry.Description)
		}
	case has(actions, config.ActionUp):
		m.dex.Retreat()
		m.Enter()
	case has(actions, config.ActionDown):
		m.dex.Advance()
		m.Enter()
	}
	return Stay
}

func (m *EntryDetail) Render() {
	cfg := config.Entry
	title := config.Menu.TitleColor
	m.renderer.DrawText(m.entry.Name, image.Pt(cfg.NameX, cfg.NameY), title,
		TextStyle{Font: config.FontTitle, Anchor: Anchor{H: AlignMid}})

	if m.page == 0 {
		m.renderer.DrawImage(image.Pt(cfg.ImageX, cfg.ImageY), m.img)
		typeStyle := TextStyle{Font: config.FontType, Anchor: Anchor{H: AlignMid}}
		m.renderer.DrawText(m.entry.Type1, image.Pt(cfg.Type1X, cfg.TypeY), title, typeStyle)
		if m.entry.Type2 != "" {
			m.renderer.DrawText(m.entry.Type2, image.Pt(cfg.Type2X, cfg.TypeY), title, typeStyle)
		}
	}
	if m.page == m.lastPage {
		y := cfg.TextY
		for _, line := range strings.Split(m.entry.Description, "\n") {
			m.renderer.DrawText(line, image.Pt(cfg.TextX, y), title, TextStyle{Font: config.FontDescription})
			y += cfg.TextLineStep
		}
	}

	if m.autoCry && !m.autoCryDone {
		m.audio.Stop()
		m.audio.PlayClip(m.entry.Sound)
		m.autoCryDone = true
	}
	// Speech waits for the cry to finish.
	if m.autoSpeech && !m.autoSpeechDone && !(m.autoCry && m.audio.IsPlaying()) {
		m.audio.Stop()
		m.audio.Speak(m.entry.Description)
		m.autoSpeechDone = true
	}
}
