package menu

import "github.com/automoto/dexkiosk/dex"

// Deps are the collaborators shared by every screen.
type Deps struct {
	Dex      *dex.Dex
	Renderer Renderer
	Audio    AudioOut
	Scanner  Scanner
}

// Build constructs the whole screen tree once and returns its root.
//
//	Root -> Scanner -> EntryDetail(speech)
//	     -> Lister  -> EntryDetail(cry)
//	                -> Scanner
//	     -> Settings
//	     -> Quit
func Build(d Deps) *Root {
	scanner := NewScanner(d.Dex, d.Renderer, d.Scanner,
		NewEntryDetail(d.Dex, d.Renderer, d.Audio, AutoSpeech))
	lister := NewLister(d.Dex, d.Renderer, d.Audio, scanner,
		NewEntryDetail(d.Dex, d.Renderer, d.Audio, AutoCry))
	return NewRoot(d.Dex, d.Renderer, scanner, lister, NewSettings(d.Renderer), NewQuit())
}
