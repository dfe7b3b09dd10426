package app

import (
	"log"

	"github.com/automoto/dexkiosk/config"
	"github.com/automoto/dexkiosk/dex"
	"github.com/automoto/dexkiosk/dex/veekun"
	"github.com/automoto/dexkiosk/persist"
	"github.com/automoto/dexkiosk/speech"
	"github.com/juju/errors"
)

const appName = "dexkiosk"

// Selector is a catalog whose language and version can change at runtime.
type Selector interface {
	Language() string
	Version() string
	SetLanguage(string) error
	SetVersion(string) error
}

// Kiosk holds the catalog and the persisted state shared by the frontends.
type Kiosk struct {
	Dex     *dex.Dex
	Pokedex *veekun.Pokedex
	store   *persist.Store
}

// Open loads the configured catalog and restores the saved state.
// Persistence problems are logged, never fatal.
func Open() (*Kiosk, error) {
	p, err := veekun.Open(config.Catalog.Path, veekun.Options{
		Language:     config.Catalog.Language,
		Version:      config.Catalog.Version,
		AssetRoot:    config.Catalog.AssetRoot,
		ImagePattern: config.Catalog.ImagePattern,
		SoundPattern: config.Catalog.SoundPattern,
		LoadInfo:     config.Catalog.LoadInfo,
	})
	if err != nil {
		return nil, errors.Annotate(err, "catalog")
	}
	d, err := dex.New(p)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	k := &Kiosk{Dex: d, Pokedex: p}

	if k.store, err = persist.Open(appName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	st, err := k.store.Load()
	if err != nil {
		log.Printf("Warning: Could not load state: %v", err)
	}
	Restore(st, p, d)
	return k, nil
}

// NewSpeech builds the text-to-speech service from config.Speech.
// Synthesized clips are handed to play with their request generation.
func NewSpeech(play func(path string, gen uint64)) *speech.Service {
	cache := &speech.Cache{
		Dir:   config.Speech.CacheDir,
		Synth: speech.Command{Name: config.Speech.Command, Args: config.Speech.Args},
	}
	return speech.NewService(cache, play, config.Speech.Queue)
}

// Close saves the state and releases the catalog.
func (k *Kiosk) Close() error {
	if err := k.store.Save(Snapshot(k.Pokedex, k.Dex)); err != nil {
		log.Printf("Warning: Could not save state: %v", err)
	}
	return k.Pokedex.Close()
}

// Restore applies saved state. Values the catalog no longer accepts are skipped.
func Restore(st *persist.State, sel Selector, d *dex.Dex) {
	if st == nil {
		return
	}
	if st.Language != "" && st.Language != sel.Language() {
		if err := sel.SetLanguage(st.Language); err != nil {
			log.Printf("Warning: Could not restore language: %v", err)
		}
	}
	if st.Version != "" && st.Version != sel.Version() {
		if err := sel.SetVersion(st.Version); err != nil {
			log.Printf("Warning: Could not restore version: %v", err)
		}
	}
	if err := d.SetCurrent(st.LastIndex); err != nil {
		log.Printf("Warning: Could not restore entry: %v", err)
	}
}

func Snapshot(sel Selector, d *dex.Dex) *persist.State {
	return &persist.State{
		LastIndex: d.Index(),
		Language:  sel.Language(),
		Version:   sel.Version(),
	}
}
