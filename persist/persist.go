// Package persist keeps the kiosk state between runs.
package persist

import (
	"encoding/json"

	"github.com/juju/errors"
	"github.com/quasilyte/gdata"
)

const stateItem = "state"

// State is what the kiosk restores at startup.
type State struct {
	LastIndex int    `json:"lastIndex"`
	Language  string `json:"language"`
	Version   string `json:"version"`
}

type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

type Store struct {
	items itemStore
}

// Open initializes the gdata manager for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, errors.Annotatef(err, "persistence %s", appName)
	}
	return &Store{items: m}, nil
}

// Load returns the saved state, or nil when nothing was saved yet.
func (s *Store) Load() (*State, error) {
	if s == nil || s.items == nil {
		return nil, nil
	}
	data, err := s.items.LoadItem(stateItem)
	if err != nil {
		return nil, errors.Annotate(err, "load state")
	}
	if len(data) == 0 {
		return nil, nil
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, errors.Annotate(err, "parse state")
	}
	return &st, nil
}

func (s *Store) Save(st *State) error {
	if s == nil || s.items == nil || st == nil {
		return nil
	}
	data, err := json.Marshal(st)
	if err != nil {
		return errors.Annotate(err, "serialize state")
	}
	return errors.Annotate(s.items.SaveItem(stateItem, data), "save state")
}

// Clear removes the saved state.
func (s *Store) Clear() error {
	if s == nil || s.items == nil {
		return nil
	}
	return errors.Annotate(s.items.SaveItem(stateItem, nil), "clear state")
}
