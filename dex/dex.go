// Package dex holds the navigable catalog shared by every kiosk screen.
package dex

import (
	"github.com/juju/errors"
)

const (
	ErrIndexOutOfRange = errors.ConstError("index out of range")
	ErrEmptyCatalog    = errors.ConstError("empty catalog")
)

// Entry is one immutable catalog record.
type Entry struct {
	ID          int // 1-based ordinal
	Name        string
	Description string // May contain line breaks
	Type1       string
	Type2       string
	Image       string // Still image path
	Sound       string // Cry clip path
}

// Provider supplies catalog data. Implementations may query storage lazily.
type Provider interface {
	Name() string
	Len() int
	Entry(index int) (Entry, error)
	Names(from, to int) ([]string, error)
}

// Dex wraps a Provider with the single current-entry cursor.
//
// Dex is not safe for concurrent use. The kiosk loop confines it to one goroutine;
// a host that touches it from several goroutines must serialize access itself.
type Dex struct {
	provider Provider
	cursor   int
}

func New(p Provider) (*Dex, error) {
	if p == nil || p.Len() <= 0 {
		return nil, ErrEmptyCatalog
	}
	return &Dex{provider: p}, nil
}

func (d *Dex) Name() string { return d.provider.Name() }
func (d *Dex) Len() int     { return d.provider.Len() }
func (d *Dex) Index() int   { return d.cursor }

func (d *Dex) EntryAt(index int) (Entry, error) {
	if err := d.check(index); err != nil {
		return Entry{}, err
	}
	e, err := d.provider.Entry(index)
	return e, errors.Annotatef(err, "entry %d", index)
}

// MustEntryAt panics when index is invalid or the provider fails after construction.
func (d *Dex) MustEntryAt(index int) Entry {
	e, err := d.EntryAt(index)
	if err != nil {
		panic(err)
	}
	return e
}

// ListNames returns names in [from, to).
func (d *Dex) ListNames(from, to int) ([]string, error) {
	n := d.Len()
	if from < 0 || to > n || from > to {
		return nil, errors.Annotatef(ErrIndexOutOfRange, "names [%d,%d) size=%d", from, to, n)
	}
	names, err := d.provider.Names(from, to)
	return names, errors.Annotatef(err, "names [%d,%d)", from, to)
}

// Names returns every name and panics when the provider fails.
func (d *Dex) Names() []string {
	names, err := d.ListNames(0, d.Len())
	if err != nil {
		panic(err)
	}
	return names
}

func (d *Dex) SetCurrent(index int) error {
	if err := d.check(index); err != nil {
		return err
	}
	d.cursor = index
	return nil
}

func (d *Dex) Advance() { d.cursor = wrap(d.cursor+1, d.Len()) }
func (d *Dex) Retreat() { d.cursor = wrap(d.cursor-1, d.Len()) }

// Current returns the entry under the cursor. A cursor left past the end by a
// shrinking provider is normalized first.
func (d *Dex) Current() Entry {
	d.cursor = wrap(d.cursor, d.Len())
	return d.MustEntryAt(d.cursor)
}

func (d *Dex) check(index int) error {
	if n := d.Len(); index < 0 || index >= n {
		return errors.Annotatef(ErrIndexOutOfRange, "index=%d size=%d", index, n)
	}
	return nil
}

func wrap(i, n int) int {
	if n <= 0 {
		panic(ErrEmptyCatalog)
	}
	return ((i % n) + n) % n
}
