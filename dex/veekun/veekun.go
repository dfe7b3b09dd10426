// Package veekun reads catalog entries from a veekun pokedex sqlite database.
package veekun

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/automoto/dexkiosk/dex"
	"github.com/juju/errors"
	_ "modernc.org/sqlite"
)

// Names of versions and languages are always listed in English.
const englishLanguageID = 9

type Options struct {
	Language     string
	Version      string
	AssetRoot    string
	ImagePattern string // Formatted with the 1-based id
	SoundPattern string
	LoadInfo     bool
}

type info struct {
	name        string
	description string
	type1       string
	type2       string
}

// Pokedex is a dex.Provider. Per-entry info is cached for the current
// (language, version) pair and rebuilt whenever either changes.
type Pokedex struct {
	db   *sql.DB
	opts Options

	versionIDs  map[string]int
	versions    []string
	languageIDs map[string]int
	languages   []string
	language    string
	version     string
	size        int
	cache       []info
	images      []string
	sounds      []string
}

func Open(path string, opts Options) (*Pokedex, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Annotatef(err, "open %s", path)
	}
	p, err := New(db, opts)
	if err != nil {
		_ = db.Close()
		return nil, errors.Annotatef(err, "open %s", path)
	}
	return p, nil
}

func New(db *sql.DB, opts Options) (*Pokedex, error) {
	p := &Pokedex{db: db, opts: opts}
	var err error

	p.versions, p.versionIDs, err = p.queryNames(`SELECT versions.id, version_names.name
FROM versions
INNER JOIN version_names ON version_names.version_id=versions.id
WHERE version_names.local_language_id=?
ORDER BY versions.id`)
	if err != nil {
		return nil, errors.Annotate(err, "versions")
	}
	p.languages, p.languageIDs, err = p.queryNames(`SELECT languages.id, language_names.name
FROM languages
INNER JOIN language_names ON language_names.language_id=languages.id
WHERE language_names.local_language_id=?
ORDER BY languages.id`)
	if err != nil {
		return nil, errors.Annotate(err, "languages")
	}

	if _, ok := p.versionIDs[opts.Version]; !ok {
		return nil, errors.NotValidf("version %q", opts.Version)
	}
	if _, ok := p.languageIDs[opts.Language]; !ok {
		return nil, errors.NotValidf("language %q", opts.Language)
	}
	p.version = opts.Version
	p.language = opts.Language

	if err = p.db.QueryRow(`SELECT COUNT(*) FROM pokemon WHERE id=species_id`).Scan(&p.size); err != nil {
		return nil, errors.Annotate(err, "count")
	}
	if p.size == 0 {
		return nil, dex.ErrEmptyCatalog
	}

	p.images = make([]string, p.size)
	p.sounds = make([]string, p.size)
	for i := 0; i < p.size; i++ {
		p.images[i] = filepath.Join(opts.AssetRoot, fmt.Sprintf(opts.ImagePattern, i+1))
		p.sounds[i] = filepath.Join(opts.AssetRoot, fmt.Sprintf(opts.SoundPattern, i+1))
	}

	if err = p.reload(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pokedex) Close() error { return p.db.Close() }

func (p *Pokedex) Name() string        { return "PokeDex" }
func (p *Pokedex) Len() int            { return p.size }
func (p *Pokedex) Language() string    { return p.language }
func (p *Pokedex) Version() string     { return p.version }
func (p *Pokedex) Languages() []string { return append([]string(nil), p.languages...) }
func (p *Pokedex) Versions() []string  { return append([]string(nil), p.versions...) }
func (p *Pokedex) ImageFiles() []string {
	return append([]string(nil), p.images...)
}
func (p *Pokedex) SoundFiles() []string {
	return append([]string(nil), p.sounds...)
}

func (p *Pokedex) SetLanguage(language string) error {
	if _, ok := p.languageIDs[language]; !ok {
		return errors.NotValidf("language %q", language)
	}
	p.language = language
	return p.reload()
}

func (p *Pokedex) SetVersion(version string) error {
	if _, ok := p.versionIDs[version]; !ok {
		return errors.NotValidf("version %q", version)
	}
	p.version = version
	return p.reload()
}

func (p *Pokedex) Entry(index int) (dex.Entry, error) {
	if index < 0 || index >= p.size {
		return dex.Entry{}, errors.Annotatef(dex.ErrIndexOutOfRange, "index=%d size=%d", index, p.size)
	}
	in, err := p.info(index)
	if err != nil {
		return dex.Entry{}, err
	}
	return dex.Entry{
		ID:          index + 1,
		Name:        in.name,
		Description: in.description,
		Type1:       in.type1,
		Type2:       in.type2,
		Image:       p.images[index],
		Sound:       p.sounds[index],
	}, nil
}

func (p *Pokedex) Names(from, to int) ([]string, error) {
	if from < 0 || to > p.size || from > to {
		return nil, errors.Annotatef(dex.ErrIndexOutOfRange, "names [%d,%d) size=%d", from, to, p.size)
	}
	var infos []info
	if p.cache != nil {
		infos = p.cache[from:to]
	} else if from < to {
		var err error
		if infos, err = p.queryInfo(from, to); err != nil {
			return nil, err
		}
	}
	names := make([]string, 0, to-from)
	for _, in := range infos {
		names = append(names, in.name)
	}
	return names, nil
}

func (p *Pokedex) reload() error {
	p.cache = nil
	if !p.opts.LoadInfo {
		return nil
	}
	infos, err := p.queryInfo(0, p.size)
	if err != nil {
		return err
	}
	if len(infos) != p.size {
		return errors.Errorf("info rows=%d size=%d, ids are not contiguous", len(infos), p.size)
	}
	p.cache = infos
	return nil
}

func (p *Pokedex) info(index int) (info, error) {
	if p.cache != nil {
		return p.cache[index], nil
	}
	infos, err := p.queryInfo(index, index+1)
	if err != nil {
		return info{}, err
	}
	if len(infos) == 0 {
		return info{}, errors.NotFoundf("entry %d", index)
	}
	return infos[0], nil
}

// queryInfo reads entries [from, to) ordered by id.
func (p *Pokedex) queryInfo(from, to int) ([]info, error) {
	lang := p.languageIDs[p.language]
	version := p.versionIDs[p.version]
	rows, err := p.db.Query(`SELECT COALESCE(psn.name, ''), COALESCE(tn1.name, ''), tn2.name, COALESCE(psft.flavor_text, '')
FROM pokemon p
LEFT JOIN pokemon_species_names psn
	ON psn.pokemon_species_id=p.id AND psn.local_language_id=?1
LEFT JOIN pokemon_species_flavor_text psft
	ON psft.species_id=p.id AND psft.language_id=?1 AND psft.version_id=?2
LEFT JOIN pokemon_types pt1
	ON pt1.pokemon_id=p.id AND pt1.slot=1
LEFT JOIN type_names tn1
	ON tn1.type_id=pt1.type_id AND tn1.local_language_id=?1
LEFT JOIN pokemon_types pt2
	ON pt2.pokemon_id=p.id AND pt2.slot=2
LEFT JOIN type_names tn2
	ON tn2.type_id=pt2.type_id AND tn2.local_language_id=?1
WHERE p.id>=?3 AND p.id<=?4 AND p.id=p.species_id
ORDER BY p.id`, lang, version, from+1, to)
	if err != nil {
		return nil, errors.Annotatef(err, "query info [%d,%d)", from, to)
	}
	defer rows.Close()

	infos := make([]info, 0, to-from)
	for rows.Next() {
		var in info
		var type2 sql.NullString
		if err := rows.Scan(&in.name, &in.type1, &type2, &in.description); err != nil {
			return nil, errors.Trace(err)
		}
		in.type2 = type2.String
		infos = append(infos, in)
	}
	return infos, errors.Trace(rows.Err())
}

func (p *Pokedex) queryNames(query string) ([]string, map[string]int, error) {
	rows, err := p.db.Query(query, englishLanguageID)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	defer rows.Close()

	var names []string
	ids := make(map[string]int)
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, nil, errors.Trace(err)
		}
		names = append(names, name)
		ids[name] = id
	}
	return names, ids, errors.Trace(rows.Err())
}
