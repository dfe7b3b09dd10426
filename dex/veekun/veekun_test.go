package veekun

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/automoto/dexkiosk/dex"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE versions (id INTEGER PRIMARY KEY);
CREATE TABLE version_names (version_id INTEGER, local_language_id INTEGER, name TEXT);
CREATE TABLE languages (id INTEGER PRIMARY KEY);
CREATE TABLE language_names (language_id INTEGER, local_language_id INTEGER, name TEXT);
CREATE TABLE pokemon (id INTEGER PRIMARY KEY, species_id INTEGER);
CREATE TABLE pokemon_species_names (pokemon_species_id INTEGER, local_language_id INTEGER, name TEXT);
CREATE TABLE pokemon_species_flavor_text (species_id INTEGER, version_id INTEGER, language_id INTEGER, flavor_text TEXT);
CREATE TABLE pokemon_types (pokemon_id INTEGER, type_id INTEGER, slot INTEGER);
CREATE TABLE type_names (type_id INTEGER, local_language_id INTEGER, name TEXT);

INSERT INTO versions VALUES (17), (18);
INSERT INTO version_names VALUES (17, 9, 'Black'), (18, 9, 'White');
INSERT INTO languages VALUES (6), (9);
INSERT INTO language_names VALUES (6, 9, 'German'), (9, 9, 'English');

INSERT INTO pokemon VALUES (1, 1), (2, 2), (3, 3), (10001, 3);
INSERT INTO pokemon_species_names VALUES
	(1, 9, 'Bulbasaur'), (2, 9, 'Ivysaur'), (3, 9, 'Venusaur'),
	(1, 6, 'Bisasam'), (2, 6, 'Bisaknosp'), (3, 6, 'Bisaflor');
INSERT INTO pokemon_species_flavor_text VALUES
	(1, 17, 9, 'A strange seed was
planted on its back.'),
	(1, 18, 9, 'It carries a seed on its back.'),
	(2, 17, 9, 'The bulb grows.'),
	(3, 17, 9, 'The flower blooms.');
INSERT INTO pokemon_types VALUES (1, 12, 1), (1, 4, 2), (2, 12, 1), (2, 4, 2), (3, 12, 1);
INSERT INTO type_names VALUES (12, 9, 'Grass'), (4, 9, 'Poison'), (12, 6, 'Pflanze'), (4, 6, 'Gift');
`

func testOptions() Options {
	return Options{
		Language:     "English",
		Version:      "Black",
		AssetRoot:    "pokemon",
		ImagePattern: "global-link/%d.png",
		SoundPattern: "cries/%d.ogg",
		LoadInfo:     true,
	}
}

func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokedex.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	return path
}

func TestOpen(t *testing.T) {
	t.Parallel()

	for _, load := range []bool{true, false} {
		load := load
		name := "lazy"
		if load {
			name = "cached"
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			opts := testOptions()
			opts.LoadInfo = load
			p, err := Open(newTestDB(t), opts)
			require.NoError(t, err)
			defer p.Close()

			assert.Equal(t, 3, p.Len(), "alternate forms are not species entries")
			assert.Equal(t, []string{"Black", "White"}, p.Versions())
			assert.Equal(t, []string{"German", "English"}, p.Languages())

			e, err := p.Entry(0)
			require.NoError(t, err)
			assert.Equal(t, dex.Entry{
				ID:          1,
				Name:        "Bulbasaur",
				Description: "A strange seed was\nplanted on its back.",
				Type1:       "Grass",
				Type2:       "Poison",
				Image:       filepath.Join("pokemon", "global-link", "1.png"),
				Sound:       filepath.Join("pokemon", "cries", "1.ogg"),
			}, e)

			e, err = p.Entry(2)
			require.NoError(t, err)
			assert.Equal(t, "Venusaur", e.Name)
			assert.Equal(t, "", e.Type2)

			names, err := p.Names(0, 3)
			require.NoError(t, err)
			assert.Equal(t, []string{"Bulbasaur", "Ivysaur", "Venusaur"}, names)
		})
	}
}

func TestSelectorChangeInvalidatesCache(t *testing.T) {
	t.Parallel()

	p, err := Open(newTestDB(t), testOptions())
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.SetVersion("White"))
	e, err := p.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, "It carries a seed on its back.", e.Description)
	e, err = p.Entry(1)
	require.NoError(t, err)
	assert.Equal(t, "", e.Description, "missing flavor text keeps the entry")

	require.NoError(t, p.SetLanguage("German"))
	names, err := p.Names(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bisasam", "Bisaknosp"}, names)
	e, err = p.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, "Pflanze", e.Type1)
	assert.Equal(t, "German", p.Language())
	assert.Equal(t, "White", p.Version())
}

func TestInvalidSelector(t *testing.T) {
	t.Parallel()

	path := newTestDB(t)
	opts := testOptions()
	opts.Language = "Klingon"
	_, err := Open(path, opts)
	assert.True(t, errors.Is(err, errors.NotValid))

	p, err := Open(path, testOptions())
	require.NoError(t, err)
	defer p.Close()
	assert.True(t, errors.Is(p.SetVersion("Gold"), errors.NotValid))
	assert.Equal(t, "Black", p.Version())
}

func TestEntryOutOfRange(t *testing.T) {
	t.Parallel()

	p, err := Open(newTestDB(t), testOptions())
	require.NoError(t, err)
	defer p.Close()

	_, err = p.Entry(3)
	assert.True(t, errors.Is(err, dex.ErrIndexOutOfRange))
	_, err = p.Names(1, 4)
	assert.True(t, errors.Is(err, dex.ErrIndexOutOfRange))
}

func TestDexOverPokedex(t *testing.T) {
	t.Parallel()

	p, err := Open(newTestDB(t), testOptions())
	require.NoError(t, err)
	defer p.Close()

	d, err := dex.New(p)
	require.NoError(t, err)
	d.Retreat()
	assert.Equal(t, "Venusaur", d.Current().Name)
	assert.Len(t, p.ImageFiles(), 3)
	assert.Len(t, p.SoundFiles(), 3)
}
