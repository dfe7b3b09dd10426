package persist

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems struct {
	data map[string][]byte
	err  error
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.data[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.data[key] = data
	return nil
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	s := &Store{items: &memItems{data: map[string][]byte{}}}
	st, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, st, "nothing saved yet")

	require.NoError(t, s.Save(&State{LastIndex: 24, Language: "German", Version: "White"}))
	st, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, &State{LastIndex: 24, Language: "German", Version: "White"}, st)

	require.NoError(t, s.Clear())
	st, err = s.Load()
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestLoadCorrupt(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	s := &Store{items: &memItems{data: map[string][]byte{stateItem: []byte("{")}}}
	_, err := s.Load()
	assert.ErrorContains(t, err, "parse state")
	assert.Empty(t, buf.String(), "the caller reports load errors")
}

func TestStoreErrors(t *testing.T) {
	t.Parallel()

	s := &Store{items: &memItems{err: errors.New("disk full")}}
	assert.ErrorContains(t, s.Save(&State{}), "save state: disk full")
	_, err := s.Load()
	assert.ErrorContains(t, err, "load state: disk full")
}

func TestNilStore(t *testing.T) {
	t.Parallel()

	var s *Store
	st, err := s.Load()
	assert.NoError(t, err)
	assert.Nil(t, st)
	assert.NoError(t, s.Save(&State{}))
}
