package config

import (
	"strings"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	t.Parallel()

	f, err := ReadConfig(strings.NewReader(`
display {
	width = 320
	height = 240
}
catalog {
	path = "/var/lib/dex/pokedex.sqlite"
	language = "Deutsch"
	load_info = false
}
speech {
	command = "espeak"
	args = ["-s", "140"]
}
audio {
	volume = 0.5
}
list {
	window = 6
}
loop {
	delay_ms = 5
}
scanner {
	fixed_index = 0
}
`))
	require.NoError(t, err)
	assert.Equal(t, 320, f.Display.Width)
	assert.Equal(t, 240, f.Display.Height)
	assert.Equal(t, "/var/lib/dex/pokedex.sqlite", f.Catalog.Path)
	assert.Equal(t, "Deutsch", f.Catalog.Language)
	require.NotNil(t, f.Catalog.LoadInfo)
	assert.False(t, *f.Catalog.LoadInfo)
	assert.Equal(t, []string{"-s", "140"}, f.Speech.Args)
	require.NotNil(t, f.Audio.Volume)
	assert.Equal(t, 0.5, *f.Audio.Volume)
	assert.Equal(t, 6, f.List.WindowLen)
	assert.Equal(t, 5, f.Loop.DelayMs)
	require.NotNil(t, f.Scanner.FixedIndex)
	assert.Equal(t, 0, *f.Scanner.FixedIndex)
}

func TestReadConfigInvalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"syntax", `display { width = }`, "config parse"},
		{"window", `list { window = -1 }`, "list window=-1 not valid"},
		{"volume", `audio { volume = 2.0 }`, "audio volume=2 not valid"},
		{"delay", `loop { delay_ms = -3 }`, "loop delay_ms=-3 not valid"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadConfig(strings.NewReader(c.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.expect)
		})
	}
}

func TestReadConfigFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadConfigFile("/nonexistent/dexkiosk.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestApply(t *testing.T) {
	savedC, savedCatalog, savedList, savedLoop, savedAudio := *C, Catalog, List, Loop, Audio
	defer func() {
		*C, Catalog, List, Loop, Audio = savedC, savedCatalog, savedList, savedLoop, savedAudio
	}()

	f, err := ReadConfig(strings.NewReader(`
display { width = 640 }
catalog { version = "White" }
list { window = 4 }
loop { delay_ms = 10 }
audio { volume = 0.0 }
`))
	require.NoError(t, err)
	f.Apply()

	assert.Equal(t, 640, C.Width)
	assert.Equal(t, savedC.Height, C.Height, "unset value must keep default")
	assert.Equal(t, "White", Catalog.Version)
	assert.Equal(t, savedCatalog.Language, Catalog.Language)
	assert.Equal(t, 4, List.WindowLen)
	assert.Equal(t, 10*time.Millisecond, Loop.Delay)
	assert.Equal(t, 0.0, Audio.Volume, "explicit zero volume must apply")
}

func TestValidateNotValid(t *testing.T) {
	t.Parallel()

	f := new(File)
	f.Display.Width = -1
	err := f.Validate()
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestActionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "confirm", ActionConfirm.String())
	assert.Equal(t, "quit", ActionQuit.String())
	assert.Equal(t, "unknown", ActionCount.String())
}
