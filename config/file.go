package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl"
	"github.com/juju/errors"
)

// File is the optional kiosk configuration file. Zero values keep the built-in defaults.
type File struct {
	Display struct {
		Width  int `hcl:"width"`
		Height int `hcl:"height"`
	} `hcl:"display"`
	Catalog struct {
		Path         string `hcl:"path"`
		Language     string `hcl:"language"`
		Version      string `hcl:"version"`
		AssetRoot    string `hcl:"asset_root"`
		ImagePattern string `hcl:"image_pattern"`
		SoundPattern string `hcl:"sound_pattern"`
		LoadInfo     *bool  `hcl:"load_info"`
	} `hcl:"catalog"`
	Assets struct {
		PlaceholderImage string `hcl:"placeholder_image"`
		PlaceholderSound string `hcl:"placeholder_sound"`
		ImageSize        int    `hcl:"image_size"`
	} `hcl:"assets"`
	Speech struct {
		Command  string   `hcl:"command"`
		Args     []string `hcl:"args"`
		CacheDir string   `hcl:"cache_dir"`
	} `hcl:"speech"`
	Audio struct {
		SampleRate int      `hcl:"sample_rate"`
		Volume     *float64 `hcl:"volume"`
	} `hcl:"audio"`
	List struct {
		WindowLen int `hcl:"window"`
	} `hcl:"list"`
	Loop struct {
		DelayMs int `hcl:"delay_ms"`
	} `hcl:"loop"`
	Scanner struct {
		FixedIndex *int `hcl:"fixed_index"`
	} `hcl:"scanner"`
	TTY struct {
		CellWidth  int `hcl:"cell_width"`
		CellHeight int `hcl:"cell_height"`
	} `hcl:"tty"`
}

func ReadConfig(r io.Reader) (*File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Trace(err)
	}
	f := new(File)
	if err = hcl.Unmarshal(b, f); err != nil {
		return nil, errors.Annotate(err, "config parse")
	}
	if err = f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func ReadConfigFile(path string) (*File, error) {
	if pathAbs, err := filepath.Abs(path); err == nil {
		path = pathAbs
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer fh.Close()
	f, err := ReadConfig(fh)
	return f, errors.Annotatef(err, "config file %s", path)
}

func (f *File) Validate() error {
	if f.Display.Width < 0 || f.Display.Height < 0 {
		return errors.NotValidf("display size %dx%d", f.Display.Width, f.Display.Height)
	}
	if f.List.WindowLen < 0 {
		return errors.NotValidf("list window=%d", f.List.WindowLen)
	}
	if f.Assets.ImageSize < 0 {
		return errors.NotValidf("image_size=%d", f.Assets.ImageSize)
	}
	if f.Loop.DelayMs < 0 {
		return errors.NotValidf("loop delay_ms=%d", f.Loop.DelayMs)
	}
	if f.Audio.Volume != nil && (*f.Audio.Volume < 0 || *f.Audio.Volume > 1) {
		return errors.NotValidf("audio volume=%v", *f.Audio.Volume)
	}
	if f.TTY.CellWidth < 0 || f.TTY.CellHeight < 0 {
		return errors.NotValidf("tty cell %dx%d", f.TTY.CellWidth, f.TTY.CellHeight)
	}
	return nil
}

// Apply copies every value set in the file over the global configuration.
func (f *File) Apply() {
	setInt(&C.Width, f.Display.Width)
	setInt(&C.Height, f.Display.Height)

	setString(&Catalog.Path, f.Catalog.Path)
	setString(&Catalog.Language, f.Catalog.Language)
	setString(&Catalog.Version, f.Catalog.Version)
	setString(&Catalog.AssetRoot, f.Catalog.AssetRoot)
	setString(&Catalog.ImagePattern, f.Catalog.ImagePattern)
	setString(&Catalog.SoundPattern, f.Catalog.SoundPattern)
	if f.Catalog.LoadInfo != nil {
		Catalog.LoadInfo = *f.Catalog.LoadInfo
	}

	setString(&Assets.PlaceholderImage, f.Assets.PlaceholderImage)
	setString(&Assets.PlaceholderSound, f.Assets.PlaceholderSound)
	setInt(&Assets.ImageSize, f.Assets.ImageSize)

	setString(&Speech.Command, f.Speech.Command)
	setString(&Speech.CacheDir, f.Speech.CacheDir)
	if f.Speech.Args != nil {
		Speech.Args = f.Speech.Args
	}

	setInt(&Audio.SampleRate, f.Audio.SampleRate)
	if f.Audio.Volume != nil {
		Audio.Volume = *f.Audio.Volume
	}

	setInt(&List.WindowLen, f.List.WindowLen)
	if f.Loop.DelayMs != 0 {
		Loop.Delay = time.Duration(f.Loop.DelayMs) * time.Millisecond
	}
	if f.Scanner.FixedIndex != nil {
		Scanner.FixedIndex = *f.Scanner.FixedIndex
	}
	setInt(&TTY.CellWidth, f.TTY.CellWidth)
	setInt(&TTY.CellHeight, f.TTY.CellHeight)
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
