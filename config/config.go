package config

import (
	"image/color"
	"time"
)

// Config holds general kiosk configuration
type Config struct {
	Title  string
	Width  int
	Height int
}

// MenuConfig contains colors and layout shared by every screen
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleX            int
	TitleY            int
	OptionX           int
	OptionStartY      int
	OptionGap         int
	Options           []string // %s is replaced by the catalog name
}

// ListConfig contains catalog browser configuration
type ListConfig struct {
	WindowLen    int // Visible rows
	ToolbarItems []string
	ToolbarX     []int
	ToolbarY     int
	RowX         int
	RowStartY    int
	RowHeight    int
	NumberOffset int // Distance from RowX to the centered row number
	ImageX       int
	ImageY       int
}

// EntryConfig contains entry detail configuration
type EntryConfig struct {
	LastPage     int // Index of the full description page
	NameX        int
	NameY        int
	ImageX       int
	ImageY       int
	TypeY        int
	Type1X       int
	Type2X       int
	TextX        int
	TextY        int
	TextLineStep int
}

// CatalogConfig selects the catalog database and its asset layout
type CatalogConfig struct {
	Path         string
	Language     string
	Version      string
	AssetRoot    string
	ImagePattern string // Formatted with the 1-based entry id
	SoundPattern string
	LoadInfo     bool // Cache every entry eagerly
}

// AssetsConfig contains asset loading configuration
type AssetsConfig struct {
	PlaceholderImage string
	PlaceholderSound string
	ImageSize        int
}

// SpeechConfig configures the text-to-speech command
type SpeechConfig struct {
	Command  string
	Args     []string
	CacheDir string
	Queue    int
}

// AudioConfig contains audio output configuration
type AudioConfig struct {
	SampleRate int
	Volume     float64
}

// LoopConfig contains application loop configuration
type LoopConfig struct {
	Delay time.Duration // Sleep between iterations
}

// ScannerConfig configures the stand-in entry scanner
type ScannerConfig struct {
	FixedIndex int
}

// TTYConfig maps pixel coordinates onto terminal cells
type TTYConfig struct {
	CellWidth  int
	CellHeight int
}

// FadeConfig controls the overlay shown when the active screen changes
type FadeConfig struct {
	Duration time.Duration
	MaxAlpha float32
}

// FontConfig describes one font face by id
type FontConfig struct {
	Name string
	Size float64
	Bold bool
}

// Global configuration instances
var C *Config
var Menu MenuConfig
var List ListConfig
var Entry EntryConfig
var Catalog CatalogConfig
var Assets AssetsConfig
var Speech SpeechConfig
var Audio AudioConfig
var Loop LoopConfig
var Scanner ScannerConfig
var TTY TTYConfig
var Fade FadeConfig
var Fonts []FontConfig

// Shared RGBA color constants
var (
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black   = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	Green   = color.RGBA{R: 50, G: 100, B: 50, A: 255}
	Magenta = color.RGBA{R: 250, G: 10, B: 100, A: 255}
)

func init() {
	C = &Config{
		Title:  "PokeDex",
		Width:  480,
		Height: 320,
	}

	Menu = MenuConfig{
		BackgroundColor:   White,
		TitleColor:        Green,
		TextColorNormal:   Black,
		TextColorSelected: Magenta,
		TitleX:            10,
		TitleY:            10,
		OptionX:           30,
		OptionStartY:      60,
		OptionGap:         50,
		Options:           []string{"Scan", "%s", "Settings", "Poweroff"},
	}

	List = ListConfig{
		WindowLen:    8,
		ToolbarItems: []string{"Back", "Scan"},
		ToolbarX:     []int{350, 400},
		ToolbarY:     10,
		RowX:         350,
		RowStartY:    60,
		RowHeight:    30,
		NumberOffset: 25,
		ImageX:       60,
		ImageY:       60,
	}

	Entry = EntryConfig{
		LastPage:     1,
		NameX:        100,
		NameY:        20,
		ImageX:       10,
		ImageY:       60,
		TypeY:        270,
		Type1X:       55,
		Type2X:       145,
		TextX:        200,
		TextY:        60,
		TextLineStep: 30,
	}

	Catalog = CatalogConfig{
		Path:         "pokedex.sqlite",
		Language:     "English",
		Version:      "Black",
		AssetRoot:    "pokemon",
		ImagePattern: "global-link/%d.png",
		SoundPattern: "cries/%d.ogg",
		LoadInfo:     true,
	}

	Assets = AssetsConfig{
		PlaceholderImage: "unknown.png",
		PlaceholderSound: "",
		ImageSize:        180,
	}

	Speech = SpeechConfig{
		Command:  "espeak-ng",
		Args:     []string{"-v", "en"},
		CacheDir: "tts_cache",
		Queue:    4,
	}

	Audio = AudioConfig{
		SampleRate: 32768,
		Volume:     1.0,
	}

	Loop = LoopConfig{
		Delay: time.Millisecond,
	}

	Scanner = ScannerConfig{
		FixedIndex: 0,
	}

	TTY = TTYConfig{
		CellWidth:  8,
		CellHeight: 16,
	}

	Fade = FadeConfig{
		Duration: 150 * time.Millisecond,
		MaxAlpha: 0.5,
	}

	Fonts = []FontConfig{
		{Name: "title", Size: 30},
		{Name: "list", Size: 15},
		{Name: "number", Size: 20, Bold: true},
		{Name: "type", Size: 20},
		{Name: "description", Size: 15, Bold: true},
	}
}
