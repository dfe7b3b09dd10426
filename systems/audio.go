package systems

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/automoto/dexkiosk/assets"
	cfg "github.com/automoto/dexkiosk/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/juju/errors"
)

// Global audio context - ebiten allows only one per process
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func initGlobalAudio() *audio.Context {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return globalAudioContext
}

// AudioLoader decodes clips from disk and caches the decoded bytes
type AudioLoader struct {
	mu      sync.Mutex
	cache   map[string][]byte
	context *audio.Context
}

func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		cache:   make(map[string][]byte),
		context: ctx,
	}
}

// Preload decodes clips at startup to avoid decode lag on first play.
// It returns how many paths could not be loaded.
func (l *AudioLoader) Preload(paths []string) int {
	missing := 0
	for _, path := range paths {
		if _, err := l.cached(path); err != nil {
			missing++
		}
	}
	return missing
}

// LoadSFX returns a new player for a cached clip.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	decoded, err := l.cached(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(decoded), nil
}

// LoadFile returns a player for a clip that is played once, such as synthesized speech.
func (l *AudioLoader) LoadFile(path string) (*audio.Player, error) {
	decoded, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(decoded), nil
}

func (l *AudioLoader) cached(path string) ([]byte, error) {
	l.mu.Lock()
	decoded, ok := l.cache[path]
	l.mu.Unlock()
	if ok {
		return decoded, nil
	}
	decoded, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.cache[path] = decoded
	l.mu.Unlock()
	return decoded, nil
}

func (l *AudioLoader) decode(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.Annotate(assets.ErrAssetMissing, "empty sound path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Annotatef(assets.ErrAssetMissing, "sound %s", path)
		}
		return nil, errors.Annotatef(err, "sound %s", path)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, errors.NotSupportedf("audio format %q", ext)
	}
	if err != nil {
		return nil, errors.Annotatef(assets.ErrAssetMissing, "sound %s: %v", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, errors.Annotatef(err, "read decoded audio %s", path)
	}
	return decoded, nil
}

// Speaker is the part of speech.Service AudioOut needs
type Speaker interface {
	Speak(text string)
	Stop()
	Busy() bool
	Current(gen uint64) bool
}

// AudioOut is the ebiten menu.AudioOut. One clip plays at a time.
type AudioOut struct {
	mu      sync.Mutex
	loader  *AudioLoader
	current *audio.Player
	speech  Speaker
}

func NewAudioOut() *AudioOut {
	return &AudioOut{loader: NewAudioLoader(initGlobalAudio())}
}

func (a *AudioOut) Loader() *AudioLoader { return a.loader }

func (a *AudioOut) SetSpeech(s Speaker) { a.speech = s }

// PlayClip plays path, or the placeholder clip when path cannot be loaded.
func (a *AudioOut) PlayClip(path string) {
	player, err := a.loader.LoadSFX(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		if player, err = a.loader.LoadSFX(cfg.Assets.PlaceholderSound); err != nil {
			return
		}
	}
	a.start(player, nil)
}

// PlayFile plays a synthesized speech clip. It runs on the speech worker;
// the clip is dropped when Stop ran after generation gen was requested.
func (a *AudioOut) PlayFile(path string, gen uint64) {
	if !a.fresh(gen) {
		return
	}
	player, err := a.loader.LoadFile(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	if !a.start(player, func() bool { return a.fresh(gen) }) {
		_ = player.Close()
	}
}

func (a *AudioOut) fresh(gen uint64) bool {
	return a.speech == nil || a.speech.Current(gen)
}

func (a *AudioOut) Speak(text string) {
	if a.speech != nil {
		a.speech.Speak(text)
	}
}

func (a *AudioOut) Stop() {
	if a.speech != nil {
		a.speech.Stop()
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

func (a *AudioOut) IsPlaying() bool {
	a.mu.Lock()
	playing := a.current != nil && a.current.IsPlaying()
	a.mu.Unlock()
	return playing || (a.speech != nil && a.speech.Busy())
}

// start replaces the current clip with player and reports whether it started.
// A non-nil fresh is checked under the lock, so a Stop that returned before
// the check always wins.
func (a *AudioOut) start(player *audio.Player, fresh func() bool) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if fresh != nil && !fresh() {
		return false
	}
	a.stopLocked()
	player.SetVolume(cfg.Audio.Volume)
	player.Play()
	a.current = player
	return true
}

func (a *AudioOut) stopLocked() {
	if a.current == nil {
		return
	}
	_ = a.current.Close()
	a.current = nil
}
