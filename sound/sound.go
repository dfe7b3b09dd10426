// Package sound plays cries and speech clips through the beep speaker.
package sound

import (
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/automoto/dexkiosk/assets"
	"github.com/automoto/dexkiosk/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
	"github.com/juju/errors"
)

// Speaker is the part of speech.Service the player needs.
type Speaker interface {
	Speak(text string)
	Stop()
	Busy() bool
	Current(gen uint64) bool
}

// Player is a menu.AudioOut. One clip plays at a time.
type Player struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	clips       map[string]*beep.Buffer
	current     *beep.Ctrl
	playing     bool
	initialized bool
	speech      Speaker
	output      func(s ...beep.Streamer)
}

func NewPlayer() *Player {
	return &Player{
		sr:     beep.SampleRate(config.Audio.SampleRate),
		clips:  make(map[string]*beep.Buffer),
		output: speaker.Play,
	}
}

// SetSpeech attaches the speech service used by Speak.
func (p *Player) SetSpeech(s Speaker) { p.speech = s }

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(100*time.Millisecond)); err != nil {
		return errors.Annotate(err, "speaker")
	}
	p.initialized = true
	return nil
}

func (p *Player) Close() {
	p.Stop()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}

// PlayClip starts path, or the placeholder clip when path cannot be loaded.
func (p *Player) PlayClip(path string) {
	buf, err := p.Load(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		if buf, err = p.Load(config.Assets.PlaceholderSound); err != nil {
			return
		}
	}
	p.start(buf, nil)
}

// PlayFile plays a synthesized speech clip. It is the speech.Service callback;
// the clip is dropped when Stop ran after generation gen was requested.
func (p *Player) PlayFile(path string, gen uint64) {
	if !p.fresh(gen) {
		return
	}
	buf, err := p.decode(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	p.start(buf, func() bool { return p.fresh(gen) })
}

func (p *Player) fresh(gen uint64) bool {
	return p.speech == nil || p.speech.Current(gen)
}

func (p *Player) Speak(text string) {
	if p.speech == nil {
		return
	}
	p.speech.Speak(text)
}

func (p *Player) Stop() {
	if p.speech != nil {
		p.speech.Stop()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	playing := p.playing
	p.mu.Unlock()
	return playing || (p.speech != nil && p.speech.Busy())
}

// Load returns the decoded clip for path, cached after the first call.
func (p *Player) Load(path string) (*beep.Buffer, error) {
	p.mu.Lock()
	buf, ok := p.clips[path]
	p.mu.Unlock()
	if ok {
		return buf, nil
	}
	buf, err := p.decode(path)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.clips[path] = buf
	p.mu.Unlock()
	return buf, nil
}

// Preload decodes paths and returns how many could not be loaded.
func (p *Player) Preload(paths []string) int {
	missing := 0
	for _, path := range paths {
		if _, err := p.Load(path); err != nil {
			missing++
		}
	}
	return missing
}

// start replaces the current clip with buf. A non-nil fresh is checked under
// the lock, so a Stop that returned before the check always wins.
func (p *Player) start(buf *beep.Buffer, fresh func() bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || (fresh != nil && !fresh()) {
		return
	}
	p.stopLocked()

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if vol := config.Audio.Volume; vol < 1 {
		s = &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: vol <= 0}
	}
	ctrl := &beep.Ctrl{}
	// The callback runs with the speaker locked.
	ctrl.Streamer = beep.Seq(s, beep.Callback(func() { go p.finished(ctrl) }))
	p.current = ctrl
	p.playing = true
	p.output(ctrl)
}

func (p *Player) finished(ctrl *beep.Ctrl) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == ctrl {
		p.current = nil
		p.playing = false
	}
}

func (p *Player) stopLocked() {
	if p.current == nil {
		return
	}
	speaker.Lock()
	p.current.Paused = true
	p.current.Streamer = nil
	speaker.Unlock()
	p.current = nil
	p.playing = false
}

func (p *Player) decode(path string) (*beep.Buffer, error) {
	if path == "" {
		return nil, errors.Annotate(assets.ErrAssetMissing, "empty sound path")
	}
	fh, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Annotatef(assets.ErrAssetMissing, "sound %s", path)
		}
		return nil, errors.Annotatef(err, "sound %s", path)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(fh)
	case ".wav":
		stream, format, err = wav.Decode(fh)
	default:
		_ = fh.Close()
		return nil, errors.NotSupportedf("audio format %q", ext)
	}
	if err != nil {
		_ = fh.Close()
		return nil, errors.Annotatef(assets.ErrAssetMissing, "sound %s: %v", path, err)
	}
	defer stream.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: p.sr, NumChannels: 2, Precision: 2})
	var s beep.Streamer = stream
	if format.SampleRate != p.sr {
		s = beep.Resample(4, format.SampleRate, p.sr, stream)
	}
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, errors.Annotatef(err, "sound %s", path)
	}
	return buf, nil
}
