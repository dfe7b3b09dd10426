// Package fonts keeps the truetype faces used for each config.FontID.
package fonts

import (
	"fmt"
	"sync"

	"github.com/automoto/dexkiosk/config"
	"github.com/golang/freetype/truetype"
	"github.com/juju/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	mu    sync.RWMutex
	faces = map[config.FontID]font.Face{}
)

func LoadFontWithSize(id config.FontID, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return errors.Annotatef(err, "font %d", id)
	}
	face := truetype.NewFace(fontData, &truetype.Options{Size: size})
	mu.Lock()
	faces[id] = face
	mu.Unlock()
	return nil
}

// LoadDefaults registers every face in config.Fonts using the Go fonts.
func LoadDefaults() error {
	for i, fc := range config.Fonts {
		ttf := goregular.TTF
		if fc.Bold {
			ttf = gobold.TTF
		}
		if err := LoadFontWithSize(config.FontID(i), ttf, fc.Size); err != nil {
			return errors.Annotate(err, fc.Name)
		}
	}
	return nil
}

// Face returns the face for id. It panics if the face was never loaded.
func Face(id config.FontID) font.Face {
	mu.RLock()
	f, ok := faces[id]
	mu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("Font %d not found", id))
	}
	return f
}

// Measure returns the advance width, line height and ascent of text in pixels.
func Measure(face font.Face, text string) (w, h, ascent int) {
	m := face.Metrics()
	return font.MeasureString(face, text).Ceil(), (m.Ascent + m.Descent).Ceil(), m.Ascent.Ceil()
}
