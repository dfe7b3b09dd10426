// Package assets loads catalog images from disk.
package assets

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"sync"

	"github.com/automoto/dexkiosk/config"
	"github.com/juju/errors"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const ErrAssetMissing = errors.ConstError("asset missing")

// ImageLoader decodes images scaled to a square and caches them by path.
// It is safe for concurrent use so preloading can run off the loop goroutine.
type ImageLoader struct {
	mu          sync.Mutex
	size        int
	cache       map[string]image.Image
	missing     map[string]bool // Paths already reported by LoadOrPlaceholder
	placeholder image.Image
}

func NewImageLoader(size int) *ImageLoader {
	if size <= 0 {
		size = config.Assets.ImageSize
	}
	return &ImageLoader{
		size:    size,
		cache:   make(map[string]image.Image),
		missing: make(map[string]bool),
	}
}

// Load returns the cached image for path, decoding it on first use.
func (l *ImageLoader) Load(path string) (image.Image, error) {
	l.mu.Lock()
	img, ok := l.cache[path]
	l.mu.Unlock()
	if ok {
		return img, nil
	}

	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	img = Scale(img, l.size)

	l.mu.Lock()
	l.cache[path] = img
	l.mu.Unlock()
	return img, nil
}

// LoadOrPlaceholder never fails: an unresolvable path yields the placeholder.
// A path that failed once is not retried and is reported only once.
func (l *ImageLoader) LoadOrPlaceholder(path string) image.Image {
	l.mu.Lock()
	missing := l.missing[path]
	l.mu.Unlock()
	if missing {
		return l.Placeholder()
	}

	img, err := l.Load(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		l.mu.Lock()
		l.missing[path] = true
		l.mu.Unlock()
		return l.Placeholder()
	}
	return img
}

// Placeholder returns config.Assets.PlaceholderImage, or a generated tile when
// that file is missing too.
func (l *ImageLoader) Placeholder() image.Image {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.placeholder != nil {
		return l.placeholder
	}
	if img, err := decodeFile(config.Assets.PlaceholderImage); err == nil {
		l.placeholder = Scale(img, l.size)
	} else {
		l.placeholder = blankTile(l.size)
	}
	return l.placeholder
}

// Preload decodes paths in order and returns how many were missing.
func (l *ImageLoader) Preload(paths []string) int {
	missing := 0
	for _, p := range paths {
		if _, err := l.Load(p); err != nil {
			missing++
		}
	}
	return missing
}

// Scale resizes src to size x size.
func Scale(src image.Image, size int) image.Image {
	b := src.Bounds()
	if size <= 0 || (b.Dx() == size && b.Dy() == size && b.Min == image.Point{}) {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func decodeFile(path string) (image.Image, error) {
	if path == "" {
		return nil, errors.Annotate(ErrAssetMissing, "empty path")
	}
	fh, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Annotatef(ErrAssetMissing, "image %s", path)
		}
		return nil, errors.Annotatef(err, "image %s", path)
	}
	defer fh.Close()
	img, _, err := image.Decode(fh)
	if err != nil {
		return nil, errors.Annotatef(ErrAssetMissing, "image %s: %v", path, err)
	}
	return img, nil
}

// blankTile is a light grey square with a darker frame.
func blankTile(size int) image.Image {
	if size <= 0 {
		size = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fill := color.RGBA{220, 220, 220, 255}
	frame := color.RGBA{120, 120, 120, 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := fill
			if x < 2 || y < 2 || x >= size-2 || y >= size-2 {
				c = frame
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
