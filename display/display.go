// Package display implements menu.Renderer on ebiten.
//
// Menus render during Update, but ebiten only allows drawing to the screen in
// Draw. The Renderer records draw calls into a display list; Present publishes
// the list and Draw replays the last published one.
package display

import (
	"image"
	"image/color"

	"github.com/automoto/dexkiosk/assets"
	"github.com/automoto/dexkiosk/config"
	"github.com/automoto/dexkiosk/fonts"
	"github.com/automoto/dexkiosk/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type commandKind int

const (
	drawText commandKind = iota
	drawRect
	drawImage
)

type command struct {
	kind  commandKind
	text  string
	pos   image.Point
	clr   color.Color
	style menu.TextStyle
	rect  image.Rectangle
	img   *Image
}

// Image is the ebiten image handle given to menus.
type Image struct {
	src image.Image
	img *ebiten.Image
}

func (i *Image) Bounds() image.Rectangle { return i.src.Bounds() }

// ebitenImage defers the GPU upload until the first draw.
func (i *Image) ebitenImage() *ebiten.Image {
	if i.img == nil {
		i.img = ebiten.NewImageFromImage(i.src)
	}
	return i.img
}

type Renderer struct {
	images  *assets.ImageLoader
	cache   map[string]*Image
	pending []command
	frame   []command
	frames  int
}

func NewRenderer(images *assets.ImageLoader) *Renderer {
	return &Renderer{
		images: images,
		cache:  make(map[string]*Image),
	}
}

func (r *Renderer) DrawText(s string, pos image.Point, clr color.Color, style menu.TextStyle) {
	r.pending = append(r.pending, command{kind: drawText, text: s, pos: pos, clr: clr, style: style})
}

func (r *Renderer) DrawRect(rect image.Rectangle, clr color.Color) {
	r.pending = append(r.pending, command{kind: drawRect, rect: rect, clr: clr})
}

func (r *Renderer) DrawImage(pos image.Point, img menu.Image) {
	i, ok := img.(*Image)
	if !ok || i == nil {
		return
	}
	r.pending = append(r.pending, command{kind: drawImage, pos: pos, img: i})
}

// LoadImage returns the cached handle for path. Missing files share the placeholder.
func (r *Renderer) LoadImage(path string) menu.Image {
	if img, ok := r.cache[path]; ok {
		return img
	}
	img := &Image{src: r.images.LoadOrPlaceholder(path)}
	r.cache[path] = img
	return img
}

// Preload decodes paths into the cache.
func (r *Renderer) Preload(paths []string) {
	for _, p := range paths {
		r.LoadImage(p)
	}
}

// Present publishes the recorded frame and starts an empty one.
func (r *Renderer) Present() {
	r.frame, r.pending = r.pending, r.frame[:0]
	r.frames++
}

// Frames is the number of frames presented so far.
func (r *Renderer) Frames() int { return r.frames }

// Draw clears screen to the background color and replays the last presented frame.
func (r *Renderer) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), config.Menu.BackgroundColor, false)

	for _, c := range r.frame {
		switch c.kind {
		case drawText:
			face := fonts.Face(c.style.Font)
			w, h, ascent := fonts.Measure(face, c.text)
			p := c.pos.Add(c.style.Anchor.Offset(w, h))
			text.Draw(screen, c.text, face, p.X, p.Y+ascent, c.clr)
		case drawRect:
			vector.FillRect(screen, float32(c.rect.Min.X), float32(c.rect.Min.Y),
				float32(c.rect.Dx()), float32(c.rect.Dy()), c.clr, false)
		case drawImage:
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(c.pos.X), float64(c.pos.Y))
			screen.DrawImage(c.img.ebitenImage(), op)
		}
	}
}
