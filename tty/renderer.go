// Package tty runs the kiosk in a terminal. Pixel coordinates from the menu
// layer are mapped onto character cells.
package tty

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/automoto/dexkiosk/assets"
	"github.com/automoto/dexkiosk/config"
	"github.com/automoto/dexkiosk/menu"
	"github.com/gdamore/tcell/v2"
)

// Renderer is a menu.Renderer drawing on a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	images  *assets.ImageLoader
	cw, ch  int
	bgStyle tcell.Style
}

func NewRenderer(screen tcell.Screen, images *assets.ImageLoader) *Renderer {
	r := &Renderer{
		screen:  screen,
		images:  images,
		cw:      max(1, config.TTY.CellWidth),
		ch:      max(1, config.TTY.CellHeight),
		bgStyle: tcell.StyleDefault.Background(tcellColor(config.Menu.BackgroundColor)),
	}
	r.screen.Fill(' ', r.bgStyle)
	return r
}

func (r *Renderer) cell(p image.Point) (int, int) {
	return floorDiv(p.X, r.cw), floorDiv(p.Y, r.ch)
}

func (r *Renderer) DrawText(text string, pos image.Point, clr color.Color, style menu.TextStyle) {
	n := utf8.RuneCountInString(text)
	pos = pos.Add(style.Anchor.Offset(n*r.cw, r.ch))
	x, y := r.cell(pos)
	st := r.bgStyle.Foreground(tcellColor(clr))
	if style.Font == config.FontNumber || style.Font == config.FontDescription {
		st = st.Bold(true)
	}
	for _, c := range text {
		r.screen.SetContent(x, y, c, nil, st)
		x++
	}
}

func (r *Renderer) DrawRect(rect image.Rectangle, clr color.Color) {
	x0, y0 := r.cell(rect.Min)
	x1, y1 := r.cell(rect.Max)
	st := tcell.StyleDefault.Background(tcellColor(clr))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// DrawImage draws img with half-block cells, two image rows per text row.
func (r *Renderer) DrawImage(pos image.Point, img menu.Image) {
	src, ok := img.(image.Image)
	if !ok {
		return
	}
	b := src.Bounds()
	x0, y0 := r.cell(pos)
	cols := b.Dx() / r.cw
	rows := b.Dy() / r.ch
	half := r.ch / 2
	if half == 0 {
		half = 1
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			px := b.Min.X + col*r.cw
			py := b.Min.Y + row*r.ch
			top := average(src, image.Rect(px, py, px+r.cw, py+half), config.Menu.BackgroundColor)
			bottom := average(src, image.Rect(px, py+half, px+r.cw, py+r.ch), config.Menu.BackgroundColor)
			st := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			r.screen.SetContent(x0+col, y0+row, '▀', nil, st)
		}
	}
}

// LoadImage never fails: missing files give the placeholder.
func (r *Renderer) LoadImage(path string) menu.Image {
	return r.images.LoadOrPlaceholder(path)
}

// Present shows the frame and clears the back buffer.
func (r *Renderer) Present() {
	r.screen.Show()
	r.screen.Fill(' ', r.bgStyle)
}

// average blends the pixels of rect over bg.
func average(img image.Image, rect image.Rectangle, bg color.Color) color.Color {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return bg
	}
	br, bgc, bb, _ := bg.RGBA()
	var sr, sg, sb, n uint64
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			inv := 0xffff - ca
			sr += uint64(cr + br*inv/0xffff)
			sg += uint64(cg + bgc*inv/0xffff)
			sb += uint64(cb + bb*inv/0xffff)
			n++
		}
	}
	return color.RGBA64{R: uint16(sr / n), G: uint16(sg / n), B: uint16(sb / n), A: 0xffff}
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
