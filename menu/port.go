package menu

import (
	"image"
	"image/color"

	"github.com/automoto/dexkiosk/config"
)

// Image is an opaque handle returned by Renderer.LoadImage.
type Image interface {
	Bounds() image.Rectangle
}

// Renderer draws one frame. Draw calls accumulate until Present.
type Renderer interface {
	DrawText(text string, pos image.Point, clr color.Color, style TextStyle)
	DrawRect(r image.Rectangle, clr color.Color)
	DrawImage(pos image.Point, img Image)
	// LoadImage never fails: unresolvable paths yield a placeholder.
	LoadImage(path string) Image
	Present()
}

// AudioOut plays cries and speech without blocking the caller.
type AudioOut interface {
	PlayClip(path string)
	Speak(text string)
	Stop()
	IsPlaying() bool
}

// Scanner identifies the entry in front of the device.
type Scanner interface {
	Scan() (int, error)
}

// ScanFunc adapts a function to Scanner.
type ScanFunc func() (int, error)

func (f ScanFunc) Scan() (int, error) { return f() }

// FixedScanner always reports the same index.
type FixedScanner int

func (s FixedScanner) Scan() (int, error) { return int(s), nil }

type Align int

const (
	AlignStart Align = iota // left or top
	AlignMid
	AlignEnd // right or bottom
)

// Anchor selects which point of the text box is placed at the draw position.
type Anchor struct {
	H Align
	V Align
}

// Offset returns the translation from the anchor point to the top-left corner
// of a w x h box.
func (a Anchor) Offset(w, h int) image.Point {
	return image.Pt(alignOffset(a.H, w), alignOffset(a.V, h))
}

func alignOffset(a Align, size int) int {
	switch a {
	case AlignMid:
		return -size / 2
	case AlignEnd:
		return -size
	}
	return 0
}

type TextStyle struct {
	Font   config.FontID
	Anchor Anchor
}
