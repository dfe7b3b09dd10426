package menu

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/automoto/dexkiosk/config"
	"github.com/automoto/dexkiosk/dex"
	"github.com/stretchr/testify/require"
)

type fakeImage struct{ path string }

func (fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, 1, 1) }

type fakeRenderer struct {
	texts    []string
	images   []string
	loads    []string
	presents int
}

func (r *fakeRenderer) DrawText(text string, pos image.Point, clr color.Color, style TextStyle) {
	r.texts = append(r.texts, text)
}
func (r *fakeRenderer) DrawRect(image.Rectangle, color.Color) {}
func (r *fakeRenderer) DrawImage(pos image.Point, img Image) {
	r.images = append(r.images, img.(fakeImage).path)
}
func (r *fakeRenderer) LoadImage(path string) Image {
	r.loads = append(r.loads, path)
	return fakeImage{path}
}
func (r *fakeRenderer) Present() {
	r.presents++
	r.texts, r.images = nil, nil
}

type fakeAudio struct {
	calls   []string
	playing bool
}

func (a *fakeAudio) PlayClip(path string) { a.calls = append(a.calls, "play:"+path) }
func (a *fakeAudio) Speak(text string)    { a.calls = append(a.calls, "speak:"+text) }
func (a *fakeAudio) Stop()                { a.calls = append(a.calls, "stop") }
func (a *fakeAudio) IsPlaying() bool      { return a.playing }

func (a *fakeAudio) count(prefix string) int {
	n := 0
	for _, c := range a.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (a *fakeAudio) reset() { a.calls = nil }

// newTestDex returns a catalog whose entry i has image "img/<i+1>.png",
// sound "cry/<i+1>.ogg" and description "about <name>".
func newTestDex(t *testing.T, names ...string) *dex.Dex {
	t.Helper()
	s := dex.NewStatic("TestDex", names...)
	for i := range s.Entries {
		s.Entries[i].Image = fmt.Sprintf("img/%d.png", i+1)
		s.Entries[i].Sound = fmt.Sprintf("cry/%d.ogg", i+1)
		s.Entries[i].Description = "about " + s.Entries[i].Name
	}
	d, err := dex.New(s)
	require.NoError(t, err)
	return d
}

func numbered(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("e%d", i)
	}
	return names
}

func acts(a ...config.ActionID) []config.ActionID { return a }
