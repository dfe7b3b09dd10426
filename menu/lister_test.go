package menu

import (
	"math/rand"
	"testing"

	"github.com/automoto/dexkiosk/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listerFixture struct {
	m       *Lister
	audio   *fakeAudio
	r       *fakeRenderer
	scanner Menu
	detail  Menu
}

func newTestLister(t *testing.T, n int) listerFixture {
	t.Helper()
	require.Equal(t, 8, config.List.WindowLen)
	f := listerFixture{audio: &fakeAudio{}, r: &fakeRenderer{}}
	d := newTestDex(t, numbered(n)...)
	f.detail = NewEntryDetail(d, f.r, f.audio, AutoCry)
	f.scanner = NewScanner(d, f.r, FixedScanner(0), NewEntryDetail(d, f.r, f.audio, AutoSpeech))
	f.m = NewLister(d, f.r, f.audio, f.scanner, f.detail)
	f.m.Enter()
	return f
}

func TestListerDownPastEnd(t *testing.T) {
	t.Parallel()

	f := newTestLister(t, 10)
	for i := 0; i < 9; i++ {
		f.m.Update(0, acts(config.ActionDown))
	}
	assert.Equal(t, 9, f.m.Cursor())
	assert.Equal(t, 2, f.m.ViewStart())

	f.m.Update(0, acts(config.ActionDown))
	assert.Equal(t, -1, f.m.Cursor())
	assert.Equal(t, 0, f.m.ViewStart())

	f.m.Update(0, acts(config.ActionDown))
	assert.Equal(t, -1, f.m.Cursor(), "down on the toolbar is a no-op")
}

func TestListerToolbar(t *testing.T) {
	t.Parallel()

	f := newTestLister(t, 10)
	f.m.Update(0, acts(config.ActionUp))
	require.Equal(t, -1, f.m.Cursor())
	f.m.Update(0, acts(config.ActionUp))
	assert.Equal(t, -1, f.m.Cursor(), "up on the toolbar is a no-op")

	assert.True(t, f.m.Update(0, acts(config.ActionConfirm)).IsPop())

	f.m.Update(0, acts(config.ActionRight))
	assert.Equal(t, 1, f.m.ToolbarCursor())
	tr := f.m.Update(0, acts(config.ActionConfirm))
	require.True(t, tr.IsPush())
	assert.Same(t, f.scanner, tr.Target())

	f.m.Update(0, acts(config.ActionRight))
	assert.Equal(t, 0, f.m.ToolbarCursor())
	f.m.Update(0, acts(config.ActionLeft))
	assert.Equal(t, 1, f.m.ToolbarCursor())
}

func TestListerPaging(t *testing.T) {
	t.Parallel()

	f := newTestLister(t, 10)
	f.m.Update(0, acts(config.ActionRight))
	assert.Equal(t, 8, f.m.Cursor())
	assert.Equal(t, 2, f.m.ViewStart())

	f.m.Update(0, acts(config.ActionRight))
	assert.Equal(t, 9, f.m.Cursor())

	f.m.Update(0, acts(config.ActionLeft))
	assert.Equal(t, 1, f.m.Cursor())
	assert.Equal(t, 0, f.m.ViewStart())

	f.m.Update(0, acts(config.ActionLeft))
	assert.Equal(t, 0, f.m.Cursor())
}

func TestListerConfirmSelectsEntry(t *testing.T) {
	t.Parallel()

	f := newTestLister(t, 10)
	f.m.Update(0, acts(config.ActionDown))
	f.m.Update(0, acts(config.ActionDown))
	tr := f.m.Update(0, acts(config.ActionDown, config.ActionConfirm))
	require.True(t, tr.IsPush())
	assert.Same(t, f.detail, tr.Target())
	assert.Equal(t, 2, f.m.dex.Index())
}

func TestListerInvariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	all := []config.ActionID{config.ActionLeft, config.ActionRight, config.ActionUp, config.ActionDown, config.ActionClick}
	for _, n := range []int{1, 3, 8, 9, 20} {
		f := newTestLister(t, n)
		for i := 0; i < 500; i++ {
			batch := acts(all[rng.Intn(len(all))])
			if rng.Intn(3) == 0 {
				batch = append(batch, all[rng.Intn(len(all))])
			}
			f.m.Update(0, batch)

			c, vs := f.m.Cursor(), f.m.ViewStart()
			require.GreaterOrEqual(t, c, -1, "size %d", n)
			require.Less(t, c, n, "size %d", n)
			require.GreaterOrEqual(t, vs, 0, "size %d", n)
			require.LessOrEqual(t, vs, max(0, n-8), "size %d", n)
			if c >= 0 {
				require.LessOrEqual(t, vs, c, "size %d", n)
				require.Less(t, c, vs+8, "size %d", n)
			}
		}
	}
}

func TestListerPlaysOncePerIndex(t *testing.T) {
	t.Parallel()

	f := newTestLister(t, 10)
	assert.Equal(t, []string{"stop"}, f.audio.calls, "enter stops audio")
	f.audio.reset()

	f.m.Render()
	f.m.Render()
	assert.Equal(t, []string{"stop", "play:cry/1.ogg"}, f.audio.calls)

	f.audio.reset()
	f.m.Update(0, acts(config.ActionDown))
	f.m.Render()
	f.m.Render()
	assert.Equal(t, []string{"stop", "play:cry/2.ogg"}, f.audio.calls)

	f.audio.reset()
	f.m.Update(0, acts(config.ActionUp))
	f.m.Render()
	assert.Equal(t, []string{"stop", "play:cry/1.ogg"}, f.audio.calls)

	f.audio.reset()
	f.m.Update(0, acts(config.ActionUp))
	require.Equal(t, -1, f.m.Cursor())
	f.m.Render()
	assert.Empty(t, f.audio.calls, "nothing plays on the toolbar")
}

func TestListerRender(t *testing.T) {
	t.Parallel()

	f := newTestLister(t, 3)
	f.m.Render()
	assert.Equal(t, []string{"TestDex", "Back", "Scan", "e0", "1", "e1", "2", "e2", "3"}, f.r.texts)
	assert.Equal(t, []string{"img/1.png"}, f.r.images)

	f.r.Present()
	f.m.Update(0, acts(config.ActionUp))
	f.m.Render()
	assert.Equal(t, []string{"img/1.png"}, f.r.images, "last image stays on the toolbar")
}

func TestListerEnterResetsCursor(t *testing.T) {
	t.Parallel()

	f := newTestLister(t, 10)
	f.m.Update(0, acts(config.ActionUp))
	require.Equal(t, -1, f.m.Cursor())
	f.m.Enter()
	assert.Equal(t, 0, f.m.Cursor())

	f.m.Update(0, acts(config.ActionRight))
	f.m.Enter()
	assert.Equal(t, 8, f.m.Cursor(), "unchanged list keeps the cursor")
	assert.Equal(t, 2, f.m.ViewStart())
}
