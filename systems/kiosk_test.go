package systems

import (
	"testing"

	"github.com/automoto/dexkiosk/app"
	"github.com/automoto/dexkiosk/archetypes"
	"github.com/automoto/dexkiosk/assets"
	"github.com/automoto/dexkiosk/components"
	cfg "github.com/automoto/dexkiosk/config"
	"github.com/automoto/dexkiosk/dex"
	"github.com/automoto/dexkiosk/display"
	"github.com/automoto/dexkiosk/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type silentAudio struct{}

func (silentAudio) PlayClip(string) {}
func (silentAudio) Speak(string)    {}
func (silentAudio) Stop()           {}
func (silentAudio) IsPlaying() bool { return false }

func newTestECS(t *testing.T, frames ...[]cfg.ActionID) (*ecs.ECS, *display.Renderer) {
	t.Helper()
	d, err := dex.New(dex.NewStatic("TestDex", "A", "B"))
	require.NoError(t, err)
	r := display.NewRenderer(assets.NewImageLoader(16))
	root := menu.Build(menu.Deps{Dex: d, Renderer: r, Audio: silentAudio{}, Scanner: menu.FixedScanner(1)})

	e := ecs.NewECS(donburi.NewWorld())
	kiosk := archetypes.Kiosk.Spawn(e)
	components.Kiosk.SetValue(kiosk, components.KioskData{
		Loop:     app.NewLoop(root, &app.ScriptedController{Frames: frames}, r),
		Renderer: r,
	})
	archetypes.Fade.Spawn(e)
	return e, r
}

func fadeOf(t *testing.T, e *ecs.ECS) *components.FadeData {
	t.Helper()
	entry, ok := components.Fade.First(e.World)
	require.True(t, ok)
	return components.Fade.Get(entry)
}

func TestUpdateKioskFadesOnScreenChange(t *testing.T) {
	e, r := newTestECS(t, nil, []cfg.ActionID{cfg.ActionConfirm})

	UpdateKiosk(e)
	assert.Nil(t, fadeOf(t, e).Tween, "no fade while the screen stays")
	assert.Equal(t, 1, r.Frames())

	UpdateKiosk(e)
	fade := fadeOf(t, e)
	require.NotNil(t, fade.Tween)
	assert.Equal(t, cfg.Fade.MaxAlpha, fade.Alpha)

	UpdateFade(e)
	assert.Less(t, fade.Alpha, cfg.Fade.MaxAlpha)
	for i := 0; i < 120 && fade.Tween != nil; i++ {
		UpdateFade(e)
	}
	assert.Nil(t, fade.Tween)
	assert.Zero(t, fade.Alpha)
	assert.False(t, KioskDone(e))
}

func TestUpdateKioskQuit(t *testing.T) {
	e, r := newTestECS(t, []cfg.ActionID{cfg.ActionQuit})

	UpdateKiosk(e)
	assert.True(t, KioskDone(e))
	UpdateKiosk(e)
	assert.Zero(t, r.Frames())
}
