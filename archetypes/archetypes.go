package archetypes

import (
	"github.com/automoto/dexkiosk/components"
	"github.com/automoto/dexkiosk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Draw layers, back to front
const (
	LayerKiosk ecs.LayerID = iota
	LayerOverlay
)

var (
	Kiosk = newArchetype(
		LayerKiosk,
		tags.Kiosk,
		components.Kiosk,
	)
	Fade = newArchetype(
		LayerOverlay,
		tags.Fade,
		components.Fade,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
