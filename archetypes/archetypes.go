package archetypes

import (
	"github.com/automoto/polytone/components"
	"github.com/automoto/polytone/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	LayerDefault ecs.LayerID = iota
	LayerOverlay
)

var (
	Audio = newArchetype(
		components.Audio,
	)
	Staff = newArchetype(
		components.Staff,
	)
	Marker = newArchetype(
		tags.Marker,
		components.Marker,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
