package archetypes

import (
	"github.com/automoto/solar-sprint/components"
	cfg "github.com/automoto/solar-sprint/config"
	"github.com/automoto/solar-sprint/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Sprint = newArchetype(
		tags.Player,
		components.Sprint,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Controls = newArchetype(
		components.Controls,
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
		cfg.LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
