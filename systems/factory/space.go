package factory

import (
	"github.com/automoto/solar-sprint/archetypes"
	"github.com/automoto/solar-sprint/components"
	"github.com/automoto/solar-sprint/shared/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace publishes the world's collision space for the debug overlay.
func CreateSpace(ecs *ecs.ECS, world *sim.World) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	offX, offY := world.SpaceOffset()
	components.Space.Set(space, &components.SpaceData{
		Space:   world.CollisionSpace(),
		OffsetX: offX,
		OffsetY: offY,
	})
	return space
}
