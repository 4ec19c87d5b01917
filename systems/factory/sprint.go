package factory

import (
	"time"

	"github.com/automoto/solar-sprint/archetypes"
	"github.com/automoto/solar-sprint/components"
	"github.com/automoto/solar-sprint/shared/leveldata"
	"github.com/automoto/solar-sprint/shared/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSprint builds the simulation for level and wraps it in the player
// entity.
func CreateSprint(ecs *ecs.ECS, level *leveldata.Level, tuning sim.Tuning, opts ...sim.Option) (*donburi.Entry, error) {
	world, err := sim.New(level, tuning, opts...)
	if err != nil {
		return nil, err
	}

	sprint := archetypes.Sprint.Spawn(ecs)
	components.Sprint.Set(sprint, &components.SprintData{
		World: world,
		Epoch: time.Now(),
	})
	return sprint, nil
}
