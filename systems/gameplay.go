package systems

import (
	"github.com/automoto/solar-sprint/components"
	"github.com/yohamta/donburi/ecs"
)

// WithGameplayChecks wraps a system to skip execution until a sprint world
// exists. A scene whose level or tuning failed to load stays inert.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if _, ok := activeSprint(e); !ok {
			return
		}
		system(e)
	}
}

func activeSprint(e *ecs.ECS) (*components.SprintData, bool) {
	entry, ok := components.Sprint.First(e.World)
	if !ok {
		return nil, false
	}
	sprint := components.Sprint.Get(entry)
	return sprint, sprint.World != nil
}
