package factory

import (
	"fmt"

	"github.com/automoto/solar-sprint/archetypes"
	"github.com/automoto/solar-sprint/assets"
	"github.com/automoto/solar-sprint/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named embedded level into a new Level entity.
func CreateLevel(ecs *ecs.ECS, loader *assets.LevelLoader, name string) (*donburi.Entry, error) {
	names, err := loader.Names()
	if err != nil {
		return nil, err
	}
	lvl, err := loader.Load(name)
	if err != nil {
		return nil, fmt.Errorf("create level %q: %w", name, err)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: lvl,
		Names:        names,
	})
	return level, nil
}
