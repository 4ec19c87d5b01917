package factory

import (
	"github.com/automoto/solar-sprint/archetypes"
	"github.com/automoto/solar-sprint/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
