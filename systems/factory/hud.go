package factory

import (
	"github.com/automoto/solar-sprint/archetypes"
	"github.com/automoto/solar-sprint/components"
	cfg "github.com/automoto/solar-sprint/config"
	"github.com/yohamta/donburi/ecs"
)

func CreateHUD(ecs *ecs.ECS) {
	hud := archetypes.HUD.Spawn(ecs)
	components.HUD.Set(hud, &components.HUDData{
		Timer:  "0.000",
		Best:   cfg.Status.NoBest,
		Status: cfg.Status.Ready,
	})
}
