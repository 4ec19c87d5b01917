package systems

import (
	"github.com/automoto/solar-sprint/components"
	"github.com/automoto/solar-sprint/config"
	"github.com/automoto/solar-sprint/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	sprint, ok := activeSprint(e)
	if !ok {
		return
	}
	cx, cy := sprint.World.Body().Center()
	level := sprint.World.Level()

	target := cameraTarget(cx, cy, level.Width, level.Height,
		float64(config.C.Width), float64(config.C.Height))

	camera.Position.X = gamemath.Lerp(camera.Position.X, target.X, config.Camera.FollowSmoothing)
	camera.Position.Y = gamemath.Lerp(camera.Position.Y, target.Y, config.Camera.FollowSmoothing)
}

// cameraTarget keeps the player's center at the configured margins from the
// view's top-left corner without showing space outside the level.
func cameraTarget(cx, cy, levelW, levelH, viewW, viewH float64) math.Vec2 {
	marginX := viewW * config.Camera.MarginX
	marginY := viewH * config.Camera.MarginY
	return math.Vec2{
		X: gamemath.Clamp(cx-marginX, 0, max(0, levelW-viewW)),
		Y: gamemath.Clamp(cy-marginY, 0, max(0, levelH-viewH)),
	}
}
