package systems

import (
	"github.com/automoto/solar-sprint/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls runs the on-screen control pad. Its handlers write held
// state that UpdateInput merges on the following update.
func UpdateControls(ecs *ecs.ECS) {
	entry, ok := components.Controls.First(ecs.World)
	if !ok {
		return
	}
	controls := components.Controls.Get(entry)
	if controls.UI == nil {
		return
	}
	controls.UI.Update()
}

func DrawControls(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Controls.First(ecs.World)
	if !ok {
		return
	}
	controls := components.Controls.Get(entry)
	if controls.UI == nil {
		return
	}
	controls.UI.Draw(screen)
}
