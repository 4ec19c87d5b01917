package systems

import (
	"image/color"

	"github.com/automoto/solar-sprint/components"
	"github.com/automoto/solar-sprint/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space when the overlay
// is on (F3 or -debug).
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	if space.Space == nil {
		return
	}

	cam := cameraPosition(ecs)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range space.Space.Objects() {
		// Space coordinates back to screen coordinates
		x := obj.X - space.OffsetX - cam.X
		y := obj.Y - space.OffsetY - cam.Y

		// Cull objects outside viewport
		if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(sim.TagSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(sim.TagHazard) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(sim.TagExit) {
			c = color.RGBA{0, 255, 0, 255} // Green
		} else if obj.HasTags(sim.TagProbe) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		}

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}
