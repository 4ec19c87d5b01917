package systems

import (
	"math"
	"testing"

	"github.com/automoto/solar-sprint/components"
	"github.com/automoto/solar-sprint/shared/leveldata"
	"github.com/automoto/solar-sprint/shared/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCameraTarget(t *testing.T) {
	tests := []struct {
		name                   string
		cx, cy, levelW, levelH float64
		wantX, wantY           float64
	}{
		{"clamped at origin", 100, 100, 2600, 720, 0, 0},
		{"follows with margin", 1000, 250, 2600, 720, 664, 115},
		{"clamped at far edge", 2550, 700, 2600, 720, 2600 - 960, 720 - 540},
		{"level smaller than view", 500, 300, 800, 400, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cameraTarget(tt.cx, tt.cy, tt.levelW, tt.levelH, 960, 540)
			if math.Abs(got.X-tt.wantX) > 1e-9 || math.Abs(got.Y-tt.wantY) > 1e-9 {
				t.Fatalf("cameraTarget = (%v, %v), want (%v, %v)", got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestUpdateCameraSmoothsTowardTarget(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	world, err := sim.New(leveldata.SolarFacility(), sim.DefaultTuning())
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	sprintEntry := e.World.Entry(e.World.Create(components.Sprint))
	components.Sprint.SetValue(sprintEntry, components.SprintData{World: world})
	cameraEntry := e.World.Entry(e.World.Create(components.Camera))

	// Spawn is near the left edge, so X stays clamped at zero while Y
	// moves part way toward the bottom of the level.
	UpdateCamera(e)
	camera := components.Camera.Get(cameraEntry)
	if camera.Position.X != 0 {
		t.Fatalf("camera X = %v, want 0", camera.Position.X)
	}
	if want := 180 * 0.18; math.Abs(camera.Position.Y-want) > 1e-9 {
		t.Fatalf("camera Y = %v, want %v", camera.Position.Y, want)
	}

	camera.Position.X = 100
	UpdateCamera(e)
	if math.Abs(camera.Position.X-82) > 1e-9 {
		t.Fatalf("camera X = %v, want 82", camera.Position.X)
	}
}
