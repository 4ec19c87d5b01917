package components

import (
	"time"

	"github.com/automoto/solar-sprint/shared/sim"
	"github.com/automoto/solar-sprint/shared/tuning"
	"github.com/yohamta/donburi"
)

// SprintData wraps the simulation for the ECS. Systems only touch World
// through its methods.
type SprintData struct {
	World          *sim.World
	Last           sim.Events
	Epoch          time.Time // host clock origin for sim.Frame.Now
	LastTick       time.Time
	ResetRequested bool
	Watcher        *tuning.Watcher // nil unless a tuning file was given
}

var Sprint = donburi.NewComponentType[SprintData]()
