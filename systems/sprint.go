package systems

import (
	"log"
	"time"

	cfg "github.com/automoto/solar-sprint/config"
	"github.com/automoto/solar-sprint/shared/replay"
	"github.com/automoto/solar-sprint/shared/sim"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSprint advances the simulation by the wall-clock time since the last
// update. The simulation clamps long frames itself.
func UpdateSprint(e *ecs.ECS) {
	sprint, ok := activeSprint(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)

	now := time.Now()
	var dt time.Duration
	if !sprint.LastTick.IsZero() {
		dt = now.Sub(sprint.LastTick)
	}
	sprint.LastTick = now

	if GetAction(input, cfg.ActionReset).JustPressed || sprint.ResetRequested {
		sprint.ResetRequested = false
		sprint.World.Reset()
		sprint.Last = sim.Events{Reset: true}
		return
	}

	sprint.Last = sprint.World.Step(sim.Frame{
		Input: SprintInput(input),
		Delta: dt,
		Now:   now.Sub(sprint.Epoch),
	})
	logSprintEvents(sprint.Last)
}

func logSprintEvents(ev sim.Events) {
	if ev.Failure {
		log.Printf("Sprint: hazard touched, run reset")
	}
	if ev.Finished {
		log.Printf("Sprint: run complete in %ss", sim.FormatTime(ev.Elapsed))
	}
	if ev.NewBest {
		log.Printf("Sprint: new best %ss", sim.FormatTime(ev.Elapsed))
	}
	if cfg.Debug.Overlay {
		if desc := replay.Describe(ev); desc != "" {
			log.Printf("Sprint: %s", desc)
		}
	}
}

// UpdateTuning applies hot-reloaded tuning from the watcher, if one is running.
func UpdateTuning(e *ecs.ECS) {
	sprint, ok := activeSprint(e)
	if !ok || sprint.Watcher == nil {
		return
	}

	select {
	case t, open := <-sprint.Watcher.Updates:
		if !open {
			sprint.Watcher = nil
			return
		}
		if err := sprint.World.SetTuning(t); err != nil {
			log.Printf("Warning: Ignoring reloaded tuning: %v", err)
			return
		}
		log.Printf("Tuning reloaded from %s", cfg.Debug.TuningPath)
	case err, open := <-sprint.Watcher.Errors:
		if open && err != nil {
			log.Printf("Warning: Could not reload tuning: %v", err)
		}
	default:
	}
}
