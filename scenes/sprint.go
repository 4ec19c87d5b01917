package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/solar-sprint/assets"
	"github.com/automoto/solar-sprint/components"
	cfg "github.com/automoto/solar-sprint/config"
	"github.com/automoto/solar-sprint/shared/sim"
	"github.com/automoto/solar-sprint/shared/tuning"
	"github.com/automoto/solar-sprint/systems"
	"github.com/automoto/solar-sprint/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SprintScene runs the speed trial. If the level or tuning cannot be built
// the scene logs once and draws a blank screen.
type SprintScene struct {
	ecs     *ecs.ECS
	watcher *tuning.Watcher
	once    sync.Once
}

func NewSprintScene() *SprintScene {
	return &SprintScene{}
}

func (ss *SprintScene) Update() {
	ss.once.Do(ss.configure)
	if ss.ecs == nil {
		return
	}
	ss.ecs.Update()
}

func (ss *SprintScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

// Close stops the tuning watcher, if one was started.
func (ss *SprintScene) Close() error {
	if ss.watcher == nil {
		return nil
	}
	return ss.watcher.Close()
}

func (ss *SprintScene) configure() {
	t, err := loadTuning()
	if err != nil {
		log.Printf("Warning: Sprint disabled, bad tuning: %v", err)
		return
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateControls)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)

	// Gameplay systems
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTuning))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSprint))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHUD))

	// Add renderers
	ecs.AddRenderer(cfg.LayerBackground, systems.DrawBackground)
	ecs.AddRenderer(cfg.LayerWorld, systems.DrawLevel)
	ecs.AddRenderer(cfg.LayerWorld, systems.DrawPlayer)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawControls)
	ecs.AddRenderer(cfg.LayerDebug, systems.DrawDebug)

	levelEntry, err := factory.CreateLevel(ecs, assets.NewLevelLoader(), cfg.Debug.Level)
	if err != nil {
		log.Printf("Warning: Sprint disabled, bad level: %v", err)
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	best := systems.BestTimes()
	opts := []sim.Option{sim.WithRecorder(best)}
	if b, ok := best.Load(); ok {
		opts = append(opts, sim.WithBestTime(b))
	}

	sprintEntry, err := factory.CreateSprint(ecs, level, t, opts...)
	if err != nil {
		log.Printf("Warning: Sprint disabled: %v", err)
		return
	}
	sprint := components.Sprint.Get(sprintEntry)

	if cfg.Debug.TuningPath != "" {
		w, err := tuning.Watch(cfg.Debug.TuningPath, cfg.Sprint)
		if err != nil {
			log.Printf("Warning: Tuning hot reload unavailable: %v", err)
		} else {
			ss.watcher = w
			sprint.Watcher = w
		}
	}

	factory.CreateSpace(ecs, sprint.World)
	factory.CreateCamera(ecs)
	factory.CreateHUD(ecs)
	if _, err := factory.CreateControls(ecs); err != nil {
		log.Printf("Warning: On-screen controls unavailable: %v", err)
	}

	ss.ecs = ecs
}

func loadTuning() (sim.Tuning, error) {
	if cfg.Debug.TuningPath == "" {
		return cfg.Sprint, nil
	}
	return tuning.Load(cfg.Debug.TuningPath, cfg.Sprint)
}
