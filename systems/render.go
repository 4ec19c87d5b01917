package systems

import (
	"image/color"
	"math"

	"github.com/automoto/solar-sprint/components"
	cfg "github.com/automoto/solar-sprint/config"
	"github.com/automoto/solar-sprint/shared/gamemath"
	"github.com/automoto/solar-sprint/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const beamStrips = 20

func cameraPosition(e *ecs.ECS) dmath.Vec2 {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return dmath.Vec2{}
	}
	return components.Camera.Get(entry).Position
}

func currentLevel(e *ecs.ECS) *leveldata.Level {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).CurrentLevel
}

// DrawBackground paints the sky gradient and the parallax bands.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	bands := cfg.UI.SkyBands
	stripH := height / float32(bands)
	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands-1)
		c := cfg.UI.SkyTop
		c.R = uint8(gamemath.Lerp(float64(cfg.UI.SkyTop.R), float64(cfg.UI.SkyBottom.R), t))
		c.G = uint8(gamemath.Lerp(float64(cfg.UI.SkyTop.G), float64(cfg.UI.SkyBottom.G), t))
		c.B = uint8(gamemath.Lerp(float64(cfg.UI.SkyTop.B), float64(cfg.UI.SkyBottom.B), t))
		vector.FillRect(screen, 0, float32(i)*stripH, width, stripH+1, c, false)
	}

	level := currentLevel(e)
	if level == nil {
		return
	}
	cam := cameraPosition(e)
	offX := cam.X * cfg.Camera.ParallaxX
	offY := cam.Y * cfg.Camera.ParallaxY
	for i := 0; i < cfg.UI.BandCount; i++ {
		w := 240 + float64(i)*60
		h := 40 + float64(i%3)*40
		x := math.Mod(float64(i)*260, level.Width+260) - 130
		y := 80 + float64(i%5)*90
		vector.FillRect(screen, float32(x-offX), float32(y-offY), float32(w), float32(h), cfg.UI.Band, false)
	}
}

// DrawLevel renders hazards, platforms, the exit beacon and the boosts that
// have not been used this run.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	level := currentLevel(e)
	if level == nil {
		return
	}
	cam := cameraPosition(e)

	for _, h := range level.Hazards {
		fillWorldRect(screen, cam, h, cfg.UI.Hazard)
	}
	for _, p := range level.Platforms {
		fillWorldRect(screen, cam, p, cfg.UI.Platform)
	}
	drawBeacon(screen, cam, level.Exit)

	sprint, ok := activeSprint(e)
	for i, b := range level.Boosts {
		if ok && sprint.World.IsCollected(i) {
			continue
		}
		vector.DrawFilledCircle(screen,
			float32(b.X-cam.X), float32(b.Y-cam.Y), float32(b.Radius),
			cfg.UI.Boost, true)
	}
}

// drawBeacon draws the beam as a stack of strips narrowing toward the top
// and brightening with height, with the beacon body on top.
func drawBeacon(screen *ebiten.Image, cam dmath.Vec2, exit leveldata.Rect) {
	cx := exit.X + exit.W/2 - cam.X
	bottom := exit.Y + exit.H - cam.Y
	stripH := exit.H / beamStrips
	for i := 0; i < beamStrips; i++ {
		f := float64(i) / beamStrips
		halfW := exit.W / 2 * (1 - f)
		alpha := float32(0.1/0.55 + (1-0.1/0.55)*f)
		vector.FillRect(screen,
			float32(cx-halfW), float32(bottom-float64(i+1)*stripH),
			float32(halfW*2), float32(stripH),
			fadeColor(cfg.UI.Beam, alpha), false)
	}

	body := leveldata.Rect{
		X: exit.X + exit.W/4,
		Y: exit.Y + exit.H/2,
		W: exit.W / 2,
		H: exit.H / 2,
	}
	fillWorldRect(screen, cam, body, cfg.UI.Beacon)
}

// DrawPlayer renders the runner with its visor, brighter while dashing.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	sprint, ok := activeSprint(e)
	if !ok {
		return
	}
	cam := cameraPosition(e)
	body := sprint.World.Body()

	c := cfg.UI.Player
	if sprint.World.Timers().Dashing() {
		c = cfg.UI.PlayerDashing
	}
	r := body.Rect()
	fillWorldRect(screen, cam, r, c)

	visor := leveldata.Rect{X: r.X + 6, Y: r.Y + 8, W: r.W - 12, H: r.H - 16}
	fillWorldRect(screen, cam, visor, cfg.UI.Visor)
}

func fillWorldRect(screen *ebiten.Image, cam dmath.Vec2, r leveldata.Rect, c color.Color) {
	vector.FillRect(screen,
		float32(r.X-cam.X), float32(r.Y-cam.Y),
		float32(r.W), float32(r.H),
		c, false)
}
