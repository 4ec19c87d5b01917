package systems

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/solar-sprint/components"
	cfg "github.com/automoto/solar-sprint/config"
	"github.com/automoto/solar-sprint/fonts"
	"github.com/automoto/solar-sprint/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudPanelWidth  = 250
	hudPanelHeight = 58
)

// UpdateHUD refreshes the HUD strings and advances the new-best banner.
func UpdateHUD(e *ecs.ECS) {
	hudEntry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)

	sprint, ok := activeSprint(e)
	if !ok {
		return
	}

	now := time.Since(sprint.Epoch)
	hud.Timer, hud.Best, hud.Status = hudText(sprint.World, now)

	if sprint.Last.NewBest {
		hud.Banner = gween.New(1, 0, cfg.UI.BannerSeconds, ease.InQuad)
	}
	if sprint.Last.Reset {
		hud.Banner = nil
	}
	advanceBanner(hud, 1/float32(ebiten.TPS()))
}

func advanceBanner(hud *components.HUDData, dt float32) {
	if hud.Banner == nil {
		hud.Alpha = 0
		return
	}
	alpha, done := hud.Banner.Update(dt)
	hud.Alpha = alpha
	if done {
		hud.Banner = nil
		hud.Alpha = 0
	}
}

// hudText returns the timer, best and status lines for the run at now.
func hudText(w *sim.World, now time.Duration) (timer, best, status string) {
	timer = sim.FormatTime(w.Elapsed(now))

	best = cfg.Status.NoBest
	if b, ok := w.Best(); ok {
		best = sim.FormatTime(b)
	}

	switch w.State() {
	case sim.Running:
		status = cfg.Status.Running
	case sim.Finished:
		status = fmt.Sprintf(cfg.Status.Finished, sim.FormatTime(w.Elapsed(now)))
	default:
		status = cfg.Status.Ready
	}
	return timer, best, status
}

// DrawHUD renders the timer panel in the top-left corner, the status line
// along the bottom and the new-best banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	hudEntry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)

	margin := cfg.UI.HUDMargin
	vector.FillRect(screen,
		float32(margin), float32(margin),
		hudPanelWidth, hudPanelHeight,
		cfg.UI.HUDPanelColor, false)

	hudFont := fonts.HUD.Get()
	smallFont := fonts.HUDSmall.Get()

	x := int(margin) + 10
	text.Draw(screen, "TIME "+hud.Timer, hudFont, x, int(margin)+24, cfg.UI.HUDTextColor)
	text.Draw(screen, "BEST "+hud.Best, smallFont, x, int(margin)+46, cfg.UI.HUDDimColor)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	statusX := centerTextX(hud.Status, smallFont, width)
	text.Draw(screen, hud.Status, smallFont, statusX, int(height-margin), cfg.UI.HUDDimColor)

	if hud.Alpha > 0 {
		bannerFont := fonts.Banner.Get()
		c := fadeColor(cfg.UI.Beacon, hud.Alpha)
		bannerX := centerTextX(cfg.UI.BannerText, bannerFont, width)
		text.Draw(screen, cfg.UI.BannerText, bannerFont, bannerX, int(height/3), c)
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

// fadeColor scales a premultiplied color by alpha in [0, 1].
func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
