package config

import (
	"image/color"

	"github.com/automoto/solar-sprint/shared/sim"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	LayerBackground ecs.LayerID = iota
	LayerWorld
	LayerHUD
	LayerDebug
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	MarginX         float64 // Fraction of view width kept left of the player
	MarginY         float64 // Fraction of view height kept above the player
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	ParallaxX       float64
	ParallaxY       float64
}

// StatusConfig holds the status line shown under the timer.
type StatusConfig struct {
	Ready    string
	Running  string
	Finished string // formatted with the run time in seconds
	NoBest   string
}

// UIConfig contains colors and sizes for the HUD and level drawing.
type UIConfig struct {
	SkyTop        color.RGBA
	SkyBottom     color.RGBA
	SkyBands      int
	Band          color.RGBA
	BandCount     int
	Platform      color.RGBA
	Hazard        color.RGBA
	Beam          color.RGBA
	Beacon        color.RGBA
	Boost         color.RGBA
	Player        color.RGBA
	PlayerDashing color.RGBA
	Visor         color.RGBA

	HUDTextColor   color.RGBA
	HUDDimColor    color.RGBA
	HUDPanelColor  color.RGBA
	HUDMargin      float64
	HUDFontSize    float64
	HUDSmallSize   float64
	BannerSeconds  float32 // fade of the "new best" banner
	BannerText     string
	ControlsSize   int // on-screen button edge in pixels
	ControlsMargin int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay    bool   // Draw collision space outlines
	TuningPath string // YAML tuning overrides, hot reloaded when set
	Level      string // Embedded level name
}

// Global configuration instances
var C *Config
var Sprint sim.Tuning
var Camera CameraConfig
var Status StatusConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Solar Sprint",
	}

	Sprint = sim.DefaultTuning()

	Camera = CameraConfig{
		MarginX:         0.35,
		MarginY:         0.25,
		FollowSmoothing: 0.18,
		ParallaxX:       0.3,
		ParallaxY:       0.1,
	}

	Status = StatusConfig{
		Ready:    "Move, jump, or dash to begin the speed trial.",
		Running:  "Fly across the facility and touch the exit beacon!",
		Finished: "Run complete in %s seconds! Tap reset to try again.",
		NoBest:   "—",
	}

	UI = UIConfig{
		SkyTop:        color.RGBA{R: 4, G: 6, B: 16, A: 255},
		SkyBottom:     color.RGBA{R: 13, G: 23, B: 48, A: 255},
		SkyBands:      24,
		Band:          color.RGBA{R: 12, G: 16, B: 26, A: 26}, // premultiplied 10% of (121,160,255)
		BandCount:     12,
		Platform:      color.RGBA{R: 53, G: 77, B: 140, A: 140},
		Hazard:        color.RGBA{R: 166, G: 52, B: 65, A: 166},
		Beam:          color.RGBA{R: 88, G: 121, B: 140, A: 140},
		Beacon:        color.RGBA{R: 139, G: 220, B: 255, A: 255},
		Boost:         color.RGBA{R: 230, G: 198, B: 126, A: 230},
		Player:        color.RGBA{R: 230, G: 241, B: 255, A: 255},
		PlayerDashing: color.RGBA{R: 246, G: 240, B: 255, A: 255},
		Visor:         color.RGBA{R: 79, G: 124, B: 255, A: 255},

		HUDTextColor:   White,
		HUDDimColor:    color.RGBA{R: 170, G: 185, B: 215, A: 255},
		HUDPanelColor:  BlackOverlay,
		HUDMargin:      12,
		HUDFontSize:    18,
		HUDSmallSize:   12,
		BannerSeconds:  2.5,
		BannerText:     "NEW BEST",
		ControlsSize:   56,
		ControlsMargin: 16,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Level: "solar_facility",
	}
}
