package main

import (
	"context"
	"flag"
	"image"
	"log"

	"github.com/automoto/solar-sprint/config"
	"github.com/automoto/solar-sprint/fonts"
	"github.com/automoto/solar-sprint/scenes"
	"github.com/automoto/solar-sprint/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func loadFonts() error {
	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, config.UI.HUDFontSize); err != nil {
		return err
	}
	if err := fonts.LoadFontWithSize(fonts.HUDSmall, goregular.TTF, config.UI.HUDSmallSize); err != nil {
		return err
	}
	return fonts.LoadFontWithSize(fonts.Banner, goregular.TTF, 32)
}

func main() {
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "draw collision outlines and log every sprint event")
	flag.StringVar(&config.Debug.TuningPath, "tuning", config.Debug.TuningPath, "YAML tuning overrides, hot reloaded while running")
	flag.StringVar(&config.Debug.Level, "level", config.Debug.Level, "embedded level name")
	flag.Parse()

	if err := loadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Best times are written in the background and flushed on exit
	ctx, cancel := context.WithCancel(context.Background())
	flushed, err := systems.InitPersistence(ctx)
	if err != nil {
		log.Printf("Warning: Best times will not be saved: %v", err)
	}

	scene := scenes.NewSprintScene()
	runErr := ebiten.RunGame(NewGame(scene))

	if err := scene.Close(); err != nil {
		log.Printf("Warning: Could not stop tuning watcher: %v", err)
	}
	cancel()
	<-flushed

	if runErr != nil {
		log.Fatal(runErr)
	}
}
