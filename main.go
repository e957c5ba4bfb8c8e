package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/flowerhop/assets"
	"github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/fonts"
	"github.com/automoto/flowerhop/scenes"
	"github.com/automoto/flowerhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(opts systems.WorldOptions) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewRunnerScene(opts),
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

func main() {
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "fixed random seed (0 = time based)")
	flag.BoolVar(&config.Debug.Mute, "mute", false, "start with audio muted")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "draw collision boxes and landing thresholds")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	course, err := assets.LoadDefaultCourse()
	if err != nil {
		log.Printf("Warning: Could not load course, using default layout: %v", err)
		course = assets.DefaultCourse()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("flowerhop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load the saved record
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadRecord()
	if err != nil {
		saved = nil
	}

	opts := systems.WorldOptions{
		Course: course,
		Seed:   config.Debug.Seed,
		Muted:  config.Debug.Mute,
		Saved:  saved,
	}

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
