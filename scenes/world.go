package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/systems"
	"github.com/automoto/flowerhop/systems/client"
	"github.com/automoto/flowerhop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// RunnerScene is the ebiten frontend: one endless run after another.
type RunnerScene struct {
	ecs       *ecs.ECS
	opts      systems.WorldOptions
	playAgain *ui.PlayAgainUI
	once      sync.Once
}

// NewRunnerScene creates the runner scene. The world is built on the first update.
func NewRunnerScene(opts systems.WorldOptions) *RunnerScene {
	return &RunnerScene{opts: opts}
}

func (rs *RunnerScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if data := rs.playAgainData(); data != nil {
		rs.playAgain.Sync(data)
	}
}

func (rs *RunnerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)

	if data := rs.playAgainData(); data != nil {
		rs.playAgain.Draw(screen, data)
	}
}

func (rs *RunnerScene) playAgainData() *components.PlayAgainData {
	entry, ok := components.PlayAgain.First(rs.ecs.World)
	if !ok {
		return nil
	}
	return components.PlayAgain.Get(entry)
}

func (rs *RunnerScene) configure() {
	opts := rs.opts
	if opts.Input == nil {
		opts.Input = client.UpdateInput
	}
	if opts.Audio == nil {
		opts.Audio = client.NewAudioCoordinator
	}

	rs.ecs = systems.NewWorld(opts)
	rs.playAgain = ui.NewPlayAgainUI()

	// Add renderers
	rs.ecs.AddRenderer(cfg.Default, client.DrawWorld)
	rs.ecs.AddRenderer(cfg.Default, client.DrawHUD)
	rs.ecs.AddRenderer(cfg.Default, client.DrawDebug)
}
