package client

import (
	"fmt"

	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/fonts"
	"github.com/automoto/flowerhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var promptDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the distance, the charge bar, the start prompt and the
// game over dimming.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())

	if entry, ok := components.Progress.First(ecs.World); ok {
		drawDistance(screen, components.Progress.Get(entry), width)
	}

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		drawChargeBar(screen, components.Charge.Get(playerEntry), width)
	}

	if entry, ok := components.Prompt.First(ecs.World); ok {
		drawPrompt(screen, components.Prompt.Get(entry), width, float64(screen.Bounds().Dy()))
	}

	if entry, ok := components.Session.First(ecs.World); ok && components.Session.Get(entry).GameOver {
		vector.FillRect(screen, 0, 0, float32(width), float32(screen.Bounds().Dy()), cfg.BlackOverlay, false)
	}
}

func drawDistance(screen *ebiten.Image, progress *components.ProgressData, width float64) {
	display := progress.Display
	if display == "" {
		display = systems.FormatDistance(progress.Distance)
	}

	face := fonts.Distance.Get()
	bounds := text.BoundString(face, display)
	x := int(width/2) - bounds.Dx()/2
	text.Draw(screen, display, face, x+2, 52, cfg.Black)
	text.Draw(screen, display, face, x, 50, cfg.UI.DistanceColor)

	if progress.Best > 0 {
		best := fmt.Sprintf("best %s", systems.FormatDistance(progress.Best))
		small := fonts.Small.Get()
		sb := text.BoundString(small, best)
		text.Draw(screen, best, small, int(width/2)-sb.Dx()/2, 74, cfg.Black)
	}
}

// drawChargeBar fills from the bottom up by the meter's visual ratio.
func drawChargeBar(screen *ebiten.Image, charge *components.ChargeData, width float64) {
	x := float32(width - cfg.UI.ChargeBarRightMargin - cfg.UI.ChargeBarWidth/2)
	y := float32(cfg.UI.ChargeBarY - cfg.UI.ChargeBarHeight/2)
	w := float32(cfg.UI.ChargeBarWidth)
	h := float32(cfg.UI.ChargeBarHeight)

	vector.FillRect(screen, x, y, w, h, cfg.UI.ChargeBgColor, false)
	fill := h * float32(min(max(charge.Fill, 0), 1))
	vector.FillRect(screen, x, y+h-fill, w, fill, cfg.UI.ChargeFillColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, cfg.Black, false)
}

// drawPrompt draws the pulsing prompt scaled about its centre.
func drawPrompt(screen *ebiten.Image, prompt *components.PromptData, width, height float64) {
	if !prompt.Visible || prompt.Text == "" {
		return
	}

	face := fonts.Prompt.Get()
	bounds := text.BoundString(face, prompt.Text)
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	promptDrawOp.GeoM.Reset()
	promptDrawOp.GeoM.Translate(-w/2, h/2)
	promptDrawOp.GeoM.Scale(prompt.Scale, prompt.Scale)
	promptDrawOp.GeoM.Translate(width/2, height/2-100)
	promptDrawOp.ColorScale.Reset()
	promptDrawOp.ColorScale.ScaleWithColor(cfg.UI.PromptColor)
	text.DrawWithOptions(screen, prompt.Text, face, promptDrawOp)
}
