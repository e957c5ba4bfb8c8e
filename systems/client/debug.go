package client

import (
	"fmt"
	"image/color"

	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every body in the space, marks the landing zone above
// each flower and prints the player's state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Settings.First(ecs.World)
	if !ok || !components.Settings.Get(entry).DebugOverlay {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvFlower) {
				c = color.RGBA{255, 0, 255, 255} // Magenta

				// Player centres must sit above this line and between the posts to land
				cx := float32(obj.X + obj.W/2)
				cy := float32(obj.Y + obj.H/2)
				lineY := cy - float32(cfg.Flowers.AboveThreshold)
				half := float32(cfg.Flowers.HorizontalThreshold)
				vector.StrokeLine(screen, cx-half, lineY, cx+half, lineY, 1, cfg.Red, false)
				vector.StrokeLine(screen, cx-half, lineY, cx-half, lineY-40, 1, cfg.Red, false)
				vector.StrokeLine(screen, cx+half, lineY, cx+half, lineY-40, 1, cfg.Red, false)
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		state := components.State.Get(playerEntry)
		charge := components.Charge.Get(playerEntry)
		player := components.Player.Get(playerEntry)
		msg := fmt.Sprintf("state %s (%d)\ncharge %d/%d fill %.2f\nboosted %v moved %v",
			state.CurrentState, state.StateTimer,
			charge.Remaining, charge.Capacity, charge.Fill,
			player.Boosted, player.HasMovedOnce)
		ebitenutil.DebugPrintAt(screen, msg, 10, 10)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), 10, 60)
}
