package term

import (
	"fmt"
	"image/color"

	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/tags"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

var (
	skyStyle    = tcell.StyleDefault.Background(rgb(cfg.UI.SkyTop))
	stemStyle   = skyStyle.Foreground(rgb(cfg.UI.StemColor))
	playerStyle = skyStyle.Foreground(rgb(cfg.UI.PlayerColor))
	hudStyle    = skyStyle.Foreground(rgb(cfg.UI.DistanceColor)).Bold(true)
	promptStyle = skyStyle.Foreground(rgb(cfg.UI.PromptColor)).Bold(true)
	chargeStyle = tcell.StyleDefault.Foreground(rgb(cfg.UI.ChargeFillColor)).Background(rgb(cfg.UI.ChargeBgColor))
	panelStyle  = tcell.StyleDefault.Foreground(rgb(cfg.UI.PromptColor)).Background(rgb(cfg.White)).Bold(true)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// grid maps viewport pixels to terminal cells.
type grid struct {
	cols, rows int
}

func (g grid) col(x float64) int { return int(x * float64(g.cols) / float64(cfg.C.Width)) }
func (g grid) row(y float64) int { return int(y * float64(g.rows) / float64(cfg.C.Height)) }

func (g grid) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.cols && y < g.rows
}

func (g grid) put(c Canvas, x, y int, r rune, style tcell.Style) {
	if g.inside(x, y) {
		c.SetContent(x, y, r, nil, style)
	}
}

func (g grid) text(c Canvas, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		g.put(c, x+i, y, r, style)
	}
}

func (g grid) centered(c Canvas, y int, s string, style tcell.Style) {
	g.text(c, (g.cols-len([]rune(s)))/2, y, s, style)
}

// Draw renders one frame of the world onto c.
func Draw(c Canvas, e *ecs.ECS) {
	cols, rows := c.Size()
	g := grid{cols: cols, rows: rows}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.SetContent(x, y, ' ', nil, skyStyle)
		}
	}

	tags.Flower.Each(e.World, func(entry *donburi.Entry) {
		drawFlower(c, g, components.Object.Get(entry), components.Flower.Get(entry))
	})
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		drawPlayer(c, g, components.Object.Get(entry))
		drawCharge(c, g, components.Charge.Get(entry))
	})

	session, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	progress := components.Progress.Get(session)
	g.centered(c, 0, progress.Display, hudStyle)
	if progress.Best > 0 {
		g.centered(c, 1, fmt.Sprintf("best %dm", progress.Best), skyStyle)
	}

	if prompt := components.Prompt.Get(session); prompt.Visible {
		g.centered(c, rows/2, prompt.Text, promptStyle)
	}
	if playAgain := components.PlayAgain.Get(session); playAgain.Visible {
		drawPlayAgain(c, g, playAgain)
	}
	if settings := components.Settings.Get(session); settings.DebugOverlay {
		drawDebug(c, g, e)
	}
}

func drawFlower(c Canvas, g grid, obj *components.ObjectData, flower *components.FlowerData) {
	petals := cfg.UI.PetalColors[flower.Variant%len(cfg.UI.PetalColors)]
	petalStyle := skyStyle.Foreground(rgb(petals)).Bold(true)

	left, right := g.col(obj.X), g.col(obj.X+obj.W)
	top, bottom := g.row(obj.Y), g.row(obj.Y+obj.H)
	mid := g.col(obj.CenterX())

	// Head is the top row of cells, the stem runs down the centre.
	for x := left; x <= right; x++ {
		g.put(c, x, top, '*', petalStyle)
	}
	for y := top + 1; y <= bottom; y++ {
		g.put(c, mid, y, '|', stemStyle)
	}
}

func drawPlayer(c Canvas, g grid, obj *components.ObjectData) {
	left, right := g.col(obj.X), g.col(obj.X+obj.W)
	top, bottom := g.row(obj.Y), g.row(obj.Y+obj.H)
	for y := top; y < bottom || y == top; y++ {
		for x := left; x < right || x == left; x++ {
			g.put(c, x, y, '@', playerStyle)
		}
	}
}

func drawCharge(c Canvas, g grid, charge *components.ChargeData) {
	x := g.cols - 2
	top := g.row(cfg.UI.ChargeBarY)
	height := g.row(cfg.UI.ChargeBarY+cfg.UI.ChargeBarHeight) - top
	if height <= 0 {
		return
	}
	filled := int(charge.Fill*float64(height) + 0.5)
	for i := 0; i < height; i++ {
		r := ' '
		if i >= height-filled {
			r = '█'
		}
		g.put(c, x, top+i, r, chargeStyle)
	}
}

func drawPlayAgain(c Canvas, g grid, playAgain *components.PlayAgainData) {
	left := int(cfg.PlayAgain.MinX * float64(g.cols))
	right := int(cfg.PlayAgain.MaxX * float64(g.cols))
	top := int(cfg.PlayAgain.MinY * float64(g.rows))
	bottom := int(cfg.PlayAgain.MaxY * float64(g.rows))

	style := panelStyle
	if playAgain.Pressed {
		style = style.Reverse(true)
	}
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			g.put(c, x, y, ' ', style)
		}
	}
	label := "PLAY AGAIN"
	g.text(c, left+(right-left+1-len(label))/2, (top+bottom)/2, label, style)
}

func drawDebug(c Canvas, g grid, e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		state := components.State.Get(entry)
		charge := components.Charge.Get(entry)
		line := fmt.Sprintf("%s charge:%d/%d y:%.0f", state.CurrentState, charge.Remaining, charge.Capacity, obj.CenterY())
		g.text(c, 0, g.rows-1, line, skyStyle)
	})
}
