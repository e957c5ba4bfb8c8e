package client

import (
	"image/color"
	"math"

	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/automoto/flowerhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	skyImage    *ebiten.Image
	playerImage *ebiten.Image
	renderOp    = &ebiten.DrawImageOptions{}
)

// DrawWorld renders the sky, the flower pool and the player.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	drawSky(screen)

	tags.Flower.Each(ecs.World, func(e *donburi.Entry) {
		drawFlower(screen, components.Object.Get(e), components.Flower.Get(e))
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawPlayer(screen, components.Object.Get(e), components.Physics.Get(e))
	})
}

// drawSky blits a cached vertical gradient.
func drawSky(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if skyImage == nil || skyImage.Bounds().Dx() != w || skyImage.Bounds().Dy() != h {
		skyImage = ebiten.NewImage(w, h)
		for y := 0; y < h; y++ {
			t := float64(y) / float64(max(h-1, 1))
			vector.FillRect(skyImage, 0, float32(y), float32(w), 1, lerpColor(cfg.UI.SkyTop, cfg.UI.SkyBottom, t), false)
		}
	}
	screen.DrawImage(skyImage, nil)
}

// drawFlower draws a stem down from the head and a ring of petals around it.
func drawFlower(screen *ebiten.Image, obj *components.ObjectData, flower *components.FlowerData) {
	cx, top := float32(obj.CenterX()), float32(obj.Y)
	headR := float32(obj.W) / 4
	headY := top + headR*1.5

	stemW := float32(obj.W) / 10
	vector.FillRect(screen, cx-stemW/2, headY, stemW, float32(cfg.C.Height)-headY, cfg.UI.StemColor, false)

	petal := cfg.UI.PetalColors[flower.Variant%len(cfg.UI.PetalColors)]
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		px := cx + float32(math.Cos(a))*headR*1.4
		py := headY + float32(math.Sin(a))*headR*1.4
		vector.DrawFilledCircle(screen, px, py, headR*0.7, petal, true)
	}
	vector.DrawFilledCircle(screen, cx, headY, headR, cfg.Yellow, true)
}

// drawPlayer draws the player body rotated by its tilt.
func drawPlayer(screen *ebiten.Image, obj *components.ObjectData, physics *components.PhysicsData) {
	if playerImage == nil {
		playerImage = newPlayerImage(int(obj.W), int(obj.H))
	}

	renderOp.GeoM.Reset()
	renderOp.GeoM.Translate(-obj.W/2, -obj.H/2)
	renderOp.GeoM.Rotate(physics.Angle * math.Pi / 180)
	renderOp.GeoM.Translate(obj.CenterX(), obj.CenterY())
	screen.DrawImage(playerImage, renderOp)
}

func newPlayerImage(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	vector.DrawFilledCircle(img, fw/2, fh/2, min(fw, fh)/2, cfg.UI.PlayerColor, true)
	vector.DrawFilledCircle(img, fw*0.68, fh*0.38, fw*0.1, cfg.White, true)
	vector.DrawFilledCircle(img, fw*0.71, fh*0.38, fw*0.05, cfg.Black, true)
	vector.DrawFilledCircle(img, fw*0.2, fh*0.3, fw*0.18, color.RGBA{R: 255, G: 255, B: 255, A: 180}, true)
	return img
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
