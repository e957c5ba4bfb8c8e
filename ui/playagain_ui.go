package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/automoto/flowerhop/components"
	cfg "github.com/automoto/flowerhop/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// PlayAgainUI draws the play again prompt over the game over overlay.
// Hit testing stays in systems.UpdatePlayAgain; this only mirrors
// components.PlayAgainData. Both looks are built once, on the first show.
type PlayAgainUI struct {
	idle    *ebitenui.UI
	pressed *ebitenui.UI

	titleFace text.Face
	hintFace  text.Face

	built bool
	shown bool
}

// NewPlayAgainUI returns an unbuilt prompt.
func NewPlayAgainUI() *PlayAgainUI {
	return &PlayAgainUI{}
}

func (p *PlayAgainUI) loadFonts() {
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	p.titleFace = &text.GoTextFace{Source: boldSource, Size: 48}
	p.hintFace = &text.GoTextFace{Source: regularSource, Size: 16}
}

func (p *PlayAgainUI) build() {
	p.loadFonts()
	p.idle = p.buildUI(color.RGBA{255, 255, 255, 235}, cfg.UI.PromptColor)
	p.pressed = p.buildUI(color.RGBA{220, 220, 220, 235}, color.RGBA{180, 0, 50, 255})
	p.built = true
}

// buildUI lays out a panel covering the prompt's hit rectangle.
func (p *PlayAgainUI) buildUI(panel, label color.RGBA) *ebitenui.UI {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	w := int((cfg.PlayAgain.MaxX - cfg.PlayAgain.MinX) * float64(cfg.C.Width))
	h := int((cfg.PlayAgain.MaxY - cfg.PlayAgain.MinY) * float64(cfg.C.Height))

	panelContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w, h),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("Play Again", &p.titleFace, &widget.LabelColor{
			Idle: label,
		}),
	)
	panelContainer.AddChild(title)

	hint := widget.NewLabel(
		widget.LabelOpts.Text("tap here or press Enter", &p.hintFace, &widget.LabelColor{
			Idle: color.RGBA{90, 90, 90, 255},
		}),
	)
	panelContainer.AddChild(hint)

	rootContainer.AddChild(panelContainer)

	return &ebitenui.UI{
		Container: rootContainer,
	}
}

// Sync follows the prompt state for this frame.
func (p *PlayAgainUI) Sync(data *components.PlayAgainData) {
	p.shown = data.Visible
	if !p.shown {
		return
	}
	if !p.built {
		p.build()
	}

	if data.Pressed {
		p.pressed.Update()
		return
	}
	p.idle.Update()
}

// Draw renders the current look when the prompt is shown.
func (p *PlayAgainUI) Draw(screen *ebiten.Image, data *components.PlayAgainData) {
	if !p.shown || !p.built {
		return
	}
	if data.Pressed {
		p.pressed.Draw(screen)
		return
	}
	p.idle.Draw(screen)
}

// Built reports whether the prompt widgets exist.
func (p *PlayAgainUI) Built() bool {
	return p.built
}
