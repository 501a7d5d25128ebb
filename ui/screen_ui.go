package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/silentvalley/platformer/config"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// ScreenUI is a full-screen prompt: a background picture with a title and a
// few centered lines under it.
type ScreenUI struct {
	UI         *ebitenui.UI
	Background *ebiten.Image

	titleLabel *widget.Label
	lineLabels []*widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace text.Face
	lineFace  text.Face

	drawOp ebiten.DrawImageOptions
}

// NewScreenUI builds the prompt. background may be nil, in which case the
// screen is filled with a flat colour.
func NewScreenUI(title string, lines []string, background *ebiten.Image) (*ScreenUI, error) {
	sui := &ScreenUI{Background: background}

	if err := sui.loadFonts(); err != nil {
		return nil, err
	}
	sui.buildUI(title, lines)

	return sui, nil
}

func (sui *ScreenUI) loadFonts() error {
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("title font: %w", err)
	}
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("body font: %w", err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: boldSource,
		Size:   50,
	}
	sui.lineFace = &text.GoTextFace{
		Source: regularSource,
		Size:   20,
	}
	return nil
}

func (sui *ScreenUI) buildUI(title string, lines []string) {
	rootOpts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	}
	if sui.Background == nil {
		rootOpts = append(rootOpts,
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})))
	}
	rootContainer := widget.NewContainer(rootOpts...)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	sui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text(title, &sui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	contentContainer.AddChild(sui.titleLabel)

	for _, line := range lines {
		label := widget.NewLabel(
			widget.LabelOpts.Text(line, &sui.lineFace, &widget.LabelColor{
				Idle: cfg.White,
			}),
			widget.LabelOpts.TextOpts(
				widget.TextOpts.WidgetOpts(
					widget.WidgetOpts.LayoutData(widget.RowLayoutData{
						Position: widget.RowLayoutPositionCenter,
					}),
				),
			),
		)
		sui.lineLabels = append(sui.lineLabels, label)
		contentContainer.AddChild(label)
	}

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update processes widget input. Call once per frame.
func (sui *ScreenUI) Update() {
	sui.UI.Update()
}

// Draw stretches the background over the screen and draws the widgets on
// top of it.
func (sui *ScreenUI) Draw(screen *ebiten.Image) {
	if sui.Background != nil {
		sb, bb := screen.Bounds(), sui.Background.Bounds()
		sui.drawOp.GeoM.Reset()
		sui.drawOp.GeoM.Scale(float64(sb.Dx())/float64(bb.Dx()), float64(sb.Dy())/float64(bb.Dy()))
		screen.DrawImage(sui.Background, &sui.drawOp)
	}
	sui.UI.Draw(screen)
}
