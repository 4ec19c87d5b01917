package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/solar-sprint/components"
	cfg "github.com/automoto/solar-sprint/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type controlButton struct {
	label  string
	action cfg.ActionID
}

var (
	leftCluster = []controlButton{
		{"<", cfg.ActionMoveLeft},
		{">", cfg.ActionMoveRight},
	}
	rightCluster = []controlButton{
		{"DASH", cfg.ActionDash},
		{"JUMP", cfg.ActionJump},
	}
)

// ControlsUI is the on-screen control pad. Buttons write held state into a
// TouchPad that the input system merges with keyboard and gamepad.
type ControlsUI struct {
	UI  *ebitenui.UI
	Pad *components.TouchPad

	face text.Face
}

// NewControlsUI builds the buttons for pad.
func NewControlsUI(pad *components.TouchPad) (*ControlsUI, error) {
	cui := &ControlsUI{Pad: pad}
	if err := cui.loadFonts(); err != nil {
		return nil, err
	}
	cui.buildUI()
	return cui, nil
}

func (cui *ControlsUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load controls font: %w", err)
	}
	cui.face = &text.GoTextFace{Source: fontSource, Size: 12}
	return nil
}

func (cui *ControlsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	rootContainer.AddChild(cui.buildCluster(leftCluster, widget.AnchorLayoutPositionStart))
	rootContainer.AddChild(cui.buildCluster(rightCluster, widget.AnchorLayoutPositionEnd))

	reset := cui.buildButton(controlButton{"RESET", cfg.ActionReset})
	resetRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.ControlsMargin)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	resetRow.AddChild(reset)
	rootContainer.AddChild(resetRow)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *ControlsUI) buildCluster(buttons []controlButton, horizontal widget.AnchorLayoutPosition) *widget.Container {
	cluster := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.ControlsMargin)),
			widget.RowLayoutOpts.Spacing(cfg.UI.ControlsMargin/2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: horizontal,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	for _, b := range buttons {
		cluster.AddChild(cui.buildButton(b))
	}
	return cluster
}

func (cui *ControlsUI) buildButton(b controlButton) *widget.Button {
	action := b.action // Capture for closures
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.UI.ControlsSize, cfg.UI.ControlsSize),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(b.label, &cui.face, &widget.ButtonTextColor{
			Idle:    color.RGBA{230, 241, 255, 200},
			Pressed: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
			cui.Pad.Held[action] = true
		}),
		widget.ButtonOpts.ReleasedHandler(func(args *widget.ButtonReleasedEventArgs) {
			cui.Pad.Held[action] = false
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{79, 124, 255, 60})
	hover := image.NewNineSliceColor(color.RGBA{79, 124, 255, 90})
	pressed := image.NewNineSliceColor(color.RGBA{139, 220, 255, 140})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 60})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
