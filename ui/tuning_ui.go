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
	"golang.org/x/image/font/gofont/goregular"

	"github.com/mottasm/rollick/physics"
)

// tuningRow binds one physics parameter to a -/value/+ row.
type tuningRow struct {
	name  string
	get   func(*physics.Actor) float32
	set   func(*physics.Actor, float32)
	step  float32
	label *widget.Label
}

// TuningUI is an ebitenui overlay for adjusting the physics model at
// runtime.
type TuningUI struct {
	UI    *ebitenui.UI
	Actor *physics.Actor

	// OnChange fires after any parameter edit or reset.
	OnChange func()

	rows []*tuningRow

	titleFace  text.Face
	normalFace text.Face
}

// NewTuningUI builds the tuning panel for an actor.
func NewTuningUI(pa *physics.Actor, onChange func()) *TuningUI {
	tui := &TuningUI{
		Actor:    pa,
		OnChange: onChange,
	}
	tui.rows = []*tuningRow{
		{name: "acc", get: (*physics.Actor).Acc, set: (*physics.Actor).SetAcc, step: 15},
		{name: "dec", get: (*physics.Actor).Dec, set: (*physics.Actor).SetDec, step: 60},
		{name: "frc", get: (*physics.Actor).Frc, set: (*physics.Actor).SetFrc, step: 15},
		{name: "topspeed", get: (*physics.Actor).Topspeed, set: (*physics.Actor).SetTopspeed, step: 30},
		{name: "jmp", get: (*physics.Actor).Jmp, set: (*physics.Actor).SetJmp, step: 15},
		{name: "grv", get: (*physics.Actor).Grv, set: (*physics.Actor).SetGrv, step: 30},
		{name: "slp", get: (*physics.Actor).Slp, set: (*physics.Actor).SetSlp, step: 15},
		{name: "airdrag", get: (*physics.Actor).Airdrag, set: (*physics.Actor).SetAirdrag, step: 1.0 / 32.0},
	}

	tui.loadFonts()
	tui.buildUI()
	return tui
}

func (tui *TuningUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{Source: fontSource, Size: 14}
	tui.normalFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (tui *TuningUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(3),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("PHYSICS TUNING", &tui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(title)

	for _, row := range tui.rows {
		panel.AddChild(tui.buildRow(row))
	}

	resetButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 18)),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text("reset defaults", &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			tui.Actor.ResetModelParameters()
			tui.refresh()
		}),
	)
	panel.AddChild(resetButton)

	rootContainer.AddChild(panel)
	tui.UI = &ebitenui.UI{Container: rootContainer}
}

func (tui *TuningUI) buildRow(row *tuningRow) *widget.Container {
	padding := widget.Insets{Top: 1, Bottom: 1, Left: 2, Right: 2}
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	row.label = widget.NewLabel(
		widget.LabelOpts.Text(tui.rowText(row), &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{220, 220, 220, 255},
		}),
	)

	container.AddChild(tui.stepButton("-", func() {
		row.set(tui.Actor, row.get(tui.Actor)-row.step)
		tui.refresh()
	}))
	container.AddChild(tui.stepButton("+", func() {
		row.set(tui.Actor, row.get(tui.Actor)+row.step)
		tui.refresh()
	}))
	container.AddChild(row.label)

	return container
}

func (tui *TuningUI) stepButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(18, 16)),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (tui *TuningUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (tui *TuningUI) rowText(row *tuningRow) string {
	return fmt.Sprintf("%-9s %8.2f", row.name, row.get(tui.Actor))
}

func (tui *TuningUI) refresh() {
	for _, row := range tui.rows {
		row.label.Label = tui.rowText(row)
	}
	if tui.OnChange != nil {
		tui.OnChange()
	}
}

// Update advances the UI event loop.
func (tui *TuningUI) Update() {
	tui.UI.Update()
}

// Draw renders the panel.
func (tui *TuningUI) Draw(screen *ebiten.Image) {
	tui.UI.Draw(screen)
}
