package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DropOverlay dims the content and shows centered text over it.
type DropOverlay struct {
	container *fyne.Container
	overlay   *fyne.Container
	text      *widget.Label
}

func NewDropOverlay(content fyne.CanvasObject) *DropOverlay {
	shade := canvas.NewRectangle(color.NRGBA{A: 160})
	text := widget.NewLabel("")
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.Importance = widget.HighImportance
	text.SizeName = theme.SizeNameHeadingText

	overlay := container.NewStack(shade, container.NewCenter(text))
	overlay.Hide()

	return &DropOverlay{
		container: container.NewStack(content, overlay),
		overlay:   overlay,
		text:      text,
	}
}

func (d *DropOverlay) GetContainer() *fyne.Container {
	return d.container
}

func (d *DropOverlay) Show(text string) {
	d.text.SetText(text)
	d.overlay.Show()
}

func (d *DropOverlay) Hide() {
	d.overlay.Hide()
}

func (d *DropOverlay) Visible() bool {
	return d.overlay.Visible()
}

func (d *DropOverlay) Text() string {
	return d.text.Text
}
