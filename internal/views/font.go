package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gui-demos/internal/style"
)

// FontView shows a single editor rendered with the custom font.
type FontView struct {
	mainContainer *fyne.Container
	editor        *widget.Entry
}

func NewFontView() *FontView {
	editor := widget.NewMultiLineEntry()
	editor.SetText("Edit this text field if you want")
	editor.Wrapping = fyne.TextWrapWord

	heading := widget.NewRichText(style.Segment(style.Heading, "gui using custom fonts", false))

	return &FontView{
		mainContainer: container.NewBorder(heading, nil, nil, nil, editor),
		editor:        editor,
	}
}

func (v *FontView) Content() fyne.CanvasObject {
	return v.mainContainer
}

func (v *FontView) Text() string {
	return v.editor.Text
}
