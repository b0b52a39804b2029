package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	frameLabel   *widget.Label
	workersLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	frameLabel := widget.NewLabel("Frame: --")
	workersLabel := widget.NewLabel("Workers: 0")

	counters := container.NewHBox(
		frameLabel,
		widget.NewSeparator(),
		workersLabel,
	)

	return &StatusBar{
		container:    container.NewBorder(nil, nil, statusLabel, counters),
		statusLabel:  statusLabel,
		frameLabel:   frameLabel,
		workersLabel: workersLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetFrame(frame uint64, live int) {
	sb.frameLabel.SetText(fmt.Sprintf("Frame: %d", frame))
	sb.workersLabel.SetText(fmt.Sprintf("Workers: %d", live))
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}
