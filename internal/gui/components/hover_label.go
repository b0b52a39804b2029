package components

import (
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// HoverLabel is a label that reports pointer enter and leave.
type HoverLabel struct {
	widget.Label

	OnHover func(hovered bool)
	hovered bool
}

var _ desktop.Hoverable = (*HoverLabel)(nil)

func NewHoverLabel(text string, onHover func(bool)) *HoverLabel {
	l := &HoverLabel{OnHover: onHover}
	l.Text = text
	l.ExtendBaseWidget(l)
	return l
}

func (l *HoverLabel) MouseIn(*desktop.MouseEvent) { l.setHovered(true) }

func (l *HoverLabel) MouseMoved(*desktop.MouseEvent) {}

func (l *HoverLabel) MouseOut() { l.setHovered(false) }

func (l *HoverLabel) Hovered() bool { return l.hovered }

func (l *HoverLabel) setHovered(h bool) {
	if l.hovered == h {
		return
	}
	l.hovered = h
	if l.OnHover != nil {
		l.OnHover(h)
	}
}
