package components

import "gui-demos/internal/panel"

type PanelViewsUpdate struct {
	Views []panel.View
}

type StatusUpdate struct {
	Status string
}

type FrameUpdate struct {
	Frame uint64
	Live  int
}
