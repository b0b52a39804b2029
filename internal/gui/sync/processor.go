package sync

import (
	"gui-demos/internal/gui/components"
	"gui-demos/internal/panel"
)

type PanelViewsHandler interface {
	ApplyViews([]panel.View)
}

type StatusBarHandler interface {
	SetStatus(string)
	SetFrame(uint64, int)
}

type UpdateProcessor struct {
	panelViews PanelViewsHandler
	statusBar  StatusBarHandler
}

func NewUpdateProcessor() *UpdateProcessor {
	return &UpdateProcessor{}
}

func (p *UpdateProcessor) SetPanelViews(handler PanelViewsHandler) {
	p.panelViews = handler
}

func (p *UpdateProcessor) SetStatusBar(statusBar StatusBarHandler) {
	p.statusBar = statusBar
}

func (p *UpdateProcessor) ProcessUpdate(update *Update) {
	switch update.Type {
	case UpdateTypePanelViews:
		if p.panelViews != nil {
			if data, ok := update.Data.(*components.PanelViewsUpdate); ok {
				p.panelViews.ApplyViews(data.Views)
			}
		}

	case UpdateTypeStatus:
		if p.statusBar != nil {
			if data, ok := update.Data.(*components.StatusUpdate); ok {
				p.statusBar.SetStatus(data.Status)
			}
		}

	case UpdateTypeFrame:
		if p.statusBar != nil {
			if data, ok := update.Data.(*components.FrameUpdate); ok {
				p.statusBar.SetFrame(data.Frame, data.Live)
			}
		}
	}
}
