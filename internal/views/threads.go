package views

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gui-demos/internal/gui/components"
	"gui-demos/internal/panel"
)

// ThreadsView hosts the main control window and one floating window per
// background worker. All methods run on the UI goroutine.
type ThreadsView struct {
	desk        *container.MultipleWindows
	control     *container.InnerWindow
	statusBar   *components.StatusBar
	spawnButton *widget.Button

	panels map[int]*components.PanelWindow
	emit   func(panel.Event)

	spawnHandler func()
}

func NewThreadsView(emit func(panel.Event)) *ThreadsView {
	view := &ThreadsView{
		panels: make(map[int]*components.PanelWindow),
		emit:   emit,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (v *ThreadsView) initializeComponents() {
	v.statusBar = components.NewStatusBar()
	v.spawnButton = widget.NewButton("Spawn another thread", func() {
		if v.spawnHandler != nil {
			v.spawnHandler()
		}
	})
}

func (v *ThreadsView) buildLayout() {
	v.control = container.NewInnerWindow("Main thread", container.NewVBox(
		v.spawnButton,
		v.statusBar.GetContainer(),
	))
	v.control.CloseIntercept = func() {}
	v.control.Resize(fyne.NewSize(320, 100))
	v.control.Move(fyne.NewPos(16, 16))

	v.desk = container.NewMultipleWindows(v.control)
}

func (v *ThreadsView) SetSpawnHandler(handler func()) {
	v.spawnHandler = handler
}

func (v *ThreadsView) Content() fyne.CanvasObject {
	return v.desk
}

// ApplyViews shows the views published by the last frame, opening a window
// for any worker seen for the first time.
func (v *ThreadsView) ApplyViews(views []panel.View) {
	for _, pv := range views {
		if w, ok := v.panels[pv.ID]; ok {
			w.Apply(pv)
			continue
		}
		w := components.NewPanelWindow(pv, v.emit)
		v.panels[pv.ID] = w
		v.desk.Add(w.Window)
	}
}

func (v *ThreadsView) SetStatus(status string) {
	v.statusBar.SetStatus(status)
}

func (v *ThreadsView) SetFrame(frame uint64, live int) {
	v.statusBar.SetFrame(frame, live)
}

func (v *ThreadsView) Panel(id int) (*components.PanelWindow, bool) {
	w, ok := v.panels[id]
	return w, ok
}

func (v *ThreadsView) PanelIDs() []int {
	ids := make([]int, 0, len(v.panels))
	for id := range v.panels {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (v *ThreadsView) SpawnButton() *widget.Button {
	return v.spawnButton
}
