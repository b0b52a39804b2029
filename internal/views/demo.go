package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"gui-demos/internal/closeguard"
	"gui-demos/internal/dropzone"
	"gui-demos/internal/gui/components"
	"gui-demos/internal/logger"
	"gui-demos/internal/panel"
	"gui-demos/internal/style"
)

const (
	DefaultName = "Zzrk"
	DefaultAge  = 18
)

const loremIpsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor " +
	"incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation " +
	"ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in reprehenderit in " +
	"voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non " +
	"proident, sunt in culpa qui officia deserunt mollit anim id est laborum."

// DemoView is the main demo window: styled text, a small form, a file
// picker, dropped files and a confirmation before quitting.
type DemoView struct {
	window    fyne.Window
	inspector *dropzone.Inspector
	guard     *closeguard.Guard
	logger    logger.Logger
	do        func(func())

	name string
	age  uint32

	overlay     *components.DropOverlay
	nameEntry   *widget.Entry
	ageSlider   *widget.Slider
	clickButton *widget.Button
	greeting    *widget.Label
	editor      *widget.Entry
	openButton  *widget.Button
	pickedLabel *widget.Label
	pickedBox   *fyne.Container
	droppedList *fyne.Container
	droppedBox  *fyne.Container

	confirm      *dialog.CustomDialog
	cancelButton *widget.Button
	yesButton    *widget.Button
}

func NewDemoView(window fyne.Window, inspector *dropzone.Inspector, log logger.Logger) *DemoView {
	view := &DemoView{
		window:    window,
		inspector: inspector,
		guard:     &closeguard.Guard{},
		logger:    log,
		do:        fyne.Do,
		name:      DefaultName,
		age:       DefaultAge,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (v *DemoView) initializeComponents() {
	v.nameEntry = widget.NewEntry()
	v.nameEntry.SetText(v.name)

	v.ageSlider = widget.NewSlider(0, panel.MaxAge)
	v.ageSlider.Step = 1
	v.ageSlider.SetValue(float64(v.age))

	v.clickButton = widget.NewButton("Click each year", nil)
	v.greeting = widget.NewLabel(panel.Greeting(v.name, v.age))

	v.editor = widget.NewMultiLineEntry()
	v.editor.SetText("Edit this text field if you want")
	v.editor.SetMinRowsVisible(6)

	v.openButton = widget.NewButton("Open file…", nil)

	v.pickedLabel = widget.NewLabel("")
	v.pickedLabel.TextStyle = fyne.TextStyle{Monospace: true}
	v.pickedBox = container.NewHBox(widget.NewLabel("Picked file:"), v.pickedLabel)
	v.pickedBox.Hide()

	v.droppedList = container.NewVBox()
	v.droppedBox = container.NewVBox(widget.NewLabel("Dropped files:"), v.droppedList)
	v.droppedBox.Hide()
}

func (v *DemoView) buildLayout() {
	heading := widget.NewRichText(style.Segment(style.Heading, "gui demo", false))

	lorem := widget.NewRichText(style.Segment(style.Monospace, loremIpsum, false))
	lorem.Wrapping = fyne.TextWrapWord

	subHeading := widget.NewRichText(style.Segment(style.Heading2, "Sub Heading", true))

	body := container.NewVBox(
		heading,
		container.NewBorder(nil, nil, widget.NewLabel("Your name:"), nil, v.nameEntry),
		container.NewBorder(nil, nil, nil, widget.NewLabel("age"), v.ageSlider),
		v.clickButton,
		v.greeting,
		widget.NewSeparator(),
		lorem,
		subHeading,
		v.editor,
		widget.NewSeparator(),
		widget.NewLabel("Drag-and-drop files onto the window!"),
		v.openButton,
		v.pickedBox,
		v.droppedBox,
	)

	v.overlay = components.NewDropOverlay(container.NewVScroll(container.NewPadded(body)))
}

func (v *DemoView) setupEventHandlers() {
	v.nameEntry.OnChanged = func(text string) {
		v.name = text
		v.refreshGreeting()
	}
	v.ageSlider.OnChanged = func(value float64) {
		v.age = uint32(value)
		v.refreshGreeting()
	}
	v.clickButton.OnTapped = v.clickYear
	v.openButton.OnTapped = v.openFile
}

// Content is the root object for the window.
func (v *DemoView) Content() fyne.CanvasObject {
	return v.overlay.GetContainer()
}

// Attach hooks the view into its window: close requests go through the
// confirmation dialog and dropped files are listed.
func (v *DemoView) Attach() {
	v.window.SetCloseIntercept(v.requestClose)
	v.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		v.handleDrop(uris)
	})
}

func (v *DemoView) Greeting() string {
	return v.greeting.Text
}

func (v *DemoView) clickYear() {
	if v.age >= panel.MaxAge {
		return
	}
	v.ageSlider.SetValue(float64(v.age + 1))
}

func (v *DemoView) refreshGreeting() {
	v.greeting.SetText(panel.Greeting(v.name, v.age))
}

func (v *DemoView) openFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			v.logger.Error("DemoView", err, map[string]interface{}{"action": "open_file"})
			return
		}
		if reader == nil {
			v.logger.Debug("DemoView", "file dialog cancelled", nil)
			return
		}
		path := reader.URI().Path()
		if cerr := reader.Close(); cerr != nil {
			v.logger.Debug("DemoView", "closing picked file failed", map[string]interface{}{
				"path":  path,
				"error": cerr.Error(),
			})
		}
		v.showPicked(path)
	}, v.window)
}

func (v *DemoView) showPicked(path string) {
	v.pickedLabel.SetText(path)
	v.pickedBox.Show()
}

func (v *DemoView) handleDrop(uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}

	hovered := make([]dropzone.File, 0, len(uris))
	for _, uri := range uris {
		hovered = append(hovered, dropzone.File{Path: uri.Path(), Name: uri.Name()})
	}
	v.overlay.Show(dropzone.HoverText(hovered))

	go func() {
		files := v.inspector.InspectAll(uris)
		v.do(func() {
			v.overlay.Hide()
			v.showDropped(files)
		})
	}()
}

func (v *DemoView) showDropped(files []dropzone.File) {
	v.droppedList.RemoveAll()
	for _, f := range files {
		v.droppedList.Add(widget.NewLabel(dropzone.Describe(f)))
	}
	v.droppedBox.Show()
	v.logger.Info("DemoView", "files dropped", map[string]interface{}{"count": len(files)})
}

func (v *DemoView) requestClose() {
	if v.guard.OnCloseRequested() {
		v.window.Close()
		return
	}
	v.showConfirmation()
}

func (v *DemoView) showConfirmation() {
	if v.confirm == nil {
		v.cancelButton = widget.NewButton("Cancel", v.cancelClose)
		v.yesButton = widget.NewButton("Yes!", v.confirmClose)
		v.yesButton.Importance = widget.HighImportance
		v.confirm = dialog.NewCustomWithoutButtons("Do you want to quit?",
			container.NewHBox(v.cancelButton, v.yesButton), v.window)
	}
	v.confirm.Show()
}

func (v *DemoView) cancelClose() {
	v.guard.Cancel()
	v.confirm.Hide()
}

func (v *DemoView) confirmClose() {
	v.guard.Confirm()
	v.confirm.Hide()
	v.logger.Info("DemoView", "quit confirmed", nil)
	v.window.Close()
}
