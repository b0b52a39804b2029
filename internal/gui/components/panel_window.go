package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gui-demos/internal/panel"
)

// PanelWindow is the floating window of one background worker. Widget
// callbacks become panel events; Apply writes the worker's view back.
type PanelWindow struct {
	ID     int
	Window *container.InnerWindow

	name     *widget.Entry
	age      *widget.Slider
	button   *widget.Button
	greeting *widget.Label

	// set while Apply runs so that programmatic updates are not echoed back
	applying bool
	// sequence number of the last event emitted
	emitted uint64
}

func NewPanelWindow(v panel.View, emit func(panel.Event)) *PanelWindow {
	p := &PanelWindow{ID: v.ID}
	send := func(e panel.Event) {
		p.emitted++
		e.Panel = p.ID
		e.Seq = p.emitted
		emit(e)
	}

	p.name = widget.NewEntry()
	p.name.OnChanged = func(text string) {
		if p.applying {
			return
		}
		send(panel.Event{Kind: panel.SetName, Name: text})
	}

	p.age = widget.NewSlider(0, panel.MaxAge)
	p.age.Step = 1
	p.age.OnChanged = func(value float64) {
		if p.applying {
			return
		}
		send(panel.Event{Kind: panel.SetAge, Age: uint32(value)})
	}

	p.button = widget.NewButton("Click each year", func() {
		send(panel.Event{Kind: panel.Click})
	})
	p.greeting = widget.NewLabel("")

	content := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Your name:"), nil, p.name),
		container.NewBorder(nil, nil, nil, widget.NewLabel("age"), p.age),
		p.button,
		p.greeting,
	)

	p.Window = container.NewInnerWindow(v.Title, content)
	// worker windows live as long as their worker
	p.Window.CloseIntercept = func() {}
	p.Window.Resize(fyne.NewSize(320, 200))
	p.Window.Move(panel.DefaultPosition(v.ID))

	p.Apply(v)
	return p
}

// Apply shows v. Must run on the UI goroutine. Views that have not yet folded
// in every emitted event are ignored, so they cannot overwrite newer edits.
func (p *PanelWindow) Apply(v panel.View) {
	if v.Seq < p.emitted {
		return
	}

	p.applying = true
	defer func() { p.applying = false }()

	if p.name.Text != v.Name {
		p.name.SetText(v.Name)
	}
	if uint32(p.age.Value) != v.Age {
		p.age.SetValue(float64(v.Age))
	}
	if p.greeting.Text != v.Greeting {
		p.greeting.SetText(v.Greeting)
	}
}

func (p *PanelWindow) NameEntry() *widget.Entry { return p.name }

func (p *PanelWindow) AgeSlider() *widget.Slider { return p.age }

func (p *PanelWindow) ClickButton() *widget.Button { return p.button }

func (p *PanelWindow) Greeting() string { return p.greeting.Text }
