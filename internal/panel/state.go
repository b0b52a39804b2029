package panel

import (
	"fmt"

	"fyne.io/fyne/v2"
)

const (
	DefaultName = "Arthur"
	MaxAge      = 120
)

// State is owned by exactly one worker.
type State struct {
	ID    int
	Title string
	Name  string
	Age   uint32
	Seq   uint64
}

func NewState(id int) State {
	return State{
		ID:    id,
		Title: fmt.Sprintf("Background thread %d", id),
		Name:  DefaultName,
		Age:   12 + uint32(id)*10,
	}
}

// Apply folds one input event into the state. Events for other panels are ignored.
func (s *State) Apply(e Event) {
	if e.Panel != s.ID {
		return
	}
	switch e.Kind {
	case Click:
		s.Age++
	case SetName:
		s.Name = e.Name
	case SetAge:
		s.Age = clampAge(e.Age)
	}
	if e.Seq > s.Seq {
		s.Seq = e.Seq
	}
}

func (s *State) View() View {
	return View{
		ID:       s.ID,
		Title:    s.Title,
		Name:     s.Name,
		Age:      s.Age,
		Greeting: Greeting(s.Name, s.Age),
		Seq:      s.Seq,
	}
}

// Render applies the frame's events for this panel and publishes the resulting view.
func Render(s *State, f Frame) {
	for _, e := range f.Events(s.ID) {
		s.Apply(e)
	}
	f.Sink.Show(s.View())
}

func Greeting(name string, age uint32) string {
	return fmt.Sprintf("Hello '%s', age %d", name, age)
}

// DefaultPosition staggers panels down the left edge.
func DefaultPosition(id int) fyne.Position {
	return fyne.NewPos(16, 128*float32(id+1))
}

func clampAge(age uint32) uint32 {
	if age > MaxAge {
		return MaxAge
	}
	return age
}
