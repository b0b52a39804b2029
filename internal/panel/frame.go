package panel

import (
	"sort"
	"sync"
	"time"
)

type EventKind int

const (
	Click EventKind = iota
	SetName
	SetAge
)

func (k EventKind) String() string {
	switch k {
	case Click:
		return "click"
	case SetName:
		return "set_name"
	case SetAge:
		return "set_age"
	default:
		return "unknown"
	}
}

// Event is a user interaction addressed to one panel.
// Seq is assigned by the emitting window, counting from 1 per panel. Zero
// means unsequenced.
type Event struct {
	Panel int
	Kind  EventKind
	Name  string
	Age   uint32
	Seq   uint64
}

// View is what a worker publishes for its panel each frame.
// Seq is the highest event sequence number folded into it.
type View struct {
	ID       int
	Title    string
	Name     string
	Age      uint32
	Greeting string
	Seq      uint64
}

// Frame is the per-frame context shared by every worker. Its input snapshot is
// read-only; Sink is the only part workers write to. Workers must not keep a
// Frame past their render call.
type Frame struct {
	Number uint64
	Time   time.Time
	Sink   *Sink

	events map[int][]Event
}

func NewFrame(number uint64, now time.Time, events map[int][]Event) Frame {
	return Frame{
		Number: number,
		Time:   now,
		Sink:   NewSink(),
		events: events,
	}
}

// Events returns the events for panel id in arrival order. The slice must not be modified.
func (f Frame) Events(id int) []Event {
	return f.events[id]
}

// Inputs queues events from UI callbacks until the next frame drains them.
type Inputs struct {
	mu      sync.Mutex
	pending []Event
	notify  chan struct{}
}

func NewInputs() *Inputs {
	return &Inputs{notify: make(chan struct{}, 1)}
}

func (in *Inputs) Push(e Event) {
	in.mu.Lock()
	in.pending = append(in.pending, e)
	in.mu.Unlock()

	select {
	case in.notify <- struct{}{}:
	default:
	}
}

// Notify fires at least once after any Push since the last receive.
func (in *Inputs) Notify() <-chan struct{} {
	return in.notify
}

// Drain empties the queue and returns its events grouped by panel.
func (in *Inputs) Drain() map[int][]Event {
	in.mu.Lock()
	pending := in.pending
	in.pending = nil
	in.mu.Unlock()

	grouped := make(map[int][]Event)
	for _, e := range pending {
		grouped[e.Panel] = append(grouped[e.Panel], e)
	}
	return grouped
}

// Sink collects the views published during one frame.
type Sink struct {
	mu    sync.Mutex
	views map[int]View
}

func NewSink() *Sink {
	return &Sink{views: make(map[int]View)}
}

func (s *Sink) Show(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[v.ID] = v
}

// Views returns the published views ordered by panel id.
func (s *Sink) Views() []View {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]View, 0, len(s.views))
	for _, v := range s.views {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
