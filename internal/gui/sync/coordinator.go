package sync

import (
	stdsync "sync"

	"fyne.io/fyne/v2"
)

type UpdateType int

const (
	UpdateTypePanelViews UpdateType = iota
	UpdateTypeStatus
	UpdateTypeFrame
)

type Update struct {
	Type UpdateType
	Data interface{}
}

// Coordinator moves updates produced on background goroutines onto the UI
// goroutine.
type Coordinator struct {
	updateChan chan *Update
	done       chan struct{}
	stopOnce   stdsync.Once
	processor  *UpdateProcessor
	apply      func(func())
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		updateChan: make(chan *Update, 100),
		done:       make(chan struct{}),
		processor:  NewUpdateProcessor(),
		apply:      fyne.Do,
	}
}

// ScheduleUpdate never blocks. Updates are dropped when the queue is full;
// every frame republishes complete views, so a dropped update is superseded by
// the next one.
func (c *Coordinator) ScheduleUpdate(update *Update) bool {
	select {
	case c.updateChan <- update:
		return true
	default:
		return false
	}
}

func (c *Coordinator) Run() {
	for {
		select {
		case update := <-c.updateChan:
			c.apply(func() {
				c.processor.ProcessUpdate(update)
			})
		case <-c.done:
			return
		}
	}
}

func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

func (c *Coordinator) SetPanelViews(handler PanelViewsHandler) {
	c.processor.SetPanelViews(handler)
}

func (c *Coordinator) SetStatusBar(statusBar StatusBarHandler) {
	c.processor.SetStatusBar(statusBar)
}
