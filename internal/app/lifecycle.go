package app

import (
	"context"

	"fyne.io/fyne/v2"

	"gui-demos/internal/logger"
	"gui-demos/internal/shutdown"
)

// Lifecycle owns teardown of everything a demo starts. Components are shut
// down in reverse registration order.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{
		manager: shutdown.NewManager(log),
		logger:  log,
	}
}

func (l *Lifecycle) Register(name string, component shutdown.Shutdownable) {
	l.manager.Register(name, component)
}

// Context is cancelled once shutdown starts.
func (l *Lifecycle) Context() context.Context {
	return l.manager.Context()
}

// WatchSignals quits the toolkit loop on SIGINT or SIGTERM.
func (l *Lifecycle) WatchSignals(app fyne.App) {
	l.manager.Listen(func() {
		l.logger.Info("Lifecycle", "signal received, quitting", nil)
		fyne.Do(app.Quit)
	})
}

// Shutdown is safe to call more than once.
func (l *Lifecycle) Shutdown() error {
	return l.manager.Shutdown()
}
