// Package closeguard holds the state of the "Do you want to quit?" dialog.
package closeguard

import "sync"

// Guard decides whether a window may close. The first close request only
// raises the confirmation; closing goes through once the user confirms.
type Guard struct {
	mu               sync.Mutex
	allowedToClose   bool
	showConfirmation bool
}

// OnCloseRequested records a close request and reports whether it may proceed.
func (g *Guard) OnCloseRequested() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.showConfirmation = true
	return g.allowedToClose
}

func (g *Guard) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.showConfirmation = false
}

func (g *Guard) Confirm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.allowedToClose = true
	g.showConfirmation = false
}

func (g *Guard) ShowingConfirmation() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.showConfirmation
}

func (g *Guard) AllowedToClose() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.allowedToClose
}
