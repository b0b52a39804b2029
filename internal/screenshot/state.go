package screenshot

import (
	"image"
	"math"
	"sync"
)

// State tracks what the screenshot demo has asked for and what it last got.
type State struct {
	mu         sync.Mutex
	continuous bool
	saveToFile bool
	pending    bool
	last       image.Image
}

func (s *State) SetContinuous(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.continuous = on
}

func (s *State) Continuous() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.continuous
}

// RequestCapture asks for one capture on the next frame.
func (s *State) RequestCapture() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = true
}

// RequestSave asks for a capture whose corner is written to disk.
func (s *State) RequestSave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveToFile = true
	s.pending = true
}

// WantsCapture reports whether this frame should capture, consuming a one-shot request.
func (s *State) WantsCapture() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := s.pending || s.continuous
	s.pending = false
	return want
}

// Captured stores img as the latest capture and reports whether it must be
// saved. The save request is consumed.
func (s *State) Captured(img image.Image) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = img
	save := s.saveToFile
	s.saveToFile = false
	return save
}

func (s *State) Last() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Region converts a square of size points at the top-left corner into pixels
// of img, clipped to its bounds.
func Region(img image.Image, size int, pixelsPerPoint float32) image.Rectangle {
	if pixelsPerPoint <= 0 {
		pixelsPerPoint = 1
	}
	px := int(math.Round(float64(float32(size) * pixelsPerPoint)))
	b := img.Bounds()
	return image.Rect(b.Min.X, b.Min.Y, b.Min.X+px, b.Min.Y+px).Intersect(b)
}
