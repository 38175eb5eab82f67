package components

import "github.com/yohamta/donburi"

// StuckData tracks how far an enemy has moved over a rolling window.
type StuckData struct {
	AnchorX, AnchorY float64 // position at the start of the window
	WindowTimer      float64
	StuckTimer       float64 // accumulated ticks of windows with too little movement
	Relocations      int
}

// Reset restarts tracking from the given position.
func (s *StuckData) Reset(x, y float64) {
	s.AnchorX, s.AnchorY = x, y
	s.WindowTimer = 0
	s.StuckTimer = 0
}

var Stuck = donburi.NewComponentType[StuckData]()
