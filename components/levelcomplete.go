package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LevelCompleteData tracks the countdown between clearing a level and
// loading the next one.
type LevelCompleteData struct {
	IsComplete bool
	Transition *gween.Tween
	Progress   float64 // ticks elapsed since the level was cleared
	Advance    bool    // set once the countdown finishes
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
