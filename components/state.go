package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/bubblebound/config"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // ticks spent in CurrentState, scaled by timeScale
}

// Enter switches state and restarts the timer. Re-entering the current state
// is a no-op.
func (s *StateData) Enter(next config.StateID) {
	if s.CurrentState == next {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
