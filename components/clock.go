package components

import "github.com/yohamta/donburi"

// ClockData carries the current tick's time scale to every system.
// TimeScale is 1.0 at the nominal tick rate.
type ClockData struct {
	TimeScale float64
	Tick      uint64
}

var Clock = donburi.NewComponentType[ClockData]()
