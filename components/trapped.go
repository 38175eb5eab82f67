package components

import "github.com/yohamta/donburi"

// TrappedData is present only while an enemy is held by a bubble.
type TrappedData struct {
	Captor *donburi.Entry
	Timer  float64 // ticks until release
}

var Trapped = donburi.NewComponentType[TrappedData]()
