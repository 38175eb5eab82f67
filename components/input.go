package components

import "github.com/yohamta/donburi"

// PlayerInputData is written by whatever drives the player (keyboard, a
// script, a test) before each tick. The simulation never reads devices.
type PlayerInputData struct {
	Left, Right bool
	Jump        bool
	Shoot       bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
