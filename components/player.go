package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing       int // -1 left, +1 right
	ShootTimer   float64
	Invulnerable float64 // ticks of immunity left after a hit
	Lives        int
	JumpHeld     bool
	SpawnX       float64
	SpawnY       float64
}

var Player = donburi.NewComponentType[PlayerData]()
