package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/bubblebound/physics"
)

// PhysicsData is the kinematic state of a moving entity. The embedded Body is
// the authoritative position; the resolv object follows it.
type PhysicsData struct {
	physics.Body
	Gravity      float64
	MaxFallSpeed float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
