package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/bubblebound/config"
)

type EnemyData struct {
	Speed        float64 // base speed with the level multiplier applied
	Direction    float64 // patrol heading, -1 or +1
	Facing       int     // -1 left, +1 right
	IsChaser     bool    // rolled once at spawn
	JumpCooldown float64 // ticks until the next jump is allowed

	// BaseState is Patrol or Chasing and is what the enemy returns to after
	// being trapped or relocated.
	BaseState config.StateID
}

var Enemy = donburi.NewComponentType[EnemyData]()
