package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/shared/gamemath"
	"github.com/automoto/bubblebound/tags"
)

// UpdatePhysics applies gravity to the player and every free enemy.
// Bubbles move on their own in UpdateBubbles.
func UpdatePhysics(ecs *ecs.ECS) {
	ts := timeScale(ecs)

	applyGravity := func(e *donburi.Entry) {
		if e.HasComponent(components.Trapped) {
			return
		}
		physics := components.Physics.Get(e)
		physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, physics.MaxFallSpeed, ts)
	}

	tags.Player.Each(ecs.World, applyGravity)
	tags.Enemy.Each(ecs.World, applyGravity)
}
