package factory

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/bubblebound/archetypes"
	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/physics"
	"github.com/automoto/bubblebound/tags"
)

// CreateEnemy spawns an enemy at x, y. Whether it chases is rolled here from
// the tier's chase chance and never changes afterwards.
func CreateEnemy(ecs *ecs.ECS, c *config.Config, tier config.CurveTier, rng *rand.Rand, x, y float64) *donburi.Entry {
	ec := c.Enemy
	enemy := archetypes.Enemy.Spawn(ecs)

	newActorObject(ecs, enemy, x, y, ec.Width, ec.Height, tags.ResolvEnemy)

	mult := tier.SpeedMultiplier
	if mult <= 0 {
		mult = 1
	}
	speed := ec.Speed * mult

	direction := 1.0
	if rng.Float64() < 0.5 {
		direction = -1
	}
	chaser := rng.Float64() < tier.ChaseChance

	base := config.StatePatrol
	if chaser {
		base = config.StateChasing
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Speed:     speed,
		Direction: direction,
		Facing:    int(direction),
		IsChaser:  chaser,
		BaseState: base,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  base,
		PreviousState: config.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Body:         physics.Body{X: x, Y: y, W: ec.Width, H: ec.Height, SpeedX: speed * direction},
		Gravity:      ec.Gravity,
		MaxFallSpeed: ec.MaxFallSpeed,
	})
	components.Path.SetValue(enemy, components.PathData{})
	components.Stuck.SetValue(enemy, components.StuckData{AnchorX: x, AnchorY: y})

	return enemy
}
