package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/bubblebound/archetypes"
	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/physics"
	"github.com/automoto/bubblebound/tags"
)

// CreateBubble fires a bubble from x, y in the facing direction. Bubbles
// carry no gravity; UpdateBubbles moves them through the level's resolver.
func CreateBubble(ecs *ecs.ECS, bc config.BubbleConfig, x, y float64, facing int, shootDuration float64) *donburi.Entry {
	bubble := archetypes.Bubble.Spawn(ecs)

	newActorObject(ecs, bubble, x, y, bc.Width, bc.Height, tags.ResolvBubble)

	components.Bubble.SetValue(bubble, components.BubbleData{
		State:         components.BubbleShooting,
		ShootDuration: shootDuration,
		MaxLife:       bc.MaxLife,
	})
	components.Physics.SetValue(bubble, components.PhysicsData{
		Body: physics.Body{
			X: x, Y: y, W: bc.Width, H: bc.Height,
			SpeedX: bc.Speed * float64(facing),
		},
	})

	return bubble
}
