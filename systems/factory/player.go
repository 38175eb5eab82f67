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

func CreatePlayer(ecs *ecs.ECS, pc config.PlayerConfig, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	newActorObject(ecs, player, x, y, pc.Width, pc.Height, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Facing: 1,
		Lives:  pc.Lives,
		SpawnX: x,
		SpawnY: y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Body:         physics.Body{X: x, Y: y, W: pc.Width, H: pc.Height},
		Gravity:      pc.Gravity,
		MaxFallSpeed: pc.MaxFallSpeed,
	})

	return player
}
