package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/shared/gamemath"
	"github.com/automoto/bubblebound/systems/factory"
	"github.com/automoto/bubblebound/tags"
)

type bubbleShot struct {
	x, y   float64
	facing int
}

// UpdatePlayer turns the player's input into velocity, jumps and shots.
func UpdatePlayer(e *ecs.ECS) {
	rt := getRuntime(e)
	if rt == nil {
		return
	}
	pc := rt.Config.Player
	ts := timeScale(e)

	var shots []bubbleShot
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		input := components.PlayerInput.Get(entry)
		physics := components.Physics.Get(entry)

		switch {
		case input.Left && !input.Right:
			physics.SpeedX = -pc.Speed
			player.Facing = -1
		case input.Right && !input.Left:
			physics.SpeedX = pc.Speed
			player.Facing = 1
		default:
			physics.SpeedX = 0
		}

		if input.Jump && physics.Grounded {
			physics.SpeedY = -pc.JumpForce
			physics.Grounded = false
		}

		player.ShootTimer = gamemath.Countdown(player.ShootTimer, ts)
		if input.Shoot && player.ShootTimer <= 0 {
			shots = append(shots, bubbleShot{x: physics.X, y: physics.Y, facing: player.Facing})
			player.ShootTimer = pc.ShootInterval
		}

		player.Invulnerable = gamemath.Countdown(player.Invulnerable, ts)
	})

	for _, s := range shots {
		factory.CreateBubble(e, rt.Config.Bubble, s.x, s.y, s.facing, rt.Config.Bubble.ShootDuration)
	}
}

// respawnPlayer puts the player back at its spawn point after a hit.
func respawnPlayer(player *components.PlayerData, physics *components.PhysicsData, invulnerable float64) {
	physics.X, physics.Y = player.SpawnX, player.SpawnY
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.Grounded = false
	player.Invulnerable = invulnerable
}
