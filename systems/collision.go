package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/physics"
	"github.com/automoto/bubblebound/tags"
)

// UpdateCollisions moves the player and every free enemy by this tick's
// velocity and resolves them against the tiles, x before y.
func UpdateCollisions(ecs *ecs.ECS) {
	level := getLevel(ecs)
	if level == nil || level.Resolver == nil {
		return
	}
	ts := timeScale(ecs)

	var wrapped []*donburi.Entry
	move := func(e *donburi.Entry) {
		if e.HasComponent(components.Trapped) {
			return
		}
		body := &components.Physics.Get(e).Body
		resolveBody(level.Resolver, body, ts)
		if body.Wrapped {
			wrapped = append(wrapped, e)
		}
	}

	tags.Player.Each(ecs.World, move)
	tags.Enemy.Each(ecs.World, move)

	for _, e := range wrapped {
		body := &components.Physics.Get(e).Body
		components.WrapEvents.Publish(ecs.World, components.WrapEvent{Entity: e, X: body.X})
		if e.HasComponent(tags.Player) {
			logger(ecs).Warn("player fell out of the world and wrapped to the top",
				zap.Float64("x", body.X))
		}
	}
}

func resolveBody(r *physics.Resolver, body *physics.Body, ts float64) {
	r.MoveX(body, body.SpeedX*ts)
	r.MoveY(body, body.SpeedY*ts)
}
