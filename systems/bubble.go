package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/physics"
	"github.com/automoto/bubblebound/shared/gamemath"
	"github.com/automoto/bubblebound/tags"
)

// UpdateBubbles moves bubbles through their shoot and float phases and
// removes the ones that outlived MaxLife. A bubble holding an enemy never
// expires on its own. Bubbles take no gravity; they are resolved against
// the tiles like any other body and stop at walls and under platforms.
func UpdateBubbles(ecs *ecs.ECS) {
	rt := getRuntime(ecs)
	if rt == nil {
		return
	}
	bc := rt.Config.Bubble
	ts := timeScale(ecs)

	var resolver *physics.Resolver
	if level := getLevel(ecs); level != nil {
		resolver = level.Resolver
	}

	var expired []*donburi.Entry
	tags.Bubble.Each(ecs.World, func(e *donburi.Entry) {
		bubble := components.Bubble.Get(e)
		body := &components.Physics.Get(e).Body

		bubble.LifeTime += ts

		if bubble.LifeTime < bubble.ShootDuration {
			if bubble.ShootDuration <= bc.LongRangeDuration {
				body.SpeedX = gamemath.Decay(body.SpeedX, bc.Friction, ts)
			}
			moveBubble(resolver, body, body.SpeedX*ts, 0)
			return
		}

		if bubble.State == components.BubbleShooting {
			bubble.State = components.BubbleFloating
		}
		body.SpeedX = 0
		body.SpeedY = bc.FloatSpeed
		wiggle := gamemath.Wiggle(bubble.LifeTime, bc.WiggleFrequency, bc.WiggleAmplitude, ts)
		moveBubble(resolver, body, wiggle, body.SpeedY*ts)
		if body.Y < bc.CeilingY {
			body.Y = bc.CeilingY
		}

		if bubble.State != components.BubbleHolding && bubble.LifeTime > bubble.MaxLife {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		removeEntity(ecs, e)
	}
}

func moveBubble(r *physics.Resolver, body *physics.Body, dx, dy float64) {
	if r == nil {
		body.X += dx
		body.Y += dy
		return
	}
	r.MoveX(body, dx)
	if dy != 0 {
		r.MoveY(body, dy)
	}
}
