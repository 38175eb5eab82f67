package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/components"
	cfg "github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/tags"
)

// UpdateTraps keeps trapped enemies inside their bubble and releases them
// when the timer runs out or the bubble is gone.
func UpdateTraps(ecs *ecs.ECS) {
	ts := timeScale(ecs)

	var released []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Trapped) {
			return
		}
		trapped := components.Trapped.Get(e)
		body := &components.Physics.Get(e).Body

		body.SpeedX, body.SpeedY = 0, 0
		if trapped.Captor == nil || !trapped.Captor.Valid() {
			released = append(released, e)
			return
		}

		captor := &components.Physics.Get(trapped.Captor).Body
		body.X, body.Y = captor.X, captor.Y

		trapped.Timer -= ts
		if trapped.Timer <= 0 {
			released = append(released, e)
		}
	})

	for _, e := range released {
		releaseEnemy(ecs, e)
	}
}

// trapEnemy puts enemy inside bubble. The caller must not be iterating a
// query that includes enemy.
func trapEnemy(ecs *ecs.ECS, enemy, bubble *donburi.Entry, duration float64) {
	if enemy.HasComponent(components.Trapped) {
		return
	}
	body := &components.Physics.Get(enemy).Body
	body.SpeedX, body.SpeedY = 0, 0

	components.State.Get(enemy).Enter(cfg.StateTrapped)
	components.Path.Get(enemy).Clear()

	b := components.Bubble.Get(bubble)
	b.State = components.BubbleHolding
	b.Captive = enemy

	donburi.Add(enemy, components.Trapped, &components.TrappedData{
		Captor: bubble,
		Timer:  duration,
	})
	components.TrapEvents.Publish(ecs.World, components.TrapEvent{Enemy: enemy, Bubble: bubble})
}

// releaseEnemy frees a trapped enemy. Its bubble is destroyed and it comes
// out faster than it went in, in a random direction.
func releaseEnemy(ecs *ecs.ECS, e *donburi.Entry) {
	rt := getRuntime(ecs)
	if rt == nil {
		return
	}
	ec := rt.Config.Enemy

	trapped := components.Trapped.Get(e)
	removeEntity(ecs, trapped.Captor)
	donburi.Remove[components.TrappedData](e, components.Trapped)

	enemy := components.Enemy.Get(e)
	body := &components.Physics.Get(e).Body

	dir := randomSign(rt.Rand)
	enemy.Direction = dir
	body.SpeedX = dir * enemy.Speed * ec.AngryMultiplier
	body.Y -= ec.ReleasePop

	components.State.Get(e).Enter(enemy.BaseState)
	components.Stuck.Get(e).Reset(body.X, body.Y)

	components.ReleaseEvents.Publish(ecs.World, components.ReleaseEvent{Enemy: e, X: body.X, Y: body.Y})
	logger(ecs).Debug("enemy released", zap.Float64("x", body.X), zap.Float64("y", body.Y))
}
