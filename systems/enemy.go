package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/bubblebound/components"
	cfg "github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/navigation"
	"github.com/automoto/bubblebound/physics"
	"github.com/automoto/bubblebound/shared/gamemath"
	"github.com/automoto/bubblebound/tags"
)

// UpdateEnemies runs the patrol and chase behaviour of every free enemy.
// Trapped enemies are driven by UpdateTraps instead.
func UpdateEnemies(ecs *ecs.ECS) {
	rt := getRuntime(ecs)
	level := getLevel(ecs)
	if rt == nil || level == nil {
		return
	}
	ts := timeScale(ecs)

	var target *physics.Body
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		target = &components.Physics.Get(playerEntry).Body
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Trapped) {
			return
		}

		enemy := components.Enemy.Get(e)
		state := components.State.Get(e)
		body := &components.Physics.Get(e).Body

		state.StateTimer += ts
		enemy.JumpCooldown = gamemath.Countdown(enemy.JumpCooldown, ts)

		// Stuck is only held for the tick the enemy was relocated.
		if state.CurrentState == cfg.StateStuck {
			state.Enter(enemy.BaseState)
		}

		switch state.CurrentState {
		case cfg.StateChasing:
			if target == nil {
				updatePatrol(enemy, body)
				break
			}
			updateChase(ecs, e, rt.Config, level.Nav, enemy, body, target, ts)
		default:
			updatePatrol(enemy, body)
		}

		if body.SpeedX > 0 {
			enemy.Facing = 1
		} else if body.SpeedX < 0 {
			enemy.Facing = -1
		}
	})
}

// updatePatrol walks at constant speed and turns around at walls. A faster
// speed left over from a release is kept until the next wall.
func updatePatrol(enemy *components.EnemyData, body *physics.Body) {
	if enemy.Direction == 0 {
		enemy.Direction = 1
	}
	if body.BlockedX != 0 && float64(body.BlockedX) == enemy.Direction {
		enemy.Direction = -enemy.Direction
	}
	body.SpeedX = enemy.Direction * max(math.Abs(body.SpeedX), enemy.Speed)
}

func updateChase(ecs *ecs.ECS, e *donburi.Entry, c *cfg.Config, nav *navigation.Service, enemy *components.EnemyData, body *physics.Body, target *physics.Body, ts float64) {
	path := components.Path.Get(e)
	pf := c.Pathfinding

	path.RepathTimer -= ts
	if path.RepathTimer <= 0 && nav != nil {
		requestPath(e, nav, path, body, target)
		path.RepathTimer = pf.RepathInterval
	}

	if path.Active() {
		path.Age += ts
		if followPath(ecs, e, c, enemy, body, path, target) {
			return
		}
	}
	directPursuit(ecs, e, c, enemy, body, target)
}

// requestPath asks for a fresh route to the target. The result is applied
// only if the path has not been replaced or dropped in the meantime.
func requestPath(e *donburi.Entry, nav *navigation.Service, path *components.PathData, body, target *physics.Body) {
	if path.Pending != nil {
		path.Pending.Cancel()
	}
	generation := path.Generation
	future := nav.Request(body.CenterX(), body.CenterY(), target.CenterX(), target.CenterY())
	path.Pending = future

	future.Then(func(waypoints []dmath.Vec2) {
		if !e.Valid() || !e.HasComponent(components.Path) {
			return
		}
		p := components.Path.Get(e)
		if p.Generation != generation || p.Pending != future {
			return
		}
		p.Pending = nil
		p.Age = 0
		// The first waypoint is the cell the enemy is already in.
		if len(waypoints) < 2 {
			p.Waypoints = nil
			p.Index = 0
			return
		}
		p.Waypoints = waypoints
		p.Index = 1
	})
}

// followPath steers toward the current waypoint. It returns false once the
// route is used up so the caller can fall back to direct pursuit.
func followPath(ecs *ecs.ECS, e *donburi.Entry, c *cfg.Config, enemy *components.EnemyData, body *physics.Body, path *components.PathData, target *physics.Body) bool {
	pf := c.Pathfinding
	cx, cy := body.CenterX(), body.CenterY()

	for path.Active() {
		wp := path.Waypoints[path.Index]
		if math.Hypot(wp.X-cx, wp.Y-cy) >= pf.WaypointTolerance {
			break
		}
		path.Index++
	}
	if !path.Active() {
		return false
	}

	wp := path.Waypoints[path.Index]
	dx := wp.X - cx
	if math.Abs(dx) > pf.Deadzone {
		body.SpeedX = gamemath.Sign(dx) * enemy.Speed
	} else {
		body.SpeedX = 0
	}

	goalDir := gamemath.Sign(target.CenterX() - cx)
	switch {
	case wp.Y < cy-pf.JumpRise && body.Grounded:
		jump(ecs, e, c, enemy, body, false, true)
	case body.BlockedX != 0 && float64(body.BlockedX) == goalDir && body.Grounded:
		jump(ecs, e, c, enemy, body, true, true)
	}
	return true
}

// directPursuit heads straight for the target along x and jumps when the
// target is well above or a wall is in the way.
func directPursuit(ecs *ecs.ECS, e *donburi.Entry, c *cfg.Config, enemy *components.EnemyData, body, target *physics.Body) {
	pf := c.Pathfinding
	dx := target.CenterX() - body.CenterX()
	dy := target.CenterY() - body.CenterY()

	if math.Abs(dx) > pf.Deadzone {
		body.SpeedX = gamemath.Sign(dx) * enemy.Speed
	} else {
		body.SpeedX = 0
	}

	if !body.Grounded {
		return
	}
	switch {
	case dy < -pf.DirectJumpRise:
		jump(ecs, e, c, enemy, body, false, false)
	case body.BlockedX != 0 && math.Abs(dx) > pf.DirectBlockedGap:
		jump(ecs, e, c, enemy, body, true, false)
	}
}

func jump(ecs *ecs.ECS, e *donburi.Entry, c *cfg.Config, enemy *components.EnemyData, body *physics.Body, wall, onPath bool) {
	if enemy.JumpCooldown > 0 {
		return
	}
	body.SpeedY = -c.Enemy.JumpForce
	body.Grounded = false
	enemy.JumpCooldown = c.Enemy.JumpCooldown
	components.JumpEvents.Publish(ecs.World, components.JumpEvent{
		Enemy: e,
		X:     body.X,
		Y:     body.Y,
		Wall:  wall,
		Path:  onPath,
	})
}
