package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/components"
	cfg "github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/physics"
	"github.com/automoto/bubblebound/shared/gamemath"
	"github.com/automoto/bubblebound/shared/tilemap"
	"github.com/automoto/bubblebound/tags"
)

// UpdateStuckRecovery runs after movement has been resolved. It pulls
// enemies out of walls and relocates enemies that have not gone anywhere
// for too long.
func UpdateStuckRecovery(ecs *ecs.ECS) {
	rt := getRuntime(ecs)
	level := getLevel(ecs)
	if rt == nil || level == nil || level.Current == nil {
		return
	}
	m := level.Current.Map
	ts := timeScale(ecs)

	var target *physics.Body
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		target = &components.Physics.Get(playerEntry).Body
	}

	var moved []components.RelocateEvent
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Trapped) {
			return
		}
		body := &components.Physics.Get(e).Body
		stuck := components.Stuck.Get(e)
		path := components.Path.Get(e)

		fromX, fromY := body.X, body.Y
		if unstick(m, body, rt.Config.Stuck.EmbedRadius) {
			enemy := components.Enemy.Get(e)
			enemy.Direction = randomSign(rt.Rand)
			body.SpeedX = enemy.Direction * enemy.Speed
			relocated(e, body, stuck, path)
			moved = append(moved, components.RelocateEvent{
				Enemy: e, Reason: components.RelocateEmbedded,
				FromX: fromX, FromY: fromY, ToX: body.X, ToY: body.Y,
			})
			return
		}

		if !trackInactivity(rt.Config.Stuck, rt.Config.Pathfinding.RepathInterval, body, stuck, path, ts) {
			return
		}
		if target == nil {
			stuck.Reset(body.X, body.Y)
			return
		}

		x, y, found := teleportTarget(m, rt.Config.Stuck, target)
		if !found {
			logger(ecs).Warn("no teleport cell near target, using fallback",
				zap.Float64("x", x), zap.Float64("y", y))
		}
		body.X, body.Y = x, y
		body.SpeedY = 0
		enemy := components.Enemy.Get(e)
		enemy.Direction = gamemath.Sign(target.CenterX() - body.CenterX())
		if enemy.Direction == 0 {
			enemy.Direction = 1
		}
		body.SpeedX = enemy.Direction * enemy.Speed
		relocated(e, body, stuck, path)
		moved = append(moved, components.RelocateEvent{
			Enemy: e, Reason: components.RelocateInactive,
			FromX: fromX, FromY: fromY, ToX: body.X, ToY: body.Y,
		})
	})

	for _, ev := range moved {
		components.RelocateEvents.Publish(ecs.World, ev)
		logger(ecs).Warn("enemy relocated",
			zap.Stringer("reason", ev.Reason),
			zap.Float64("from_x", ev.FromX), zap.Float64("from_y", ev.FromY),
			zap.Float64("to_x", ev.ToX), zap.Float64("to_y", ev.ToY))
	}
}

// relocated resets everything that refers to the enemy's old position.
func relocated(e *donburi.Entry, body *physics.Body, stuck *components.StuckData, path *components.PathData) {
	path.Clear()
	path.RepathTimer = 0
	stuck.Reset(body.X, body.Y)
	stuck.Relocations++
	components.State.Get(e).Enter(cfg.StateStuck)
}

// unstick moves a body whose center is inside a solid tile to the nearest
// empty tile within radius rings. Only cells inside the map are considered.
// A body still falling in through the top border is not embedded.
func unstick(m *tilemap.TileMap, body *physics.Body, radius int) bool {
	if body.Entering {
		return false
	}
	col, row := tilemap.WorldToTile(m, body.CenterX(), body.CenterY())
	if !m.InBounds(col, row) || !m.IsSolid(col, row) {
		return false
	}

	ts := m.TileSize()
	for r := 1; r <= radius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				c, rr := col+dx, row+dy
				if !m.InBounds(c, rr) || m.IsSolid(c, rr) {
					continue
				}
				body.X = float64(c)*ts + ts/4
				body.Y = float64(rr) * ts
				body.SpeedY = 0
				return true
			}
		}
	}
	return false
}

// trackInactivity accumulates time spent in windows where the body moved
// less than the minimum displacement. It reports whether the enemy has been
// idle long enough to relocate. A fresh path suspends the check.
func trackInactivity(sc cfg.StuckConfig, repathInterval float64, body *physics.Body, stuck *components.StuckData, path *components.PathData, ts float64) bool {
	if path.Active() && path.Age < repathInterval {
		stuck.Reset(body.X, body.Y)
		return false
	}

	stuck.WindowTimer += ts
	if stuck.WindowTimer >= sc.WindowTicks {
		moved := math.Hypot(body.X-stuck.AnchorX, body.Y-stuck.AnchorY)
		if moved < sc.MinDisplacement {
			stuck.StuckTimer += stuck.WindowTimer
		} else {
			stuck.StuckTimer = 0
		}
		stuck.AnchorX, stuck.AnchorY = body.X, body.Y
		stuck.WindowTimer = 0
	}
	return stuck.StuckTimer >= sc.InactivityTicks
}

// teleportTarget looks for an empty cell with floor below near the target,
// keeping a gap of a few columns from it. Columns are scanned left to right,
// rows from the highest down to the target's own row.
func teleportTarget(m *tilemap.TileMap, sc cfg.StuckConfig, target *physics.Body) (x, y float64, found bool) {
	ts := m.TileSize()
	tc, tr := tilemap.WorldToTile(m, target.CenterX(), target.CenterY())

	for ox := -sc.SearchRangeX; ox <= sc.SearchRangeX; ox++ {
		if abs(ox) < sc.MinTargetGap {
			continue
		}
		for oy := -sc.SearchRangeUp; oy <= 0; oy++ {
			c, r := tc+ox, tr+oy
			if c < 2 || c >= m.Cols()-2 || r < 1 || r >= m.Rows()-1 {
				continue
			}
			if m.IsSolid(c, r) || !tilemap.HasFloorWithin(m, c, r, sc.FloorProbe) {
				continue
			}
			return float64(c) * ts, float64(r) * ts, true
		}
	}
	return m.WorldWidth() / 2, 2 * ts, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
