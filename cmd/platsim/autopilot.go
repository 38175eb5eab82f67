package main

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/core"
	"github.com/automoto/bubblebound/tags"
)

const (
	shootRange  = 160.0 // free enemies closer than this get shot at
	shootHeight = 40.0
	climbHeight = 40.0
)

// autopilot plays the player: it closes in on the nearest enemy, shoots it
// when level with it and runs into it once it is trapped.
func autopilot(sim *core.Simulation) components.PlayerInputData {
	var in components.PlayerInputData
	w := sim.World()
	playerEntry, ok := sim.Player()
	if !ok {
		return in
	}
	player := components.Physics.Get(playerEntry).Body
	facing := components.Player.Get(playerEntry).Facing

	var nearest *donburi.Entry
	best := math.Inf(1)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		b := components.Physics.Get(e).Body
		d := math.Hypot(b.CenterX()-player.CenterX(), b.CenterY()-player.CenterY())
		// Trapped enemies are worth a detour.
		if e.HasComponent(components.Trapped) {
			d /= 2
		}
		if d < best {
			best, nearest = d, e
		}
	})
	if nearest == nil {
		return in
	}

	target := components.Physics.Get(nearest).Body
	dx := target.CenterX() - player.CenterX()
	dy := target.CenterY() - player.CenterY()
	trapped := nearest.HasComponent(components.Trapped)

	switch {
	case trapped || math.Abs(dx) > shootRange:
		in.Left, in.Right = dx < 0, dx > 0
	case (dx < 0) != (facing < 0):
		// Turn around to face the enemy.
		in.Left, in.Right = dx < 0, dx > 0
	}

	if !trapped && math.Abs(dy) < shootHeight && (dx < 0) == (facing < 0) {
		in.Shoot = true
	}
	if dy < -climbHeight || player.BlockedX != 0 {
		in.Jump = true
	}
	return in
}
