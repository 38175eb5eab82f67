package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/tags"
)

type trapPair struct {
	enemy, bubble *donburi.Entry
}

// UpdateCaptures handles entity contacts: bubbles trap free enemies, the
// player pops trapped enemies, and free enemies hurt the player.
func UpdateCaptures(ecs *ecs.ECS) {
	rt := getRuntime(ecs)
	if rt == nil {
		return
	}

	var traps []trapPair
	claimed := map[*donburi.Entry]bool{}
	tags.Bubble.Each(ecs.World, func(b *donburi.Entry) {
		if components.Bubble.Get(b).State == components.BubbleHolding {
			return
		}
		for _, enemy := range touching(b, tags.ResolvEnemy) {
			if claimed[enemy] || enemy.HasComponent(components.Trapped) {
				continue
			}
			claimed[enemy] = true
			traps = append(traps, trapPair{enemy: enemy, bubble: b})
			return
		}
	})
	for _, t := range traps {
		trapEnemy(ecs, t.enemy, t.bubble, rt.Config.Enemy.TrappedDuration)
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	var popped []*donburi.Entry
	hit := false
	for _, enemy := range touching(playerEntry, tags.ResolvEnemy) {
		if enemy.HasComponent(components.Trapped) {
			popped = append(popped, enemy)
		} else {
			hit = true
		}
	}

	for _, enemy := range popped {
		popEnemy(ecs, enemy)
	}
	if hit {
		hitPlayer(ecs, playerEntry, rt.Config.Player.InvulnerableTicks)
	}
}

// touching returns the entities carrying tag whose boxes overlap e. The
// resolv check is cell based, so every candidate is confirmed against the
// exact boxes.
func touching(e *donburi.Entry, tag string) []*donburi.Entry {
	obj := components.Object.Get(e).Object
	if obj == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	self := &components.Physics.Get(e).Body

	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || other == e || !other.Valid() {
			continue
		}
		if self.Overlaps(&components.Physics.Get(other).Body) {
			out = append(out, other)
		}
	}
	return out
}

// popEnemy removes a trapped enemy together with its bubble.
func popEnemy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	body := components.Physics.Get(e).Body
	if e.HasComponent(components.Trapped) {
		removeEntity(ecs, components.Trapped.Get(e).Captor)
	}
	removeEntity(ecs, e)

	remain := enemyCount(ecs)
	components.PopEvents.Publish(ecs.World, components.PopEvent{Enemy: e, X: body.X, Y: body.Y, Remain: remain})
	logger(ecs).Debug("enemy popped", zap.Int("remaining", remain))
}

// hitPlayer costs the player a life and sends it back to its spawn unless
// it is still invulnerable from the last hit.
func hitPlayer(ecs *ecs.ECS, e *donburi.Entry, invulnerable float64) {
	player := components.Player.Get(e)
	if player.Invulnerable > 0 {
		return
	}
	player.Lives--
	respawnPlayer(player, components.Physics.Get(e), invulnerable)
	components.Object.Get(e).SyncFrom(&components.Physics.Get(e).Body)

	components.PlayerHitEvents.Publish(ecs.World, components.PlayerHitEvent{Player: e, Lives: player.Lives})
	logger(ecs).Info("player hit", zap.Int("lives", player.Lives))
}
