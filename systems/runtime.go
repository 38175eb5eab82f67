package systems

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/components"
)

// getRuntime returns the singleton created by factory.CreateRuntime.
func getRuntime(e *ecs.ECS) *components.RuntimeData {
	ent, ok := components.Runtime.First(e.World)
	if !ok {
		return nil
	}
	return components.Runtime.Get(ent)
}

// timeScale returns this tick's time scale, 1 when no clock exists.
func timeScale(e *ecs.ECS) float64 {
	ent, ok := components.Clock.First(e.World)
	if !ok {
		return 1
	}
	return components.Clock.Get(ent).TimeScale
}

func logger(e *ecs.ECS) *zap.Logger {
	if rt := getRuntime(e); rt != nil && rt.Logger != nil {
		return rt.Logger
	}
	return zap.NewNop()
}

// getLevel returns the current level singleton, or nil between levels.
func getLevel(e *ecs.ECS) *components.LevelData {
	ent, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(ent)
}

// WithLevel wraps a system to skip execution while no level is loaded.
func WithLevel(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if getLevel(e) == nil {
			return
		}
		system(e)
	}
}

// removeEntity takes e out of the resolv space and the world.
func removeEntity(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if spaceEntry, ok := components.Space.First(e.World); ok && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}
