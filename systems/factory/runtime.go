package factory

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/archetypes"
	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/config"
)

// CreateRuntime spawns the singleton carrying config, logger, rng and clock.
func CreateRuntime(ecs *ecs.ECS, c *config.Config, logger *zap.Logger, rng *rand.Rand) *donburi.Entry {
	rt := archetypes.Runtime.Spawn(ecs)
	components.Runtime.SetValue(rt, components.RuntimeData{
		Config: c,
		Logger: logger,
		Rand:   rng,
	})
	components.Clock.SetValue(rt, components.ClockData{TimeScale: 1})
	return rt
}
