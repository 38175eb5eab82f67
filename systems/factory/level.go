package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/bubblebound/archetypes"
	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/navigation"
	"github.com/automoto/bubblebound/physics"
	"github.com/automoto/bubblebound/shared/leveldata"
)

// CreateLevel spawns the level singleton. The resolver and navigation grid
// are built here, once, and are read-only until the next load.
func CreateLevel(ecs *ecs.ECS, c *config.Config, index int, lvl *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	grid := navigation.NewGrid(lvl.Map)
	components.Level.SetValue(level, components.LevelData{
		Index:    index,
		Current:  lvl,
		Resolver: physics.NewResolver(lvl.Map),
		Nav:      navigation.NewService(grid, c.Pathfinding.IterationsPerTick),
		Tier:     c.Curve.Tier(index),
	})
	components.LevelComplete.SetValue(level, components.LevelCompleteData{})

	return level
}
