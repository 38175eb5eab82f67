package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/tags"
)

var enemyQuery = donburi.NewQuery(filter.Contains(tags.Enemy))

func enemyCount(ecs *ecs.ECS) int {
	return enemyQuery.Count(ecs.World)
}

// UpdateLevelProgress marks the level complete once every enemy is gone and
// then counts down the transition. When the countdown ends Advance is set
// and the driver loads the next level.
func UpdateLevelProgress(ecs *ecs.ECS) {
	rt := getRuntime(ecs)
	levelEntry, ok := components.Level.First(ecs.World)
	if rt == nil || !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	lc := components.LevelComplete.Get(levelEntry)

	if !lc.IsComplete {
		if enemyCount(ecs) > 0 {
			return
		}
		ticks := float32(rt.Config.Level.TransitionTicks)
		lc.IsComplete = true
		lc.Transition = gween.New(0, ticks, ticks, ease.Linear)
		lc.Progress = 0

		name := ""
		if level.Current != nil {
			name = level.Current.Name
		}
		components.LevelEvents.Publish(ecs.World, components.LevelEvent{Index: level.Index, Name: name, Cleared: true})
		logger(ecs).Info("level cleared", zap.Int("level", level.Index), zap.String("name", name))
		return
	}

	if lc.Advance {
		return
	}
	current, finished := lc.Transition.Update(float32(timeScale(ecs)))
	lc.Progress = float64(current)
	if finished {
		lc.Advance = true
	}
}

// IsLevelComplete reports whether the current level has been cleared.
func IsLevelComplete(ecs *ecs.ECS) bool {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	return components.LevelComplete.Get(levelEntry).IsComplete
}

// ShouldAdvance reports whether the transition after a cleared level has run
// its course.
func ShouldAdvance(ecs *ecs.ECS) bool {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	return components.LevelComplete.Get(levelEntry).Advance
}
