package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/config"
)

func TestLevelCompletesAndCountsDown(t *testing.T) {
	c := config.Defaults()
	c.Level.TransitionTicks = 5
	e := newTestECS(t, c, arena)
	enemy := spawnEnemy(e, 200, floorY)

	var cleared []components.LevelEvent
	components.LevelEvents.Subscribe(e.World, func(_ donburi.World, ev components.LevelEvent) {
		cleared = append(cleared, ev)
	})

	run(e, 1, UpdateLevelProgress)
	assert.False(t, IsLevelComplete(e))

	removeEntity(e, enemy)
	run(e, 1, UpdateLevelProgress)
	require.True(t, IsLevelComplete(e))
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].Cleared)
	assert.Equal(t, "test", cleared[0].Name)

	run(e, 4, UpdateLevelProgress)
	assert.False(t, ShouldAdvance(e))

	run(e, 1, UpdateLevelProgress)
	assert.True(t, ShouldAdvance(e))
	assert.Len(t, cleared, 1, "cleared is announced once")
}

func TestLevelHelpersWithoutLevel(t *testing.T) {
	c := config.Defaults()
	e := newTestECS(t, c, arena)
	levelEntry, ok := components.Level.First(e.World)
	require.True(t, ok)
	e.World.Remove(levelEntry.Entity())

	assert.False(t, IsLevelComplete(e))
	assert.False(t, ShouldAdvance(e))

	called := false
	WithLevel(func(*ecs.ECS) { called = true })(e)
	assert.False(t, called)
}
