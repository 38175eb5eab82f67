package factory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/shared/leveldata"
	"github.com/automoto/bubblebound/shared/tilemap"
	"github.com/automoto/bubblebound/tags"
)

func newWorld(t *testing.T) (*ecs.ECS, *config.Config) {
	t.Helper()
	c := config.Defaults()
	e := ecs.NewECS(donburi.NewWorld())
	CreateRuntime(e, c, zap.NewNop(), rand.New(rand.NewSource(1)))
	CreateSpace(e, 400, 200, 40, 40)
	return e, c
}

func TestCreateEnemyAppliesTier(t *testing.T) {
	e, c := newWorld(t)
	rng := rand.New(rand.NewSource(3))

	patrol := CreateEnemy(e, c, config.CurveTier{SpeedMultiplier: 0.5, ChaseChance: 0}, rng, 100, 40)
	chaser := CreateEnemy(e, c, config.CurveTier{SpeedMultiplier: 0, ChaseChance: 1}, rng, 200, 40)

	pe := components.Enemy.Get(patrol)
	assert.Equal(t, c.Enemy.Speed*0.5, pe.Speed)
	assert.False(t, pe.IsChaser)
	assert.Equal(t, config.StatePatrol, components.State.Get(patrol).CurrentState)
	assert.Equal(t, pe.Direction*pe.Speed, components.Physics.Get(patrol).SpeedX)

	ce := components.Enemy.Get(chaser)
	assert.Equal(t, c.Enemy.Speed, ce.Speed, "a zero multiplier means unscaled")
	assert.True(t, ce.IsChaser)
	assert.Equal(t, config.StateChasing, ce.BaseState)
	assert.Equal(t, config.StateChasing, components.State.Get(chaser).CurrentState)
	assert.Equal(t, 200.0, components.Stuck.Get(chaser).AnchorX)
}

func TestActorsJoinTheSpace(t *testing.T) {
	e, c := newWorld(t)
	player := CreatePlayer(e, c.Player, 40, 40)
	bubble := CreateBubble(e, c.Bubble, 60, 40, -1, c.Bubble.ShootDuration)

	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)
	assert.Len(t, space.Objects(), 2)

	obj := components.Object.Get(player).Object
	require.NotNil(t, obj)
	assert.True(t, obj.HasTags(tags.ResolvPlayer))
	assert.Equal(t, player, obj.Data)

	assert.Equal(t, -c.Bubble.Speed, components.Physics.Get(bubble).SpeedX)
	assert.Equal(t, components.BubbleShooting, components.Bubble.Get(bubble).State)
	assert.Equal(t, c.Player.Lives, components.Player.Get(player).Lives)
}

func TestCreateLevelBuildsNavigation(t *testing.T) {
	e, c := newWorld(t)
	m := tilemap.MustParse("#####\n#...#\n#####\n", 40)
	entry := CreateLevel(e, c, 4, &leveldata.Level{Name: "tiny", Map: m})

	level := components.Level.Get(entry)
	require.NotNil(t, level.Nav)
	require.NotNil(t, level.Resolver)
	assert.Equal(t, 4, level.Index)
	assert.Equal(t, c.Curve.Tier(4), level.Tier)
	assert.False(t, components.LevelComplete.Get(entry).IsComplete)
}
