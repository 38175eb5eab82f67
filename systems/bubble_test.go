package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/systems/factory"
)

func TestBubbleShootsThenFloats(t *testing.T) {
	c := config.Defaults()
	e := newTestECS(t, c, arena)
	bubble := factory.CreateBubble(e, c.Bubble, 200, 300, 1, c.Bubble.ShootDuration)

	run(e, 1, UpdateBubbles)
	assert.InDelta(t, c.Bubble.Speed*c.Bubble.Friction, bodyOf(bubble).SpeedX, 1e-9)
	assert.InDelta(t, 200+c.Bubble.Speed*c.Bubble.Friction, bodyOf(bubble).X, 1e-9)
	assert.Equal(t, components.BubbleShooting, components.Bubble.Get(bubble).State)

	run(e, int(c.Bubble.ShootDuration), UpdateBubbles)
	assert.Equal(t, components.BubbleFloating, components.Bubble.Get(bubble).State)
	assert.Zero(t, bodyOf(bubble).SpeedX)
	assert.Less(t, bodyOf(bubble).Y, 300.0)

	run(e, 200, UpdateBubbles)
	assert.Equal(t, c.Bubble.CeilingY, bodyOf(bubble).Y, "clamped at the ceiling line")
}

func TestBubbleStopsFlushAgainstWall(t *testing.T) {
	c := config.Defaults()
	e := newTestECS(t, c, arena)
	bubble := factory.CreateBubble(e, c.Bubble, 700, 300, 1, c.Bubble.ShootDuration)

	run(e, int(c.Bubble.ShootDuration)-1, UpdateBubbles)

	body := bodyOf(bubble)
	assert.Equal(t, 19*40.0, body.X+body.W, "flush with the right wall")
	assert.Zero(t, body.SpeedX)
	assert.False(t, getLevel(e).Resolver.OverlapsSolid(&body.Body))
}

func TestFloatingBubbleStopsUnderPlatform(t *testing.T) {
	c := config.Defaults()
	e := newTestECS(t, c, `
####################
#..................#
#..................#
#..................#
#..................#
#..................#
#..................#
#..................#
#....######........#
#..................#
#..................#
#..................#
#..................#
#..................#
####################
`)
	bubble := factory.CreateBubble(e, c.Bubble, 250, 500, 1, 0)

	run(e, 200, UpdateBubbles)

	body := bodyOf(bubble)
	assert.Equal(t, components.BubbleFloating, components.Bubble.Get(bubble).State)
	assert.Equal(t, 9*40.0, body.Y, "pressed against the platform's underside")
	assert.False(t, getLevel(e).Resolver.OverlapsSolid(&body.Body))
}

func TestLongRangeBubbleKeepsItsSpeed(t *testing.T) {
	c := config.Defaults()
	e := newTestECS(t, c, arena)
	bubble := factory.CreateBubble(e, c.Bubble, 200, 300, -1, c.Bubble.LongRangeDuration+10)

	run(e, 10, UpdateBubbles)

	assert.Equal(t, -c.Bubble.Speed, bodyOf(bubble).SpeedX)
	assert.InDelta(t, 200-10*c.Bubble.Speed, bodyOf(bubble).X, 1e-9)
}

func TestBubbleExpires(t *testing.T) {
	c := config.Defaults()
	e := newTestECS(t, c, arena)
	bubble := factory.CreateBubble(e, c.Bubble, 200, 300, 1, c.Bubble.ShootDuration)

	run(e, int(c.Bubble.MaxLife), UpdateBubbles)
	require.True(t, bubble.Valid())

	run(e, 1, UpdateBubbles)
	assert.False(t, bubble.Valid())
}

func TestHoldingBubbleNeverExpires(t *testing.T) {
	c := config.Defaults()
	e := newTestECS(t, c, arena)
	enemy := spawnEnemy(e, 200, floorY)
	bubble := factory.CreateBubble(e, c.Bubble, 200, floorY, 1, c.Bubble.ShootDuration)
	trapEnemy(e, enemy, bubble, 10*c.Bubble.MaxLife)

	run(e, 2*int(c.Bubble.MaxLife), UpdateBubbles, UpdateTraps)

	assert.True(t, bubble.Valid())
	assert.True(t, enemy.HasComponent(components.Trapped))
	assert.Equal(t, bodyOf(bubble).Y, bodyOf(enemy).Y, "the captive rides along")
}
