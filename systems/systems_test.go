package systems

import (
	"math/rand"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap/zaptest"

	"github.com/automoto/bubblebound/components"
	"github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/shared/leveldata"
	"github.com/automoto/bubblebound/shared/tilemap"
	"github.com/automoto/bubblebound/systems/factory"
)

// arena is a 20x15 room with a flat floor. Bodies standing on it have
// Y = floorY.
const arena = `
####################
#..................#
#..................#
#..................#
#..................#
#..................#
#..................#
#..................#
#..................#
#..................#
#..................#
#..................#
#..................#
#..................#
####################
`

// pocket is the arena with a sealed one-cell room around column 14, row 7.
const pocket = `
####################
#..................#
#..................#
#..................#
#..................#
#..................#
#............###...#
#............#.#...#
#............###...#
#..................#
#..................#
#..................#
#..................#
#..................#
####################
`

const floorY = 14*40 - 32

// pipeline mirrors the order core runs the systems in.
var pipeline = []ecs.System{
	UpdatePathfinding,
	UpdatePlayer,
	UpdateEnemies,
	UpdateBubbles,
	UpdateTraps,
	UpdatePhysics,
	UpdateCollisions,
	UpdateStuckRecovery,
	UpdateObjects,
	UpdateCaptures,
	UpdateLevelProgress,
}

func newTestECS(t *testing.T, c *config.Config, layout string) *ecs.ECS {
	t.Helper()
	m := tilemap.MustParse(layout, c.World.TileSize)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateRuntime(e, c, zaptest.NewLogger(t), rand.New(rand.NewSource(7)))
	factory.CreateLevel(e, c, 0, &leveldata.Level{Name: "test", Map: m})
	ts := int(m.TileSize())
	factory.CreateSpace(e, int(m.WorldWidth()), int(m.WorldHeight()), ts, ts)
	return e
}

// run calls systems in order for n ticks, flushing events after each tick.
func run(e *ecs.ECS, n int, systems ...ecs.System) {
	for i := 0; i < n; i++ {
		for _, s := range systems {
			s(e)
		}
		events.ProcessAllEvents(e.World)
	}
}

func spawnEnemy(e *ecs.ECS, x, y float64) *donburi.Entry {
	rt := getRuntime(e)
	return factory.CreateEnemy(e, rt.Config, getLevel(e).Tier, rt.Rand, x, y)
}

func makeChaser(e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	enemy.IsChaser = true
	enemy.BaseState = config.StateChasing
	components.State.Get(e).Enter(config.StateChasing)
}

func bodyOf(e *donburi.Entry) *components.PhysicsData {
	return components.Physics.Get(e)
}
