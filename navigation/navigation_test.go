package navigation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/bubblebound/shared/tilemap"
)

const T = tilemap.DefaultTileSize

var level = tilemap.MustParse(`
##########
#........#
#.####...#
#....#...#
#....#...#
##########
`, T)

// drain steps s until f resolves and reports how many steps it took.
func drain(t *testing.T, s *Service, f *Future) int {
	t.Helper()
	for i := 1; i <= 10000; i++ {
		s.Step()
		if f.Done() {
			return i
		}
	}
	t.Fatal("search never resolved")
	return 0
}

func TestWalkabilityIsEmptinessOnly(t *testing.T) {
	g := NewGrid(level)

	assert.True(t, g.Walkable(1, 1), "floating cell with no floor is still walkable")
	assert.False(t, g.Walkable(2, 2))
	assert.False(t, g.Walkable(-1, 1))
	assert.False(t, g.Walkable(10, 1))
}

func TestCoordinateMappingUsesCentersAndClamps(t *testing.T) {
	g := NewGrid(level)

	assert.Equal(t, Cell{1, 2}, g.WorldToCell(79.99, 80))
	assert.Equal(t, Cell{0, 0}, g.WorldToCell(-50, -50))
	assert.Equal(t, Cell{9, 5}, g.WorldToCell(5000, 5000))
	assert.Equal(t, dmath.Vec2{X: 60, Y: 100}, g.CellToWorld(Cell{1, 2}))
}

func TestFindPathReturnsStartFirstCenters(t *testing.T) {
	g := NewGrid(level)

	path := g.FindPath(45, 45, 4*T+10, 4*T+10)
	require.NotEmpty(t, path)

	assert.Equal(t, dmath.Vec2{X: 60, Y: 60}, path[0])
	assert.Equal(t, dmath.Vec2{X: 180, Y: 180}, path[len(path)-1])
	for _, p := range path {
		c := g.WorldToCell(p.X, p.Y)
		assert.True(t, g.Walkable(c.Col, c.Row))
	}
}

func TestFindPathNilWhenGoalBlockedOrUnreachable(t *testing.T) {
	sealed := tilemap.MustParse(`
#######
#..#..#
#..#..#
#######
`, T)
	g := NewGrid(sealed)

	assert.Nil(t, g.FindPath(45, 45, 3*T+5, 45), "goal inside wall")
	assert.Nil(t, g.FindPath(45, 45, 5*T+5, 2*T+5), "goal in sealed room")
	assert.False(t, g.Reachable(Cell{1, 1}, Cell{5, 2}))
}

func TestDiagonalsMayCutCorners(t *testing.T) {
	corner := tilemap.MustParse(`
###
#.#
##.
`, T)
	g := NewGrid(corner)

	cells := g.FindCells(Cell{1, 1}, Cell{2, 2})
	assert.Equal(t, []Cell{{1, 1}, {2, 2}}, cells)
}

func TestServiceResolvesOnLaterStep(t *testing.T) {
	s := NewService(NewGrid(level), DefaultIterationsPerTick)

	var got []dmath.Vec2
	calls := 0
	f := s.Request(45, 45, 4*T+10, 4*T+10).Then(func(path []dmath.Vec2) {
		calls++
		got = path
	})

	assert.False(t, f.Done(), "request never resolves synchronously")
	assert.Zero(t, calls)

	drain(t, s, f)

	assert.Equal(t, 1, calls)
	path, done := f.Result()
	assert.True(t, done)
	assert.Equal(t, got, path)
	assert.Equal(t, NewGrid(level).FindPath(45, 45, 4*T+10, 4*T+10)[0], path[0])
	assert.Equal(t, dmath.Vec2{X: 180, Y: 180}, path[len(path)-1])
}

func TestServiceMatchesAStarCost(t *testing.T) {
	g := NewGrid(level)
	s := NewService(g, 3)

	f := s.Request(45, 45, 8*T+5, 4*T+5)
	drain(t, s, f)

	stepped, _ := f.Result()
	reference := g.FindPath(45, 45, 8*T+5, 4*T+5)
	require.NotNil(t, reference)
	assert.InDelta(t, pathCost(g, reference), pathCost(g, stepped), 1e-9)
}

func TestServiceBoundsWorkPerStep(t *testing.T) {
	open := tilemap.MustParse(`
....................
....................
....................
....................
....................
....................
....................
....................
....................
....................
`, T)
	s := NewService(NewGrid(open), 2)

	f := s.Request(5, 5, 19*T+5, 9*T+5)
	steps := drain(t, s, f)

	// The route spans 20 cells and each is expanded once, two per step.
	assert.GreaterOrEqual(t, steps, 10)
	assert.LessOrEqual(t, s.Stats().Expansions, uint64(steps*2))
}

func TestServiceNotFoundDeliversNil(t *testing.T) {
	s := NewService(NewGrid(level), DefaultIterationsPerTick)

	called := false
	got := []dmath.Vec2{{}}
	f := s.Request(45, 45, 2*T+5, 2*T+5).Then(func(path []dmath.Vec2) {
		called = true
		got = path
	})
	assert.False(t, f.Done())

	s.Step()

	assert.True(t, called)
	assert.Nil(t, got)
	assert.Equal(t, uint64(1), s.Stats().NotFound)
}

func TestCancelledRequestNeverCallsBack(t *testing.T) {
	s := NewService(NewGrid(level), 1)

	called := false
	f := s.Request(45, 45, 8*T+5, 4*T+5).Then(func([]dmath.Vec2) { called = true })
	s.Step()
	f.Cancel()
	for i := 0; i < 200; i++ {
		s.Step()
	}

	assert.False(t, called)
	assert.Zero(t, s.Pending())
	assert.Equal(t, uint64(1), s.Stats().Cancelled)
}

func TestRequestsAreServedInOrder(t *testing.T) {
	s := NewService(NewGrid(level), DefaultIterationsPerTick)

	var order []uint64
	a := s.Request(45, 45, 8*T+5, 4*T+5)
	b := s.Request(45, 45, 2*T+5, 45)
	a.Then(func([]dmath.Vec2) { order = append(order, a.ID()) })
	b.Then(func([]dmath.Vec2) { order = append(order, b.ID()) })

	for s.Pending() > 0 {
		s.Step()
	}

	assert.Equal(t, []uint64{a.ID(), b.ID()}, order)
}

func pathCost(g *Grid, path []dmath.Vec2) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		a := g.WorldToCell(path[i-1].X, path[i-1].Y)
		b := g.WorldToCell(path[i].X, path[i].Y)
		if a.Col != b.Col && a.Row != b.Row {
			total += math.Sqrt2
		} else {
			total++
		}
	}
	return total
}
