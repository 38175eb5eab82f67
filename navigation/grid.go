// Package navigation turns a level's tile grid into a walkability grid and
// answers shortest-path queries over it, either synchronously through go-astar
// or incrementally through a Service stepped once per tick.
package navigation

import (
	"math"

	astar "github.com/beefsack/go-astar"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/bubblebound/shared/tilemap"
)

// Cell addresses one grid square.
type Cell struct {
	Col, Row int
}

// Grid is the walkable area of one level. It is built once per level load
// and only read afterwards.
type Grid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*Node
}

// Node is a single grid cell and implements astar.Pather.
type Node struct {
	X, Y     int
	Walkable bool
	grid     *Grid
}

// 8-directional movement (cardinal first, then diagonal).
var neighborOffsets = [...]struct {
	dx, dy int
	cost   float64
}{
	{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1},
	{1, -1, math.Sqrt2}, {1, 1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2},
}

// NewGrid derives walkability from m: a cell is walkable iff it is empty.
// Floor support is not required so paths may drop through or jump across
// gaps.
func NewGrid(m tilemap.Provider) *Grid {
	g := &Grid{
		Width:    m.Cols(),
		Height:   m.Rows(),
		CellSize: m.TileSize(),
		Nodes:    make([][]*Node, m.Rows()),
	}

	for y := 0; y < g.Height; y++ {
		g.Nodes[y] = make([]*Node, g.Width)
		for x := 0; x < g.Width; x++ {
			g.Nodes[y][x] = &Node{
				X:        x,
				Y:        y,
				Walkable: m.TileAt(x, y) == tilemap.Empty,
				grid:     g,
			}
		}
	}

	return g
}

// PathNeighbors returns adjacent walkable nodes. Diagonals may cut corners.
func (n *Node) PathNeighbors() []astar.Pather {
	neighbors := make([]astar.Pather, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if next := n.grid.node(n.X+d.dx, n.Y+d.dy); next != nil && next.Walkable {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// PathNeighborCost is 1 for cardinal steps and sqrt(2) for diagonals.
func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	t := to.(*Node)
	if t.X != n.X && t.Y != n.Y {
		return math.Sqrt2
	}
	return 1
}

// PathEstimatedCost is the octile distance, admissible for 8-way movement.
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*Node)
	return octile(Cell{n.X, n.Y}, Cell{t.X, t.Y})
}

func (g *Grid) node(x, y int) *Node {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.Nodes[y][x]
}

func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// Walkable reports whether a cell may appear on a path. Out of bounds is not.
func (g *Grid) Walkable(col, row int) bool {
	n := g.node(col, row)
	return n != nil && n.Walkable
}

// WorldToCell floor-divides a world position and clamps it into the grid.
func (g *Grid) WorldToCell(x, y float64) Cell {
	col := int(math.Floor(x / g.CellSize))
	row := int(math.Floor(y / g.CellSize))
	return Cell{
		Col: clampInt(col, 0, g.Width-1),
		Row: clampInt(row, 0, g.Height-1),
	}
}

// CellToWorld returns the center of a cell; steering always targets centers.
func (g *Grid) CellToWorld(c Cell) dmath.Vec2 {
	return dmath.Vec2{
		X: float64(c.Col)*g.CellSize + g.CellSize/2,
		Y: float64(c.Row)*g.CellSize + g.CellSize/2,
	}
}

// FindPath runs a complete go-astar search between two world positions and
// returns tile-center waypoints ordered from start to goal, or nil when the
// goal is not walkable or unreachable.
func (g *Grid) FindPath(startX, startY, goalX, goalY float64) []dmath.Vec2 {
	cells := g.FindCells(g.WorldToCell(startX, startY), g.WorldToCell(goalX, goalY))
	if cells == nil {
		return nil
	}
	return g.toWaypoints(cells)
}

// FindCells is FindPath in grid space.
func (g *Grid) FindCells(start, goal Cell) []Cell {
	if !g.Walkable(goal.Col, goal.Row) || !g.InBounds(start.Col, start.Row) {
		return nil
	}
	if start == goal {
		return []Cell{start}
	}

	from, to := g.Nodes[start.Row][start.Col], g.Nodes[goal.Row][goal.Col]
	path, _, found := astar.Path(from, to)
	if !found {
		return nil
	}

	cells := make([]Cell, len(path))
	for i, p := range path {
		n := p.(*Node)
		cells[i] = Cell{n.X, n.Y}
	}
	// go-astar walks parents back from the goal; normalise to start-first.
	if cells[0] != start {
		for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
			cells[i], cells[j] = cells[j], cells[i]
		}
	}
	return cells
}

// Reachable reports whether goal can be reached from start.
func (g *Grid) Reachable(start, goal Cell) bool {
	return g.FindCells(start, goal) != nil
}

func (g *Grid) toWaypoints(cells []Cell) []dmath.Vec2 {
	out := make([]dmath.Vec2, len(cells))
	for i, c := range cells {
		out[i] = g.CellToWorld(c)
	}
	return out
}

func octile(a, b Cell) float64 {
	dx := math.Abs(float64(a.Col - b.Col))
	dy := math.Abs(float64(a.Row - b.Row))
	if dx > dy {
		return dx + (math.Sqrt2-1)*dy
	}
	return dy + (math.Sqrt2-1)*dx
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
