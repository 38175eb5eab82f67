package navigation

import (
	"container/heap"
)

const (
	cellUnseen uint8 = iota
	cellOpen
	cellClosed
)

type openNode struct {
	idx   int
	g, f  float64
	seq   uint64
	index int
}

type openQueue []*openNode

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openQueue) Push(x any) {
	n := x.(*openNode)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// search is one A* run that can be suspended between node expansions.
type search struct {
	grid        *Grid
	start, goal Cell

	open   openQueue
	g      []float64
	parent []int
	state  []uint8
	seq    uint64

	done   bool
	result []Cell
}

func newSearch(grid *Grid, start, goal Cell) *search {
	n := grid.Width * grid.Height
	s := &search{
		grid:   grid,
		start:  start,
		goal:   goal,
		g:      make([]float64, n),
		parent: make([]int, n),
		state:  make([]uint8, n),
	}

	if !grid.Walkable(goal.Col, goal.Row) || !grid.InBounds(start.Col, start.Row) {
		s.done = true
		return s
	}

	startIdx := s.index(start)
	s.parent[startIdx] = -1
	s.state[startIdx] = cellOpen
	heap.Push(&s.open, &openNode{idx: startIdx, f: octile(start, goal)})
	return s
}

func (s *search) index(c Cell) int { return c.Row*s.grid.Width + c.Col }

func (s *search) cell(idx int) Cell {
	return Cell{Col: idx % s.grid.Width, Row: idx / s.grid.Width}
}

// expand pops and expands a single node. It reports whether the search has
// finished, successfully or not.
func (s *search) expand() bool {
	if s.done {
		return true
	}

	for s.open.Len() > 0 {
		cur := heap.Pop(&s.open).(*openNode)
		if s.state[cur.idx] == cellClosed || cur.g > s.g[cur.idx] {
			// Stale duplicate left behind by a cheaper re-push.
			continue
		}
		s.state[cur.idx] = cellClosed

		c := s.cell(cur.idx)
		if c == s.goal {
			s.result = s.reconstruct(cur.idx)
			s.done = true
			return true
		}

		for _, d := range neighborOffsets {
			nc := Cell{c.Col + d.dx, c.Row + d.dy}
			if !s.grid.Walkable(nc.Col, nc.Row) {
				continue
			}
			ni := s.index(nc)
			if s.state[ni] == cellClosed {
				continue
			}
			ng := cur.g + d.cost
			if s.state[ni] == cellOpen && ng >= s.g[ni] {
				continue
			}
			s.g[ni] = ng
			s.parent[ni] = cur.idx
			s.state[ni] = cellOpen
			s.seq++
			heap.Push(&s.open, &openNode{idx: ni, g: ng, f: ng + octile(nc, s.goal), seq: s.seq})
		}
		return false
	}

	s.done = true
	return true
}

func (s *search) reconstruct(idx int) []Cell {
	var rev []Cell
	for i := idx; i != -1; i = s.parent[i] {
		rev = append(rev, s.cell(i))
	}
	out := make([]Cell, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}
	return out
}
