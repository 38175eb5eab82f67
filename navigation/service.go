package navigation

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// DefaultIterationsPerTick bounds how many nodes all pending searches may
// expand during one Step.
const DefaultIterationsPerTick = 100

// Future is the handle returned by Service.Request. It is resolved inside a
// later Service.Step, never inside Request itself.
type Future struct {
	id        uint64
	done      bool
	cancelled bool
	path      []dmath.Vec2
	callbacks []func(path []dmath.Vec2)
}

// ID is unique per Service and increases with every request.
func (f *Future) ID() uint64 { return f.id }

// Done reports whether the search has finished.
func (f *Future) Done() bool { return f.done }

// Result returns the waypoints and whether the search has finished. A
// finished search with a nil path found no route.
func (f *Future) Result() ([]dmath.Vec2, bool) { return f.path, f.done }

// Then registers cb to run when the search finishes. If it already has, cb
// runs immediately.
func (f *Future) Then(cb func(path []dmath.Vec2)) *Future {
	if f.done {
		if !f.cancelled {
			cb(f.path)
		}
		return f
	}
	f.callbacks = append(f.callbacks, cb)
	return f
}

// Cancel drops a pending search. Its callbacks never run.
func (f *Future) Cancel() {
	f.cancelled = true
}

func (f *Future) resolve(path []dmath.Vec2) {
	f.done = true
	f.path = path
	if f.cancelled {
		f.callbacks = nil
		return
	}
	for _, cb := range f.callbacks {
		cb(path)
	}
	f.callbacks = nil
}

type pending struct {
	future *Future
	search *search
}

// Stats counts work done by a Service since it was created.
type Stats struct {
	Requested  uint64
	Found      uint64
	NotFound   uint64
	Cancelled  uint64
	Expansions uint64
}

// Service runs A* searches a bounded number of node expansions at a time so
// that a single expensive query never stalls a tick. Everything happens on
// the caller's goroutine: Request enqueues, Step advances and delivers.
type Service struct {
	grid              *Grid
	iterationsPerTick int
	queue             []pending
	nextID            uint64
	stats             Stats
}

func NewService(grid *Grid, iterationsPerTick int) *Service {
	if iterationsPerTick <= 0 {
		iterationsPerTick = DefaultIterationsPerTick
	}
	return &Service{
		grid:              grid,
		iterationsPerTick: iterationsPerTick,
	}
}

// Grid returns the walkability grid the service searches.
func (s *Service) Grid() *Grid { return s.grid }

// Request queues a search between two world positions.
func (s *Service) Request(fromX, fromY, toX, toY float64) *Future {
	s.nextID++
	f := &Future{id: s.nextID}
	start := s.grid.WorldToCell(fromX, fromY)
	goal := s.grid.WorldToCell(toX, toY)
	s.queue = append(s.queue, pending{future: f, search: newSearch(s.grid, start, goal)})
	s.stats.Requested++
	return f
}

// Step spends up to the per-tick budget on queued searches in FIFO order and
// resolves every search that finishes. Searches that were already decided
// when queued (for example an unwalkable goal) are resolved without spending
// budget.
func (s *Service) Step() {
	budget := s.iterationsPerTick
	for len(s.queue) > 0 {
		p := s.queue[0]
		if p.future.cancelled {
			s.stats.Cancelled++
			s.pop()
			continue
		}
		if p.search.done {
			s.finish(p)
			continue
		}
		if budget == 0 {
			return
		}
		budget--
		s.stats.Expansions++
		if p.search.expand() {
			s.finish(p)
		}
	}
}

// Pending is the number of searches not yet resolved.
func (s *Service) Pending() int { return len(s.queue) }

func (s *Service) Stats() Stats { return s.stats }

func (s *Service) finish(p pending) {
	s.pop()
	if p.search.result == nil {
		s.stats.NotFound++
		p.future.resolve(nil)
		return
	}
	s.stats.Found++
	p.future.resolve(s.grid.toWaypoints(p.search.result))
}

func (s *Service) pop() {
	s.queue[0] = pending{}
	s.queue = s.queue[1:]
}
